package gallery

// Navigator performs a navigation request. Routing lives with the host.
type Navigator interface {
	Navigate(href string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(href string)

func (f NavigatorFunc) Navigate(href string) { f(href) }

// Resolver picks the navigation target for a tap: the centered item's href.
type Resolver struct {
	items func() []Item
}

// NewResolver resolves against the list returned by items at call time.
func NewResolver(items func() []Item) *Resolver {
	return &Resolver{items: items}
}

// Resolve returns the centered item's href. ok is false for an empty list
// or an item without a target.
func (r *Resolver) Resolve() (href string, ok bool) {
	if r == nil || r.items == nil {
		return "", false
	}
	items := r.items()
	i := Centered(items)
	if i < 0 || items[i].Href == "" {
		return "", false
	}
	return items[i].Href, true
}
