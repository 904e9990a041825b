package navlink

import "strings"

// Signature returns the active route as a path with every part dropped that is empty or
// equal to its default. Parts keep the order module, controller, action.
func Signature(route ActiveRoute) string {
	parts := make([]string, 0, 3) //nolint:mnd

	for _, p := range [...][2]string{
		{route.Module, route.Default.Module},
		{route.Controller, route.Default.Controller},
		{route.Action, route.Default.Action},
	} {
		if p[0] != "" && p[0] != p[1] {
			parts = append(parts, p[0])
		}
	}

	return strings.Join(parts, "/")
}

// IsCurrent reports whether link leads to the URL of the page currently displayed.
func (r *Renderer) IsCurrent(link LinkSpec, route ActiveRoute) (bool, error) {
	if link.Current {
		return true, nil
	}

	href, err := r.urls.BuildURL(link.Path)
	if err != nil {
		return false, err
	}

	return r.matchesRoute(href, route)
}

// matchesRoute compares an already generated link URL with the URL of the route signature.
func (r *Renderer) matchesRoute(href string, route ActiveRoute) (bool, error) {
	current, err := r.urls.BuildURL(Signature(route))
	if err != nil {
		return false, err
	}

	return href == current, nil
}
