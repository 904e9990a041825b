// Package navigation provides utilities for managing navigation state, menus and breadcrumbs.
package navigation

import (
	"html/template"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/storenav/storenav/internal/navlink"
)

var menusRendered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storenav_menus_rendered_total",
		Help: "Number of rendered navigation menus",
	},
	[]string{"menu"},
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	Route       navlink.ActiveRoute
	Breadcrumbs []BreadcrumbItem
	Menus       map[string]template.HTML
}

// NewContext creates a new navigation context for the given route.
func NewContext(pageTitle string, route navlink.ActiveRoute) *Context {
	return &Context{
		PageTitle:   pageTitle,
		Route:       route,
		Breadcrumbs: make([]BreadcrumbItem, 0),
		Menus:       make(map[string]template.HTML),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// BuildMenu renders links with r for the context route and stores the list under menu.
// The stored HTML is left untouched on error.
func (c *Context) BuildMenu(r *navlink.Renderer, menu string, links []navlink.LinkSpec) error {
	out, err := r.RenderList(links, c.Route)
	if err != nil {
		return err
	}

	//nolint:gosec // fragment is escaped by the renderer
	c.Menus[menu] = template.HTML(out)
	menusRendered.WithLabelValues(menu).Inc()

	return nil
}

// Menu returns the rendered menu or an empty fragment.
func (c *Context) Menu(menu string) template.HTML {
	return c.Menus[menu]
}

// IsActive checks if the given module and controller match the current route.
func (c *Context) IsActive(module, controller string) bool {
	return c.Route.Module == module && c.Route.Controller == controller
}

// IsSectionActive checks if the given module is active.
func (c *Context) IsSectionActive(module string) bool {
	return c.Route.Module == module
}
