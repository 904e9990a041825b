// Package route resolves the active module/controller/action of a storefront request.
package route

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/storenav/storenav/internal/navlink"
)

// LocalsKey is the fiber.Locals key holding the resolved navlink.ActiveRoute.
const LocalsKey = "activeRoute"

// Resolve maps a request path to its route parts. The first three path segments name
// module, controller and action; missing parts are taken from defaults.
func Resolve(path string, defaults navlink.RouteParts) navlink.ActiveRoute {
	route := navlink.ActiveRoute{RouteParts: defaults, Default: defaults}

	path = strings.Trim(path, "/")
	if path == "" {
		return route
	}

	var segments []string

	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, strings.ToLower(s))
		}
	}

	switch n := len(segments); {
	case n > 2: //nolint:mnd
		route.Action = segments[2]

		fallthrough
	case n > 1:
		route.Controller = segments[1]

		fallthrough
	case n > 0:
		route.Module = segments[0]
	}

	return route
}

// New returns a middleware storing the resolved route of every request in c.Locals.
func New(defaults navlink.RouteParts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsKey, Resolve(c.Path(), defaults))

		return c.Next()
	}
}

// FromCtx returns the route stored by the middleware, resolving it from the request path
// if the middleware did not run.
func FromCtx(c *fiber.Ctx, defaults navlink.RouteParts) navlink.ActiveRoute {
	if route, ok := c.Locals(LocalsKey).(navlink.ActiveRoute); ok {
		return route
	}

	return Resolve(c.Path(), defaults)
}
