// Package handler holds what the storefront and admin handlers share.
package handler

import "errors"

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the root path of the JSON API.
	APIPath = RootPath + "api"

	// HeaderMenu is the menu rendered at the top of every storefront page.
	HeaderMenu = "header"

	// AccountMenu is the customer account menu.
	AccountMenu = "account"
)

var (
	// ErrNilACD is returned by Init if app or cfg or db var pointer is nil.
	ErrNilACD = errors.New("app, cfg or db is nil")

	// ErrMissingDeps is returned by Init when a shared collaborator is missing.
	ErrMissingDeps = errors.New("handler dependencies are incomplete")
)
