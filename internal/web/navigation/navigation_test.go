package navigation

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storenav/storenav/internal/navlink"
)

var (
	defaults = navlink.RouteParts{Module: "cms", Controller: "index", Action: "index"}

	contactRoute = navlink.ActiveRoute{
		RouteParts: navlink.RouteParts{Module: "contact", Controller: "index", Action: "index"},
		Default:    defaults,
	}
)

func slashURLs() navlink.URLGenerator {
	return navlink.URLGeneratorFunc(func(path string) (string, error) {
		return "/" + strings.TrimSuffix(strings.TrimSuffix(path, "/index/index"), "/index") + "/", nil
	})
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", contactRoute)

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, contactRoute, ctx.Route)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Menu("header"))
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", contactRoute)

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Contact", "/contact/", true)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", contactRoute).
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Customer", "/customer/", false).
		AddBreadcrumb("Account", "/customer/account/", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Customer", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Account", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", contactRoute)

	assert.True(t, ctx.IsActive("contact", "index"))
	assert.False(t, ctx.IsActive("cms", "index"))
	assert.False(t, ctx.IsActive("contact", "form"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", contactRoute)

	assert.True(t, ctx.IsSectionActive("contact"))
	assert.False(t, ctx.IsSectionActive("cms"))
}

func TestContext_BuildMenu(t *testing.T) {
	r := navlink.NewRenderer(slashURLs())
	ctx := NewContext("Contact", contactRoute)

	before := testutil.ToFloat64(menusRendered.WithLabelValues("header"))

	err := ctx.BuildMenu(r, "header", []navlink.LinkSpec{
		{Path: "cms", Label: "Home", SortOrder: 100},
		{Path: "contact", Label: "Contact", SortOrder: 10},
	})
	require.NoError(t, err)

	assert.Equal(t,
		`<ul class="nav items">`+
			`<li class="nav item"><a href="/cms/">Home</a></li>`+
			`<li class="nav item active"><a href="/contact/">Contact</a></li>`+
			`</ul>`,
		string(ctx.Menu("header")))
	assert.InDelta(t, before+1, testutil.ToFloat64(menusRendered.WithLabelValues("header")), 0)
}

func TestContext_BuildMenu_Error(t *testing.T) {
	errBuild := errors.New("no route") //nolint:goerr113
	r := navlink.NewRenderer(navlink.URLGeneratorFunc(func(string) (string, error) {
		return "", errBuild
	}))

	ctx := NewContext("Contact", contactRoute)
	ctx.Menus["header"] = "<ul></ul>"

	err := ctx.BuildMenu(r, "header", []navlink.LinkSpec{{Path: "contact", Label: "Contact"}})
	assert.Equal(t, errBuild, err)
	assert.Equal(t, "<ul></ul>", string(ctx.Menu("header")))
}

func TestBreadcrumbItem(t *testing.T) {
	item := BreadcrumbItem{
		Title:  "Test",
		URL:    "/test",
		Active: true,
	}

	assert.Equal(t, "Test", item.Title)
	assert.Equal(t, "/test", item.URL)
	assert.True(t, item.Active)
}
