package navlink

import (
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderList(t *testing.T) {
	r := NewRenderer(slashURLs{})
	route := ActiveRoute{
		RouteParts: RouteParts{Module: "contact", Controller: "index", Action: "index"},
		Default:    storeDefaults,
	}

	links := []LinkSpec{
		{Path: "blog", Label: "Blog", SortOrder: 10},
		{Path: "", Label: "Home", SortOrder: 100},
		{Path: "contact", Label: "Contact", SortOrder: 10},
		{Path: "sale", Label: "Sale", SortOrder: 50, Highlighted: true},
	}

	out, err := r.RenderList(links, route)
	require.NoError(t, err)

	doc := parseFragment(t, out)

	items := doc.Find("ul.nav.items > li")
	require.Equal(t, 4, items.Length())

	var labels []string

	items.Each(func(_ int, li *goquery.Selection) {
		labels = append(labels, li.Find("a").Text())
	})

	assert.Equal(t, []string{"Home", "Sale", "Blog", "Contact"}, labels)
	assert.Equal(t, 2, doc.Find("li.active").Length())

	// input is left untouched
	assert.Equal(t, "Blog", links[0].Label)
}

func TestRenderer_RenderList_Empty(t *testing.T) {
	out, err := NewRenderer(slashURLs{}).RenderList(nil, ActiveRoute{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderer_RenderList_StopsOnError(t *testing.T) {
	errBuild := errors.New("broken route") //nolint:goerr113
	urls := URLGeneratorFunc(func(path string) (string, error) {
		if path == "broken" {
			return "", errBuild
		}

		return "/" + path, nil
	})

	out, err := NewRenderer(urls).RenderList([]LinkSpec{
		{Path: "ok", Label: "OK"},
		{Path: "broken", Label: "Broken"},
	}, ActiveRoute{})

	assert.Equal(t, errBuild, err)
	assert.Empty(t, out)
}
