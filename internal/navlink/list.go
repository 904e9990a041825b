package navlink

import (
	"sort"
	"strings"
)

// RenderList renders links as a <ul class="nav items"> block ordered by SortOrder,
// highest first. Links with equal SortOrder keep their input order.
// An empty list renders as an empty string.
func (r *Renderer) RenderList(links []LinkSpec, route ActiveRoute) (string, error) {
	if len(links) == 0 {
		return "", nil
	}

	sorted := make([]LinkSpec, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder > sorted[j].SortOrder
	})

	var b strings.Builder

	b.WriteString(`<ul class="nav items">`)

	for _, link := range sorted {
		item, err := r.Render(link, route)
		if err != nil {
			return "", err
		}

		b.WriteString(item)
	}

	b.WriteString("</ul>")

	return b.String(), nil
}
