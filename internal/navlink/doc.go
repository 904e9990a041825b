// Package navlink renders storefront navigation links.
//
// A link is rendered as a single list item:
//
//	<li class="nav item active"><a href="/contact/" title="Contact us">Contact</a></li>
//
// The active class is set when the link is highlighted or when it points to the page
// currently displayed. Current-state detection compares generated URLs: the link path and
// the signature of the active route (module/controller/action with default parts dropped)
// are both passed through the URL generator and the results are compared as strings.
//
// URL generation, translation and HTML escaping are supplied by the caller through the
// URLGenerator, Translator and Escaper interfaces. Errors returned by a collaborator are
// passed back to the caller unchanged.
package navlink
