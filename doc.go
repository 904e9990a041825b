// Package main provides the entry point of storenav, a storefront that renders
// navigation menus. Every link is written as an HTML list item whose active class
// tells whether it leads to the page currently displayed. The links of each menu
// live in a gorm backed database, are served by a Fiber web application and can be
// managed through a JSON API. The render command prints a single link for quick
// checks of URL generation and translation.
package main
