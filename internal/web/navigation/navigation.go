// Package navigation builds the header menu and breadcrumbs of a page.
package navigation

import (
	"strings"

	"github.com/designspec/designspec-web/internal/catalog"
)

// Item is one header menu entry.
type Item struct {
	Title  string
	URL    string
	Active bool
}

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	ActivePath  string
	Items       []Item
	Breadcrumbs []BreadcrumbItem
}

// mainItems in header order.
var mainItems = []Item{ //nolint:gochecknoglobals
	{Title: "Home", URL: catalog.RouteHome},
	{Title: "Services", URL: catalog.RouteServices},
	{Title: "Portfolio", URL: catalog.RoutePortfolio},
	{Title: "Contact", URL: catalog.RouteContact},
}

// NewContext creates the navigation context of the page at activePath.
func NewContext(pageTitle, activePath string) *Context {
	c := &Context{
		PageTitle:   pageTitle,
		ActivePath:  activePath,
		Items:       make([]Item, 0, len(mainItems)),
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}

	for _, it := range mainItems {
		it.Active = c.IsActive(it.URL)
		c.Items = append(c.Items, it)
	}

	return c
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

// IsActive reports whether url is the active page or one of its parents.
// The home page is only active on itself.
func (c *Context) IsActive(url string) bool {
	if url == catalog.RouteHome {
		return c.ActivePath == catalog.RouteHome
	}

	return c.ActivePath == url || strings.HasPrefix(c.ActivePath, url+"/")
}
