package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Services", "/services")

	assert.Equal(t, "Services", ctx.PageTitle)
	assert.Equal(t, "/services", ctx.ActivePath)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
	assert.Len(t, ctx.Items, 4)

	for _, it := range ctx.Items {
		assert.Equal(t, it.URL == "/services", it.Active, it.URL)
	}
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Admin", "/dashboard/admin").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Admin", "/dashboard/admin", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/dashboard", ctx.Breadcrumbs[1].URL)
	assert.True(t, ctx.Breadcrumbs[2].Active)
	assert.False(t, ctx.Breadcrumbs[0].Active)
}

func TestContext_IsActive(t *testing.T) {
	tests := []struct {
		active string
		url    string
		want   bool
	}{
		{"/", "/", true},
		{"/services", "/", false},
		{"/portfolio", "/portfolio", true},
		{"/portfolio/item", "/portfolio", true},
		{"/portfolios", "/portfolio", false},
		{"/contact", "/services", false},
	}

	for _, tt := range tests {
		t.Run(tt.active+"->"+tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, NewContext("", tt.active).IsActive(tt.url))
		})
	}
}
