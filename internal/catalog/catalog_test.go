package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designspec/designspec-web/internal/db/models"
)

func TestServiceByID(t *testing.T) {
	s, ok := ServiceByID(models.ServiceUrbanPlanning)
	assert.True(t, ok)
	assert.Equal(t, "Urban Planning", s.Name)
	assert.Len(t, s.Features, 5)

	_, ok = ServiceByID("landscaping")
	assert.False(t, ok)
}

func TestDashboardRoute(t *testing.T) {
	assert.Equal(t, RouteAdmin, DashboardRoute(models.RoleAdmin))
	assert.Equal(t, RouteStaff, DashboardRoute(models.RoleStaff))
	assert.Equal(t, RoutePartner, DashboardRoute(models.RolePartner))
	assert.Equal(t, RouteClient, DashboardRoute(models.RoleExistingClient))
	assert.Equal(t, RouteClient, DashboardRoute(models.RolePotentialClient))
}

func TestOptionLists(t *testing.T) {
	assert.True(t, IsBudgetRange("Above KES 10,000,000"))
	assert.False(t, IsBudgetRange("free"))
	assert.True(t, IsTimeline("1-3 months"))
	assert.True(t, IsTimeSlot("09:00 AM"))
	assert.False(t, IsTimeSlot("08:00 AM"))
}

func TestStats(t *testing.T) {
	stats := Stats(2026, 150)

	assert.Len(t, stats, 4)
	assert.Equal(t, "16+", stats[0].Value)
	assert.Equal(t, "150+", stats[1].Value)
	assert.Equal(t, "4", stats[2].Value)
}
