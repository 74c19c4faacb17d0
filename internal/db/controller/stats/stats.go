// Package stats computes dashboard counters.
package stats

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProfileNil is returned when stats are requested without a profile.
	ErrProfileNil = errors.New("profile is nil")
)

// ForProfile returns the dashboard counters visible to p.
// Clients see their own records, staff and partners what is assigned to them,
// admins see everything plus revenue.
func ForProfile(db *gorm.DB, p *models.Profile, now time.Time) (models.DashboardStats, error) {
	var out models.DashboardStats

	if db == nil {
		return out, ErrDBNil
	}

	if p == nil {
		return out, ErrProfileNil
	}

	projects := func() *gorm.DB {
		q := db.Model(&models.Project{})

		switch {
		case p.Role.IsClient():
			q = q.Where("client_id = ?", p.ID)
		case p.Role == models.RoleStaff, p.Role == models.RolePartner:
			q = q.Where("assigned_staff_id = ?", p.ID)
		}

		return q
	}

	quotes := db.Model(&models.Quote{}).Where("status = ?", models.QuotePending)
	appointments := db.Model(&models.Appointment{}).
		Where("status IN ?", []models.AppointmentStatus{models.AppointmentPending, models.AppointmentConfirmed}).
		Where("preferred_date >= ?", startOfDay(now))

	switch {
	case p.Role.IsClient():
		quotes = quotes.Where("client_id = ?", p.ID)
		appointments = appointments.Where("client_id = ?", p.ID)
	case p.Role == models.RoleStaff:
		appointments = appointments.Where("staff_id = ?", p.ID)
	case p.Role == models.RolePartner:
		quotes = quotes.Where("1 = 0")
		appointments = appointments.Where("staff_id = ?", p.ID)
	}

	counters := []struct {
		name string
		q    *gorm.DB
		dst  *int64
	}{
		{"projects", projects(), &out.TotalProjects},
		{"active projects", projects().Where("status = ?", models.ProjectActive), &out.ActiveProjects},
		{"completed projects", projects().Where("status = ?", models.ProjectCompleted), &out.CompletedProjects},
		{"pending quotes", quotes, &out.PendingQuotes},
		{"upcoming appointments", appointments, &out.UpcomingAppointments},
	}

	for _, c := range counters {
		if err := c.q.Count(c.dst).Error; err != nil {
			return out, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	if p.Role != models.RoleAdmin {
		return out, nil
	}

	total, err := revenue(db, time.Time{})
	if err != nil {
		return out, err
	}

	monthly, err := revenue(db, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	if err != nil {
		return out, err
	}

	out.TotalRevenue = &total
	out.MonthlyRevenue = &monthly

	return out, nil
}

// CompletedProjects counts all completed projects.
func CompletedProjects(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64

	err := db.Model(&models.Project{}).Where("status = ?", models.ProjectCompleted).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count completed projects: %w", err)
	}

	return n, nil
}

func revenue(db *gorm.DB, since time.Time) (float64, error) {
	var sum float64

	q := db.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}

	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}

	return sum, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
