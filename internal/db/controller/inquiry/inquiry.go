// Package inquiry stores the public forms: contact messages, quote requests and bookings.
package inquiry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/db/controller/profile"
	"github.com/designspec/designspec-web/internal/db/models"
)

// DateLayout is the layout of AppointmentBookingForm.PreferredDate.
const DateLayout = "2006-01-02"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrDateInPast is returned for bookings before today.
	ErrDateInPast = errors.New("preferred date is in the past")
)

// SaveContact stores a contact message.
func SaveContact(db *gorm.DB, form *models.ContactForm) (*models.ContactMessage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
		Status:  models.ContactNew,
	}

	if err := db.Create(msg).Error; err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	return msg, nil
}

// RequestQuote stores a quote request, creating a potential client profile for the email if needed.
func RequestQuote(db *gorm.DB, form *models.QuoteRequestForm) (*models.Quote, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var quote *models.Quote

	err := db.Transaction(func(tx *gorm.DB) error {
		client, err := profile.EnsureInquirer(tx, form.Email, form.FullName, form.Phone, form.CompanyName)
		if err != nil {
			return err
		}

		quote = &models.Quote{
			ClientID:     client.ID,
			ProjectTitle: form.ProjectTitle,
			ServiceType:  form.ServiceType,
			Description:  form.Description,
			BudgetRange:  form.BudgetRange,
			Timeline:     form.Timeline,
			Location:     form.Location,
			Status:       models.QuotePending,
		}

		if err = tx.Create(quote).Error; err != nil {
			return err //nolint:wrapcheck
		}

		return record(tx, client.ID, "quote_requested", "quote", quote.ID, map[string]interface{}{
			"service_type": form.ServiceType,
			"title":        form.ProjectTitle,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("request quote: %w", err)
	}

	return quote, nil
}

// BookAppointment stores a consultation booking. now decides which dates are in the past.
func BookAppointment(db *gorm.DB, form *models.AppointmentBookingForm, now time.Time) (*models.Appointment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	date, err := time.ParseInLocation(DateLayout, form.PreferredDate, now.Location())
	if err != nil {
		return nil, fmt.Errorf("parse preferred date: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	var appt *models.Appointment

	err = db.Transaction(func(tx *gorm.DB) error {
		client, err := profile.EnsureInquirer(tx, form.Email, form.FullName, form.Phone, "")
		if err != nil {
			return err
		}

		appt = &models.Appointment{
			ClientID:      client.ID,
			ServiceType:   form.ServiceType,
			PreferredDate: date,
			PreferredTime: form.PreferredTime,
			Status:        models.AppointmentPending,
			Notes:         form.Notes,
		}

		if err = tx.Create(appt).Error; err != nil {
			return err //nolint:wrapcheck
		}

		return record(tx, client.ID, "appointment_booked", "appointment", appt.ID, map[string]interface{}{
			"date": form.PreferredDate,
			"time": form.PreferredTime,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	return appt, nil
}

func record(tx *gorm.DB, userID, action, entityType, entityID string, details map[string]interface{}) error {
	return tx.Create(&models.ActivityLog{ //nolint:wrapcheck
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}).Error
}
