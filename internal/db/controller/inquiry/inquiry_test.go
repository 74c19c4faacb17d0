package inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designspec/designspec-web/internal/db/dbtest"
	"github.com/designspec/designspec-web/internal/db/models"
)

func TestSaveContact(t *testing.T) {
	db := dbtest.Open(t)

	msg, err := SaveContact(db, &models.ContactForm{
		Name:    " Mary ",
		Email:   "Mary@Example.com",
		Subject: "Extension",
		Message: "We want to extend our house.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mary", msg.Name)
	assert.Equal(t, "mary@example.com", msg.Email)
	assert.Equal(t, models.ContactNew, msg.Status)

	_, err = SaveContact(nil, &models.ContactForm{})
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestRequestQuote(t *testing.T) {
	db := dbtest.Open(t)

	form := &models.QuoteRequestForm{
		FullName:     "Otieno",
		Email:        "otieno@example.com",
		Phone:        "0722000000",
		ServiceType:  models.ServiceInteriorDesign,
		ProjectTitle: "Office fit-out",
		Description:  "Two floors of open plan offices.",
	}

	q1, err := RequestQuote(db, form)
	require.NoError(t, err)
	q2, err := RequestQuote(db, form)
	require.NoError(t, err)

	assert.Equal(t, q1.ClientID, q2.ClientID)
	assert.Equal(t, models.QuotePending, q1.Status)

	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)

	var logs []models.ActivityLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "quote_requested", logs[0].Action)
	assert.Equal(t, "Office fit-out", logs[0].Details["title"])
}

func TestBookAppointment(t *testing.T) {
	db := dbtest.Open(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	form := &models.AppointmentBookingForm{
		FullName:      "Aisha",
		Email:         "aisha@example.com",
		Phone:         "0733000000",
		ServiceType:   models.ServiceArchitecturalDesign,
		PreferredDate: "2026-03-10",
		PreferredTime: "10:00 AM",
	}

	appt, err := BookAppointment(db, form, now)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, 10, appt.PreferredDate.Day())

	form.PreferredDate = "2026-03-09"
	_, err = BookAppointment(db, form, now)
	assert.ErrorIs(t, err, ErrDateInPast)

	form.PreferredDate = "tomorrow"
	_, err = BookAppointment(db, form, now)
	assert.Error(t, err)
}
