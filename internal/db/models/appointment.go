package models

import "time"

// Appointment is a consultation booking.
type Appointment struct {
	Base
	ClientID      string            `gorm:"size:36;index;not null" json:"client_id"`
	ServiceType   ServiceType       `gorm:"type:varchar(40);not null" json:"service_type"`
	PreferredDate time.Time         `gorm:"not null" json:"preferred_date"`
	PreferredTime string            `gorm:"size:20;not null" json:"preferred_time"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	MeetingLink   string            `gorm:"size:500" json:"meeting_link,omitempty"`
	StaffID       string            `gorm:"size:36;index" json:"staff_id,omitempty"`
}
