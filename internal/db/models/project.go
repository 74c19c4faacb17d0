package models

import "time"

// Project is a client engagement.
type Project struct {
	Base
	ClientID           string        `gorm:"size:36;index;not null" json:"client_id"`
	Title              string        `gorm:"size:200;not null" json:"title"`
	Description        string        `gorm:"type:text" json:"description"`
	ServiceType        ServiceType   `gorm:"type:varchar(40);not null" json:"service_type"`
	Status             ProjectStatus `gorm:"type:varchar(20);not null;default:'inquiry'" json:"status"`
	BudgetRange        string        `gorm:"size:100" json:"budget_range,omitempty"`
	StartDate          *time.Time    `json:"start_date,omitempty"`
	EndDate            *time.Time    `json:"end_date,omitempty"`
	AssignedStaffID    string        `gorm:"size:36;index" json:"assigned_staff_id,omitempty"`
	ProgressPercentage int           `gorm:"not null;default:0" json:"progress_percentage"`
}
