package models

import "time"

// Quote is a request for a priced proposal.
type Quote struct {
	Base
	ClientID     string      `gorm:"size:36;index;not null" json:"client_id"`
	ProjectTitle string      `gorm:"size:200;not null" json:"project_title"`
	ServiceType  ServiceType `gorm:"type:varchar(40);not null" json:"service_type"`
	Description  string      `gorm:"type:text" json:"description"`
	BudgetRange  string      `gorm:"size:100" json:"budget_range,omitempty"`
	Timeline     string      `gorm:"size:100" json:"timeline,omitempty"`
	Location     string      `gorm:"size:200" json:"location,omitempty"`
	Status       QuoteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	QuotedAmount *float64    `json:"quoted_amount,omitempty"`
	ValidUntil   *time.Time  `json:"valid_until,omitempty"`
}
