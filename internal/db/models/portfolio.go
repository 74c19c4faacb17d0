package models

import "time"

// PortfolioItem is a showcased past project.
type PortfolioItem struct {
	Base
	Title          string      `gorm:"size:200;not null" json:"title"`
	Description    string      `gorm:"type:text" json:"description"`
	ServiceType    ServiceType `gorm:"type:varchar(40);not null;index" json:"service_type"`
	Images         []string    `gorm:"serializer:json" json:"images"`
	Featured       bool        `gorm:"not null;default:false;index" json:"featured"`
	ClientName     string      `gorm:"size:200" json:"client_name,omitempty"`
	CompletionDate *time.Time  `json:"completion_date,omitempty"`
	Location       string      `gorm:"size:200" json:"location,omitempty"`
}
