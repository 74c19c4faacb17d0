package models

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	Base
	Name    string        `gorm:"size:200;not null" json:"name"`
	Email   string        `gorm:"size:255;not null" json:"email"`
	Phone   string        `gorm:"size:50" json:"phone,omitempty"`
	Subject string        `gorm:"size:200;not null" json:"subject"`
	Message string        `gorm:"type:text;not null" json:"message"`
	Status  ContactStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
}
