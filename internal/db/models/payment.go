package models

// Payment is a payment against a project.
type Payment struct {
	Base
	ProjectID     string        `gorm:"size:36;index;not null" json:"project_id"`
	ClientID      string        `gorm:"size:36;index;not null" json:"client_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Currency      string        `gorm:"size:3;not null;default:'KES'" json:"currency"`
	Method        PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID string        `gorm:"size:100" json:"transaction_id,omitempty"`
	MpesaReceipt  string        `gorm:"size:100" json:"mpesa_receipt,omitempty"`
}
