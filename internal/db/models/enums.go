package models

// UserRole is the role of a profile. The dashboard policy keys off it.
type UserRole string

const (
	RolePotentialClient UserRole = "potential_client"
	RoleExistingClient  UserRole = "existing_client"
	RoleAdmin           UserRole = "admin"
	RoleStaff           UserRole = "staff"
	RolePartner         UserRole = "partner"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RolePotentialClient, RoleExistingClient, RoleAdmin, RoleStaff, RolePartner:
		return true
	}

	return false
}

// IsClient reports whether r is one of the client roles.
func (r UserRole) IsClient() bool {
	return r == RolePotentialClient || r == RoleExistingClient
}

// ServiceType identifies one of the offered services.
type ServiceType string

const (
	ServiceArchitecturalDesign ServiceType = "architectural_design"
	ServiceInteriorDesign      ServiceType = "interior_design"
	ServiceUrbanPlanning       ServiceType = "urban_planning"
	ServiceProjectManagement   ServiceType = "project_management"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectInquiry   ProjectStatus = "inquiry"
	ProjectQuoted    ProjectStatus = "quoted"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// AppointmentStatus is the state of a booked consultation.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// QuoteStatus is the state of a quote request.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// PaymentStatus is the state of a payment.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentMpesa        PaymentMethod = "mpesa"
	PaymentStripe       PaymentMethod = "stripe"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// ContactStatus is the handling state of a contact message.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

// NotificationType is the severity of a dashboard notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)
