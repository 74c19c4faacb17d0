package models

// QuoteRequestForm is the public quote request.
type QuoteRequestForm struct {
	FullName     string      `json:"full_name" form:"full_name" validate:"required,min=2,max=200"`
	Email        string      `json:"email" form:"email" validate:"required,email"`
	Phone        string      `json:"phone" form:"phone" validate:"required,min=7,max=50"`
	CompanyName  string      `json:"company_name" form:"company_name" validate:"omitempty,max=200"`
	ServiceType  ServiceType `json:"service_type" form:"service_type" validate:"required,service_type"`
	ProjectTitle string      `json:"project_title" form:"project_title" validate:"required,max=200"`
	Description  string      `json:"description" form:"description" validate:"required,min=10"`
	BudgetRange  string      `json:"budget_range" form:"budget_range" validate:"omitempty,budget_range"`
	Timeline     string      `json:"timeline" form:"timeline" validate:"omitempty,timeline"`
	Location     string      `json:"location" form:"location" validate:"omitempty,max=200"`
}

// AppointmentBookingForm is the public consultation booking.
type AppointmentBookingForm struct {
	FullName      string      `json:"full_name" form:"full_name" validate:"required,min=2,max=200"`
	Email         string      `json:"email" form:"email" validate:"required,email"`
	Phone         string      `json:"phone" form:"phone" validate:"required,min=7,max=50"`
	ServiceType   ServiceType `json:"service_type" form:"service_type" validate:"required,service_type"`
	PreferredDate string      `json:"preferred_date" form:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string      `json:"preferred_time" form:"preferred_time" validate:"required,time_slot"`
	Notes         string      `json:"notes" form:"notes" validate:"omitempty,max=2000"`
}

// ContactForm is the public contact form.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}
