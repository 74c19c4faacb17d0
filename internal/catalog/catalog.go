// Package catalog holds the company facts and fixed option lists shown on the site.
package catalog

import (
	"slices"
	"strconv"

	"github.com/designspec/designspec-web/internal/db/models"
)

// Company facts.
const (
	AppName            = "DesignSpec Ltd"
	AppMotto           = "Consulting with confidence, trust and excellence"
	CompanyEstablished = 2010
)

// Service is one offered service with its feature list.
type Service struct {
	ID          models.ServiceType `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	Features    []string           `json:"features"`
}

// Services lists the offered services in display order.
var Services = []Service{
	{
		ID:          models.ServiceArchitecturalDesign,
		Name:        "Architectural Design",
		Description: "Innovative and sustainable architectural solutions tailored to your vision",
		Icon:        "Building2",
		Features: []string{
			"Conceptual Design",
			"Technical Drawings",
			"3D Visualization",
			"Building Permits",
			"Construction Documentation",
		},
	},
	{
		ID:          models.ServiceInteriorDesign,
		Name:        "Interior Design",
		Description: "Transform spaces into functional and aesthetically pleasing environments",
		Icon:        "Sofa",
		Features: []string{
			"Space Planning",
			"Color Consultation",
			"Furniture Selection",
			"Lighting Design",
			"Material Specification",
		},
	},
	{
		ID:          models.ServiceUrbanPlanning,
		Name:        "Urban Planning",
		Description: "Strategic planning for sustainable and livable urban developments",
		Icon:        "Map",
		Features: []string{
			"Master Planning",
			"Land Use Planning",
			"Environmental Impact",
			"Infrastructure Design",
			"Community Engagement",
		},
	},
	{
		ID:          models.ServiceProjectManagement,
		Name:        "Project Management",
		Description: "Expert oversight ensuring projects are delivered on time and within budget",
		Icon:        "ClipboardCheck",
		Features: []string{
			"Project Scheduling",
			"Budget Management",
			"Quality Control",
			"Risk Management",
			"Stakeholder Coordination",
		},
	},
}

// ServiceByID returns the service with the given id.
func ServiceByID(id models.ServiceType) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}

	return Service{}, false
}

// Routes of the site.
const (
	RouteHome           = "/"
	RouteServices       = "/services"
	RoutePortfolio      = "/portfolio"
	RouteContact        = "/contact"
	RouteLogin          = "/login"
	RouteLogout         = "/logout"
	RouteRegister       = "/register"
	RouteForgotPassword = "/forgot-password"
	RouteDashboard      = "/dashboard"
	RouteClient         = "/dashboard/client"
	RouteAdmin          = "/dashboard/admin"
	RouteStaff          = "/dashboard/staff"
	RoutePartner        = "/dashboard/partner"
	RouteOnboarding     = "/onboarding"
)

// DashboardRoute returns the dashboard a role lands on.
func DashboardRoute(role models.UserRole) string {
	switch role {
	case models.RoleAdmin:
		return RouteAdmin
	case models.RoleStaff:
		return RouteStaff
	case models.RolePartner:
		return RoutePartner
	default:
		return RouteClient
	}
}

// ProjectStatusLabels maps project states to display labels.
var ProjectStatusLabels = map[models.ProjectStatus]string{
	models.ProjectInquiry:   "Inquiry",
	models.ProjectQuoted:    "Quoted",
	models.ProjectActive:    "Active",
	models.ProjectOnHold:    "On Hold",
	models.ProjectCompleted: "Completed",
	models.ProjectCancelled: "Cancelled",
}

// AppointmentStatusLabels maps appointment states to display labels.
var AppointmentStatusLabels = map[models.AppointmentStatus]string{
	models.AppointmentPending:   "Pending",
	models.AppointmentConfirmed: "Confirmed",
	models.AppointmentCompleted: "Completed",
	models.AppointmentCancelled: "Cancelled",
}

// PaymentStatusLabels maps payment states to display labels.
var PaymentStatusLabels = map[models.PaymentStatus]string{
	models.PaymentPending:    "Pending",
	models.PaymentProcessing: "Processing",
	models.PaymentCompleted:  "Completed",
	models.PaymentFailed:     "Failed",
	models.PaymentRefunded:   "Refunded",
}

// BudgetRanges are the selectable budget brackets.
var BudgetRanges = []string{
	"Under KES 500,000",
	"KES 500,000 - 1,000,000",
	"KES 1,000,000 - 2,500,000",
	"KES 2,500,000 - 5,000,000",
	"KES 5,000,000 - 10,000,000",
	"Above KES 10,000,000",
}

// TimelineOptions are the selectable project timelines.
var TimelineOptions = []string{
	"Less than 1 month",
	"1-3 months",
	"3-6 months",
	"6-12 months",
	"More than 1 year",
}

// AppointmentTimeSlots are the bookable consultation slots.
var AppointmentTimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// IsBudgetRange reports whether s is one of BudgetRanges.
func IsBudgetRange(s string) bool { return slices.Contains(BudgetRanges, s) }

// IsTimeline reports whether s is one of TimelineOptions.
func IsTimeline(s string) bool { return slices.Contains(TimelineOptions, s) }

// IsTimeSlot reports whether s is one of AppointmentTimeSlots.
func IsTimeSlot(s string) bool { return slices.Contains(AppointmentTimeSlots, s) }

// ContactInfo is the firm's public contact data.
var ContactInfo = struct {
	Email        string
	Phone        string
	Address      string
	WorkingHours string
}{
	Email:        "info@designspec.co.ke",
	Phone:        "+254 700 000 000",
	Address:      "Nairobi, Kenya",
	WorkingHours: "Monday - Friday: 9:00 AM - 5:00 PM",
}

// SocialLink is a social media profile.
type SocialLink struct {
	Name string
	URL  string
}

// SocialLinks in footer order.
var SocialLinks = []SocialLink{
	{Name: "Facebook", URL: "https://facebook.com/designspec"},
	{Name: "Twitter", URL: "https://twitter.com/designspec"},
	{Name: "Instagram", URL: "https://instagram.com/designspec"},
	{Name: "LinkedIn", URL: "https://linkedin.com/company/designspec"},
}

// Pagination limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Upload limits.
const MaxFileSize = 10 * 1024 * 1024

// AllowedImageTypes for portfolio and avatar uploads.
var AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// AllowedDocumentTypes for project documents.
var AllowedDocumentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Stat is one figure of the stats section.
type Stat struct {
	Value string
	Label string
}

// Stats returns the figures of the landing page stats section for the given year.
func Stats(year int, completedProjects int64) []Stat {
	return []Stat{
		{Value: strconv.Itoa(year-CompanyEstablished) + "+", Label: "Years of Experience"},
		{Value: strconv.FormatInt(completedProjects, 10) + "+", Label: "Projects Completed"},
		{Value: strconv.Itoa(len(Services)), Label: "Core Services"},
		{Value: "100%", Label: "Client Commitment"},
	}
}
