package models

// APIResponse wraps every JSON API answer.
type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// PaginatedResponse is a page of records.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// DashboardStats are the counters on top of a dashboard.
type DashboardStats struct {
	TotalProjects        int64    `json:"total_projects"`
	ActiveProjects       int64    `json:"active_projects"`
	CompletedProjects    int64    `json:"completed_projects"`
	PendingQuotes        int64    `json:"pending_quotes"`
	UpcomingAppointments int64    `json:"upcoming_appointments"`
	TotalRevenue         *float64 `json:"total_revenue,omitempty"`
	MonthlyRevenue       *float64 `json:"monthly_revenue,omitempty"`
}
