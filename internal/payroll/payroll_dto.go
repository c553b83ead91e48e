package payroll

type ReportRequest struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type ReportRow struct {
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ManagerName   *string `json:"manager_name"`
	TotalSeconds  int64   `json:"total_seconds"`
	AutoSeconds   int64   `json:"auto_seconds"`
	ManualSeconds int64   `json:"manual_seconds"`
	TotalHours    string  `json:"total_hours"`
	PendingCount  int     `json:"pending_count"`
	Status        string  `json:"status"`
}

type ReportResponse struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Rows  []ReportRow `json:"rows"`
}
