package timelog

import (
	"time"
)

type ManualEntryRequest struct {
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Type      string  `json:"type" binding:"omitempty,oneof=WORK"`
	Notes     *string `json:"notes" binding:"omitempty,max=500"`
}

type TimeLogResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    *int64     `json:"duration"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	IsManual    bool       `json:"is_manual"`
	Notes       *string    `json:"notes,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type LiveEntryResponse struct {
	TimeLogResponse
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	ManagerName *string `json:"manager_name"`
}

type StatsResponse struct {
	PeriodStart        time.Time `json:"period_start"`
	TotalSeconds       int64     `json:"total_seconds"`
	PendingCorrections int64     `json:"pending_corrections"`
}

func MapToResponse(t TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Duration:    t.Duration,
		Type:        string(t.Type),
		Status:      string(t.Status),
		IsManual:    t.IsManual,
		Notes:       t.Notes,
		ProcessedAt: t.ProcessedAt,
	}
}

func mapToListResponse(logs []TimeLog) []TimeLogResponse {
	resp := make([]TimeLogResponse, 0, len(logs))
	for _, t := range logs {
		resp = append(resp, MapToResponse(t))
	}
	return resp
}

func mapToLiveResponse(logs []TimeLog) []LiveEntryResponse {
	resp := make([]LiveEntryResponse, 0, len(logs))
	for _, t := range logs {
		entry := LiveEntryResponse{TimeLogResponse: MapToResponse(t)}
		if t.User != nil {
			entry.UserName = t.User.Name
			entry.UserEmail = t.User.Email
			if t.User.Manager != nil {
				name := t.User.Manager.Name
				entry.ManagerName = &name
			}
		}
		resp = append(resp, entry)
	}
	return resp
}
