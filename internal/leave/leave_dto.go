package leave

import (
	"time"

	"am-hris/internal/workday"
)

type CreateLeaveRequest struct {
	Type      string  `json:"type" binding:"required,oneof=VACATION SICK EARNED"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    *string `json:"reason" binding:"omitempty,max=1000"`
}

type LeaveResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Type        string     `json:"type"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	NetDays     string     `json:"net_days"`
	Reason      *string    `json:"reason"`
	Status      string     `json:"status"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func MapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID.String(),
		UserID:      l.UserID.String(),
		Type:        string(l.Type),
		StartDate:   l.StartDate.Format(workday.DateLayout),
		EndDate:     l.EndDate.Format(workday.DateLayout),
		NetDays:     l.NetDays.StringFixed(1),
		Reason:      l.Reason,
		Status:      string(l.Status),
		ProcessedAt: l.ProcessedAt,
		CreatedAt:   l.CreatedAt,
	}
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, MapToResponse(l))
	}
	return resp
}
