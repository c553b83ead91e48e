package events

import "time"

const LeaveRequestedTopic = "hris.leave.requested.v1"

const EventTypeLeaveRequested = "leave_requested"

type LeaveRequestedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	NetDays        string    `json:"net_days"`
	OccurredAt     time.Time `json:"occurred_at"`
}
