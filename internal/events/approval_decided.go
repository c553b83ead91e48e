package events

import "time"

const ApprovalDecidedTopic = "hris.approval.decided.v1"

const EventTypeApprovalDecided = "approval_decided"

// ApprovalDecidedEvent is emitted once per approve or reject that committed.
type ApprovalDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	Kind           string    `json:"kind"`
	ReferenceID    string    `json:"reference_id"`
	Decision       string    `json:"decision"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	DecidedBy      string    `json:"decided_by"`
	LogsCreated    int       `json:"logs_created,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
