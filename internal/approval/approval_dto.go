package approval

import (
	"time"

	"am-hris/internal/correction"
	"am-hris/internal/leave"
	"am-hris/internal/timelog"
	"am-hris/internal/user"
)

// PendingItem is the unified row of the approvals inbox. Fields that do not
// apply to a kind are omitted.
type PendingItem struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	TimeLog            *timelog.TimeLogResponse `json:"time_log,omitempty"`
	RequestedStartTime *time.Time               `json:"requested_start_time,omitempty"`
	RequestedEndTime   *time.Time               `json:"requested_end_time,omitempty"`

	Leave *leave.LeaveResponse `json:"leave,omitempty"`
}

type DecisionResponse struct {
	ID            string  `json:"id"`
	Kind          Kind    `json:"kind"`
	Status        string  `json:"status"`
	BalanceBefore *string `json:"balance_before,omitempty"`
	BalanceAfter  *string `json:"balance_after,omitempty"`
	LogsCreated   int     `json:"logs_created,omitempty"`
}

func withUser(item *PendingItem, u *user.Ref) {
	if u == nil {
		return
	}
	item.UserName = u.Name
	item.UserEmail = u.Email
}

func fromCorrection(c correction.TimeCorrection) PendingItem {
	reason := c.Reason
	item := PendingItem{
		ID:                 c.ID.String(),
		Kind:               KindCorrection,
		Reason:             &reason,
		CreatedAt:          c.CreatedAt,
		RequestedStartTime: c.RequestedStartTime,
		RequestedEndTime:   c.RequestedEndTime,
	}
	if c.TimeLog != nil {
		logResp := timelog.MapToResponse(*c.TimeLog)
		item.TimeLog = &logResp
		item.UserID = logResp.UserID
		withUser(&item, c.TimeLog.User)
	}
	return item
}

func fromManualEntry(t timelog.TimeLog) PendingItem {
	logResp := timelog.MapToResponse(t)
	item := PendingItem{
		ID:        t.ID.String(),
		Kind:      KindManualEntry,
		UserID:    logResp.UserID,
		Reason:    t.Notes,
		CreatedAt: t.CreatedAt,
		TimeLog:   &logResp,
	}
	withUser(&item, t.User)
	return item
}

func fromLeave(l leave.LeaveRequest) PendingItem {
	leaveResp := leave.MapToResponse(l)
	item := PendingItem{
		ID:        leaveResp.ID,
		Kind:      KindLeaveRequest,
		UserID:    leaveResp.UserID,
		Reason:    l.Reason,
		CreatedAt: l.CreatedAt,
		Leave:     &leaveResp,
	}
	withUser(&item, l.User)
	return item
}
