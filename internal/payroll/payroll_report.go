package payroll

import (
	"am-hris/internal/domain"
	"am-hris/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate folds logs into one row per member, keeping the member order.
// Only APPROVED logs with a duration count toward seconds; PENDING logs are
// counted and mark the row INCOMPLETE. Rejected or cancelled logs are ignored.
func Aggregate(members []user.Ref, logs []LogEntry) []ReportRow {
	byUser := make(map[uuid.UUID]*ReportRow, len(members))
	rows := make([]ReportRow, len(members))
	for i, m := range members {
		rows[i] = ReportRow{
			UserID: m.ID.String(),
			Name:   m.Name,
			Email:  m.Email,
		}
		if m.Manager != nil {
			name := m.Manager.Name
			rows[i].ManagerName = &name
		}
		byUser[m.ID] = &rows[i]
	}

	for _, l := range logs {
		row, ok := byUser[l.UserID]
		if !ok {
			continue
		}
		switch l.Status {
		case domain.StatusApproved:
			if l.Duration == nil {
				continue
			}
			row.TotalSeconds += *l.Duration
			if l.IsManual {
				row.ManualSeconds += *l.Duration
			} else {
				row.AutoSeconds += *l.Duration
			}
		case domain.StatusPending:
			row.PendingCount++
		}
	}

	for i := range rows {
		rows[i].TotalHours = Hours(rows[i].TotalSeconds)
		rows[i].Status = StatusReady
		if rows[i].PendingCount > 0 {
			rows[i].Status = StatusIncomplete
		}
	}
	return rows
}

// Hours renders seconds as decimal hours with two places.
func Hours(seconds int64) string {
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600)).StringFixed(2)
}
