package payroll_test

import (
	"testing"

	"am-hris/internal/domain"
	"am-hris/internal/payroll"
	"am-hris/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seconds(v int64) *int64 { return &v }

func TestAggregate(t *testing.T) {
	lead := &user.Ref{ID: uuid.New(), Name: "Lena"}
	alice := user.Ref{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Manager: lead}
	bob := user.Ref{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}

	logs := []payroll.LogEntry{
		{UserID: alice.ID, Duration: seconds(3600), Status: domain.StatusApproved},
		{UserID: alice.ID, Duration: seconds(1800), Status: domain.StatusApproved, IsManual: true},
		{UserID: alice.ID, Duration: seconds(900), Status: domain.StatusRejected, IsManual: true},
		{UserID: alice.ID, Status: domain.StatusApproved},
		{UserID: bob.ID, Duration: seconds(7200), Status: domain.StatusApproved},
		{UserID: bob.ID, Duration: seconds(600), Status: domain.StatusPending, IsManual: true},
		{UserID: uuid.New(), Duration: seconds(99), Status: domain.StatusApproved},
	}

	rows := payroll.Aggregate([]user.Ref{alice, bob}, logs)

	require.Len(t, rows, 2)

	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, int64(5400), rows[0].TotalSeconds)
	assert.Equal(t, int64(3600), rows[0].AutoSeconds)
	assert.Equal(t, int64(1800), rows[0].ManualSeconds)
	assert.Equal(t, "1.50", rows[0].TotalHours)
	assert.Equal(t, 0, rows[0].PendingCount)
	assert.Equal(t, payroll.StatusReady, rows[0].Status)
	require.NotNil(t, rows[0].ManagerName)
	assert.Equal(t, "Lena", *rows[0].ManagerName)

	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, int64(7200), rows[1].TotalSeconds)
	assert.Equal(t, int64(0), rows[1].ManualSeconds)
	assert.Equal(t, 1, rows[1].PendingCount)
	assert.Equal(t, payroll.StatusIncomplete, rows[1].Status)
	assert.Nil(t, rows[1].ManagerName)
}

func TestAggregate_MemberWithoutLogs(t *testing.T) {
	rows := payroll.Aggregate([]user.Ref{{ID: uuid.New(), Name: "Zed"}}, nil)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].TotalSeconds)
	assert.Equal(t, "0.00", rows[0].TotalHours)
	assert.Equal(t, payroll.StatusReady, rows[0].Status)
}

func TestHours(t *testing.T) {
	assert.Equal(t, "8.00", payroll.Hours(28800))
	assert.Equal(t, "0.33", payroll.Hours(1200))
}
