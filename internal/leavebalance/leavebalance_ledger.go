package leavebalance

import (
	"am-hris/internal/domain"
	leavebalanceerrors "am-hris/internal/leavebalance/errors"

	"github.com/shopspring/decimal"
)

// Shortfall is attached to ErrInsufficientBalance as details.
type Shortfall struct {
	Type      domain.LeaveType `json:"type"`
	Required  string           `json:"required"`
	Available string           `json:"available"`
	Shortfall string           `json:"shortfall"`
}

// EnsureSufficient is the floor check run before any decrement. A missing
// balance row is never sufficient and reports zero available, so a nil error
// always means there is a row to decrement.
func EnsureSufficient(b *LeaveBalance, leaveType domain.LeaveType, days decimal.Decimal) error {
	available := decimal.Zero
	if b != nil {
		if b.Balance.GreaterThanOrEqual(days) {
			return nil
		}
		available = b.Balance
	}
	return leavebalanceerrors.ErrInsufficientBalance.WithDetails(Shortfall{
		Type:      leaveType,
		Required:  days.StringFixed(2),
		Available: available.StringFixed(2),
		Shortfall: days.Sub(available).StringFixed(2),
	})
}
