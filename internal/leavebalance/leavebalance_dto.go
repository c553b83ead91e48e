package leavebalance

type SetBalanceRequest struct {
	Balance string `json:"balance" binding:"required,decimal"`
}

type BalanceResponse struct {
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		Type:    string(b.Type),
		Balance: b.Balance.StringFixed(2),
	}
}

func MapToListResponse(balances []LeaveBalance) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, mapToResponse(b))
	}
	return out
}
