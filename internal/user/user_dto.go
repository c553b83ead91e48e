package user

import (
	"time"

	"am-hris/internal/leavebalance"
	"am-hris/internal/workday"
)

type AddStaffRequest struct {
	Name             string  `json:"name" binding:"required,min=2"`
	Email            string  `json:"email" binding:"required,email"`
	Role             string  `json:"role" binding:"required,oneof=ADMIN LEADER EMPLOYEE"`
	ManagerID        *string `json:"manager_id" binding:"omitempty,uuid"`
	Position         string  `json:"position"`
	PhoneNumber      string  `json:"phone_number"`
	Address          string  `json:"address"`
	DateOfBirth      *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	DateHired        *string `json:"date_hired" binding:"omitempty,datetime=2006-01-02"`
	RegularWorkHours *string `json:"regular_work_hours"`
}

// UpdateStaffRequest replaces the editable profile. A nil or empty ManagerID
// clears the manager. Balance fields, when present, overwrite that balance.
type UpdateStaffRequest struct {
	Name             string  `json:"name" binding:"required,min=2"`
	Role             string  `json:"role" binding:"required,oneof=ADMIN LEADER EMPLOYEE"`
	ManagerID        *string `json:"manager_id"`
	Position         string  `json:"position"`
	PhoneNumber      string  `json:"phone_number"`
	Address          string  `json:"address"`
	DateOfBirth      *string `json:"date_of_birth"`
	DateHired        *string `json:"date_hired"`
	RegularWorkHours *string `json:"regular_work_hours"`
	VacationBalance  *string `json:"vacation_balance"`
	SickBalance      *string `json:"sick_balance"`
	EarnedBalance    *string `json:"earned_balance"`
}

type StaffResponse struct {
	ID                    string  `json:"id"`
	OrganizationID        string  `json:"organization_id"`
	ManagerID             *string `json:"manager_id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Role                  string  `json:"role"`
	RequirePasswordChange bool    `json:"require_password_change"`
	Position              string  `json:"position,omitempty"`
	PhoneNumber           string  `json:"phone_number,omitempty"`
	Address               string  `json:"address,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	DateHired             *string `json:"date_hired,omitempty"`
	RegularWorkHours      string  `json:"regular_work_hours"`
	JoinedAt              string  `json:"joined_at"`
}

type AddStaffResponse struct {
	Staff        StaffResponse `json:"staff"`
	TempPassword string        `json:"temp_password"`
}

type ManagerOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ManagerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	StaffResponse
	Manager  *ManagerSummary                `json:"manager"`
	Balances []leavebalance.BalanceResponse `json:"leave_balances"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(workday.DateLayout)
	return &s
}

func mapToResponse(u User) StaffResponse {
	resp := StaffResponse{
		ID:                    u.ID.String(),
		OrganizationID:        u.OrganizationID.String(),
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  string(u.Role),
		RequirePasswordChange: u.RequirePasswordChange,
		Position:              u.Position,
		PhoneNumber:           u.PhoneNumber,
		Address:               u.Address,
		DateOfBirth:           formatDate(u.DateOfBirth),
		DateHired:             formatDate(u.DateHired),
		RegularWorkHours:      u.RegularWorkHours.StringFixed(2),
		JoinedAt:              u.JoinedAt.Format(time.RFC3339),
	}
	if u.ManagerID != nil {
		id := u.ManagerID.String()
		resp.ManagerID = &id
	}
	return resp
}

func mapToListResponse(users []User) []StaffResponse {
	out := make([]StaffResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapToResponse(u))
	}
	return out
}
