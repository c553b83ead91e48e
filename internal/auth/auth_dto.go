package auth

import (
	"time"

	"am-hris/internal/organization"
)

type SetupRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,notblank,max=150"`
	Name             string `json:"name" binding:"required,notblank,max=255"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OnboardingRequest struct {
	Password string `json:"password" binding:"required"`
}

type AccountResponse struct {
	ID                    string `json:"id"`
	OrganizationID        string `json:"organization_id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Role                  string `json:"role"`
	RequirePasswordChange bool   `json:"require_password_change"`
}

type SetupResponse struct {
	Organization organization.OrganizationResponse `json:"organization"`
	Admin        AccountResponse                   `json:"admin"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        AccountResponse `json:"user"`
}
