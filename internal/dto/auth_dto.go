package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	Name           string  `json:"name" validate:"required,min=2"`
	Age            int     `json:"age" validate:"required,gte=18,lte=100"`
	Income         float64 `json:"income" validate:"gte=0"`
	EmploymentType string  `json:"employment_type" validate:"required"`
	RiskAppetite   string  `json:"risk_appetite" validate:"required,oneof=Low Medium High"`
	FinancialGoals string  `json:"financial_goals" validate:"required"`
	CreditScore    int     `json:"credit_score" validate:"gte=300,lte=900"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	UserId    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProfileResponse struct {
	UserId         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Income         float64   `json:"income"`
	EmploymentType string    `json:"employment_type"`
	RiskAppetite   string    `json:"risk_appetite"`
	FinancialGoals string    `json:"financial_goals"`
	CreditScore    int       `json:"credit_score"`
	KycVerified    bool      `json:"kyc_verified"`
	QueryCount     int       `json:"query_count"`
}
