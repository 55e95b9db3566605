package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	QueryCount   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile holds the financial profile captured at registration. It is
// rendered into the synthesis prompt, so every field is required.
type UserProfile struct {
	UserId         uuid.UUID
	Name           string
	Age            int
	Income         float64
	EmploymentType string
	RiskAppetite   string
	FinancialGoals string
	CreditScore    int
	KycVerified    bool
}
