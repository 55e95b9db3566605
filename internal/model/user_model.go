package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	IsActive     bool      `gorm:"default:true"`
	QueryCount   int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserProfile struct {
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Age            int       `gorm:"not null"`
	Income         float64   `gorm:"type:numeric(12,2);not null"`
	EmploymentType string    `gorm:"type:varchar(50);not null"`
	RiskAppetite   string    `gorm:"type:varchar(50);not null"`
	FinancialGoals string    `gorm:"type:varchar(255);not null"`
	CreditScore    int       `gorm:"not null"`
	KycVerified    bool      `gorm:"default:false"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
