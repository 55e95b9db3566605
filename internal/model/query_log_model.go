package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QueryLog struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TraceId        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserName       string         `gorm:"type:varchar(255);not null"`
	Query          string         `gorm:"type:text;not null"`
	Answer         string         `gorm:"type:text;not null"`
	Categories     datatypes.JSON `gorm:"type:jsonb"`
	ProcessingTime float64        `gorm:"type:numeric(8,3);not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
}

func (QueryLog) TableName() string {
	return "query_logs"
}
