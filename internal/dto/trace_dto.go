package dto

import (
	"time"

	"github.com/google/uuid"
)

type TraceResponse struct {
	TraceId        string    `json:"trace_id"`
	UserId         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	Query          string    `json:"query"`
	Answer         string    `json:"answer"`
	Categories     []string  `json:"categories"`
	ProcessingTime float64   `json:"processing_time"`
	CreatedAt      time.Time `json:"created_at"`
}
