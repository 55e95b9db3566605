package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueryLog is the durable audit record for one completed request. Written
// exactly once per request that produced a full answer, never for failures.
type QueryLog struct {
	Id             uuid.UUID
	TraceId        string
	UserId         uuid.UUID
	UserName       string
	Query          string
	Answer         string
	Categories     []string
	ProcessingTime float64
	CreatedAt      time.Time
}
