package contract

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"
)

type QueryLogRepository interface {
	Create(ctx context.Context, log *entity.QueryLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
