package contract

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.FinancialProduct) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FinancialProduct, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SelectRaw executes a read-only SQL statement and returns the
	// result rows as generic maps. Callers are responsible for ensuring
	// the statement is a SELECT.
	SelectRaw(ctx context.Context, query string) ([]map[string]interface{}, error)
}
