package contract

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
