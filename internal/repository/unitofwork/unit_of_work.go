package unitofwork

import (
	"context"

	"financegpt-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	OfferRepository() contract.OfferRepository
	QueryLogRepository() contract.QueryLogRepository
	BrochureRepository() contract.BrochureRepository
}
