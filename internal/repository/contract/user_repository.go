package contract

import (
	"context"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	IncrementQueryCount(ctx context.Context, userId uuid.UUID) error

	CreateProfile(ctx context.Context, profile *entity.UserProfile) error
	FindProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}
