package contract

import (
	"context"

	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	Update(ctx context.Context, content *entity.Content) error
	// Delete is a hard delete; the record is unrecoverable afterwards.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Content, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Content, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
