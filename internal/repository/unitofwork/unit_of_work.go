package unitofwork

import (
	"context"

	"contentcraft-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContentRepository() contract.ContentRepository
	SystemLogRepository() contract.SystemLogRepository
}
