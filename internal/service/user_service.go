package service

import (
	"context"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/repository/specification"
	"contentcraft-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User")
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}, nil
}
