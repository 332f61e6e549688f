package service

import (
	"context"
	"os"
	"time"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/pkg/logger"
	"contentcraft-be/internal/pkg/mailer"
	"contentcraft-be/internal/repository/specification"
	"contentcraft-be/internal/repository/unitofwork"
	"contentcraft-be/pkg/events"
	pktNats "contentcraft-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperrors.NewStorage(err)
	}

	// Welcome mail and domain event are auxiliary; registration already
	// succeeded at this point.
	if err := s.emailService.SendWelcome(user.Email, user.FullName); err != nil {
		s.logger.Warn("auth", "Failed to send welcome mail", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "USER_REGISTERED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("auth", "Failed to publish USER_REGISTERED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.RegisterResponse{
		Id: user.Id,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if user == nil {
		return nil, apperrors.NewUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid email or password")
	}

	token, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User: dto.UserResponse{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
