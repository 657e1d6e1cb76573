package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arkagme/meeting-room-api/internal/domain"
	userDomain "github.com/arkagme/meeting-room-api/internal/domain/user"
	"github.com/arkagme/meeting-room-api/internal/events"
)

// LoginRequest holds the credentials-free login payload.
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UserDTO is the API response representation of a user.
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserService implements the login upsert use case.
type UserService struct {
	users     userDomain.UserRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.UserRepository, publisher EventPublisher, logger *zap.Logger) *UserService {
	return &UserService{users: users, publisher: publisher, logger: logger}
}

// Login upserts a user by email: a new email creates the user, an existing
// one refreshes the stored name when it changed.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*UserDTO, error) {
	candidate, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, candidate.Email())
	if err != nil {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}

		if err := s.users.Save(ctx, candidate); err != nil {
			return nil, err
		}
		s.logger.Info("user created", zap.String("user_id", candidate.ID().String()))
		s.publishLogin(ctx, candidate, true)
		return toUserDTO(candidate), nil
	}

	if existing.Name() != candidate.Name() {
		if err := existing.Rename(candidate.Name()); err != nil {
			return nil, err
		}
		if err := s.users.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	s.publishLogin(ctx, existing, false)
	return toUserDTO(existing), nil
}

func (s *UserService) publishLogin(ctx context.Context, u *userDomain.User, newUser bool) {
	evt := events.UserLoggedInEvent{
		UserID:     u.ID(),
		Email:      u.Email(),
		NewUser:    newUser,
		OccurredAt: time.Now().UTC(),
	}
	publishServiceEvent(ctx, s.publisher, s.logger, events.UserLoggedIn, evt)
}

func toUserDTO(u *userDomain.User) *UserDTO {
	return &UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
