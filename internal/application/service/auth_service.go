package service

import (
	"context"

	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/apperror"
	"github.com/sokoni/sokoni-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues tokens for transaction-committing accounts. It exists
// so that every commit carries an explicit creator id and kind; anything
// beyond that (registration flows, identity providers) lives outside this
// service.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginResult carries the issued token and the account it belongs to
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login verifies the credentials and issues an access token carrying the
// creator kind
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(401, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewAppError(401, "Invalid email or password")
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Kind)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}
