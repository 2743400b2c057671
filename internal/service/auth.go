package service

import (
	"context"
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/almeidamaycon094-ux/heasystaff/internal/auth"
	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

// AuthService handles admin login.
type AuthService struct {
	db     *sql.DB
	admins repository.AdminRepository
	jwtMgr *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB, admins repository.AdminRepository, jwtMgr *auth.JWTManager) *AuthService {
	return &AuthService{db: db, admins: admins, jwtMgr: jwtMgr}
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned on successful login. Field names match what the
// admin panel expects.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates an admin and returns a bearer token. Unknown email and
// wrong password produce the identical error so responses cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.Password == "" {
		return nil, domain.ErrValidation("password is required")
	}

	admin, err := s.admins.FindByEmail(ctx, s.db, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find admin", err)
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	token, err := s.jwtMgr.GenerateToken(admin.Email)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}
