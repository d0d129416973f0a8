package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-service/internal/auth"
	"github.com/spec-kit/event-service/internal/config"
	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/validate"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// AuthService coordinates registration, login and account maintenance flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	csrf       *auth.CSRFStore
	dispatcher events.Dispatcher
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	CSRFStore         *auth.CSRFStore
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		csrf:       deps.CSRFStore,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// RegisterInput describes the signup payload.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	Pincode   string
	Birthday  string
}

// ProfileUpdateInput describes editable profile fields.
type ProfileUpdateInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	Pincode   string
	Birthday  string
}

// Session is the result of a successful login or registration.
type Session struct {
	User      *domain.User
	Token     string
	CSRFToken string
	ExpiresAt time.Time
}

// Register creates a new client account and opens a session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	fields := validate.Fields{}
	fields.Require("username", input.Username)
	fields.MinLength("username", input.Username, 3)
	fields.Require("email", input.Email)
	fields.Email("email", input.Email)
	fields.MinLength("password", input.Password, 8)

	var birthday *time.Time
	if strings.TrimSpace(input.Birthday) != "" {
		if parsed, ok := fields.Date("birthday", input.Birthday); ok {
			if fields.PastDate("birthday", parsed, time.Now()) {
				birthday = &parsed
			}
		}
	}
	if !fields.Ok() {
		return nil, apperrors.NewValidationError("registration failed", fields.Details())
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewConflict("username already taken", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Role:         domain.RoleClient,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		Pincode:      strings.TrimSpace(input.Pincode),
		Birthday:     birthday,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		EntityID:  user.ID,
		Actor:     events.Actor{UserID: user.ID, Role: user.Role},
		Timestamp: time.Now(),
	})

	return s.openSession(ctx, user)
}

// Login authenticates by username or email.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*Session, error) {
	user, err := s.users.GetByUsername(ctx, identifier)
	if err == pgx.ErrNoRows {
		user, err = s.users.GetByEmail(ctx, identifier)
	}
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if !user.Active {
		return nil, apperrors.NewForbidden("account deactivated")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, apperrors.MapError(err)
	}
	user.LastLoginAt = &now

	return s.openSession(ctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*Session, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	csrfToken, err := s.csrf.Issue(ctx, user.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &Session{User: user, Token: token, CSRFToken: csrfToken, ExpiresAt: exp}, nil
}

// Logout revokes the caller's CSRF token; the JWT expires on its own.
func (s *AuthService) Logout(ctx context.Context, userID, csrfToken string) error {
	if strings.TrimSpace(csrfToken) == "" {
		return nil
	}
	return s.csrf.Revoke(ctx, userID, csrfToken)
}

// UpdateProfile modifies editable account fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	fields := validate.Fields{}
	fields.Require("email", input.Email)
	fields.Email("email", input.Email)

	var birthday *time.Time
	if strings.TrimSpace(input.Birthday) != "" {
		if parsed, ok := fields.Date("birthday", input.Birthday); ok {
			if fields.PastDate("birthday", parsed, time.Now()) {
				birthday = &parsed
			}
		}
	}
	if !fields.Ok() {
		return nil, apperrors.NewValidationError("profile update failed", fields.Details())
	}

	if input.Email != user.Email {
		if existing, err := s.users.GetByEmail(ctx, input.Email); err == nil && existing.ID != user.ID {
			return nil, apperrors.NewConflict("email already registered", nil)
		} else if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
	}

	user.Email = strings.TrimSpace(input.Email)
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Phone = strings.TrimSpace(input.Phone)
	user.Address = strings.TrimSpace(input.Address)
	user.City = strings.TrimSpace(input.City)
	user.State = strings.TrimSpace(input.State)
	user.Pincode = strings.TrimSpace(input.Pincode)
	user.Birthday = birthday

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ChangePassword verifies the current password before updating.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, current); err != nil {
		return apperrors.NewUnauthorized("current password incorrect")
	}

	fields := validate.Fields{}
	fields.MinLength("new_password", next, 8)
	if !fields.Ok() {
		return apperrors.NewValidationError("password change failed", fields.Details())
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	return apperrors.MapError(s.users.Update(ctx, user))
}

// RequestPasswordReset issues a reset token. The token is returned for the
// notification layer; lookups by unknown email succeed silently so account
// existence is not leaked.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", apperrors.MapError(err)
	}

	token := &repository.PasswordResetToken{
		SubjectID: user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return "", apperrors.MapError(err)
	}
	return token.Token, nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	fields := validate.Fields{}
	fields.MinLength("password", newPassword, 8)
	if !fields.Ok() {
		return apperrors.NewValidationError("password reset failed", fields.Details())
	}

	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("invalid or expired reset token")
		}
		return apperrors.MapError(err)
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewUnauthorized("invalid or expired reset token")
	}

	user, err := s.users.GetByID(ctx, token.SubjectID)
	if err != nil {
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return apperrors.MapError(s.resets.MarkUsed(ctx, token.ID))
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
