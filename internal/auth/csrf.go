package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// HeaderCSRFToken is the header mutating requests must carry.
const HeaderCSRFToken = "X-CSRF-Token"

// CSRFStore issues and validates per-user CSRF tokens backed by Redis.
type CSRFStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCSRFStore constructs the store.
func NewCSRFStore(client *redis.Client, ttlMinutes int) *CSRFStore {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &CSRFStore{client: client, ttl: time.Duration(ttlMinutes) * time.Minute}
}

func csrfKey(userID, token string) string {
	return fmt.Sprintf("csrf:%s:%s", userID, token)
}

// Issue creates a fresh token for the user.
func (s *CSRFStore) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, csrfKey(userID, token), "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks the token exists and is still live for the user.
func (s *CSRFStore) Validate(ctx context.Context, userID, token string) error {
	if token == "" {
		return apperrors.NewForbidden("missing csrf token")
	}
	exists, err := s.client.Exists(ctx, csrfKey(userID, token)).Result()
	if err != nil {
		return apperrors.MapError(err)
	}
	if exists == 0 {
		return apperrors.NewForbidden("invalid csrf token")
	}
	return nil
}

// Revoke drops a token, used on logout.
func (s *CSRFStore) Revoke(ctx context.Context, userID, token string) error {
	return s.client.Del(ctx, csrfKey(userID, token)).Err()
}

// CSRFMiddleware enforces the token header on state-changing methods.
func CSRFMiddleware(store *CSRFStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return c.Next()
		}

		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}

		token := c.Get(HeaderCSRFToken)
		if err := store.Validate(c.Context(), principal.User.ID, token); err != nil {
			return err
		}
		return c.Next()
	}
}
