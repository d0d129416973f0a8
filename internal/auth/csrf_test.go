package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-service/internal/domain"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

func setupCSRFStore() (*CSRFStore, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	return NewCSRFStore(client, 60), mock
}

func TestCSRFStoreIssue(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	mock.Regexp().ExpectSet(`csrf:user-1:[0-9a-f-]+`, "1", store.ttl).SetVal("OK")

	token, err := store.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCSRFStoreValidate(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	mock.ExpectExists("csrf:user-1:tok-a").SetVal(1)
	require.NoError(t, store.Validate(context.Background(), "user-1", "tok-a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCSRFStoreValidateUnknownToken(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	mock.ExpectExists("csrf:user-1:tok-b").SetVal(0)

	err := store.Validate(context.Background(), "user-1", "tok-b")
	require.Error(t, err)

	domainErr, ok := err.(*apperrors.DomainError)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestCSRFStoreValidateMissingToken(t *testing.T) {
	store, _ := setupCSRFStore()

	err := store.Validate(context.Background(), "user-1", "")
	require.Error(t, err)
}

func TestCSRFStoreRevoke(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	mock.ExpectDel("csrf:user-1:tok-a").SetVal(1)
	require.NoError(t, store.Revoke(context.Background(), "user-1", "tok-a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newCSRFTestApp(store *CSRFStore) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(principalKey, &Principal{User: &domain.User{ID: "user-1", Active: true}})
		return c.Next()
	})
	app.Use(CSRFMiddleware(store))
	app.All("/events", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestCSRFMiddlewareSkipsSafeMethods(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	app := newCSRFTestApp(store)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/events", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCSRFMiddlewareAcceptsLiveToken(t *testing.T) {
	store, mock := setupCSRFStore()
	defer mock.ClearExpect()

	mock.ExpectExists("csrf:user-1:tok-a").SetVal(1)

	app := newCSRFTestApp(store)
	req := httptest.NewRequest(fiber.MethodPost, "/events", nil)
	req.Header.Set(HeaderCSRFToken, "tok-a")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
