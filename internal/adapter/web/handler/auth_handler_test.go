package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"earnhub/internal/adapter/web"
	"earnhub/internal/domain/entity"
	"earnhub/internal/infrastructure/session"
	"earnhub/internal/usecase"
	"earnhub/pkg/errors"
)

type stubAuthClient struct {
	token string
	user  *entity.Identity
	err   error
	calls int
}

func (s *stubAuthClient) SignIn(context.Context, string, string) (string, *entity.Identity, error) {
	s.calls++
	return s.token, s.user, s.err
}

func (s *stubAuthClient) Register(context.Context, string, string, string, string) (string, *entity.Identity, error) {
	s.calls++
	return s.token, s.user, s.err
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder, *session.MemoryStore) {
	t.Helper()

	e := echo.New()
	e.Validator = web.NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := session.NewMemoryStore()
	c.Set("store", store)

	return c, rec, store
}

func TestLoginSuccessSavesSessionAndRedirects(t *testing.T) {
	client := &stubAuthClient{
		token: "bearer-1",
		user:  &entity.Identity{ID: "u1", Role: entity.RoleUser},
	}
	registry := usecase.NewContextRegistry(nil, nil)
	h := NewAuthHandler(usecase.NewAuthUseCase(client, registry))

	c, rec, store := newAuthContext(t, http.MethodPost, "/login",
		`{"email":"me@example.com","password":"secret"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/dashboard"`)

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "bearer-1", sess.Token)
}

func TestLoginAdminRedirectsToAdminHome(t *testing.T) {
	client := &stubAuthClient{
		token: "bearer-2",
		user:  &entity.Identity{ID: "a1", Role: entity.RoleAdmin},
	}
	registry := usecase.NewContextRegistry(nil, nil)
	h := NewAuthHandler(usecase.NewAuthUseCase(client, registry))

	c, rec, _ := newAuthContext(t, http.MethodPost, "/login",
		`{"email":"admin@example.com","password":"secret"}`)

	assert.NoError(t, h.Login(c))
	assert.Contains(t, rec.Body.String(), `"redirect":"/admin/dashboard"`)
}

func TestLoginRejectsMalformedEmailWithoutNetwork(t *testing.T) {
	client := &stubAuthClient{}
	registry := usecase.NewContextRegistry(nil, nil)
	h := NewAuthHandler(usecase.NewAuthUseCase(client, registry))

	c, rec, _ := newAuthContext(t, http.MethodPost, "/login",
		`{"email":"not-an-email","password":"secret"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, client.calls)
}

func TestLoginFailureKeepsSessionAnonymous(t *testing.T) {
	client := &stubAuthClient{err: errors.Unauthorized("Invalid credentials", nil)}
	registry := usecase.NewContextRegistry(nil, nil)
	h := NewAuthHandler(usecase.NewAuthUseCase(client, registry))

	c, rec, store := newAuthContext(t, http.MethodPost, "/login",
		`{"email":"me@example.com","password":"wrong"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogoutWhenAnonymousStillSucceeds(t *testing.T) {
	registry := usecase.NewContextRegistry(nil, nil)
	h := NewAuthHandler(usecase.NewAuthUseCase(&stubAuthClient{}, registry))

	c, rec, _ := newAuthContext(t, http.MethodPost, "/logout", "")

	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signed out")
}
