package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"earnhub/pkg/errors"
)

type clearRecorder struct {
	cleared int
}

func (r *clearRecorder) Clear() error {
	r.cleared++
	return nil
}

func newErrorContext() (echo.Context, *httptest.ResponseRecorder, *clearRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &clearRecorder{}
	c.Set("store", store)
	return c, rec, store
}

func TestErrorUnauthorizedClearsSession(t *testing.T) {
	c, rec, store := newErrorContext()

	err := Error(c, errors.Unauthorized("token revoked", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, store.cleared)
}

func TestErrorOtherCodesLeaveSessionAlone(t *testing.T) {
	for _, remoteErr := range []error{
		errors.BadRequest("Bad input", nil),
		errors.Forbidden("Access denied", nil),
		errors.Transport("Unable to reach the platform API", nil),
	} {
		c, _, store := newErrorContext()
		assert.NoError(t, Error(c, remoteErr))
		assert.Zero(t, store.cleared)
	}
}

func TestErrorWithoutStoreStillResponds(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Error(c, errors.Unauthorized("Invalid credentials", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
