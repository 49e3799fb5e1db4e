package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"earnhub/internal/domain/entity"
)

func newTestContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func userCookie(t *testing.T, user entity.Identity) *http.Cookie {
	t.Helper()
	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	return &http.Cookie{Name: UserKey, Value: base64.URLEncoding.EncodeToString(raw)}
}

func TestCookieStoreLoad(t *testing.T) {
	user := entity.Identity{ID: "u1", FullName: "Jane Doe", Email: "jane@example.com", Role: entity.RoleUser, Balance: 42.5}

	c, _ := newTestContext(
		&http.Cookie{Name: TokenKey, Value: "tok-123"},
		userCookie(t, user),
	)
	store := NewCookieStore(c, "", false)

	sess, err := store.Load()
	assert.NoError(t, err)
	if assert.NotNil(t, sess) {
		assert.Equal(t, "tok-123", sess.Token)
		assert.Equal(t, user, sess.User)
	}
}

func TestCookieStoreLoadAbsent(t *testing.T) {
	c, _ := newTestContext()
	store := NewCookieStore(c, "", false)

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCookieStoreLoadCorruptUser(t *testing.T) {
	c, rec := newTestContext(
		&http.Cookie{Name: TokenKey, Value: "tok-123"},
		&http.Cookie{Name: UserKey, Value: "%%%not-base64%%%"},
	)
	store := NewCookieStore(c, "", false)

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)

	// The corrupt entry must be cleared, not left in place.
	expired := 0
	for _, ck := range rec.Result().Cookies() {
		if (ck.Name == TokenKey || ck.Name == UserKey) && ck.MaxAge < 0 {
			expired++
		}
	}
	assert.Equal(t, 2, expired)
}

func TestCookieStoreLoadUnknownRole(t *testing.T) {
	c, _ := newTestContext(
		&http.Cookie{Name: TokenKey, Value: "tok-123"},
		userCookie(t, entity.Identity{ID: "u1", Role: "superuser"}),
	)
	store := NewCookieStore(c, "", false)

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCookieStoreSaveThenClear(t *testing.T) {
	c, rec := newTestContext()
	store := NewCookieStore(c, "", false)

	err := store.Save(&Session{Token: "tok-9", User: entity.Identity{ID: "u9", Role: entity.RoleAdmin}})
	assert.NoError(t, err)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear()) // idempotent

	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	last := map[string]*http.Cookie{}
	for _, ck := range cookies {
		last[ck.Name] = ck
	}
	assert.Negative(t, last[TokenKey].MaxAge)
	assert.Negative(t, last[UserKey].MaxAge)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)

	assert.NoError(t, store.Save(&Session{Token: "t", User: entity.Identity{ID: "u", Role: entity.RoleUser}}))

	sess, err = store.Load()
	assert.NoError(t, err)
	assert.NotNil(t, sess)

	assert.NoError(t, store.Clear())
	sess, err = store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)
}
