package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
)

const cookieMaxAge = 7 * 24 * time.Hour

// CookieStore keeps the session in two cookies on the browser, the durable
// per-browser storage of this console. The identity payload is base64 JSON.
type CookieStore struct {
	c      echo.Context
	domain string
	secure bool
}

func NewCookieStore(c echo.Context, domain string, secure bool) *CookieStore {
	return &CookieStore{
		c:      c,
		domain: domain,
		secure: secure,
	}
}

func (s *CookieStore) Load() (*Session, error) {
	tokenCookie, err := s.c.Cookie(TokenKey)
	if err != nil || tokenCookie.Value == "" {
		return nil, nil
	}

	userCookie, err := s.c.Cookie(UserKey)
	if err != nil || userCookie.Value == "" {
		s.Clear()
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(userCookie.Value)
	if err != nil {
		s.Clear()
		return nil, nil
	}

	var user entity.Identity
	if err := json.Unmarshal(raw, &user); err != nil {
		s.Clear()
		return nil, nil
	}

	if user.Role != entity.RoleAdmin && user.Role != entity.RoleUser {
		s.Clear()
		return nil, nil
	}

	return &Session{Token: tokenCookie.Value, User: user}, nil
}

func (s *CookieStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	s.setCookie(TokenKey, sess.Token, int(cookieMaxAge.Seconds()))
	s.setCookie(UserKey, base64.URLEncoding.EncodeToString(raw), int(cookieMaxAge.Seconds()))
	return nil
}

// Clear expires both cookies. Safe to call when nothing is stored.
func (s *CookieStore) Clear() error {
	s.setCookie(TokenKey, "", -1)
	s.setCookie(UserKey, "", -1)
	return nil
}

func (s *CookieStore) setCookie(name, value string, maxAge int) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
