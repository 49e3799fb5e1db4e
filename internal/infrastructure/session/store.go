package session

import "earnhub/internal/domain/entity"

// Fixed storage keys, matching what the browser front end historically used.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Session is the single authenticated identity of one browser session plus
// the bearer credential for the remote API.
type Session struct {
	Token string          `json:"token"`
	User  entity.Identity `json:"user"`
}

// Store persists a session across page loads. Load must fail soft: malformed
// stored data is treated as absent (nil, nil) and the corrupt entry is
// cleared, never surfaced as an error to the caller.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}
