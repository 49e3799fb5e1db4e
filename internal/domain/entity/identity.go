package entity

// Identity is the authenticated user's profile as the remote platform
// returns it at login. It is cached for the lifetime of one browser session
// and replaced wholesale at the next login.
type Identity struct {
	ID            string  `json:"id"`
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	Role          string  `json:"role"` // "admin" or "user"
	Balance       float64 `json:"balance"`
	TotalEarnings float64 `json:"totalEarnings"`
	TotalPayouts  float64 `json:"totalPayouts"`
	ReferralCode  string  `json:"referralCode,omitempty"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

func (i *Identity) IsUser() bool {
	return i != nil && i.Role == RoleUser
}
