package domain

// Role is the claim a session carries. Only RoleAdmin unlocks catalog editing.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an authenticated identity
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the administrator role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credentials is what a login or sign-up form submits
type Credentials struct {
	Name            string // Sign-up only; derived from the email when empty
	Email           string
	Password        string
	ConfirmPassword string // Sign-up only
	SignUp          bool
}
