package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HashedPassword string `json:"-"` // Do not expose password hash in JSON responses
	Role           string `json:"role"`
	IsActive       bool   `json:"is_active"`
}

// CreateUserRequest is the registration payload. Role is stored as supplied.
type CreateUserRequest struct {
	Username  string `json:"username" yaml:"username" binding:"required"`
	Email     string `json:"email" yaml:"email" binding:"required"`
	FirstName string `json:"first_name" yaml:"first_name" binding:"required"`
	LastName  string `json:"last_name" yaml:"last_name" binding:"required"`
	Password  string `json:"password" yaml:"password" binding:"required"`
	Role      string `json:"role" yaml:"role" binding:"required"`
}

// PasswordChangeRequest is used by the account password endpoint
type PasswordChangeRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Identity is the trusted caller decoded from a bearer token
type Identity struct {
	Username string
	UserID   int64
	Role     string
}

// IsAdmin reports whether the role is exactly "admin". There is no role hierarchy.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
