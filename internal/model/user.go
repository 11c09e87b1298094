package model

// RoleAdmin is the only role the service grants privileges to.
const RoleAdmin = "admin"

// User represents a credential record in the persisted document.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"` // bcrypt hash, never leave the service
	Role         string `json:"role"`
}

// PublicUser is the subset of User returned to clients.
type PublicUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips identifiers and the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{Email: u.Email, Role: u.Role}
}
