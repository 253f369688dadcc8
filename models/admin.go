package models

// AdminRole defines allowed roles in the admin panel
type AdminRole string

const (
	RoleSuper AdminRole = "super"
	RoleAdmin AdminRole = "admin"
)

// AdminUser is an admin panel account. PasswordHash holds a bcrypt hash;
// LegacyPassword only exists on records written before hashing and is
// cleared the first time the record is loaded.
type AdminUser struct {
	ID             string    `json:"id" validate:"required"`
	Username       string    `json:"username" validate:"required"`
	Email          string    `json:"email" validate:"omitempty,email"`
	PasswordHash   string    `json:"passwordHash,omitempty" validate:"required"`
	LegacyPassword string    `json:"password,omitempty" validate:"-"`
	Role           AdminRole `json:"role" validate:"oneof=super admin"`
}

// AdminView is the API-facing shape of an account, without credentials.
type AdminView struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     AdminRole `json:"role"`
}

func (a AdminUser) View() AdminView {
	return AdminView{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}
}
