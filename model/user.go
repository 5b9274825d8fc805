// model/user.go
package model

import "time"

const (
	PermAdmin = "admin"
	PermUser  = "user"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Salt         string    `db:"salt" json:"-"`
	Email        string    `db:"email" json:"email"`
	Permissions  string    `db:"permissions" json:"permissions"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin is the single place the permissions string is interpreted.
func (u *User) IsAdmin() bool { return u.Permissions == PermAdmin }

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterReq represents the admin-only user registration payload.
// The acting admin's credentials travel with the request; the new
// account's fields are prefixed new_ as in the original form fields.
// swagger:model RegisterReq
type RegisterReq struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	NewUsername string `json:"new_username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
	NewEmail    string `json:"new_email" validate:"required,email"`
	Permissions string `json:"new_permissions" validate:"required,oneof=admin user"`
}
