package models

import "time"

// Roles an account can hold. There is no plain "user" role: visitors
// browse and buy without an account.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is an administrator account. Users are created through the one-time
// super-admin bootstrap or by an existing super admin; they are never
// edited or deleted through the API.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
