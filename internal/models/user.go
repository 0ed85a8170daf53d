package models

import "time"

// UserRole defines the platform-level role of a user account.
type UserRole string

const (
	// UserRoleUser is the default account role.
	UserRoleUser UserRole = "user"
	// UserRoleMinister marks a user as a minister.
	UserRoleMinister UserRole = "minister"
	// UserRoleAdmin grants platform-level administrative access.
	UserRoleAdmin UserRole = "admin"
)

// User represents a registered account. Email is the login identifier.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:150" json:"full_name"`
	Role      UserRole  `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	Phone     string    `gorm:"size:15" json:"phone,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdminCapable reports whether the account role grants platform-level
// write access (category management and similar).
func (u *User) IsAdminCapable() bool {
	return u.Role == UserRoleAdmin
}

// IsMinister reports whether the account holds the minister role.
func (u *User) IsMinister() bool {
	return u.Role == UserRoleMinister
}
