package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User statuses.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// Well-known roles. Role is free-form on the record; these are the ones
// the route guards care about.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
	RoleGuest  = "guest"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:64" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Role         string    `gorm:"size:16;index" json:"role"`
	Status       string    `gorm:"size:16" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Redacted returns a copy safe to hand to callers: the stored hash is
// stripped so no response path can leak credential material.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}

// UserPatch carries a partial update; nil fields are left untouched.
// Password is the new plaintext, hashed by the controller before it
// reaches the store.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

type UserStore interface {
	All() ([]User, error)
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Create(u *User) error
	Update(id string, fields map[string]any) (*User, error)
	Delete(id string) (*User, error)
}
