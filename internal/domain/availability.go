package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability calendar types.
const (
	AvailabilityHosting = "hosting"
	AvailabilityObs     = "obs"
)

// SystemUserID marks facility-wide availability entries not tied to a person.
const SystemUserID = "system"

// Availability is a per-user, per-type calendar of open dates. At most
// one record exists per (type, userId) pair; writes upsert on that key.
type Availability struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Type      string     `gorm:"size:16;uniqueIndex:uniq_type_user" json:"type"`
	UserID    string     `gorm:"size:36;uniqueIndex:uniq_type_user" json:"userId"`
	Dates     StringList `gorm:"type:json" json:"dates"`
	Role      string     `gorm:"size:16" json:"role,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Availability) TableName() string { return "availabilities" }

func (a *Availability) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type AvailabilityStore interface {
	// Find returns records of the given type; userID == "" matches all users.
	Find(typ, userID string) ([]Availability, error)
	FindOne(typ, userID string) (*Availability, error)
	Upsert(a *Availability) error
	// Delete removes the (type, userId) record and returns it, or nil if absent.
	Delete(typ, userID string) (*Availability, error)
}
