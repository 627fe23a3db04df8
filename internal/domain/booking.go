package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a reservation request. Date is a YYYY-MM-DD string; the
// format sorts lexicographically in date order, which the date-range
// queries rely on.
type Booking struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;index" json:"userId"`
	Role      string     `gorm:"size:16" json:"role,omitempty"`
	GroupName string     `gorm:"size:128" json:"groupName"`
	GroupType string     `gorm:"size:64" json:"groupType"`
	GroupSize int        `json:"groupSize"`
	Interests StringList `gorm:"type:json" json:"interests"`
	OtherInfo string     `gorm:"type:text" json:"otherInfo"`
	Date      string     `gorm:"size:10;index" json:"date"`
	Status    string     `gorm:"size:16;index" json:"status"`
	CreatedAt time.Time  `json:"created"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingPatch carries a partial update; nil fields are left untouched.
type BookingPatch struct {
	Role      *string   `json:"role"`
	GroupName *string   `json:"groupName"`
	GroupType *string   `json:"groupType"`
	GroupSize *int      `json:"groupSize"`
	Interests *[]string `json:"interests"`
	OtherInfo *string   `json:"otherInfo"`
	Date      *string   `json:"date"`
	Status    *string   `json:"status"`
}

type BookingStore interface {
	All() ([]Booking, error)
	FindByID(id string) (*Booking, error)
	FindByUserID(userID string) ([]Booking, error)
	FindByDate(date string) ([]Booking, error)
	FindByStatus(status string) ([]Booking, error)
	Create(b *Booking) error
	// Update merges fields into the record and returns the result, or
	// nil if the id does not exist.
	Update(id string, fields map[string]any) (*Booking, error)
	Delete(id string) (*Booking, error)
}
