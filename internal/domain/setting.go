package domain

import "time"

// Setting is a key/value configuration record. The key is the primary
// key; writes go through an upsert so re-submitting a key overwrites it.
type Setting struct {
	Key         string    `gorm:"primaryKey;size:191" json:"key"`
	Value       JSON      `gorm:"type:json" json:"value"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Setting) TableName() string { return "settings" }

type SettingStore interface {
	All() ([]Setting, error)
	FindByKey(key string) (*Setting, error)
	Upsert(s *Setting) error
	// Delete removes the record and returns it, or nil if none existed.
	Delete(key string) (*Setting, error)
}
