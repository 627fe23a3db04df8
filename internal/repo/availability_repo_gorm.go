package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starhaven/internal/domain"
)

type AvailabilityRepo struct{ db *gorm.DB }

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

func (r *AvailabilityRepo) Find(typ, userID string) ([]domain.Availability, error) {
	q := r.db.Where("type = ?", typ)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var out []domain.Availability
	err := q.Order("user_id asc").Find(&out).Error
	return out, err
}

func (r *AvailabilityRepo) FindOne(typ, userID string) (*domain.Availability, error) {
	var a domain.Availability
	err := r.db.First(&a, "type = ? AND user_id = ?", typ, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert keys on (type, user_id); a second write for the same pair
// overwrites dates and role instead of adding a record.
func (r *AvailabilityRepo) Upsert(a *domain.Availability) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dates", "role", "updated_at"}),
	}).Create(a).Error
}

func (r *AvailabilityRepo) Delete(typ, userID string) (*domain.Availability, error) {
	a, err := r.FindOne(typ, userID)
	if err != nil || a == nil {
		return nil, err
	}
	if err := r.db.Delete(&domain.Availability{}, "type = ? AND user_id = ?", typ, userID).Error; err != nil {
		return nil, err
	}
	return a, nil
}
