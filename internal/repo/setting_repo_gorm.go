package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starhaven/internal/domain"
)

type SettingRepo struct{ db *gorm.DB }

func NewSettingRepo(db *gorm.DB) *SettingRepo { return &SettingRepo{db: db} }

func (r *SettingRepo) All() ([]domain.Setting, error) {
	var out []domain.Setting
	err := r.db.Order("key asc").Find(&out).Error
	return out, err
}

func (r *SettingRepo) FindByKey(key string) (*domain.Setting, error) {
	var s domain.Setting
	err := r.db.First(&s, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepo) Upsert(s *domain.Setting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(s).Error
}

func (r *SettingRepo) Delete(key string) (*domain.Setting, error) {
	s, err := r.FindByKey(key)
	if err != nil || s == nil {
		return nil, err
	}
	if err := r.db.Delete(&domain.Setting{}, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return s, nil
}
