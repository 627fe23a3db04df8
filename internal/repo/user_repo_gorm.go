package repo

import (
	"errors"

	"gorm.io/gorm"

	"starhaven/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) All() ([]domain.User, error) {
	var out []domain.User
	err := r.db.Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) Update(id string, fields map[string]any) (*domain.User, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *UserRepo) Delete(id string) (*domain.User, error) {
	u, err := r.FindByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	if err := r.db.Delete(&domain.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return u, nil
}
