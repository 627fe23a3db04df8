package repo

import (
	"errors"

	"gorm.io/gorm"

	"starhaven/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) All() ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *BookingRepo) FindByID(id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) FindByUserID(userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *BookingRepo) FindByDate(date string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Where("date = ?", date).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *BookingRepo) FindByStatus(status string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Where("status = ?", status).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *BookingRepo) Create(b *domain.Booking) error { return r.db.Create(b).Error }

func (r *BookingRepo) Update(id string, fields map[string]any) (*domain.Booking, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&domain.Booking{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *BookingRepo) Delete(id string) (*domain.Booking, error) {
	b, err := r.FindByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	if err := r.db.Delete(&domain.Booking{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return b, nil
}
