package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) error
	GetByID(ctx context.Context, scheduleID, id string) (*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
	Delete(ctx context.Context, scheduleID, id string) error
	ListBySchedule(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error)
}

type timeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepository) GetByID(ctx context.Context, scheduleID, id string) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND id = ?", scheduleID, id).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) Update(ctx context.Context, slot *domain.TimeSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *timeSlotRepository) Delete(ctx context.Context, scheduleID, id string) error {
	result := r.db.WithContext(ctx).
		Where("schedule_id = ? AND id = ?", scheduleID, id).
		Delete(&domain.TimeSlot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *timeSlotRepository) ListBySchedule(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	query := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("date ASC, start_time ASC, id ASC")

	// Dates are YYYY-MM-DD so string comparison is chronological
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	slots := []domain.TimeSlot{}
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
