package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Schedule, error)
	ReplaceAll(ctx context.Context, schedules []domain.Schedule) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// orderedSlots preloads slots sorted the way the API returns them.
func orderedSlots(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC, start_time ASC, id ASC")
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.WithContext(ctx).
		Preload("TimeSlots", orderedSlots).
		First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Schedule{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	query := r.db.WithContext(ctx).
		Preload("TimeSlots", orderedSlots).
		Order("created_at DESC, id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// DESC order: strictly older, or same instant with a smaller id
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var schedules []domain.Schedule
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(schedule)
	return result.Error
}

func (r *scheduleRepository) Touch(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Schedule{}).
		Where("id = ?", id).
		Update("updated_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&domain.TimeSlot{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Schedule{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *scheduleRepository) ListAll(ctx context.Context) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Preload("TimeSlots", orderedSlots).
		Order("created_at ASC, id ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// ReplaceAll swaps the full set of schedules in one transaction.
func (r *scheduleRepository) ReplaceAll(ctx context.Context, schedules []domain.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.TimeSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}
		for i := range schedules {
			if err := tx.Create(&schedules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
