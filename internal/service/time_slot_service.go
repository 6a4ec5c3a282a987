package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/repository"
	"github.com/google/uuid"
)

type TimeSlotService interface {
	Create(ctx context.Context, scheduleID string, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error)
	List(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) (*domain.TimeSlotListResponse, error)
	Update(ctx context.Context, scheduleID, slotID string, req *domain.UpdateTimeSlotRequest) (*domain.TimeSlot, error)
	Delete(ctx context.Context, scheduleID, slotID string) error
}

type timeSlotService struct {
	repo         repository.TimeSlotRepository
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

func NewTimeSlotService(repo repository.TimeSlotRepository, scheduleRepo repository.ScheduleRepository) TimeSlotService {
	return &timeSlotService{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

func (s *timeSlotService) Create(ctx context.Context, scheduleID string, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error) {
	exists, err := s.scheduleRepo.Exists(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	slot := &domain.TimeSlot{
		ID:            uuid.NewString(),
		ScheduleID:    scheduleID,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Date:          req.Date,
		Category:      category,
		Description:   req.Description,
		Location:      req.Location,
		Priority:      req.Priority,
		IsRecurring:   req.IsRecurring,
		RecurringDays: req.RecurringDays,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create time slot: %w", err)
	}
	if err := s.scheduleRepo.Touch(ctx, scheduleID, s.now().UTC()); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *timeSlotService) List(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) (*domain.TimeSlotListResponse, error) {
	exists, err := s.scheduleRepo.Exists(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	slots, err := s.repo.ListBySchedule(ctx, scheduleID, filter)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	return &domain.TimeSlotListResponse{Data: slots}, nil
}

func (s *timeSlotService) Update(ctx context.Context, scheduleID, slotID string, req *domain.UpdateTimeSlotRequest) (*domain.TimeSlot, error) {
	slot, err := s.repo.GetByID(ctx, scheduleID, slotID)
	if err != nil {
		return nil, err
	}

	req.Apply(slot)

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, fmt.Errorf("update time slot: %w", err)
	}
	if err := s.scheduleRepo.Touch(ctx, scheduleID, s.now().UTC()); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *timeSlotService) Delete(ctx context.Context, scheduleID, slotID string) error {
	if err := s.repo.Delete(ctx, scheduleID, slotID); err != nil {
		return err
	}
	return s.scheduleRepo.Touch(ctx, scheduleID, s.now().UTC())
}
