package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/repository"
	"github.com/blaisecz/schedule-builder/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleService interface {
	Create(ctx context.Context, req *domain.CreateScheduleRequest) (*domain.Schedule, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error)
	Update(ctx context.Context, id string, req *domain.UpdateScheduleRequest) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	// Export returns every schedule with its slots, oldest first.
	Export(ctx context.Context) ([]domain.Schedule, error)
	// Import replaces all stored schedules.
	Import(ctx context.Context, schedules []domain.Schedule) error
}

type scheduleService struct {
	repo repository.ScheduleRepository
	now  func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *scheduleService) Create(ctx context.Context, req *domain.CreateScheduleRequest) (*domain.Schedule, error) {
	viewType := req.ViewType
	if viewType == "" {
		viewType = domain.ViewWeek
	}

	ts := s.now().UTC()
	schedule := &domain.Schedule{
		ID:         uuid.NewString(),
		Name:       req.Name,
		TimeSlots:  []domain.TimeSlot{},
		CreatedAt:  ts,
		UpdatedAt:  ts,
		ViewType:   viewType,
		TargetDate: req.TargetDate,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	zap.L().Info("schedule created", zap.String("schedule_id", schedule.ID))
	return schedule, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule.TimeSlots == nil {
		schedule.TimeSlots = []domain.TimeSlot{}
	}
	return schedule, nil
}

func (s *scheduleService) List(ctx context.Context, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error) {
	schedules, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(schedules) > limit

	// Trim to actual limit
	if hasMore {
		schedules = schedules[:limit]
	}

	response := &domain.ScheduleListResponse{
		Data: make([]domain.ScheduleSummary, len(schedules)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range schedules {
		response.Data[i] = schedules[i].ToSummary()
	}

	// Set next cursor if there are more results
	if hasMore && len(schedules) > 0 {
		last := schedules[len(schedules)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *scheduleService) Update(ctx context.Context, id string, req *domain.UpdateScheduleRequest) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		schedule.Name = *req.Name
	}
	if req.ViewType != nil {
		schedule.ViewType = *req.ViewType
	}
	if req.TargetDate != nil {
		schedule.TargetDate = *req.TargetDate
	}
	schedule.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("schedule deleted", zap.String("schedule_id", id))
	return nil
}

func (s *scheduleService) Export(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export schedules: %w", err)
	}
	for i := range schedules {
		if schedules[i].TimeSlots == nil {
			schedules[i].TimeSlots = []domain.TimeSlot{}
		}
	}
	return schedules, nil
}

func (s *scheduleService) Import(ctx context.Context, schedules []domain.Schedule) error {
	seen := make(map[string]struct{}, len(schedules))
	for _, schedule := range schedules {
		if schedule.Name == "" {
			return fmt.Errorf("%w: schedule %q has no name", domain.ErrInvalidSnapshot, schedule.ID)
		}
		if _, dup := seen[schedule.ID]; dup {
			return fmt.Errorf("%w: duplicate schedule id %q", domain.ErrInvalidSnapshot, schedule.ID)
		}
		seen[schedule.ID] = struct{}{}
	}

	if err := s.repo.ReplaceAll(ctx, schedules); err != nil {
		return fmt.Errorf("import schedules: %w", err)
	}

	zap.L().Info("schedules imported", zap.Int("count", len(schedules)))
	return nil
}
