package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	schedules  map[string]*domain.Schedule
	listResult []domain.Schedule
	touched    map[string]time.Time
	replaced   []domain.Schedule
	err        error
}

func NewMockScheduleRepository() *MockScheduleRepository {
	return &MockScheduleRepository{
		schedules: make(map[string]*domain.Schedule),
		touched:   make(map[string]time.Time),
	}
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *schedule
	copied.TimeSlots = append([]domain.TimeSlot(nil), schedule.TimeSlots...)
	return &copied, nil
}

func (m *MockScheduleRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.schedules[id]
	return ok, nil
}

func (m *MockScheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.Schedule, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *MockScheduleRepository) Touch(ctx context.Context, id string, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	schedule, ok := m.schedules[id]
	if !ok {
		return domain.ErrNotFound
	}
	schedule.UpdatedAt = at
	m.touched[id] = at
	return nil
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.schedules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.schedules, id)
	return nil
}

func (m *MockScheduleRepository) ListAll(ctx context.Context) ([]domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Schedule
	for _, schedule := range m.schedules {
		result = append(result, *schedule)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *MockScheduleRepository) ReplaceAll(ctx context.Context, schedules []domain.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.replaced = schedules
	m.schedules = make(map[string]*domain.Schedule)
	for i := range schedules {
		m.schedules[schedules[i].ID] = &schedules[i]
	}
	return nil
}

func (m *MockScheduleRepository) SetError(err error) {
	m.err = err
}

// MockTimeSlotRepository is a mock implementation of TimeSlotRepository
type MockTimeSlotRepository struct {
	slots      map[string]*domain.TimeSlot
	lastFilter domain.TimeSlotFilter
	err        error
}

func NewMockTimeSlotRepository() *MockTimeSlotRepository {
	return &MockTimeSlotRepository{
		slots: make(map[string]*domain.TimeSlot),
	}
}

func (m *MockTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if m.err != nil {
		return m.err
	}
	m.slots[slot.ID] = slot
	return nil
}

func (m *MockTimeSlotRepository) GetByID(ctx context.Context, scheduleID, id string) (*domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	slot, ok := m.slots[id]
	if !ok || slot.ScheduleID != scheduleID {
		return nil, domain.ErrNotFound
	}
	copied := *slot
	return &copied, nil
}

func (m *MockTimeSlotRepository) Update(ctx context.Context, slot *domain.TimeSlot) error {
	if m.err != nil {
		return m.err
	}
	m.slots[slot.ID] = slot
	return nil
}

func (m *MockTimeSlotRepository) Delete(ctx context.Context, scheduleID, id string) error {
	if m.err != nil {
		return m.err
	}
	slot, ok := m.slots[id]
	if !ok || slot.ScheduleID != scheduleID {
		return domain.ErrNotFound
	}
	delete(m.slots, id)
	return nil
}

func (m *MockTimeSlotRepository) ListBySchedule(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	var result []domain.TimeSlot
	for _, slot := range m.slots {
		if slot.ScheduleID == scheduleID {
			result = append(result, *slot)
		}
	}
	return result, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	lastContext *domain.InsightsContext
	output      *domain.InsightsOutput
	err         error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.InsightsOutput{
		Summary:         "A balanced week.",
		Observations:    []string{"One conflict on Monday"},
		Recommendations: []string{"Move the standup"},
	}, nil
}
