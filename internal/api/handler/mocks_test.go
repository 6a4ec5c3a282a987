package handler

import (
	"context"
	"time"

	"github.com/blaisecz/schedule-builder/internal/analysis"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/service"
)

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	createFunc  func(ctx context.Context, req *domain.CreateScheduleRequest) (*domain.Schedule, error)
	getByIDFunc func(ctx context.Context, id string) (*domain.Schedule, error)
	listFunc    func(ctx context.Context, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error)
	updateFunc  func(ctx context.Context, id string, req *domain.UpdateScheduleRequest) (*domain.Schedule, error)
	deleteFunc  func(ctx context.Context, id string) error
	exportFunc  func(ctx context.Context) ([]domain.Schedule, error)
	importFunc  func(ctx context.Context, schedules []domain.Schedule) error
}

func (m *MockScheduleService) Create(ctx context.Context, req *domain.CreateScheduleRequest) (*domain.Schedule, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	now := time.Now().UTC()
	return &domain.Schedule{
		ID:         "new-schedule",
		Name:       req.Name,
		TimeSlots:  []domain.TimeSlot{},
		CreatedAt:  now,
		UpdatedAt:  now,
		ViewType:   domain.ViewWeek,
		TargetDate: req.TargetDate,
	}, nil
}

func (m *MockScheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Schedule{ID: id, Name: "Week", TimeSlots: []domain.TimeSlot{}, ViewType: domain.ViewWeek}, nil
}

func (m *MockScheduleService) List(ctx context.Context, filter domain.ScheduleFilter) (*domain.ScheduleListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.ScheduleListResponse{
		Data:       []domain.ScheduleSummary{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockScheduleService) Update(ctx context.Context, id string, req *domain.UpdateScheduleRequest) (*domain.Schedule, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	schedule := &domain.Schedule{ID: id, Name: "Week", TimeSlots: []domain.TimeSlot{}}
	if req.Name != nil {
		schedule.Name = *req.Name
	}
	return schedule, nil
}

func (m *MockScheduleService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *MockScheduleService) Export(ctx context.Context) ([]domain.Schedule, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx)
	}
	return []domain.Schedule{}, nil
}

func (m *MockScheduleService) Import(ctx context.Context, schedules []domain.Schedule) error {
	if m.importFunc != nil {
		return m.importFunc(ctx, schedules)
	}
	return nil
}

// MockTimeSlotService is a mock implementation of TimeSlotService
type MockTimeSlotService struct {
	createFunc func(ctx context.Context, scheduleID string, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error)
	listFunc   func(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) (*domain.TimeSlotListResponse, error)
	updateFunc func(ctx context.Context, scheduleID, slotID string, req *domain.UpdateTimeSlotRequest) (*domain.TimeSlot, error)
	deleteFunc func(ctx context.Context, scheduleID, slotID string) error
}

func (m *MockTimeSlotService) Create(ctx context.Context, scheduleID string, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, scheduleID, req)
	}
	return &domain.TimeSlot{
		ID:         "new-slot",
		ScheduleID: scheduleID,
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Date:       req.Date,
		Category:   domain.CategoryOther,
	}, nil
}

func (m *MockTimeSlotService) List(ctx context.Context, scheduleID string, filter domain.TimeSlotFilter) (*domain.TimeSlotListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, scheduleID, filter)
	}
	return &domain.TimeSlotListResponse{Data: []domain.TimeSlot{}}, nil
}

func (m *MockTimeSlotService) Update(ctx context.Context, scheduleID, slotID string, req *domain.UpdateTimeSlotRequest) (*domain.TimeSlot, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, scheduleID, slotID, req)
	}
	slot := &domain.TimeSlot{ID: slotID, ScheduleID: scheduleID, Title: "Gym", StartTime: "07:00", EndTime: "08:00", Date: "2024-01-15"}
	req.Apply(slot)
	return slot, nil
}

func (m *MockTimeSlotService) Delete(ctx context.Context, scheduleID, slotID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, scheduleID, slotID)
	}
	return nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*service.AnalysisResult, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*service.AnalysisResult, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, scheduleID, req)
	}
	scope := analysis.DayScope(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	return &service.AnalysisResult{
		Schedule: &domain.Schedule{ID: scheduleID},
		Scope:    scope,
		Slots:    []domain.TimeSlot{},
		Analysis: analysis.Analyze(nil, scope),
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, scheduleID, req)
	}
	return &domain.InsightsResponse{
		Analysis: analysis.Analyze(nil, analysis.DayScope(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))),
		Insights: domain.InsightsOutput{
			Summary:         "Your day is mostly free.",
			Observations:    []string{"No conflicts"},
			Recommendations: []string{"Plan a focus block"},
		},
	}, nil
}
