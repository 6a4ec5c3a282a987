package domain

import "time"

// ViewType is the calendar window a schedule is viewed and analysed in.
// @Description Viewing scope: day, week, month or custom date range.
type ViewType string

const (
	ViewDay    ViewType = "day"
	ViewWeek   ViewType = "week"
	ViewMonth  ViewType = "month"
	ViewCustom ViewType = "custom"
)

// Valid reports whether v is one of the known view types.
func (v ViewType) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewCustom:
		return true
	}
	return false
}

// Schedule is a named collection of time slots.
type Schedule struct {
	ID         string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	TimeSlots  []TimeSlot `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"timeSlots"`
	CreatedAt  time.Time  `gorm:"not null;index:idx_schedules_created,sort:desc" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updatedAt"`
	ViewType   ViewType   `gorm:"type:varchar(8);not null;default:'week'" json:"viewType"`
	TargetDate string     `gorm:"type:char(10)" json:"targetDate"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// CreateScheduleRequest is the request body for creating a schedule.
// @Description Request payload for creating a schedule.
type CreateScheduleRequest struct {
	// Schedule name
	Name string `json:"name" validate:"required,max=100" example:"Exam week"`
	// Default view for this schedule
	ViewType ViewType `json:"viewType,omitempty" validate:"omitempty,oneof=day week month custom" example:"week"`
	// Reference date for the default view (YYYY-MM-DD)
	TargetDate string `json:"targetDate,omitempty" validate:"omitempty,civildate" example:"2024-01-15"`
}

// UpdateScheduleRequest is the request body for partially updating a schedule.
// @Description Partial update for a schedule.
type UpdateScheduleRequest struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Exam week v2"`
	ViewType   *ViewType `json:"viewType,omitempty" validate:"omitempty,oneof=day week month custom" example:"month"`
	TargetDate *string   `json:"targetDate,omitempty" validate:"omitempty,civildate" example:"2024-02-01"`
}

// ScheduleSummary is a schedule without its slots, used in listings.
// @Description Schedule header with slot count.
type ScheduleSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TimeSlotCount int       `json:"timeSlotCount" example:"12"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	ViewType      ViewType  `json:"viewType" example:"week"`
	TargetDate    string    `json:"targetDate" example:"2024-01-15"`
}

// ToSummary drops the slots and keeps their count.
func (s *Schedule) ToSummary() ScheduleSummary {
	return ScheduleSummary{
		ID:            s.ID,
		Name:          s.Name,
		TimeSlotCount: len(s.TimeSlots),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		ViewType:      s.ViewType,
		TargetDate:    s.TargetDate,
	}
}

// ScheduleListResponse is the response body for listing schedules.
// @Description Paginated list of schedules.
type ScheduleListResponse struct {
	Data       []ScheduleSummary  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"nextCursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"hasMore" example:"true"`
}

// ScheduleFilter contains paging parameters for listing schedules.
type ScheduleFilter struct {
	Limit  int
	Cursor string
}
