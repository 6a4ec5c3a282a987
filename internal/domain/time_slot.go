package domain

// Category groups time slots by the kind of activity.
// @Description Activity category of a time slot.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLeisure  Category = "leisure"
	CategoryOther    Category = "other"
)

// Priority is the user-assigned importance of a time slot.
// @Description Priority of a time slot.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TimeSlot is a single scheduled activity on a calendar day.
// StartTime and EndTime are HH:mm wall-clock strings; an EndTime earlier than
// StartTime means the slot runs past midnight.
// @Description Scheduled activity with wall-clock start/end on a specific date.
type TimeSlot struct {
	// Unique slot identifier
	ID string `gorm:"type:varchar(64);primaryKey" json:"id" example:"3f2b8c1e-4c9a-4b8e-9d43-8a1d2c7e5f10"`
	// Owning schedule
	ScheduleID string `gorm:"type:varchar(64);not null;index:idx_time_slots_schedule_date" json:"-"`
	// Activity title
	Title string `gorm:"type:varchar(200);not null" json:"title" example:"Team standup"`
	// Start time (HH:mm, 24-hour)
	StartTime string `gorm:"type:char(5);not null" json:"startTime" example:"09:00"`
	// End time (HH:mm, 24-hour); earlier than startTime when crossing midnight
	EndTime string `gorm:"type:char(5);not null" json:"endTime" example:"09:30"`
	// Calendar day (YYYY-MM-DD)
	Date string `gorm:"type:char(10);not null;index:idx_time_slots_schedule_date" json:"date" example:"2024-01-15"`
	// Activity category
	Category Category `gorm:"type:varchar(16);not null;default:'other'" json:"category" example:"work"`
	// Optional free-form description
	Description string `gorm:"type:text" json:"description,omitempty"`
	// Optional location
	Location string `gorm:"type:varchar(200)" json:"location,omitempty" example:"Room 4"`
	// Optional priority
	Priority Priority `gorm:"type:varchar(8)" json:"priority,omitempty" example:"medium"`
	// Stored but not expanded by the analysis
	IsRecurring bool `gorm:"not null;default:false" json:"isRecurring,omitempty"`
	// Weekdays (0 = Sunday) the slot recurs on
	RecurringDays []int `gorm:"serializer:json" json:"recurringDays,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// CreateTimeSlotRequest is the request body for adding a slot to a schedule.
// @Description Request payload for adding a time slot.
type CreateTimeSlotRequest struct {
	Title         string   `json:"title" validate:"required,max=200" example:"Team standup"`
	StartTime     string   `json:"startTime" validate:"required,clock" example:"09:00"`
	EndTime       string   `json:"endTime" validate:"required,clock" example:"09:30"`
	Date          string   `json:"date" validate:"required,civildate" example:"2024-01-15"`
	Category      Category `json:"category" validate:"omitempty,oneof=work study personal health leisure other" example:"work"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location      string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Priority      Priority `json:"priority,omitempty" validate:"omitempty,oneof=high medium low" example:"medium"`
	IsRecurring   bool     `json:"isRecurring,omitempty"`
	RecurringDays []int    `json:"recurringDays,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
}

// UpdateTimeSlotRequest is the request body for partially updating a slot.
// Nil fields are left unchanged.
// @Description Partial update for a time slot.
type UpdateTimeSlotRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	StartTime     *string   `json:"startTime,omitempty" validate:"omitempty,clock" example:"10:00"`
	EndTime       *string   `json:"endTime,omitempty" validate:"omitempty,clock" example:"11:00"`
	Date          *string   `json:"date,omitempty" validate:"omitempty,civildate" example:"2024-01-16"`
	Category      *Category `json:"category,omitempty" validate:"omitempty,oneof=work study personal health leisure other"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location      *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Priority      *Priority `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	IsRecurring   *bool     `json:"isRecurring,omitempty"`
	RecurringDays []int     `json:"recurringDays,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
}

// Apply copies the non-nil fields of the request onto the slot.
func (r *UpdateTimeSlotRequest) Apply(slot *TimeSlot) {
	if r.Title != nil {
		slot.Title = *r.Title
	}
	if r.StartTime != nil {
		slot.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		slot.EndTime = *r.EndTime
	}
	if r.Date != nil {
		slot.Date = *r.Date
	}
	if r.Category != nil {
		slot.Category = *r.Category
	}
	if r.Description != nil {
		slot.Description = *r.Description
	}
	if r.Location != nil {
		slot.Location = *r.Location
	}
	if r.Priority != nil {
		slot.Priority = *r.Priority
	}
	if r.IsRecurring != nil {
		slot.IsRecurring = *r.IsRecurring
	}
	if r.RecurringDays != nil {
		slot.RecurringDays = r.RecurringDays
	}
}

// TimeSlotFilter restricts slot listings to an inclusive date range.
type TimeSlotFilter struct {
	From string `json:"from" validate:"omitempty,civildate"`
	To   string `json:"to" validate:"omitempty,civildate"`
}

// TimeSlotListResponse is the response body for listing slots.
// @Description Time slots of a schedule, sorted by date and start time.
type TimeSlotListResponse struct {
	Data []TimeSlot `json:"data"`
}
