package models

import "time"

type TaskType string

const (
	TaskTypeRecurring TaskType = "recurring"
	TaskTypeEvent     TaskType = "event"
)

// NormalizeTaskType coerces unknown values to recurring, matching the
// stored-column default. Invalid input is not an error here.
func NormalizeTaskType(t TaskType) TaskType {
	if t == TaskTypeEvent {
		return TaskTypeEvent
	}
	return TaskTypeRecurring
}

// Task is the stored form of a volunteer task. List-valued fields are kept
// flat: DaysOfWeek and EventDates are comma-joined, TimeWindows is
// "HH:MM-HH:MM" pairs joined by "|", Active is a 0/1 integer. The dto
// package converts between this form and the typed wire form.
type Task struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	MaxVolunteers    *uint     `json:"max_volunteers"`
	SlotDurationMins uint      `gorm:"not null;default:60" json:"slot_duration_mins"`
	Type             TaskType  `gorm:"type:varchar(20);not null;default:'recurring'" json:"type"`
	DaysOfWeek       string    `gorm:"type:text" json:"days_of_week"`
	TimeWindows      string    `gorm:"type:text" json:"time_windows"`
	EventDates       string    `gorm:"type:text" json:"event_dates"`
	Active           int       `gorm:"not null;default:1" json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Appointments []Appointment `gorm:"foreignKey:TaskID" json:"appointments,omitempty"`
}
