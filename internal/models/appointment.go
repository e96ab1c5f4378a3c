package models

import "time"

// Appointment is a volunteer's booked slot against a task on one date.
// Times are wall-clock "HH:MM" strings; zero-padded, so lexicographic
// comparison is chronological within a day. Appointments are never updated,
// only created and removed together with their task.
type Appointment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TaskID    uint64    `gorm:"not null;index" json:"task_id"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Phone     string    `gorm:"type:varchar(32);not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
