package repository

import (
	"errors"

	"github.com/asegedech/volunteer-api/internal/models"
	"gorm.io/gorm"
)

// ErrSlotCapacity is returned when the overlap count for a slot has reached
// the task's volunteer limit.
var ErrSlotCapacity = errors.New("appointment repository: slot capacity reached")

// GormAppointmentRepository is a GORM implementation of AppointmentRepository
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// CountOverlapping counts same-date appointments intersecting [start, end).
// Half-open intervals: newStart < existingEnd AND existingStart < newEnd,
// so touching endpoints do not overlap. Capacity resets per calendar date.
func (r *GormAppointmentRepository) CountOverlapping(taskID uint64, date, start, end string) (int64, error) {
	return countOverlapping(r.db, taskID, date, start, end)
}

func countOverlapping(db *gorm.DB, taskID uint64, date, start, end string) (int64, error) {
	var count int64
	err := db.Model(&models.Appointment{}).
		Where("task_id = ? AND date = ?", taskID, date).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count, err
}

// Book counts overlaps and inserts inside one transaction, closing the
// check-then-act window between the capacity check and the insert.
func (r *GormAppointmentRepository) Book(appointment *models.Appointment, maxVolunteers *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if maxVolunteers != nil {
			count, err := countOverlapping(tx, appointment.TaskID, appointment.Date, appointment.StartTime, appointment.EndTime)
			if err != nil {
				return err
			}
			if count >= int64(*maxVolunteers) {
				return ErrSlotCapacity
			}
		}

		return tx.Create(appointment).Error
	})
}
