package repository

import (
	"github.com/asegedech/volunteer-api/internal/models"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	// FindByID finds an admin by ID
	FindByID(id uint64) (*models.Admin, error)

	// FindByEmail finds an admin by exact email
	FindByEmail(email string) (*models.Admin, error)

	// FindByEmailIn finds the first admin whose email is in the candidate
	// list, lowest ID first
	FindByEmailIn(emails []string) (*models.Admin, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks ordered by ID descending, optionally restricted
	// to active tasks
	List(activeOnly bool) ([]models.Task, error)

	// Update saves all fields of a task
	Update(task *models.Task) error

	// Delete removes a task and its appointments
	Delete(id uint64) error
}

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	// CountOverlapping counts appointments for a task on a date whose
	// half-open interval intersects [start, end)
	CountOverlapping(taskID uint64, date, start, end string) (int64, error)

	// Book inserts an appointment unless the overlap count for its slot has
	// reached maxVolunteers; nil means unlimited. The capacity check and the
	// insert run in a single transaction.
	Book(appointment *models.Appointment, maxVolunteers *uint) error
}
