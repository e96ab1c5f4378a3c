package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asegedech/volunteer-api/internal/models"
	"github.com/asegedech/volunteer-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissingBookingFields = errors.New("taskId, date, startTime, endTime and phone are required")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
	ErrTaskUnavailable      = errors.New("task not found or inactive")
	ErrSlotFull             = errors.New("that time slot is full")
)

// BookingService admits or rejects appointment bookings against a task's
// capacity.
type BookingService struct {
	taskRepo        repository.TaskRepository
	appointmentRepo repository.AppointmentRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(taskRepo repository.TaskRepository, appointmentRepo repository.AppointmentRepository) *BookingService {
	return &BookingService{
		taskRepo:        taskRepo,
		appointmentRepo: appointmentRepo,
	}
}

// BookingInput carries one booking request.
type BookingInput struct {
	TaskID    uint64
	Date      string
	StartTime string
	EndTime   string
	Phone     string
}

// Book validates the request, checks capacity against overlapping
// appointments on the same date, and inserts the appointment. The capacity
// check and insert run in one transaction inside the repository, so two
// concurrent bookings cannot both slip past the limit.
func (s *BookingService) Book(input BookingInput) error {
	booking, task, err := s.validate(input)
	if err != nil {
		return err
	}

	booking.CreatedAt = time.Now().UTC()
	if err := s.appointmentRepo.Book(booking, task.MaxVolunteers); err != nil {
		if errors.Is(err, repository.ErrSlotCapacity) {
			return ErrSlotFull
		}
		return fmt.Errorf("failed to book appointment: %w", err)
	}

	return nil
}

// CanBook runs the admission check without inserting. Advisory only: the
// answer can go stale before a subsequent Book, which re-checks atomically.
func (s *BookingService) CanBook(input BookingInput) error {
	booking, task, err := s.validate(input)
	if err != nil {
		return err
	}

	if task.MaxVolunteers == nil {
		return nil
	}

	count, err := s.appointmentRepo.CountOverlapping(booking.TaskID, booking.Date, booking.StartTime, booking.EndTime)
	if err != nil {
		return fmt.Errorf("failed to count overlapping appointments: %w", err)
	}
	if count >= int64(*task.MaxVolunteers) {
		return ErrSlotFull
	}

	return nil
}

func (s *BookingService) validate(input BookingInput) (*models.Appointment, *models.Task, error) {
	date := strings.TrimSpace(input.Date)
	start := strings.TrimSpace(input.StartTime)
	end := strings.TrimSpace(input.EndTime)
	phone := strings.TrimSpace(input.Phone)

	if input.TaskID == 0 || date == "" || start == "" || end == "" || phone == "" {
		return nil, nil, ErrMissingBookingFields
	}

	// Zero-padded HH:MM strings order lexicographically the same as
	// chronologically within a day.
	if start >= end {
		return nil, nil, ErrInvalidTimeRange
	}

	task, err := s.taskRepo.FindByID(input.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTaskUnavailable
		}
		return nil, nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task.Active == 0 {
		return nil, nil, ErrTaskUnavailable
	}

	booking := &models.Appointment{
		TaskID:    task.ID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Phone:     phone,
	}
	return booking, task, nil
}
