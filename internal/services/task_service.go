package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asegedech/volunteer-api/internal/constants"
	"github.com/asegedech/volunteer-api/internal/dto"
	"github.com/asegedech/volunteer-api/internal/models"
	"github.com/asegedech/volunteer-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTaskNotFound  = errors.New("task not found")
)

// TaskService handles task definition business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskInput carries the typed form of a task for create and update. Update
// is a full replace of every field here; ID and CreatedAt are never taken
// from input.
type TaskInput struct {
	Title            string
	Description      string
	MaxVolunteers    *uint
	SlotDurationMins uint
	Type             models.TaskType
	DaysOfWeek       []string
	TimeWindows      []dto.TimeWindow
	EventDates       []string
	Active           bool
}

// ListActive returns active tasks, newest first.
func (s *TaskService) ListActive() ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.List(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// ListAll returns every task regardless of active flag, newest first.
func (s *TaskService) ListAll() ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.List(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// Create validates and persists a new task, then returns the decoded stored
// form so the response reflects exactly what normalization produced.
func (s *TaskService) Create(input TaskInput) (*dto.TaskDTO, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now().UTC()
	task := s.encode(input, title)
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.taskRepo.Create(&task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.decodeStored(task.ID)
}

// Update replaces all mutable fields of an existing task, preserving ID and
// CreatedAt, and returns the decoded stored form.
func (s *TaskService) Update(id uint64, input TaskInput) (*dto.TaskDTO, error) {
	existing, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	task := s.encode(input, title)
	task.ID = existing.ID
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(&task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.decodeStored(task.ID)
}

// Delete removes a task and its appointments. Idempotent: an absent ID is
// still a success.
func (s *TaskService) Delete(id uint64) error {
	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// encode builds the stored flat form from typed input, applying the
// normalization rules: unknown type coerced to recurring, zero slot duration
// defaulted, list fields delimiter-joined.
func (s *TaskService) encode(input TaskInput, title string) models.Task {
	slotMins := input.SlotDurationMins
	if slotMins == 0 {
		slotMins = constants.DefaultSlotDurationMins
	}

	return models.Task{
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		MaxVolunteers:    input.MaxVolunteers,
		SlotDurationMins: slotMins,
		Type:             models.NormalizeTaskType(input.Type),
		DaysOfWeek:       dto.JoinList(input.DaysOfWeek),
		TimeWindows:      dto.JoinTimeWindows(input.TimeWindows),
		EventDates:       dto.JoinList(input.EventDates),
		Active:           dto.EncodeActive(input.Active),
	}
}

// decodeStored re-reads a task and decodes it, so responses round-trip
// through the serializer rather than echoing raw input.
func (s *TaskService) decodeStored(id uint64) (*dto.TaskDTO, error) {
	stored, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	decoded := dto.ToTaskDTO(*stored)
	return &decoded, nil
}
