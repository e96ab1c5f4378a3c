package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/asegedech/volunteer-api/internal/dto"
	apierrors "github.com/asegedech/volunteer-api/internal/errors"
	"github.com/asegedech/volunteer-api/internal/models"
	"github.com/asegedech/volunteer-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task CRUD HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// TaskRequest is the JSON body for create and update.
type TaskRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	MaxVolunteers    *uint            `json:"maxVolunteers"`
	SlotDurationMins uint             `json:"slotDurationMins"`
	Type             models.TaskType  `json:"type"`
	DaysOfWeek       []string         `json:"daysOfWeek"`
	TimeWindows      []dto.TimeWindow `json:"timeWindows"`
	EventDates       []string         `json:"eventDates"`
	Active           bool             `json:"active"`
}

func (r TaskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		Title:            r.Title,
		Description:      r.Description,
		MaxVolunteers:    r.MaxVolunteers,
		SlotDurationMins: r.SlotDurationMins,
		Type:             r.Type,
		DaysOfWeek:       r.DaysOfWeek,
		TimeWindows:      r.TimeWindows,
		EventDates:       r.EventDates,
		Active:           r.Active,
	}
}

// ListPublic returns active tasks for the volunteer-facing listing.
func (h *TaskHandler) ListPublic(c *gin.Context) {
	tasks, err := h.taskService.ListActive()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListAdmin returns all tasks including inactive ones. Auth is enforced by
// middleware on the route group.
func (h *TaskHandler) ListAdmin(c *gin.Context) {
	tasks, err := h.taskService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Create creates a new task definition.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(req.toInput())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update replaces all mutable fields of a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(id, req.toInput())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a task and its appointments. Deleting an absent ID still
// reports success.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return 0, false
	}
	return id, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, "Title is required")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		apierrors.InternalError(c, "")
	}
}
