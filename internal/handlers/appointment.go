package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/asegedech/volunteer-api/internal/errors"
	"github.com/asegedech/volunteer-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AppointmentHandler coordinates the public booking endpoint.
type AppointmentHandler struct {
	bookingService *services.BookingService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(bookingService *services.BookingService) *AppointmentHandler {
	return &AppointmentHandler{
		bookingService: bookingService,
	}
}

// Create books an appointment slot against an active task.
func (h *AppointmentHandler) Create(c *gin.Context) {
	type BookingRequest struct {
		TaskID    uint64 `json:"taskId"`
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Phone     string `json:"phone"`
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.bookingService.Book(services.BookingInput{
		TaskID:    req.TaskID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Phone:     req.Phone,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingBookingFields),
		errors.Is(err, services.ErrInvalidTimeRange):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskUnavailable):
		apierrors.NotFound(c, "Task not found or inactive")
	case errors.Is(err, services.ErrSlotFull):
		apierrors.Conflict(c, "That time slot is full")
	default:
		apierrors.InternalError(c, "")
	}
}
