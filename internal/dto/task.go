package dto

import (
	"strings"
	"time"

	"github.com/asegedech/volunteer-api/internal/models"
)

// TimeWindow is one wall-clock interval within a day, half-open at the end.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TaskDTO is the wire form of a task. Field names are camelCase, pinned by
// the volunteer frontend.
type TaskDTO struct {
	ID               uint64          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	MaxVolunteers    *uint           `json:"maxVolunteers"`
	SlotDurationMins uint            `json:"slotDurationMins"`
	Type             models.TaskType `json:"type"`
	DaysOfWeek       []string        `json:"daysOfWeek"`
	TimeWindows      []TimeWindow    `json:"timeWindows"`
	EventDates       []string        `json:"eventDates"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToTaskDTO decodes the stored flat form into the typed wire form. Pure;
// malformed delimiter data is tolerated by dropping empty fragments.
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		MaxVolunteers:    task.MaxVolunteers,
		SlotDurationMins: task.SlotDurationMins,
		Type:             task.Type,
		DaysOfWeek:       SplitList(task.DaysOfWeek),
		TimeWindows:      ParseTimeWindows(task.TimeWindows),
		EventDates:       SplitList(task.EventDates),
		Active:           task.Active != 0,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

// ToTaskDTOs decodes a slice of stored tasks.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskDTO(task)
	}
	return out
}

// SplitList decodes a comma-joined list, dropping empty tokens. Never
// returns nil so the wire form stays a JSON array.
func SplitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// JoinList encodes a list as comma-joined text, filtering empty entries.
func JoinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, ",")
}

// ParseTimeWindows decodes "09:00-12:00|14:00-17:00" into typed windows.
// Fragments without a "-" are dropped; the split is on the first "-" only.
func ParseTimeWindows(raw string) []TimeWindow {
	windows := make([]TimeWindow, 0)
	for _, fragment := range strings.Split(raw, "|") {
		if !strings.Contains(fragment, "-") {
			continue
		}
		parts := strings.SplitN(fragment, "-", 2)
		windows = append(windows, TimeWindow{Start: parts[0], End: parts[1]})
	}
	return windows
}

// JoinTimeWindows encodes typed windows into the stored pipe-joined form.
// Start and end are trimmed; a pair is kept only when both are non-empty.
func JoinTimeWindows(windows []TimeWindow) string {
	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		start := strings.TrimSpace(w.Start)
		end := strings.TrimSpace(w.End)
		if start != "" && end != "" {
			parts = append(parts, start+"-"+end)
		}
	}
	return strings.Join(parts, "|")
}

// EncodeActive encodes the active flag as the stored 0/1 integer.
func EncodeActive(active bool) int {
	if active {
		return 1
	}
	return 0
}
