package dto

import "family-records-api/internal/reminder"

// Request DTOs

type CreateReminderRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Person   string `json:"person" validate:"omitempty,max=255"`
	DueDate  string `json:"due_date" validate:"required,datetime=2006-01-02"`
	Priority string `json:"priority" validate:"required,oneof=high medium low"`
}

// Response DTOs

// ReminderFeedResponse carries the derived feed. SourcesSkipped names
// sources that failed to load this run and therefore contributed nothing.
type ReminderFeedResponse struct {
	Reminders      []reminder.Item `json:"reminders"`
	Total          int             `json:"total"`
	SourcesSkipped []string        `json:"sources_skipped,omitempty"`
}
