package dto

import (
	"time"

	"lifehub/internal/models"
)

type EventRequest struct {
	Title          string     `json:"title" validate:"required,max=100"`
	StartTime      time.Time  `json:"startTime" validate:"required"`
	EndTime        *time.Time `json:"endTime"`
	Description    string     `json:"description"`
	RelatedEntryID *string    `json:"relatedEntryId" validate:"omitempty,uuid"`
}

// DashboardResponse lists the events of the current month.
type DashboardResponse struct {
	Month  string         `json:"month"`
	Events []models.Event `json:"events"`
}
