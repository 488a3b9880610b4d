package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlertTypeIncident         = "incident"
	AlertTypeVerifiedIncident = "verified_incident"
)

// Alert - оповещение о событии рядом с точкой запроса. Сохранённые оповещения
// адресованы пользователю; активные инциденты поблизости отдаются как оповещения
// с ID вида "incident-<uuid>".
type Alert struct {
	ID                  string     `json:"id"`
	Type                string     `json:"alert_type"`
	Title               string     `json:"title"`
	Message             string     `json:"message"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	DistanceMeters      float64    `json:"distance"`
	Severity            Severity   `json:"severity"`
	IsRead              bool       `json:"is_read"`
	IncidentID          *uuid.UUID `json:"incident_id,omitempty"`
	LocationDescription string     `json:"location_description,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
