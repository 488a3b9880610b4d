package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentTypeMajorAccident    IncidentType = "major_accident"
	IncidentTypeHeavyCongestion  IncidentType = "heavy_congestion"
	IncidentTypeRoadConstruction IncidentType = "road_construction"
)

type Severity string

const (
	SeverityMajor  Severity = "major"
	SeverityMedium Severity = "medium"
	SeverityMinor  Severity = "minor"
)

type IncidentStatus string

const (
	IncidentStatusActive   IncidentStatus = "active"
	IncidentStatusResolved IncidentStatus = "resolved"
)

// Title - тип словами: "major_accident" -> "Major Accident"
func (t IncidentType) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SeverityFor выводит тяжесть из типа инцидента
func SeverityFor(t IncidentType) Severity {
	switch t {
	case IncidentTypeMajorAccident:
		return SeverityMajor
	case IncidentTypeRoadConstruction:
		return SeverityMinor
	default:
		return SeverityMedium
	}
}

type Incident struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	Type                IncidentType   `json:"incident_type"`
	Severity            Severity       `json:"severity"`
	Description         string         `json:"description"`
	LocationDescription string         `json:"location_description,omitempty"`
	NumberOfVehicles    *int           `json:"number_of_vehicles,omitempty"`
	Latitude            float64        `json:"latitude"`
	Longitude           float64        `json:"longitude"`
	ReportedLatitude    float64        `json:"reported_latitude"`
	ReportedLongitude   float64        `json:"reported_longitude"`
	GPSDistanceMeters   float64        `json:"gps_distance_meters"`
	CredibilityScore    float64        `json:"credibility_score"`
	SimilarReportsCount int            `json:"similar_reports_count"`
	Verified            bool           `json:"verified"`
	Status              IncidentStatus `json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// PublicIncident - форма инцидента для WebSocket, NATS и вебхуков: без автора и GPS устройства
type PublicIncident struct {
	ID                  uuid.UUID      `json:"id"`
	IncidentType        IncidentType   `json:"incidentType"`
	Severity            Severity       `json:"severity"`
	Description         string         `json:"description"`
	LocationDescription string         `json:"locationDescription,omitempty"`
	NumberOfVehicles    *int           `json:"numberOfVehicles,omitempty"`
	Latitude            float64        `json:"latitude"`
	Longitude           float64        `json:"longitude"`
	CredibilityScore    float64        `json:"credibilityScore"`
	SimilarReportsCount int            `json:"similarReportsCount"`
	IsVerified          bool           `json:"isVerified"`
	Status              IncidentStatus `json:"status"`
	CreatedAt           time.Time      `json:"createdAt"`
}

func (i *Incident) Public() PublicIncident {
	return PublicIncident{
		ID:                  i.ID,
		IncidentType:        i.Type,
		Severity:            i.Severity,
		Description:         i.Description,
		LocationDescription: i.LocationDescription,
		NumberOfVehicles:    i.NumberOfVehicles,
		Latitude:            i.Latitude,
		Longitude:           i.Longitude,
		CredibilityScore:    i.CredibilityScore,
		SimilarReportsCount: i.SimilarReportsCount,
		IsVerified:          i.Verified,
		Status:              i.Status,
		CreatedAt:           i.CreatedAt,
	}
}

// IncidentSummary - проекция активного инцидента для сравнения текстов
type IncidentSummary struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
}

// IncidentFilter - параметры выборки списка инцидентов
type IncidentFilter struct {
	Type     IncidentType
	Verified *bool
	Status   IncidentStatus
	Limit    int
}

// IncidentStats - агрегаты для панели статистики
type IncidentStats struct {
	Total           int            `json:"total"`
	Active          int            `json:"active"`
	ByType          map[string]int `json:"by_type"`
	BySeverity      map[string]int `json:"by_severity"`
	ActiveReporters int            `json:"active_reporters"`
	WindowMinutes   int            `json:"window_minutes"`
}
