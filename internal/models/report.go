package models

import (
	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
)

// IncidentReport - черновик отчёта до сохранения. ClaimedLocation - где произошёл инцидент,
// DeviceLocation - GPS устройства в момент отправки.
type IncidentReport struct {
	Type                IncidentType
	ClaimedLocation     geo.Coordinate
	DeviceLocation      geo.Coordinate
	Description         string
	NumberOfVehicles    *int
	LocationDescription string
}

// IntakeResult - итог успешного приёма отчёта
type IntakeResult struct {
	ID                  uuid.UUID
	CoinsAwarded        int
	CredibilityScore    float64
	SimilarReportsCount int
	Severity            Severity
	Verified            bool
}
