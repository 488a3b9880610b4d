package service

//go:generate mockgen -source=alert.go -destination=mocks/alert.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultAlertRadiusMeters - радиус оповещений, если клиент его не передал;
	// в том же радиусе от подтверждённого инцидента рассылаются оповещения по местам пользователей
	DefaultAlertRadiusMeters = 5000.0

	alertsLimit           = 50
	alertIncidentsLimit   = 20
	incidentAlertIDPrefix = "incident-"
)

type AlertRepository interface {
	ListUnreadNear(ctx context.Context, userID uuid.UUID, at geo.Coordinate, radiusMeters float64, limit int) ([]*models.Alert, error)
	ActiveIncidentsNear(ctx context.Context, from, to geo.Coordinate, radiusMeters float64, limit int) ([]models.NearbyIncident, error)
	// MarkRead возвращает ErrAlertNotFound, если оповещения нет или оно адресовано другому пользователю
	MarkRead(ctx context.Context, userID uuid.UUID, alertID int64) error
}

type AlertService interface {
	// Nearby - непрочитанные оповещения userID (если задан) и активные инциденты в радиусе, ближайшие первыми
	Nearby(ctx context.Context, userID *uuid.UUID, at geo.Coordinate, radiusMeters float64) ([]*models.Alert, error)
	MarkRead(ctx context.Context, userID uuid.UUID, alertID int64) error
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		logger: logger,
	}
}

func (s *alertService) Nearby(ctx context.Context, userID *uuid.UUID, at geo.Coordinate, radiusMeters float64) ([]*models.Alert, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultAlertRadiusMeters
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "Nearby",
		"radius":  radiusMeters,
	})

	alerts := make([]*models.Alert, 0)
	if userID != nil {
		log = log.WithField("user_id", *userID)
		stored, err := s.repo.ListUnreadNear(ctx, *userID, at, radiusMeters, alertsLimit)
		if err != nil {
			log.WithError(err).Error("Failed to list alerts")
			return nil, fmt.Errorf("service: could not list alerts: %w", err)
		}
		for _, a := range stored {
			if a.Title == "" {
				a.Title = a.Type + " Alert"
			}
			if a.Severity == "" {
				a.Severity = models.SeverityMedium
			}
			a.DistanceMeters = math.Round(a.DistanceMeters)
			alerts = append(alerts, a)
		}
	}

	incidents, err := s.repo.ActiveIncidentsNear(ctx, at, at, radiusMeters, alertIncidentsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for alerts")
		return nil, fmt.Errorf("service: could not list nearby incidents: %w", err)
	}
	for _, inc := range incidents {
		alerts = append(alerts, incidentAlert(inc))
	}

	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].DistanceMeters < alerts[j].DistanceMeters })
	if len(alerts) > alertsLimit {
		alerts = alerts[:alertsLimit]
	}
	return alerts, nil
}

// incidentAlert представляет активный инцидент как непрочитанное оповещение
func incidentAlert(inc models.NearbyIncident) *models.Alert {
	id := inc.ID
	severity := inc.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	return &models.Alert{
		ID:                  incidentAlertIDPrefix + inc.ID.String(),
		Type:                models.AlertTypeIncident,
		Title:               inc.IncidentType.Title() + " Nearby",
		Message:             inc.Description,
		Latitude:            inc.Latitude,
		Longitude:           inc.Longitude,
		DistanceMeters:      math.Round(inc.DistanceMeters),
		Severity:            severity,
		IncidentID:          &id,
		LocationDescription: inc.LocationDescription,
		CreatedAt:           inc.CreatedAt,
	}
}

func (s *alertService) MarkRead(ctx context.Context, userID uuid.UUID, alertID int64) error {
	if err := s.repo.MarkRead(ctx, userID, alertID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "alert",
			"method":   "MarkRead",
			"user_id":  userID,
			"alert_id": alertID,
		}).WithError(err).Warn("Failed to mark alert as read")
		return fmt.Errorf("service: could not mark alert as read: %w", err)
	}
	return nil
}
