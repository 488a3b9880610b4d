package service

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error
	GetStats(ctx context.Context, windowMinutes int) (*models.IncidentStats, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт чтения инцидентов
type IncidentService interface {
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	GetStats(ctx context.Context) (*models.IncidentStats, error)
}

type incidentService struct {
	repo          IncidentRepository
	logger        *logrus.Logger
	windowMinutes int
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, statsWindowMinutes int) IncidentService {
	if statsWindowMinutes < 1 {
		statsWindowMinutes = 60
	}
	return &incidentService{
		repo:          repo,
		logger:        logger,
		windowMinutes: statsWindowMinutes,
	}
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// кеш недоступен - идём в БД
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	return incident, nil
}

// ListIncidents возвращает последние инциденты по фильтру
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Limit < 1 || filter.Limit > maxListLimit {
		filter.Limit = defaultListLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"type":    filter.Type,
		"status":  filter.Status,
		"limit":   filter.Limit,
	})
	log.Debug("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// GetStats - агрегаты по инцидентам и число активных авторов за окно
func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
		"window":  s.windowMinutes,
	})

	stats, err := s.repo.GetStats(ctx, s.windowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	stats.WindowMinutes = s.windowMinutes
	return stats, nil
}
