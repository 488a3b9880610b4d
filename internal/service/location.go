package service

//go:generate mockgen -source=location.go -destination=mocks/location.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/travel"
	"github.com/sirupsen/logrus"
)

const (
	locationHistoryLimit = 50
	searchHistoryLimit   = 30
	tripIncidentsLimit   = 5
	tripIncidentRadius   = 2000.0
	// predictionRoutesLimit - сколько привычных маршрутов рассматривает прогноз
	predictionRoutesLimit = 5
	// minRouteFrequency - маршрут считается привычным после стольких поездок в этот день недели
	minRouteFrequency    = 2
	recentIncidentWindow = 2 * time.Hour

	NoTravelHistoryMessage = "Not enough travel history to make predictions. Keep using the app to build your profile!"
)

// LocationRepository - история мест и поездок пользователя
type LocationRepository interface {
	// Upsert создаёт место или, если (пользователь, имя, тип) уже есть, увеличивает счётчик и обновляет координаты
	Upsert(ctx context.Context, location *models.TrackedLocation) (*models.TrackResult, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TrackedLocation, error)
	ListTrips(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error)
	RouteFrequencies(ctx context.Context, userID uuid.UUID, weekday time.Weekday, minFrequency, limit int) ([]models.RouteFrequency, error)
	// ActiveIncidentsNear - активные инциденты в радиусе от любой из двух точек, ближайшие первыми
	ActiveIncidentsNear(ctx context.Context, from, to geo.Coordinate, radiusMeters float64, limit int) ([]models.NearbyIncident, error)
	HasActiveIncidentsSince(ctx context.Context, since time.Time) (bool, error)
}

type TrackInput struct {
	Name     string
	Type     models.LocationType
	Location geo.Coordinate
}

type LocationService interface {
	Track(ctx context.Context, userID uuid.UUID, input TrackInput) (*models.TrackResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]*models.TrackedLocation, error)
	SearchHistory(ctx context.Context, userID uuid.UUID) ([]models.TripSummary, error)
	// Predict возвращает nil без ошибки, если привычных маршрутов на этот день недели нет
	Predict(ctx context.Context, userID uuid.UUID) (*models.RoutePrediction, error)
}

type locationService struct {
	repo   LocationRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewLocationService(repo LocationRepository, logger *logrus.Logger, now func() time.Time) LocationService {
	if now == nil {
		now = time.Now
	}
	return &locationService{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

func (s *locationService) Track(ctx context.Context, userID uuid.UUID, input TrackInput) (*models.TrackResult, error) {
	if input.Type == "" {
		input.Type = models.LocationSearch
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":       "location",
		"method":        "Track",
		"user_id":       userID,
		"location_type": input.Type,
	})

	result, err := s.repo.Upsert(ctx, &models.TrackedLocation{
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Latitude:  input.Location.Latitude,
		Longitude: input.Location.Longitude,
	})
	if err != nil {
		log.WithError(err).Error("Failed to track location")
		return nil, fmt.Errorf("service: could not track location: %w", err)
	}

	log.WithFields(logrus.Fields{"location_id": result.LocationID, "updated": result.Updated}).Debug("Location tracked")
	return result, nil
}

func (s *locationService) History(ctx context.Context, userID uuid.UUID) ([]*models.TrackedLocation, error) {
	locations, err := s.repo.ListRecent(ctx, userID, locationHistoryLimit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "location", "method": "History", "user_id": userID}).
			WithError(err).Error("Failed to list locations")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	return locations, nil
}

// SearchHistory - поездки с оценкой времени в пути и до пяти активных инцидентов у их концов
func (s *locationService) SearchHistory(ctx context.Context, userID uuid.UUID) ([]models.TripSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "SearchHistory",
		"user_id": userID,
	})

	trips, err := s.repo.ListTrips(ctx, userID, searchHistoryLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list trips")
		return nil, fmt.Errorf("service: could not list trips: %w", err)
	}

	summaries := make([]models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summary := travel.SummarizeTrip(trip)
		summary.Incidents, err = s.repo.ActiveIncidentsNear(ctx, trip.From, trip.To, tripIncidentRadius, tripIncidentsLimit)
		if err != nil {
			log.WithError(err).Error("Failed to load incidents along trip")
			return nil, fmt.Errorf("service: could not load trip incidents: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *locationService) Predict(ctx context.Context, userID uuid.UUID) (*models.RoutePrediction, error) {
	now := s.now()
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Predict",
		"user_id": userID,
		"weekday": now.Weekday(),
	})

	routes, err := s.repo.RouteFrequencies(ctx, userID, now.Weekday(), minRouteFrequency, predictionRoutesLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load route frequencies")
		return nil, fmt.Errorf("service: could not load routes: %w", err)
	}
	if len(routes) == 0 {
		log.Debug("No recurring routes for prediction")
		return nil, nil
	}

	recent, err := s.repo.HasActiveIncidentsSince(ctx, now.Add(-recentIncidentWindow))
	if err != nil {
		log.WithError(err).Error("Failed to check recent incidents")
		return nil, fmt.Errorf("service: could not check recent incidents: %w", err)
	}

	return travel.PredictRoute(routes, now.Hour(), recent), nil
}
