package service

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/travel"
	"github.com/sirupsen/logrus"
)

const (
	frequentLocationsLimit   = 10
	locationIncidentsLimit   = 20
	generalPeakHoursLimit    = 8
	travelPointsLimit        = 100
	frequentRoutesLimit      = 10
	peakComparisonWindow     = 30 * 24 * time.Hour
	weeklyTripsWindow        = 7 * 24 * time.Hour
	destinationHourTolerance = 2
	locationIncidentRadiusM  = 1000.0
)

type AnalyticsRepository interface {
	FrequentLocations(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TrackedLocation, error)
	IncidentsNearLocations(ctx context.Context, userID uuid.UUID, radiusMeters float64, limit int) ([]models.LocationIncident, error)
	// TravelPeakOn - самый частый час travel_start/travel_end пользователя за сутки day, nil если поездок не было
	TravelPeakOn(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HourCount, error)
	// ActiveIncidentHours - часы с наибольшим числом активных инцидентов
	ActiveIncidentHours(ctx context.Context, limit int) ([]models.HourCount, error)
	// IncidentHours - инциденты по часам с since, только в дни событий (eventDays) или только в обычные дни
	IncidentHours(ctx context.Context, since time.Time, eventDays bool) ([]models.HourCount, error)
	// TravelPoints - последние точки поездок по возрастанию времени
	TravelPoints(ctx context.Context, userID uuid.UUID, limit int) ([]models.TravelPoint, error)
	TripsPerDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.DayTrips, error)
	HasTravelHistory(ctx context.Context, userID uuid.UUID) (bool, error)
	// TopDestination - самый частый travel_end в часы [fromHour, toHour], при равенстве ближайший к hour; nil если нет
	TopDestination(ctx context.Context, userID uuid.UUID, fromHour, toHour, hour int) (*models.DestinationCount, error)
}

type AnalyticsService interface {
	Daily(ctx context.Context, userID uuid.UUID) (*models.DailyAnalytics, error)
	PeakHours(ctx context.Context) (*models.PeakHoursComparison, error)
	Personalized(ctx context.Context, userID uuid.UUID) (*models.PersonalAnalytics, error)
	PredictDestination(ctx context.Context, userID uuid.UUID) (*models.DestinationPrediction, error)
}

type analyticsService struct {
	repo   AnalyticsRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAnalyticsService(repo AnalyticsRepository, logger *logrus.Logger, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// Daily - частые места пользователя, инциденты рядом с ними, час пик поездок за сегодня
// и общие часы пик активных инцидентов
func (s *analyticsService) Daily(ctx context.Context, userID uuid.UUID) (*models.DailyAnalytics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Daily",
		"user_id": userID,
	})

	locations, err := s.repo.FrequentLocations(ctx, userID, frequentLocationsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load frequent locations")
		return nil, fmt.Errorf("service: could not load frequent locations: %w", err)
	}

	daily := &models.DailyAnalytics{
		FrequentLocations:   locations,
		IncidentsByLocation: make([]models.LocationIncident, 0),
	}

	if len(locations) > 0 {
		daily.IncidentsByLocation, err = s.repo.IncidentsNearLocations(ctx, userID, locationIncidentRadiusM, locationIncidentsLimit)
		if err != nil {
			log.WithError(err).Error("Failed to load incidents near locations")
			return nil, fmt.Errorf("service: could not load incidents near locations: %w", err)
		}

		peak, err := s.repo.TravelPeakOn(ctx, userID, s.now())
		if err != nil {
			log.WithError(err).Error("Failed to load daily travel peak")
			return nil, fmt.Errorf("service: could not load travel peak: %w", err)
		}
		if peak != nil {
			daily.DailyPeakHour = &models.PeakHour{Hour: peak.Hour, Time: travel.FormatHour(peak.Hour), Count: peak.Count}
		}
	}

	hours, err := s.repo.ActiveIncidentHours(ctx, generalPeakHoursLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load incident peak hours")
		return nil, fmt.Errorf("service: could not load peak hours: %w", err)
	}
	daily.PeakHours = make(map[int]int, len(hours))
	for _, h := range hours {
		daily.PeakHours[h.Hour] = h.Count
	}

	return daily, nil
}

// PeakHours сравнивает почасовое число инцидентов за 30 дней в обычные дни и в дни событий
func (s *analyticsService) PeakHours(ctx context.Context) (*models.PeakHoursComparison, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "analytics", "method": "PeakHours"})
	since := s.now().Add(-peakComparisonWindow)

	normal, err := s.repo.IncidentHours(ctx, since, false)
	if err != nil {
		log.WithError(err).Error("Failed to load normal day hours")
		return nil, fmt.Errorf("service: could not load normal day hours: %w", err)
	}
	events, err := s.repo.IncidentHours(ctx, since, true)
	if err != nil {
		log.WithError(err).Error("Failed to load event day hours")
		return nil, fmt.Errorf("service: could not load event day hours: %w", err)
	}

	return &models.PeakHoursComparison{
		NormalDays: travel.HourHistogram(normal),
		EventDays:  travel.HourHistogram(events),
	}, nil
}

func (s *analyticsService) Personalized(ctx context.Context, userID uuid.UUID) (*models.PersonalAnalytics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Personalized",
		"user_id": userID,
	})

	points, err := s.repo.TravelPoints(ctx, userID, travelPointsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load travel points")
		return nil, fmt.Errorf("service: could not load travel history: %w", err)
	}

	weekly, err := s.repo.TripsPerDay(ctx, userID, s.now().Add(-weeklyTripsWindow))
	if err != nil {
		log.WithError(err).Error("Failed to load weekly trips")
		return nil, fmt.Errorf("service: could not load weekly trips: %w", err)
	}

	return &models.PersonalAnalytics{
		MostFrequentRoutes: travel.FrequentRoutes(points, frequentRoutesLimit),
		PeakHour:           travel.PeakHour(points),
		WeeklyTrips:        weekly,
		TotalTrips:         len(points) / 2,
	}, nil
}

// PredictDestination - самое частое место назначения в окне +-2 часа от текущего времени
func (s *analyticsService) PredictDestination(ctx context.Context, userID uuid.UUID) (*models.DestinationPrediction, error) {
	hour := s.now().Hour()
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "PredictDestination",
		"user_id": userID,
		"hour":    hour,
	})

	hasHistory, err := s.repo.HasTravelHistory(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to check travel history")
		return nil, fmt.Errorf("service: could not check travel history: %w", err)
	}
	if !hasHistory {
		return &models.DestinationPrediction{
			Message: "No travel history yet. Start traveling to get predictions!",
		}, nil
	}

	dest, err := s.repo.TopDestination(ctx, userID, hour-destinationHourTolerance, hour+destinationHourTolerance, hour)
	if err != nil {
		log.WithError(err).Error("Failed to load top destination")
		return nil, fmt.Errorf("service: could not load top destination: %w", err)
	}
	if dest == nil {
		return &models.DestinationPrediction{
			HasHistory:       true,
			PredictedTraffic: "unknown",
			Message:          "Insufficient data for predictions.",
		}, nil
	}

	traffic := travel.DestinationTraffic(hour)
	typical := travel.FormatHour(int(math.Round(dest.AvgHour)))
	confidence := "medium"
	if dest.Frequency > 3 {
		confidence = "high"
	}

	return &models.DestinationPrediction{
		HasHistory:           true,
		PredictedDestination: dest.Name,
		PredictedTraffic:     traffic,
		Confidence:           confidence,
		TypicalTime:          typical,
		Message:              fmt.Sprintf("You usually travel to %s around %s. Expect %s traffic.", dest.Name, typical, traffic),
	}, nil
}
