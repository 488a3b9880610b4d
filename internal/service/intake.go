package service

//go:generate mockgen -source=intake.go -destination=mocks/intake.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/realtime"
	"github.com/shenikar/etraffic/internal/similarity"
	"github.com/shenikar/etraffic/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	// BanThreshold - после стольких GPS-несовпадений пользователь блокируется
	BanThreshold = 3
	// GPSBanReason записывается в users.ban_reason при автоматической блокировке
	GPSBanReason = "Multiple GPS location mismatches"

	DefaultNearbyRadiusMeters = 500.0
)

// IntakeStore открывает транзакцию, сериализованную по области заявленной точки
type IntakeStore interface {
	Admit(ctx context.Context, at geo.Coordinate, fn func(tx IntakeTx) error) error
}

// IntakeTx - операции, выполняемые внутри транзакции приёма отчёта
type IntakeTx interface {
	FindActiveNear(ctx context.Context, at geo.Coordinate, radiusMeters float64) ([]models.IncidentSummary, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	AwardCoins(ctx context.Context, tx *models.CoinTransaction) error
}

// UserRepository определяет контракт для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit int) ([]*models.User, error)
	// IncrementGPSWarnings атомарно увеличивает счётчик и возвращает новое значение
	IncrementGPSWarnings(ctx context.Context, id uuid.UUID) (int, error)
	Ban(ctx context.Context, id uuid.UUID, reason string) error
	Unban(ctx context.Context, id uuid.UUID) error
	SetVerified(ctx context.Context, id uuid.UUID, trusted bool) error
}

// IntakeService - приём отчёта об инциденте
type IntakeService interface {
	Submit(ctx context.Context, userID uuid.UUID, report models.IncidentReport) (*models.IntakeResult, error)
}

// IntakeConfig - пороги приёма, читаются из окружения один раз при старте
type IntakeConfig struct {
	MaxGPSDistanceMeters  float64
	GPSEnforcementEnabled bool
	SimilarityThreshold   float64
	CredibilityBoost      float64
	NearbyRadiusMeters    float64
}

type intakeService struct {
	store       IntakeStore
	users       UserRepository
	logger      *logrus.Logger
	cfg         IntakeConfig
	coins       CoinPolicy
	validator   *geo.Validator
	engine      *similarity.Engine
	scorer      *similarity.Scorer
	webhooks    webhook.WebhookPublisher
	broadcaster realtime.Broadcaster
}

func NewIntakeService(
	store IntakeStore,
	users UserRepository,
	logger *logrus.Logger,
	cfg IntakeConfig,
	coins CoinPolicy,
	webhooks webhook.WebhookPublisher,
	broadcaster realtime.Broadcaster,
) IntakeService {
	if cfg.NearbyRadiusMeters <= 0 {
		cfg.NearbyRadiusMeters = DefaultNearbyRadiusMeters
	}
	return &intakeService{
		store:       store,
		users:       users,
		logger:      logger,
		cfg:         cfg,
		coins:       coins,
		validator:   geo.NewValidator(cfg.MaxGPSDistanceMeters),
		engine:      similarity.NewEngine(cfg.SimilarityThreshold),
		scorer:      similarity.NewScorer(cfg.CredibilityBoost),
		webhooks:    webhooks,
		broadcaster: broadcaster,
	}
}

// Submit проверяет GPS, применяет эскалацию предупреждений и в одной транзакции
// сохраняет инцидент с оценкой достоверности и начисляет монеты.
func (s *intakeService) Submit(ctx context.Context, userID uuid.UUID, report models.IncidentReport) (*models.IntakeResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "intake",
		"method":        "Submit",
		"user_id":       userID,
		"incident_type": report.Type,
	})
	log.Info("Evaluating incident report")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load reporter")
		return nil, fmt.Errorf("service: could not load reporter: %w", err)
	}
	if user.IsBanned {
		log.Warn("Banned user attempted to submit a report")
		return nil, &RejectionError{Kind: RejectionBanned, Reason: user.BanReason}
	}

	gps := s.validator.Validate(report.ClaimedLocation, report.DeviceLocation)
	log = log.WithField("gps_distance_meters", gps.DistanceMeters)

	if s.cfg.GPSEnforcementEnabled && !gps.IsValid {
		rejection, err := s.escalate(ctx, log, userID, gps)
		if err != nil {
			return nil, err
		}
		if rejection != nil {
			return nil, rejection
		}
	}

	incident := &models.Incident{
		UserID:              userID,
		Type:                report.Type,
		Severity:            models.SeverityFor(report.Type),
		Description:         report.Description,
		LocationDescription: report.LocationDescription,
		NumberOfVehicles:    report.NumberOfVehicles,
		Latitude:            report.ClaimedLocation.Latitude,
		Longitude:           report.ClaimedLocation.Longitude,
		ReportedLatitude:    report.DeviceLocation.Latitude,
		ReportedLongitude:   report.DeviceLocation.Longitude,
		GPSDistanceMeters:   gps.DistanceMeters,
		Verified:            user.IsTrusted,
		Status:              models.IncidentStatusActive,
	}
	coinsAwarded := s.coins.ReportReward(user.IsTrusted)

	err = s.store.Admit(ctx, report.ClaimedLocation, func(tx IntakeTx) error {
		nearby, err := tx.FindActiveNear(ctx, report.ClaimedLocation, s.cfg.NearbyRadiusMeters)
		if err != nil {
			return fmt.Errorf("find nearby incidents: %w", err)
		}

		sim := s.engine.Compute(report.Description, nearby)
		incident.CredibilityScore = s.scorer.Score(sim)
		incident.SimilarReportsCount = sim.SimilarCount

		if err := tx.CreateIncident(ctx, incident); err != nil {
			return fmt.Errorf("create incident: %w", err)
		}

		incidentID := incident.ID
		return tx.AwardCoins(ctx, &models.CoinTransaction{
			UserID:      userID,
			Amount:      coinsAwarded,
			Type:        s.coins.ReportTransactionType(user.IsTrusted),
			IncidentID:  &incidentID,
			Description: fmt.Sprintf("Reward for %s report", report.Type),
		})
	})
	if err != nil {
		log.WithError(err).Error("Failed to admit incident")
		return nil, fmt.Errorf("service: could not admit incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id":       incident.ID,
		"credibility_score": incident.CredibilityScore,
		"similar_reports":   incident.SimilarReportsCount,
		"coins_awarded":     coinsAwarded,
	}).Info("Incident admitted")

	s.publish(ctx, log, incident)

	return &models.IntakeResult{
		ID:                  incident.ID,
		CoinsAwarded:        coinsAwarded,
		CredibilityScore:    incident.CredibilityScore,
		SimilarReportsCount: incident.SimilarReportsCount,
		Severity:            incident.Severity,
		Verified:            incident.Verified,
	}, nil
}

// escalate фиксирует GPS-несовпадение. Возвращает отказ, если отчёт не должен быть принят.
func (s *intakeService) escalate(ctx context.Context, log *logrus.Entry, userID uuid.UUID, gps geo.ValidationResult) (*RejectionError, error) {
	warnings, err := s.users.IncrementGPSWarnings(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to increment GPS warnings")
		return nil, fmt.Errorf("service: could not record gps warning: %w", err)
	}
	log = log.WithField("gps_warnings", warnings)

	if warnings >= BanThreshold {
		if err := s.users.Ban(ctx, userID, GPSBanReason); err != nil {
			log.WithError(err).Error("Failed to ban user")
			return nil, fmt.Errorf("service: could not ban user: %w", err)
		}
		log.Warn("User banned after repeated GPS mismatches")
		return &RejectionError{Kind: RejectionBanned, Reason: GPSBanReason}, nil
	}

	if gps.Warning {
		log.Warn("Report rejected: GPS location mismatch")
		return &RejectionError{Kind: RejectionLocationMismatch, DistanceMeters: gps.DistanceMeters}, nil
	}
	return nil, nil
}

// publish рассылает событие о новом инциденте; ошибки доставки не влияют на результат приёма
func (s *intakeService) publish(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	if s.webhooks != nil {
		if err := s.webhooks.Publish(ctx, webhook.NewIncidentEvent(webhook.EventIncidentCreated, incident)); err != nil {
			log.WithError(err).Warn("Failed to enqueue incident webhook")
		}
	}
	if s.broadcaster != nil {
		if err := s.broadcaster.BroadcastIncident(ctx, incident); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Warn("Failed to broadcast incident")
		}
	}
}
