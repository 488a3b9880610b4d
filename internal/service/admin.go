package service

//go:generate mockgen -source=admin.go -destination=mocks/admin.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/webhook"
	"github.com/sirupsen/logrus"
)

const defaultUsersLimit = 100

// AdminRepository - операции модерации, каждая выполняется в своей транзакции
type AdminRepository interface {
	// VerifyIncident помечает инцидент подтверждённым, пишет report_verifications и начисляет reward автору.
	// Возвращает ErrAlreadyVerified, если инцидент уже подтверждён.
	VerifyIncident(ctx context.Context, incidentID, adminID uuid.UUID, reward int) (*models.Incident, error)
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
}

type AdminService interface {
	VerifyIncident(ctx context.Context, adminID, incidentID uuid.UUID) (*models.Incident, error)
	ResolveIncident(ctx context.Context, adminID, incidentID uuid.UUID) error
	BanUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error
	UnbanUser(ctx context.Context, adminID, userID uuid.UUID) error
	VerifyUser(ctx context.Context, adminID, userID uuid.UUID, trusted bool) error
	ListUsers(ctx context.Context, limit int) ([]*models.User, error)
}

type adminService struct {
	repo      AdminRepository
	incidents IncidentRepository
	users     UserRepository
	coins     CoinPolicy
	webhooks  webhook.WebhookPublisher
	logger    *logrus.Logger
}

func NewAdminService(
	repo AdminRepository,
	incidents IncidentRepository,
	users UserRepository,
	coins CoinPolicy,
	webhooks webhook.WebhookPublisher,
	logger *logrus.Logger,
) AdminService {
	return &adminService{
		repo:      repo,
		incidents: incidents,
		users:     users,
		coins:     coins,
		webhooks:  webhooks,
		logger:    logger,
	}
}

func (s *adminService) VerifyIncident(ctx context.Context, adminID, incidentID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "admin",
		"method":      "VerifyIncident",
		"admin_id":    adminID,
		"incident_id": incidentID,
	})
	log.Info("Verifying incident")

	incident, err := s.repo.VerifyIncident(ctx, incidentID, adminID, s.coins.PerVerifiedReport)
	if err != nil {
		log.WithError(err).Warn("Failed to verify incident")
		return nil, fmt.Errorf("service: could not verify incident: %w", err)
	}

	s.invalidate(ctx, log, incidentID)
	s.audit(ctx, log, &models.AuditLog{
		AdminID:    adminID,
		Action:     "verify_incident",
		TargetType: "incident",
		TargetID:   incidentID.String(),
		Details:    fmt.Sprintf("awarded %d coins to %s", s.coins.PerVerifiedReport, incident.UserID),
	})

	if err := s.webhooks.Publish(ctx, webhook.NewIncidentEvent(webhook.EventIncidentVerified, incident)); err != nil {
		log.WithError(err).Warn("Failed to enqueue verification webhook")
	}

	log.Info("Incident verified")
	return incident, nil
}

func (s *adminService) ResolveIncident(ctx context.Context, adminID, incidentID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "admin",
		"method":      "ResolveIncident",
		"admin_id":    adminID,
		"incident_id": incidentID,
	})

	if err := s.incidents.UpdateStatus(ctx, incidentID, models.IncidentStatusResolved); err != nil {
		log.WithError(err).Warn("Failed to resolve incident")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	s.invalidate(ctx, log, incidentID)
	s.audit(ctx, log, &models.AuditLog{
		AdminID:    adminID,
		Action:     "resolve_incident",
		TargetType: "incident",
		TargetID:   incidentID.String(),
	})
	log.Info("Incident resolved")
	return nil
}

func (s *adminService) BanUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "BanUser",
		"admin_id": adminID,
		"user_id":  userID,
	})

	if err := s.users.Ban(ctx, userID, reason); err != nil {
		log.WithError(err).Warn("Failed to ban user")
		return fmt.Errorf("service: could not ban user: %w", err)
	}

	s.audit(ctx, log, &models.AuditLog{
		AdminID:    adminID,
		Action:     "ban_user",
		TargetType: "user",
		TargetID:   userID.String(),
		Details:    reason,
	})
	log.Info("User banned")
	return nil
}

// UnbanUser снимает блокировку и обнуляет счётчик GPS-предупреждений
func (s *adminService) UnbanUser(ctx context.Context, adminID, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "UnbanUser",
		"admin_id": adminID,
		"user_id":  userID,
	})

	if err := s.users.Unban(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to unban user")
		return fmt.Errorf("service: could not unban user: %w", err)
	}

	s.audit(ctx, log, &models.AuditLog{
		AdminID:    adminID,
		Action:     "unban_user",
		TargetType: "user",
		TargetID:   userID.String(),
	})
	log.Info("User unbanned")
	return nil
}

func (s *adminService) VerifyUser(ctx context.Context, adminID, userID uuid.UUID, trusted bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "VerifyUser",
		"admin_id": adminID,
		"user_id":  userID,
		"trusted":  trusted,
	})

	if err := s.users.SetVerified(ctx, userID, trusted); err != nil {
		log.WithError(err).Warn("Failed to verify user")
		return fmt.Errorf("service: could not verify user: %w", err)
	}

	s.audit(ctx, log, &models.AuditLog{
		AdminID:    adminID,
		Action:     "verify_user",
		TargetType: "user",
		TargetID:   userID.String(),
		Details:    fmt.Sprintf("trusted=%t", trusted),
	})
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, limit int) ([]*models.User, error) {
	if limit < 1 || limit > 500 {
		limit = defaultUsersLimit
	}

	users, err := s.users.List(ctx, limit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "admin",
			"method":  "ListUsers",
		}).WithError(err).Error("Failed to list users")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// audit не прерывает операцию: действие уже выполнено
func (s *adminService) audit(ctx context.Context, log *logrus.Entry, entry *models.AuditLog) {
	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to write audit log")
	}
}

func (s *adminService) invalidate(ctx context.Context, log *logrus.Entry, incidentID uuid.UUID) {
	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}
