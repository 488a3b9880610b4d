package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) service.AdminRepository {
	return &AdminRepository{db: db}
}

// VerifyIncident подтверждает инцидент, начисляет reward автору и оповещает пользователей
// с отслеживаемыми местами рядом. Строка инцидента блокируется FOR UPDATE, поэтому
// награда выдаётся не более одного раза.
func (r *AdminRepository) VerifyIncident(ctx context.Context, incidentID, adminID uuid.UUID, reward int) (*models.Incident, error) {
	var incident *models.Incident

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		incident, err = getIncident(ctx, tx, incidentID, true)
		if err != nil {
			return err
		}
		if incident.Verified {
			return service.ErrAlreadyVerified
		}

		err = tx.QueryRow(ctx, `
			UPDATE incidents SET
				is_verified = TRUE,
				updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at;
		`, incidentID).Scan(&incident.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to mark incident verified: %w", err)
		}
		incident.Verified = true

		if _, err := insertVerifiedAlerts(ctx, tx, incident, service.DefaultAlertRadiusMeters); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO report_verifications (incident_id, admin_id) VALUES ($1, $2)`,
			incidentID, adminID,
		); err != nil {
			return fmt.Errorf("failed to record verification: %w", err)
		}

		id := incident.ID
		return awardCoins(ctx, tx, &models.CoinTransaction{
			UserID:      incident.UserID,
			Amount:      reward,
			Type:        models.CoinTransactionVerifiedReport,
			IncidentID:  &id,
			Description: "Bonus for verified report",
		})
	})
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func (r *AdminRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (admin_id, action, target_type, target_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.AdminID,
		entry.Action,
		entry.TargetType,
		entry.TargetID,
		entry.Details,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
