package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) ListUnreadNear(ctx context.Context, userID uuid.UUID, at geo.Coordinate, radiusMeters float64, limit int) ([]*models.Alert, error) {
	query := `
		SELECT
			a.id::text,
			a.alert_type,
			a.title,
			a.message,
			ST_Y(a.location::geometry),
			ST_X(a.location::geometry),
			ST_Distance(a.location, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography) AS distance,
			a.severity,
			a.is_read,
			a.incident_id,
			COALESCE(i.location_description, ''),
			a.created_at
		FROM alerts a
		LEFT JOIN incidents i ON i.id = a.incident_id
		WHERE
			a.user_id = $1
			AND NOT a.is_read
			AND ST_DWithin(a.location, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4)
		ORDER BY distance
		LIMIT $5;
	`
	rows, err := r.db.Query(ctx, query, userID, at.Longitude, at.Latitude, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		a := &models.Alert{}
		if err := rows.Scan(
			&a.ID, &a.Type, &a.Title, &a.Message,
			&a.Latitude, &a.Longitude, &a.DistanceMeters,
			&a.Severity, &a.IsRead, &a.IncidentID,
			&a.LocationDescription, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts iteration: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) ActiveIncidentsNear(ctx context.Context, from, to geo.Coordinate, radiusMeters float64, limit int) ([]models.NearbyIncident, error) {
	return listActiveNear(ctx, r.db, from, to, radiusMeters, limit)
}

func (r *AlertRepository) MarkRead(ctx context.Context, userID uuid.UUID, alertID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE alerts SET is_read = TRUE, read_at = NOW() WHERE id = $1 AND user_id = $2`,
		alertID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrAlertNotFound
	}
	return nil
}

// insertVerifiedAlerts рассылает оповещение о подтверждённом инциденте пользователям,
// у которых есть отслеживаемое место в радиусе; автор отчёта оповещение не получает
func insertVerifiedAlerts(ctx context.Context, q querier, incident *models.Incident, radiusMeters float64) (int64, error) {
	title := incident.Type.Title() + " Verified"
	message := incident.LocationDescription
	if message == "" {
		message = incident.Description
	}
	tag, err := q.Exec(ctx, `
		INSERT INTO alerts (user_id, alert_type, title, message, location, severity, incident_id)
		SELECT DISTINCT ul.user_id, $2, $3, $4, i.location, i.severity, i.id
		FROM incidents i
		JOIN user_locations ul ON ST_DWithin(ul.location, i.location, $5)
		WHERE i.id = $1 AND ul.user_id IS DISTINCT FROM i.user_id
		ON CONFLICT (user_id, incident_id) DO NOTHING;
	`, incident.ID, models.AlertTypeVerifiedIncident, title, message, radiusMeters)
	if err != nil {
		return 0, fmt.Errorf("failed to create verification alerts: %w", err)
	}
	return tag.RowsAffected(), nil
}
