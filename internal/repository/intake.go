package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

// IntakeStore выполняет приём отчёта в одной транзакции. Транзакции по одной ячейке
// (geo.AreaCellLevel, ~1 км²) выполняются последовательно за счёт pg_advisory_xact_lock.
type IntakeStore struct {
	db *pgxpool.Pool
}

func NewIntakeStore(db *pgxpool.Pool) service.IntakeStore {
	return &IntakeStore{db: db}
}

func (s *IntakeStore) Admit(ctx context.Context, at geo.Coordinate, fn func(tx service.IntakeTx) error) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		// блокировка снимается при COMMIT/ROLLBACK
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, geo.AreaLockKey(at)); err != nil {
			return fmt.Errorf("failed to acquire area lock: %w", err)
		}
		return fn(&intakeTx{tx: tx})
	})
}

type intakeTx struct {
	tx pgx.Tx
}

// FindActiveNear возвращает активные инциденты в радиусе radiusMeters от точки
func (t *intakeTx) FindActiveNear(ctx context.Context, at geo.Coordinate, radiusMeters float64) ([]models.IncidentSummary, error) {
	query := `
		SELECT id, description
		FROM incidents
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY created_at DESC;
	`
	rows, err := t.tx.Query(ctx, query, at.Longitude, at.Latitude, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents nearby: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.IncidentSummary, 0)
	for rows.Next() {
		var s models.IncidentSummary
		if err := rows.Scan(&s.ID, &s.Description); err != nil {
			return nil, fmt.Errorf("failed to scan nearby incident: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error nearby iteration: %w", err)
	}
	return summaries, nil
}

// CreateIncident создает запись об инциденте и заполняет ID и временные метки
func (t *intakeTx) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			user_id, incident_type, severity, description, location_description, number_of_vehicles,
			location, reported_location,
			gps_distance_meters, credibility_score, similar_reports_count, is_verified, status
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			ST_SetSRID(ST_MakePoint($7, $8), 4326), ST_SetSRID(ST_MakePoint($9, $10), 4326),
			$11, $12, $13, $14, $15
		)
		RETURNING id, created_at, updated_at;
	`
	err := t.tx.QueryRow(ctx, query,
		incident.UserID,
		incident.Type,
		incident.Severity,
		incident.Description,
		incident.LocationDescription,
		incident.NumberOfVehicles,
		incident.Longitude,
		incident.Latitude,
		incident.ReportedLongitude,
		incident.ReportedLatitude,
		incident.GPSDistanceMeters,
		incident.CredibilityScore,
		incident.SimilarReportsCount,
		incident.Verified,
		incident.Status,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

func (t *intakeTx) AwardCoins(ctx context.Context, entry *models.CoinTransaction) error {
	return awardCoins(ctx, t.tx, entry)
}

// awardCoins пишет запись в журнал и увеличивает баланс; вызывается только внутри транзакции
func awardCoins(ctx context.Context, q querier, entry *models.CoinTransaction) error {
	if err := insertCoinTransaction(ctx, q, entry); err != nil {
		return err
	}

	cmdTag, err := q.Exec(ctx, `
		UPDATE users SET
			coins = coins + $1,
			updated_at = NOW()
		WHERE id = $2;
	`, entry.Amount, entry.UserID)
	if err != nil {
		return fmt.Errorf("failed to credit coins: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", entry.UserID, service.ErrUserNotFound)
	}
	return nil
}

func insertCoinTransaction(ctx context.Context, q querier, entry *models.CoinTransaction) error {
	query := `
		INSERT INTO coin_transactions (user_id, amount, transaction_type, incident_id, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.Amount,
		entry.Type,
		entry.IncidentID,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert coin transaction: %w", err)
	}
	return nil
}
