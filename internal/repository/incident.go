package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const incidentColumns = `
	id,
	user_id,
	incident_type,
	severity,
	description,
	location_description,
	number_of_vehicles,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	ST_Y(reported_location::geometry) AS reported_latitude,
	ST_X(reported_location::geometry) AS reported_longitude,
	gps_distance_meters,
	credibility_score,
	similar_reports_count,
	is_verified,
	status,
	created_at,
	updated_at`

// incidentTargets - приёмники Scan в порядке incidentColumns
func incidentTargets(incident *models.Incident) []any {
	return []any{
		&incident.ID,
		&incident.UserID,
		&incident.Type,
		&incident.Severity,
		&incident.Description,
		&incident.LocationDescription,
		&incident.NumberOfVehicles,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ReportedLatitude,
		&incident.ReportedLongitude,
		&incident.GPSDistanceMeters,
		&incident.CredibilityScore,
		&incident.SimilarReportsCount,
		&incident.Verified,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	if err := row.Scan(incidentTargets(incident)...); err != nil {
		return nil, err
	}
	return incident, nil
}

// listActiveNear - активные инциденты в радиусе от from или to; расстояние считается до ближайшей из точек
func listActiveNear(ctx context.Context, q querier, from, to geo.Coordinate, radiusMeters float64, limit int) ([]models.NearbyIncident, error) {
	query := `
		WITH p AS (
			SELECT
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS a,
				ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography AS b
		)
		SELECT ` + incidentColumns + `,
			LEAST(ST_Distance(location, p.a), ST_Distance(location, p.b)) AS distance
		FROM incidents, p
		WHERE
			status = 'active'
			AND (ST_DWithin(location, p.a, $5) OR ST_DWithin(location, p.b, $5))
		ORDER BY distance
		LIMIT $6;
	`
	rows, err := q.Query(ctx, query, from.Longitude, from.Latitude, to.Longitude, to.Latitude, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents nearby: %w", err)
	}
	defer rows.Close()

	nearby := make([]models.NearbyIncident, 0)
	for rows.Next() {
		var (
			incident models.Incident
			distance float64
		)
		if err := rows.Scan(append(incidentTargets(&incident), &distance)...); err != nil {
			return nil, fmt.Errorf("failed to scan nearby incident: %w", err)
		}
		nearby = append(nearby, models.NearbyIncident{PublicIncident: incident.Public(), DistanceMeters: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error nearby iteration: %w", err)
	}
	return nearby, nil
}

func getIncident(ctx context.Context, q querier, id uuid.UUID, lock bool) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	incident, err := scanIncident(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return getIncident(ctx, r.db, id, false)
}

// ListIncidents возвращает последние инциденты по фильтру
func (r *IncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("incident_type = $%d", len(args)))
	}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		conds = append(conds, fmt.Sprintf("is_verified = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error {
	query := `
		UPDATE incidents SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", id, service.ErrIncidentNotFound)
	}
	return nil
}

// GetStats считает инциденты по типу и важности и число авторов за последние minutes
func (r *IncidentRepository) GetStats(ctx context.Context, minutes int) (*models.IncidentStats, error) {
	stats := &models.IncidentStats{
		ByType:     make(map[string]int),
		BySeverity: make(map[string]int),
	}

	rows, err := r.db.Query(ctx, `
		SELECT incident_type, severity, status, COUNT(*)
		FROM incidents
		GROUP BY incident_type, severity, status;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incidents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			incidentType, severity, status string
			count                          int
		)
		if err := rows.Scan(&incidentType, &severity, &status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.Total += count
		stats.ByType[incidentType] += count
		stats.BySeverity[severity] += count
		if status == string(models.IncidentStatusActive) {
			stats.Active += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}

	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM incidents
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&stats.ActiveReporters); err != nil {
		return nil, fmt.Errorf("failed to count active reporters: %w", err)
	}
	return stats, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
