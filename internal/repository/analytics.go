package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

var travelTypes = []string{string(models.LocationTravelStart), string(models.LocationTravelEnd)}

type AnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) service.AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) FrequentLocations(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TrackedLocation, error) {
	return listTrackedLocations(ctx, r.db, userID, `search_count DESC, last_searched_at DESC`, limit)
}

func (r *AnalyticsRepository) IncidentsNearLocations(ctx context.Context, userID uuid.UUID, radiusMeters float64, limit int) ([]models.LocationIncident, error) {
	query := `
		SELECT fl.location_name, n.*
		FROM (
			SELECT location_name, location
			FROM user_locations
			WHERE user_id = $1
			ORDER BY search_count DESC
			LIMIT 10
		) fl
		JOIN LATERAL (
			SELECT ` + incidentColumns + `
			FROM incidents
			WHERE status = 'active' AND ST_DWithin(location, fl.location, $2)
			ORDER BY created_at DESC
			LIMIT $3
		) n ON TRUE
		ORDER BY n.created_at DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, userID, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents near locations: %w", err)
	}
	defer rows.Close()

	result := make([]models.LocationIncident, 0)
	for rows.Next() {
		var (
			name     string
			incident models.Incident
		)
		if err := rows.Scan(append([]any{&name}, incidentTargets(&incident)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan location incident: %w", err)
		}
		result = append(result, models.LocationIncident{LocationName: name, Incident: incident.Public()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location incidents iteration: %w", err)
	}
	return result, nil
}

func (r *AnalyticsRepository) TravelPeakOn(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HourCount, error) {
	query := `
		SELECT EXTRACT(HOUR FROM last_searched_at)::int AS hour, COUNT(*) AS cnt
		FROM user_locations
		WHERE
			user_id = $1
			AND location_type = ANY($2)
			AND last_searched_at::date = $3::date
		GROUP BY hour
		ORDER BY cnt DESC, hour
		LIMIT 1;
	`
	var hc models.HourCount
	err := r.db.QueryRow(ctx, query, userID, travelTypes, day.Format(time.DateOnly)).Scan(&hc.Hour, &hc.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get travel peak: %w", err)
	}
	return &hc, nil
}

func (r *AnalyticsRepository) ActiveIncidentHours(ctx context.Context, limit int) ([]models.HourCount, error) {
	query := `
		SELECT EXTRACT(HOUR FROM created_at)::int AS hour, COUNT(*) AS cnt
		FROM incidents
		WHERE status = 'active'
		GROUP BY hour
		ORDER BY cnt DESC, hour
		LIMIT $1;
	`
	return r.hourCounts(ctx, query, limit)
}

func (r *AnalyticsRepository) IncidentHours(ctx context.Context, since time.Time, eventDays bool) ([]models.HourCount, error) {
	query := `
		SELECT EXTRACT(HOUR FROM i.created_at)::int AS hour, COUNT(*) AS cnt
		FROM incidents i
		WHERE
			i.created_at >= $1
			AND EXISTS(SELECT 1 FROM events e WHERE e.event_date = i.created_at::date) = $2
		GROUP BY hour
		ORDER BY hour;
	`
	return r.hourCounts(ctx, query, since, eventDays)
}

func (r *AnalyticsRepository) hourCounts(ctx context.Context, query string, args ...any) ([]models.HourCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count by hour: %w", err)
	}
	defer rows.Close()

	counts := make([]models.HourCount, 0)
	for rows.Next() {
		var hc models.HourCount
		if err := rows.Scan(&hc.Hour, &hc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan hour count: %w", err)
		}
		counts = append(counts, hc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hour counts iteration: %w", err)
	}
	return counts, nil
}

// TravelPoints - последние limit точек поездок, упорядоченные от старых к новым
func (r *AnalyticsRepository) TravelPoints(ctx context.Context, userID uuid.UUID, limit int) ([]models.TravelPoint, error) {
	query := `
		SELECT location_name, location_type, last_searched_at
		FROM (
			SELECT location_name, location_type, last_searched_at
			FROM user_locations
			WHERE user_id = $1 AND location_type = ANY($2)
			ORDER BY last_searched_at DESC
			LIMIT $3
		) recent
		ORDER BY last_searched_at;
	`
	rows, err := r.db.Query(ctx, query, userID, travelTypes, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list travel points: %w", err)
	}
	defer rows.Close()

	points := make([]models.TravelPoint, 0)
	for rows.Next() {
		var p models.TravelPoint
		if err := rows.Scan(&p.Name, &p.Type, &p.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan travel point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error travel points iteration: %w", err)
	}
	return points, nil
}

func (r *AnalyticsRepository) TripsPerDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.DayTrips, error) {
	query := `
		SELECT last_searched_at::date AS day, COUNT(*)
		FROM user_locations
		WHERE user_id = $1 AND location_type = $2 AND last_searched_at >= $3
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, userID, models.LocationTravelStart, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips per day: %w", err)
	}
	defer rows.Close()

	days := make([]models.DayTrips, 0)
	for rows.Next() {
		var d models.DayTrips
		if err := rows.Scan(&d.Date, &d.TripCount); err != nil {
			return nil, fmt.Errorf("failed to scan trips per day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error trips per day iteration: %w", err)
	}
	return days, nil
}

func (r *AnalyticsRepository) HasTravelHistory(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_locations WHERE user_id = $1 AND location_type = ANY($2))`,
		userID, travelTypes,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check travel history: %w", err)
	}
	return exists, nil
}

func (r *AnalyticsRepository) TopDestination(ctx context.Context, userID uuid.UUID, fromHour, toHour, hour int) (*models.DestinationCount, error) {
	query := `
		SELECT
			location_name,
			COUNT(*) AS frequency,
			AVG(EXTRACT(HOUR FROM last_searched_at))::float8 AS avg_hour
		FROM user_locations
		WHERE
			user_id = $1
			AND location_type = $2
			AND EXTRACT(HOUR FROM last_searched_at)::int BETWEEN $3 AND $4
		GROUP BY location_name
		ORDER BY frequency DESC, ABS(AVG(EXTRACT(HOUR FROM last_searched_at)) - $5)
		LIMIT 1;
	`
	var d models.DestinationCount
	err := r.db.QueryRow(ctx, query, userID, models.LocationTravelEnd, fromHour, toHour, hour).
		Scan(&d.Name, &d.Frequency, &d.AvgHour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top destination: %w", err)
	}
	return &d, nil
}
