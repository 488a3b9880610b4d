package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

// tripsCTE - поездки пользователя $1: точка отправления и первый travel_end в течение двух часов после неё
const tripsCTE = `
	WITH trips AS (
		SELECT
			s.location_name AS from_name,
			s.location AS from_location,
			s.last_searched_at AS started_at,
			e.location_name AS to_name,
			e.location AS to_location,
			e.last_searched_at AS ended_at
		FROM user_locations s
		JOIN LATERAL (
			SELECT location_name, location, last_searched_at
			FROM user_locations
			WHERE
				user_id = s.user_id
				AND location_type = 'travel_end'
				AND last_searched_at > s.last_searched_at
				AND last_searched_at <= s.last_searched_at + INTERVAL '2 hours'
			ORDER BY last_searched_at
			LIMIT 1
		) e ON TRUE
		WHERE s.user_id = $1 AND s.location_type = ANY($2)
	)`

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Upsert(ctx context.Context, location *models.TrackedLocation) (*models.TrackResult, error) {
	query := `
		INSERT INTO user_locations (user_id, location_name, location_type, location)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326))
		ON CONFLICT (user_id, location_name, location_type) DO UPDATE SET
			search_count = user_locations.search_count + 1,
			last_searched_at = NOW(),
			location = EXCLUDED.location
		RETURNING id, (xmax::text <> '0') AS updated;
	`
	result := &models.TrackResult{}
	err := r.db.QueryRow(ctx, query,
		location.UserID,
		location.Name,
		location.Type,
		location.Longitude,
		location.Latitude,
	).Scan(&result.LocationID, &result.Updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user location: %w", err)
	}
	return result, nil
}

func (r *LocationRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TrackedLocation, error) {
	return listTrackedLocations(ctx, r.db, userID, `last_searched_at DESC`, limit)
}

// listTrackedLocations выбирает места пользователя в порядке orderBy
func listTrackedLocations(ctx context.Context, q querier, userID uuid.UUID, orderBy string, limit int) ([]*models.TrackedLocation, error) {
	query := `
		SELECT
			id, user_id, location_name, location_type,
			ST_Y(location::geometry), ST_X(location::geometry),
			search_count, last_searched_at, created_at
		FROM user_locations
		WHERE user_id = $1
		ORDER BY ` + orderBy + `
		LIMIT $2;
	`
	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list user locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.TrackedLocation, 0)
	for rows.Next() {
		l := &models.TrackedLocation{}
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Name, &l.Type,
			&l.Latitude, &l.Longitude,
			&l.SearchCount, &l.LastSearchedAt, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error locations iteration: %w", err)
	}
	return locations, nil
}

// ListTrips - последние поездки, начатые поиском или travel_start; точки без travel_end в течение двух часов отбрасываются
func (r *LocationRepository) ListTrips(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trip, error) {
	query := tripsCTE + `
		SELECT
			from_name, ST_Y(from_location::geometry), ST_X(from_location::geometry), started_at,
			to_name, ST_Y(to_location::geometry), ST_X(to_location::geometry), ended_at
		FROM trips
		ORDER BY started_at DESC
		LIMIT $3;
	`
	starts := []string{string(models.LocationTravelStart), string(models.LocationSearch)}
	rows, err := r.db.Query(ctx, query, userID, starts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.FromName, &t.From.Latitude, &t.From.Longitude, &t.StartedAt,
			&t.ToName, &t.To.Latitude, &t.To.Longitude, &t.EndedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error trips iteration: %w", err)
	}
	return trips, nil
}

// RouteFrequencies группирует поездки из travel_start, начатые в weekday, по паре мест
func (r *LocationRepository) RouteFrequencies(ctx context.Context, userID uuid.UUID, weekday time.Weekday, minFrequency, limit int) ([]models.RouteFrequency, error) {
	query := tripsCTE + `
		SELECT
			from_name,
			to_name,
			COUNT(*) AS frequency,
			AVG(EXTRACT(HOUR FROM started_at))::float8 AS avg_hour,
			AVG(EXTRACT(EPOCH FROM ended_at - started_at) / 60)::float8,
			AVG(ST_Distance(from_location, to_location) / 1000)::float8
		FROM trips
		WHERE EXTRACT(DOW FROM started_at)::int = $3
		GROUP BY from_name, to_name
		HAVING COUNT(*) >= $4
		ORDER BY frequency DESC, avg_hour DESC
		LIMIT $5;
	`
	starts := []string{string(models.LocationTravelStart)}
	rows, err := r.db.Query(ctx, query, userID, starts, int(weekday), minFrequency, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate routes: %w", err)
	}
	defer rows.Close()

	routes := make([]models.RouteFrequency, 0)
	for rows.Next() {
		var rf models.RouteFrequency
		if err := rows.Scan(&rf.From, &rf.To, &rf.Frequency, &rf.AvgHour, &rf.AvgDurationMinutes, &rf.DistanceKm); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, rf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error routes iteration: %w", err)
	}
	return routes, nil
}

func (r *LocationRepository) ActiveIncidentsNear(ctx context.Context, from, to geo.Coordinate, radiusMeters float64, limit int) ([]models.NearbyIncident, error) {
	return listActiveNear(ctx, r.db, from, to, radiusMeters, limit)
}

func (r *LocationRepository) HasActiveIncidentsSince(ctx context.Context, since time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM incidents WHERE status = 'active' AND created_at >= $1)`,
		since,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent incidents: %w", err)
	}
	return exists, nil
}
