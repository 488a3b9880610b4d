package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

const eventSelect = `
	SELECT
		e.id,
		e.event_type,
		e.name_en,
		e.name_am,
		e.description_en,
		e.description_am,
		e.event_date,
		e.ethiopian_date,
		COALESCE(to_char(e.start_time, 'HH24:MI'), ''),
		COALESCE(to_char(e.end_time, 'HH24:MI'), ''),
		e.is_recurring,
		e.recurrence_pattern,
		e.affected_area,
		COALESCE(array_agg(DISTINCT rc.road_name) FILTER (WHERE rc.road_name IS NOT NULL), '{}'),
		e.created_at
	FROM events e
	LEFT JOIN road_closures rc ON rc.event_id = e.id`

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

// dateArg - нулевое время как NULL для необязательных границ диапазона
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}

func (r *EventRepository) List(ctx context.Context, from, to time.Time) ([]*models.Event, error) {
	query := eventSelect + `
		WHERE
			($1::date IS NULL OR e.event_date >= $1::date)
			AND ($2::date IS NULL OR e.event_date <= $2::date)
		GROUP BY e.id
		ORDER BY e.event_date, e.start_time;
	`
	return r.listEvents(ctx, query, dateArg(from), dateArg(to))
}

func (r *EventRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.Event, error) {
	query := eventSelect + `
		WHERE e.event_date = $1::date
		GROUP BY e.id
		ORDER BY e.start_time;
	`
	return r.listEvents(ctx, query, date.Format(time.DateOnly))
}

func (r *EventRepository) listEvents(ctx context.Context, query string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(
			&e.ID,
			&e.Type,
			&e.NameEn,
			&e.NameAm,
			&e.DescriptionEn,
			&e.DescriptionAm,
			&e.Date,
			&e.EthiopianDate,
			&e.StartTime,
			&e.EndTime,
			&e.IsRecurring,
			&e.RecurrencePattern,
			&e.AffectedArea,
			&e.AffectedRoads,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error events iteration: %w", err)
	}
	return events, nil
}

func (r *EventRepository) ClosuresOn(ctx context.Context, eventIDs []int64, date time.Time) ([]*models.RoadClosure, error) {
	query := `
		SELECT
			id,
			event_id,
			road_name,
			ST_Y(start_location::geometry),
			ST_X(start_location::geometry),
			ST_Y(end_location::geometry),
			ST_X(end_location::geometry),
			closure_start,
			closure_end,
			alternate_route_description,
			severity
		FROM road_closures
		WHERE
			event_id = ANY($1)
			AND closure_start < $2::date + INTERVAL '1 day'
			AND closure_end >= $2::date
		ORDER BY closure_start;
	`
	rows, err := r.db.Query(ctx, query, eventIDs, date.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list road closures: %w", err)
	}
	defer rows.Close()

	closures := make([]*models.RoadClosure, 0)
	for rows.Next() {
		c := &models.RoadClosure{}
		if err := rows.Scan(
			&c.ID,
			&c.EventID,
			&c.RoadName,
			&c.StartLatitude,
			&c.StartLongitude,
			&c.EndLatitude,
			&c.EndLongitude,
			&c.ClosureStart,
			&c.ClosureEnd,
			&c.AlternateRouteDescription,
			&c.Severity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan road closure: %w", err)
		}
		closures = append(closures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error road closures iteration: %w", err)
	}
	return closures, nil
}
