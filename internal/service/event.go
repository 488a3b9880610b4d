package service

//go:generate mockgen -source=event.go -destination=mocks/event.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

type EventRepository interface {
	// List - события в диапазоне дат включительно; нулевые from/to означают все события
	List(ctx context.Context, from, to time.Time) ([]*models.Event, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Event, error)
	// ClosuresOn - перекрытия событий eventIDs, пересекающиеся с сутками date
	ClosuresOn(ctx context.Context, eventIDs []int64, date time.Time) ([]*models.RoadClosure, error)
}

type EventService interface {
	List(ctx context.Context, from, to time.Time) ([]*models.Event, error)
	Schedule(ctx context.Context, date time.Time) (*models.DaySchedule, error)
}

type eventService struct {
	repo   EventRepository
	logger *logrus.Logger
}

func NewEventService(repo EventRepository, logger *logrus.Logger) EventService {
	return &eventService{
		repo:   repo,
		logger: logger,
	}
}

func (s *eventService) List(ctx context.Context, from, to time.Time) ([]*models.Event, error) {
	events, err := s.repo.List(ctx, from, to)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "event", "method": "List"}).
			WithError(err).Error("Failed to list events")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}
	return events, nil
}

// Schedule - события даты и перекрытия дорог на эти сутки
func (s *eventService) Schedule(ctx context.Context, date time.Time) (*models.DaySchedule, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "Schedule",
		"date":    date.Format(time.DateOnly),
	})

	events, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		log.WithError(err).Error("Failed to list events for date")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}

	schedule := &models.DaySchedule{Events: events, RoadClosures: make([]*models.RoadClosure, 0)}
	if len(events) == 0 {
		return schedule, nil
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	schedule.RoadClosures, err = s.repo.ClosuresOn(ctx, ids, date)
	if err != nil {
		log.WithError(err).Error("Failed to list road closures")
		return nil, fmt.Errorf("service: could not list road closures: %w", err)
	}
	return schedule, nil
}
