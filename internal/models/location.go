package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
)

type LocationType string

const (
	LocationTravelStart LocationType = "travel_start"
	LocationTravelEnd   LocationType = "travel_end"
	LocationSearch      LocationType = "search"
)

// TrackedLocation - место из истории поиска и поездок. Уникально по (пользователь, имя, тип);
// повторное отслеживание увеличивает SearchCount.
type TrackedLocation struct {
	ID             int64        `json:"id"`
	UserID         uuid.UUID    `json:"user_id"`
	Name           string       `json:"location_name"`
	Type           LocationType `json:"location_type"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	SearchCount    int          `json:"search_count"`
	LastSearchedAt time.Time    `json:"last_searched_at"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (l *TrackedLocation) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// TrackResult - итог отслеживания: новая запись или обновление существующей
type TrackResult struct {
	LocationID int64
	Updated    bool
}

// Trip - точка отправления (travel_start или search) и ближайший travel_end в пределах двух часов
type Trip struct {
	FromName  string
	From      geo.Coordinate
	ToName    string
	To        geo.Coordinate
	StartedAt time.Time
	EndedAt   time.Time
}

// TripSummary - поездка из истории с оценкой дороги и активными инцидентами у её концов
type TripSummary struct {
	Trip
	DistanceKm                 float64
	AvgSpeedKmh                float64
	TravelTimeMinutes          int
	EstimatedTravelTimeMinutes int
	Incidents                  []NearbyIncident
}

// NearbyIncident - активный инцидент и расстояние до точки запроса
type NearbyIncident struct {
	PublicIncident
	DistanceMeters float64 `json:"distance"`
}

// RouteFrequency - маршрут, повторявшийся в этот день недели
type RouteFrequency struct {
	From               string
	To                 string
	Frequency          int
	AvgHour            float64
	AvgDurationMinutes float64
	DistanceKm         float64
}

type TrafficLevel string

const (
	TrafficLight    TrafficLevel = "light"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
)

// RoutePrediction - прогноз следующей поездки по привычным маршрутам
type RoutePrediction struct {
	FromLocation      string
	ToLocation        string
	PredictedTime     string
	PredictedTraffic  TrafficLevel
	PredictedSpeedKmh int
	EstimatedDuration int
	IncidentAlert     string
	Confidence        string
	Frequency         int
	Message           string
}
