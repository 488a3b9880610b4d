package travel

import (
	"testing"
	"time"

	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestTrafficForHour(t *testing.T) {
	tests := []struct {
		hour int
		want models.TrafficLevel
	}{
		{6, models.TrafficLight},
		{7, models.TrafficHeavy},
		{9, models.TrafficHeavy},
		{10, models.TrafficModerate},
		{16, models.TrafficModerate},
		{17, models.TrafficHeavy},
		{19, models.TrafficHeavy},
		{20, models.TrafficLight},
		{0, models.TrafficLight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrafficForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestEscalate(t *testing.T) {
	assert.Equal(t, models.TrafficModerate, Escalate(models.TrafficLight))
	assert.Equal(t, models.TrafficHeavy, Escalate(models.TrafficModerate))
	assert.Equal(t, models.TrafficHeavy, Escalate(models.TrafficHeavy))
}

func TestEstimateMinutes_Defaults(t *testing.T) {
	assert.Equal(t, 10, EstimateMinutes(0, 0))
	assert.Equal(t, 20, EstimateMinutes(5, 15))
	assert.Equal(t, 24, EstimateMinutes(10, 25))
}

func TestPredictRoute(t *testing.T) {
	morning := models.RouteFrequency{From: "Bole", To: "Piassa", Frequency: 4, AvgHour: 8.2, DistanceKm: 5}
	evening := models.RouteFrequency{From: "Piassa", To: "CMC", Frequency: 6, AvgHour: 18, DistanceKm: 10, AvgDurationMinutes: 42.4}

	tests := []struct {
		name            string
		routes          []models.RouteFrequency
		hour            int
		recentIncidents bool
		want            models.RoutePrediction
	}{
		{
			name:            "route matching current hour wins",
			routes:          []models.RouteFrequency{morning, evening},
			hour:            17,
			recentIncidents: true,
			want: models.RoutePrediction{
				FromLocation: "Piassa", ToLocation: "CMC", PredictedTime: "18:00",
				PredictedTraffic: models.TrafficHeavy, PredictedSpeedKmh: 10, EstimatedDuration: 42,
				IncidentAlert: "Delays possible", Confidence: "high", Frequency: 6,
			},
		},
		{
			name:   "falls back to most frequent route",
			routes: []models.RouteFrequency{morning, evening},
			hour:   3,
			want: models.RoutePrediction{
				FromLocation: "Bole", ToLocation: "Piassa", PredictedTime: "08:00",
				PredictedTraffic: models.TrafficHeavy, PredictedSpeedKmh: 15, EstimatedDuration: 20,
				IncidentAlert: "Clear route", Confidence: "high", Frequency: 4,
			},
		},
		{
			name:   "frequent night route escalates light traffic",
			routes: []models.RouteFrequency{{From: "Kazanchis", To: "Megenagna", Frequency: 6, AvgHour: 22}},
			hour:   22,
			want: models.RoutePrediction{
				FromLocation: "Kazanchis", ToLocation: "Megenagna", PredictedTime: "22:00",
				PredictedTraffic: models.TrafficModerate, PredictedSpeedKmh: 30, EstimatedDuration: 10,
				IncidentAlert: "Clear route", Confidence: "high", Frequency: 6,
			},
		},
		{
			name:   "long route keeps minimum speed",
			routes: []models.RouteFrequency{{From: "Bole", To: "Sebeta", Frequency: 2, AvgHour: 12, DistanceKm: 30}},
			hour:   12,
			want: models.RoutePrediction{
				FromLocation: "Bole", ToLocation: "Sebeta", PredictedTime: "12:00",
				PredictedTraffic: models.TrafficModerate, PredictedSpeedKmh: 5, EstimatedDuration: 360,
				IncidentAlert: "Clear route", Confidence: "medium", Frequency: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictRoute(tt.routes, tt.hour, tt.recentIncidents)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.Message)
			got.Message = ""
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPredictRoute_NoHistory(t *testing.T) {
	assert.Nil(t, PredictRoute(nil, 8, true))
}

func TestSummarizeTrip(t *testing.T) {
	from := geo.Coordinate{Latitude: 9.0125, Longitude: 38.7561}
	to := geo.Coordinate{Latitude: 9.0215, Longitude: 38.7561}

	timed := SummarizeTrip(models.Trip{From: from, To: to, StartedAt: at(3, 8, 10), EndedAt: at(3, 8, 40)})
	assert.InDelta(t, 1.0, timed.DistanceKm, 0.01)
	assert.Equal(t, 25.0, timed.AvgSpeedKmh)
	assert.Equal(t, 30, timed.TravelTimeMinutes)
	assert.Equal(t, 30, timed.EstimatedTravelTimeMinutes)

	instant := SummarizeTrip(models.Trip{From: from, To: to, StartedAt: at(3, 12, 0), EndedAt: at(3, 12, 0)})
	assert.Equal(t, 35.0, instant.AvgSpeedKmh)
	assert.Equal(t, 0, instant.TravelTimeMinutes)
	assert.Equal(t, 2, instant.EstimatedTravelTimeMinutes)
}

func TestFrequentRoutes(t *testing.T) {
	points := []models.TravelPoint{
		{Name: "Home", Type: models.LocationTravelStart, SearchedAt: at(3, 7, 30)},
		{Name: "Office", Type: models.LocationTravelEnd, SearchedAt: at(3, 8, 10)},
		{Name: "Office", Type: models.LocationTravelStart, SearchedAt: at(3, 17, 30)},
		{Name: "Gym", Type: models.LocationTravelEnd, SearchedAt: at(3, 18, 0)},
		{Name: "Home", Type: models.LocationTravelStart, SearchedAt: at(4, 7, 40)},
		{Name: "Office", Type: models.LocationTravelEnd, SearchedAt: at(4, 8, 20)},
		{Name: "Gym", Type: models.LocationTravelEnd, SearchedAt: at(4, 19, 0)},
	}

	routes := FrequentRoutes(points, 10)

	require.Len(t, routes, 2)
	assert.Equal(t, models.FrequentRoute{From: "Home", To: "Office", Count: 2, AvgHour: 7}, routes[0])
	assert.Equal(t, models.FrequentRoute{From: "Office", To: "Gym", Count: 1, AvgHour: 17}, routes[1])

	assert.Len(t, FrequentRoutes(points, 1), 1)
	assert.Empty(t, FrequentRoutes(nil, 10))
}

func TestPeakHour(t *testing.T) {
	assert.Nil(t, PeakHour(nil))

	peak := PeakHour([]models.TravelPoint{
		{SearchedAt: at(3, 8, 0)},
		{SearchedAt: at(3, 7, 5)},
		{SearchedAt: at(4, 7, 50)},
	})
	require.NotNil(t, peak)
	assert.Equal(t, models.PeakHour{Hour: 7, Time: "07:00", Count: 2}, *peak)

	tie := PeakHour([]models.TravelPoint{{SearchedAt: at(3, 18, 0)}, {SearchedAt: at(3, 9, 0)}})
	assert.Equal(t, 9, tie.Hour)
}

func TestHourHistogram(t *testing.T) {
	hist := HourHistogram([]models.HourCount{{Hour: 8, Count: 5}, {Hour: 17, Count: 3}, {Hour: 30, Count: 1}})

	assert.Len(t, hist, 24)
	assert.Equal(t, 5, hist[8])
	assert.Equal(t, 3, hist[17])
	assert.Equal(t, 0, hist[0])
}

func TestDestinationTraffic(t *testing.T) {
	assert.Equal(t, "high", DestinationTraffic(8))
	assert.Equal(t, "high", DestinationTraffic(18))
	assert.Equal(t, "low", DestinationTraffic(12))
	assert.Equal(t, "moderate", DestinationTraffic(16))
	assert.Equal(t, "moderate", DestinationTraffic(22))
}
