package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDailyAnalytics(t *testing.T) {
	_, svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.analytics.EXPECT().Daily(gomock.Any(), verifiedUser.ID).Return(&models.DailyAnalytics{
		FrequentLocations:   []*models.TrackedLocation{{ID: 1, Name: "Bole", Type: models.LocationTravelStart, SearchCount: 12}},
		IncidentsByLocation: []models.LocationIncident{{LocationName: "Bole", Incident: models.PublicIncident{ID: incidentID, IncidentType: models.IncidentTypeMajorAccident}}},
		PeakHours:           map[int]int{8: 4, 17: 5},
		DailyPeakHour:       &models.PeakHour{Hour: 8, Time: "08:00", Count: 3},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/analytics/daily", nil, bearer("user-token"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DailyAnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.FrequentLocations, 1)
	require.Len(t, resp.IncidentsByLocation, 1)
	assert.Equal(t, incidentID, resp.IncidentsByLocation[0].Incident.ID)
	assert.Equal(t, map[int]int{8: 4, 17: 5}, resp.PeakHours)
	require.NotNil(t, resp.DailyPeakHour)
	assert.Equal(t, "08:00", resp.DailyPeakHour.Time)
	assert.NotContains(t, w.Body.String(), "userId")
}

func TestPeakHours_Public(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.analytics.EXPECT().PeakHours(gomock.Any()).Return(&models.PeakHoursComparison{
		NormalDays: map[int]int{8: 11},
		EventDays:  map[int]int{14: 6},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/analytics/peak-hours", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"normalDays":{"8":11},"eventDays":{"14":6}}`, w.Body.String())
}

func TestPersonalAnalytics(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.analytics.EXPECT().Personalized(gomock.Any(), verifiedUser.ID).Return(&models.PersonalAnalytics{
		MostFrequentRoutes: []models.FrequentRoute{{From: "Home", To: "Office", Count: 2, AvgHour: 8.5}},
		PeakHour:           &models.PeakHour{Hour: 8, Time: "08:00", Count: 2},
		WeeklyTrips:        []models.DayTrips{{Date: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), TripCount: 1}},
		TotalTrips:         2,
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/analytics/personalized", nil, bearer("user-token"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp PersonalAnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.MostFrequentRoutes, 1)
	assert.Equal(t, "Home → Office", resp.MostFrequentRoutes[0].Route)
	assert.Equal(t, []DayTripsResponse{{Date: "2025-03-06", TripCount: 1}}, resp.WeeklyTrips)
	assert.Equal(t, 2, resp.TotalTrips)
}

func TestDestinationPrediction(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.analytics.EXPECT().PredictDestination(gomock.Any(), verifiedUser.ID).Return(&models.DestinationPrediction{
		Message: "No travel history yet. Start traveling to get predictions!",
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/analytics/predictions", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasHistory":false,"message":"No travel history yet. Start traveling to get predictions!"}`, w.Body.String())
}

func TestAnalytics_RequireAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	for _, path := range []string{"/daily", "/personalized", "/predictions"} {
		w := makeRequest(router, "GET", "/api/v1/analytics"+path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
