package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrackLocation(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.locations.EXPECT().
		Track(gomock.Any(), verifiedUser.ID, service.TrackInput{
			Name:     "Bole",
			Type:     models.LocationTravelStart,
			Location: geo.Coordinate{Latitude: 8.995, Longitude: 38.79},
		}).
		Return(&models.TrackResult{LocationID: 11}, nil)

	body := TrackLocationRequest{LocationName: "Bole", Latitude: ptr(8.995), Longitude: ptr(38.79), LocationType: "travel_start"}
	w := makeRequest(router, "POST", "/api/v1/locations/track", jsonBody(t, body), bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Location tracked","locationId":11}`, w.Body.String())
}

func TestTrackLocation_Updated(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.locations.EXPECT().Track(gomock.Any(), verifiedUser.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, input service.TrackInput) (*models.TrackResult, error) {
			assert.Empty(t, input.Type)
			return &models.TrackResult{LocationID: 11, Updated: true}, nil
		})

	body := TrackLocationRequest{LocationName: "Bole", Latitude: ptr(8.995), Longitude: ptr(38.79)}
	w := makeRequest(router, "POST", "/api/v1/locations/track", jsonBody(t, body), bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Location updated")
}

func TestTrackLocation_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body TrackLocationRequest
	}{
		{"missing coordinates", TrackLocationRequest{LocationName: "Bole"}},
		{"missing name", TrackLocationRequest{Latitude: ptr(9.0), Longitude: ptr(38.7)}},
		{"bad latitude", TrackLocationRequest{LocationName: "Bole", Latitude: ptr(95.0), Longitude: ptr(38.7)}},
		{"unknown type", TrackLocationRequest{LocationName: "Bole", Latitude: ptr(9.0), Longitude: ptr(38.7), LocationType: "commute"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, svc, router := newTestHandler(t)
			svc.locations.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/locations/track", jsonBody(t, tc.body), bearer("user-token"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLocations_RequireAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	for _, path := range []string{"/history", "/search-history", "/predictions"} {
		w := makeRequest(router, "GET", "/api/v1/locations"+path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLocationHistory(t *testing.T) {
	_, svc, router := newTestHandler(t)
	searched := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	svc.locations.EXPECT().History(gomock.Any(), verifiedUser.ID).Return([]*models.TrackedLocation{
		{ID: 3, Name: "Piassa", Type: models.LocationSearch, Latitude: 9.035, Longitude: 38.752, SearchCount: 4, LastSearchedAt: searched},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/locations/history", nil, bearer("user-token"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Piassa", resp[0].LocationName)
	assert.Equal(t, "search", resp[0].LocationType)
	assert.Equal(t, 4, resp[0].SearchCount)
}

func TestSearchHistory(t *testing.T) {
	_, svc, router := newTestHandler(t)
	started := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	svc.locations.EXPECT().SearchHistory(gomock.Any(), verifiedUser.ID).Return([]models.TripSummary{{
		Trip: models.Trip{
			FromName: "Bole", From: geo.Coordinate{Latitude: 8.995, Longitude: 38.79},
			ToName: "Piassa", To: geo.Coordinate{Latitude: 9.035, Longitude: 38.752},
			StartedAt: started, EndedAt: started.Add(30 * time.Minute),
		},
		DistanceKm:                 5.87,
		AvgSpeedKmh:                25,
		TravelTimeMinutes:          30,
		EstimatedTravelTimeMinutes: 30,
	}}, nil)

	w := makeRequest(router, "GET", "/api/v1/locations/search-history", nil, bearer("user-token"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Bole", resp[0]["fromLocation"])
	assert.Equal(t, 5.87, resp[0]["distanceKm"])
	assert.Equal(t, []any{}, resp[0]["incidents"])
}

func TestRoutePrediction(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.locations.EXPECT().Predict(gomock.Any(), verifiedUser.ID).Return(&models.RoutePrediction{
		FromLocation:      "Home",
		ToLocation:        "Office",
		PredictedTime:     "08:00",
		PredictedTraffic:  models.TrafficHeavy,
		PredictedSpeedKmh: 10,
		EstimatedDuration: 60,
		IncidentAlert:     "Clear route",
		Confidence:        "high",
		Frequency:         4,
		Message:           "You usually travel from Home to Office around 08:00.",
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/locations/predictions", nil, bearer("user-token"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp PredictionEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Prediction)
	assert.Equal(t, "heavy", resp.Prediction.PredictedTraffic)
	assert.Equal(t, 10, resp.Prediction.PredictedSpeed)
	assert.Equal(t, "You usually travel from Home to Office around 08:00.", resp.Message)
}

func TestRoutePrediction_NoHistory(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.locations.EXPECT().Predict(gomock.Any(), verifiedUser.ID).Return(nil, nil)

	w := makeRequest(router, "GET", "/api/v1/locations/predictions", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prediction":null,"message":"`+service.NoTravelHistoryMessage+`"}`, w.Body.String())
}

func TestRoutePrediction_ServiceError(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.locations.EXPECT().Predict(gomock.Any(), verifiedUser.ID).Return(nil, errors.New("db down"))

	w := makeRequest(router, "GET", "/api/v1/locations/predictions", nil, bearer("user-token"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
