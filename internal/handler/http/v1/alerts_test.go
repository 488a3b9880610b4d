package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNearbyAlerts_Anonymous(t *testing.T) {
	_, svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.alerts.EXPECT().
		Nearby(gomock.Any(), (*uuid.UUID)(nil), geo.Coordinate{Latitude: 9.0108, Longitude: 38.7613}, 0.0).
		Return([]*models.Alert{{
			ID:             "incident-" + incidentID.String(),
			Type:           models.AlertTypeIncident,
			Title:          "Major Accident Nearby",
			DistanceMeters: 121,
			Severity:       models.SeverityMajor,
			IncidentID:     &incidentID,
		}}, nil)

	w := makeRequest(router, "GET", "/api/v1/alerts?latitude=9.0108&longitude=38.7613", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "incident", resp[0].AlertType)
	assert.Equal(t, "major", resp[0].Severity)
	assert.Equal(t, 121.0, resp[0].Distance)
	assert.Equal(t, &incidentID, resp[0].IncidentID)
}

func TestNearbyAlerts_Authenticated(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.alerts.EXPECT().
		Nearby(gomock.Any(), gomock.Any(), gomock.Any(), 2500.0).
		DoAndReturn(func(_ context.Context, userID *uuid.UUID, _ geo.Coordinate, _ float64) ([]*models.Alert, error) {
			require.NotNil(t, userID)
			assert.Equal(t, verifiedUser.ID, *userID)
			return []*models.Alert{}, nil
		})

	w := makeRequest(router, "GET", "/api/v1/alerts?latitude=9.0108&longitude=38.7613&radius=2500", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNearbyAlerts_InvalidTokenFallsBackToAnonymous(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.alerts.EXPECT().Nearby(gomock.Any(), (*uuid.UUID)(nil), gomock.Any(), 0.0).Return([]*models.Alert{}, nil)

	w := makeRequest(router, "GET", "/api/v1/alerts?latitude=9.0108&longitude=38.7613", nil, bearer("garbage"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyAlerts_InvalidQuery(t *testing.T) {
	testCases := []string{
		"",
		"?latitude=9.0108",
		"?longitude=38.7613",
		"?latitude=abc&longitude=38.7613",
		"?latitude=91&longitude=38.7613",
		"?latitude=9.0108&longitude=38.7613&radius=-5",
	}

	for _, query := range testCases {
		t.Run(query, func(t *testing.T) {
			_, svc, router := newTestHandler(t)
			svc.alerts.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "GET", "/api/v1/alerts"+query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMarkAlertRead(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.alerts.EXPECT().MarkRead(gomock.Any(), verifiedUser.ID, int64(42)).Return(nil)

	w := makeRequest(router, "PUT", "/api/v1/alerts/42/read", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Alert marked as read"}`, w.Body.String())
}

func TestMarkAlertRead_NotFound(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.alerts.EXPECT().MarkRead(gomock.Any(), verifiedUser.ID, int64(7)).
		Return(fmt.Errorf("service: could not mark alert as read: %w", service.ErrAlertNotFound))

	w := makeRequest(router, "PUT", "/api/v1/alerts/7/read", nil, bearer("user-token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAlertRead_BadRequest(t *testing.T) {
	_, svc, router := newTestHandler(t)
	svc.alerts.EXPECT().MarkRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.Equal(t, http.StatusBadRequest, makeRequest(router, "PUT", "/api/v1/alerts/abc/read", nil, bearer("user-token")).Code)
	assert.Equal(t, http.StatusBadRequest, makeRequest(router, "PUT", "/api/v1/alerts/0/read", nil, bearer("user-token")).Code)
	assert.Equal(t, http.StatusUnauthorized, makeRequest(router, "PUT", "/api/v1/alerts/42/read", nil).Code)
}
