package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shenikar/etraffic/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListEvents(t *testing.T) {
	_, svc, router := newTestHandler(t)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	svc.events.EXPECT().List(gomock.Any(), from, to).Return([]*models.Event{{
		ID:            1,
		Type:          "religious",
		NameEn:        "Timket",
		NameAm:        "ጥምቀት",
		Date:          time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		EthiopianDate: "Tir 11",
		StartTime:     "06:00",
		AffectedRoads: []string{"Churchill Avenue"},
	}}, nil)

	w := makeRequest(router, "GET", "/api/v1/events?startDate=2025-01-01&endDate=2025-01-31", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2025-01-19", resp[0].EventDate)
	assert.Equal(t, "ጥምቀት", resp[0].NameAm)
	assert.Equal(t, []string{"Churchill Avenue"}, resp[0].AffectedRoads)
}

func TestListEvents_NoRange(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.events.EXPECT().List(gomock.Any(), time.Time{}, time.Time{}).Return([]*models.Event{{ID: 2}}, nil)

	w := makeRequest(router, "GET", "/api/v1/events", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, []any{}, resp[0]["affectedRoads"])
}

func TestListEvents_InvalidRange(t *testing.T) {
	testCases := []string{
		"?startDate=2025-01-01",
		"?endDate=2025-01-31",
		"?startDate=01/01/2025&endDate=2025-01-31",
		"?startDate=2025-01-01&endDate=tomorrow",
		"?startDate=2025-02-01&endDate=2025-01-01",
	}

	for _, query := range testCases {
		t.Run(query, func(t *testing.T) {
			_, svc, router := newTestHandler(t)
			svc.events.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "GET", "/api/v1/events"+query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEventSchedule(t *testing.T) {
	_, svc, router := newTestHandler(t)
	date := time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC)
	closureStart := date.Add(5 * time.Hour)

	svc.events.EXPECT().Schedule(gomock.Any(), date).Return(&models.DaySchedule{
		Events: []*models.Event{{ID: 1, NameEn: "Timket", Date: date}},
		RoadClosures: []*models.RoadClosure{{
			ID: 4, EventID: 1, RoadName: "Churchill Avenue",
			ClosureStart: closureStart, ClosureEnd: closureStart.Add(6 * time.Hour),
			AlternateRouteDescription: "Use Ras Mekonnen Avenue",
			Severity:                  models.SeverityMajor,
		}},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/events/2025-01-19", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	require.Len(t, resp.RoadClosures, 1)
	assert.Equal(t, "Churchill Avenue", resp.RoadClosures[0].RoadName)
	assert.Equal(t, "major", resp.RoadClosures[0].Severity)
}

func TestEventSchedule_InvalidDate(t *testing.T) {
	_, svc, router := newTestHandler(t)
	svc.events.EXPECT().Schedule(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/events/19-01-2025", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
