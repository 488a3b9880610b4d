package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/shenikar/etraffic/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewIncidentService(repoMock, logger, 60), repoMock
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Инцидент из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Инцидент из БД",
	}

	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID}

	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, fmt.Errorf("redis: connection refused"))
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	repoMock.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(fmt.Errorf("redis: connection refused"))

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, service.ErrIncidentNotFound).
		Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestListIncidents_DefaultsLimit(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	verified := true

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero", 0, 50},
		{"too large", 1000, 50},
		{"within range", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := models.IncidentFilter{
				Type:     models.IncidentTypeHeavyCongestion,
				Verified: &verified,
				Limit:    tt.limit,
			}
			want := filter
			want.Limit = tt.wantLimit

			repoMock.EXPECT().ListIncidents(ctx, want).Return([]*models.Incident{}, nil)

			incidents, err := svc.ListIncidents(ctx, filter)
			require.NoError(t, err)
			assert.Empty(t, incidents)
		})
	}
}

func TestListIncidents_RepositoryError(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListIncidents(ctx, gomock.Any()).Return(nil, fmt.Errorf("db down"))

	incidents, err := svc.ListIncidents(ctx, models.IncidentFilter{})
	require.Error(t, err)
	assert.Nil(t, incidents)
}

func TestGetStats(t *testing.T) {
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetStats(ctx, 60).
		Return(&models.IncidentStats{Total: 7, Active: 5, ActiveReporters: 3}, nil)

	stats, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 3, stats.ActiveReporters)
	assert.Equal(t, 60, stats.WindowMinutes)
}
