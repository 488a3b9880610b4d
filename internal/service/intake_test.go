package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	realtime_mocks "github.com/shenikar/etraffic/internal/realtime/mocks"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/shenikar/etraffic/internal/service/mocks"
	webhook_mocks "github.com/shenikar/etraffic/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	// Аддис-Абеба, Мескель-сквер
	claimedPoint = geo.Coordinate{Latitude: 9.0108, Longitude: 38.7613}
	// ~1.1 км к северу
	farDevice = geo.Coordinate{Latitude: 9.0208, Longitude: 38.7613}
	// ~400 м к северу: в пределах 500 м, но дальше 70% порога
	borderlineDevice = geo.Coordinate{Latitude: 9.0144, Longitude: 38.7613}
)

type intakeMocks struct {
	store       *mocks.MockIntakeStore
	tx          *mocks.MockIntakeTx
	users       *mocks.MockUserRepository
	webhooks    *webhook_mocks.MockWebhookPublisher
	broadcaster *realtime_mocks.MockBroadcaster
}

func newTestIntakeService(t *testing.T, enforce bool) (service.IntakeService, intakeMocks) {
	ctrl := gomock.NewController(t)
	m := intakeMocks{
		store:       mocks.NewMockIntakeStore(ctrl),
		tx:          mocks.NewMockIntakeTx(ctrl),
		users:       mocks.NewMockUserRepository(ctrl),
		webhooks:    webhook_mocks.NewMockWebhookPublisher(ctrl),
		broadcaster: realtime_mocks.NewMockBroadcaster(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := service.IntakeConfig{
		MaxGPSDistanceMeters:  500,
		GPSEnforcementEnabled: enforce,
		SimilarityThreshold:   0.7,
		CredibilityBoost:      0.2,
		NearbyRadiusMeters:    500,
	}
	coins := service.CoinPolicy{PerReport: 10, PerVerifiedReport: 25, MinForConversion: 100, BirrRate: 1}

	svc := service.NewIntakeService(m.store, m.users, logger, cfg, coins, m.webhooks, m.broadcaster)
	return svc, m
}

// expectAdmit запускает переданную сервисом функцию на моке транзакции
func (m intakeMocks) expectAdmit(at geo.Coordinate) {
	m.store.EXPECT().
		Admit(gomock.Any(), at, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ geo.Coordinate, fn func(service.IntakeTx) error) error {
			return fn(m.tx)
		})
}

func accidentReport(device geo.Coordinate) models.IncidentReport {
	return models.IncidentReport{
		Type:            models.IncidentTypeMajorAccident,
		ClaimedLocation: claimedPoint,
		DeviceLocation:  device,
		Description:     "Two cars collided near the roundabout",
	}
}

func TestSubmit_Success_NoNearbyReports(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	incidentID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nil, nil)
	m.tx.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.SeverityMajor, inc.Severity)
			assert.Equal(t, models.IncidentStatusActive, inc.Status)
			assert.False(t, inc.Verified)
			assert.InDelta(t, 0.5, inc.CredibilityScore, 1e-9)
			inc.ID = incidentID
			return nil
		})
	m.tx.EXPECT().
		AwardCoins(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.CoinTransaction) error {
			assert.Equal(t, 10, tx.Amount)
			assert.Equal(t, models.CoinTransactionReport, tx.Type)
			require.NotNil(t, tx.IncidentID)
			assert.Equal(t, incidentID, *tx.IncidentID)
			return nil
		})
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().BroadcastIncident(ctx, gomock.Any()).Return(nil)

	result, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))

	require.NoError(t, err)
	assert.Equal(t, incidentID, result.ID)
	assert.Equal(t, 10, result.CoinsAwarded)
	assert.Equal(t, 0, result.SimilarReportsCount)
	assert.InDelta(t, 0.5, result.CredibilityScore, 1e-9)
}

func TestSubmit_CorroboratedReportGetsBoost(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	nearby := []models.IncidentSummary{
		{ID: uuid.New(), Description: "Two cars collided near the roundabout"},
		{ID: uuid.New(), Description: "Two cars collided near the roundabout"},
		{ID: uuid.New(), Description: "Two cars collided near the roundabout"},
	}

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, IsTrusted: true}, nil)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nearby, nil)
	m.tx.EXPECT().CreateIncident(ctx, gomock.Any()).Return(nil)
	m.tx.EXPECT().
		AwardCoins(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.CoinTransaction) error {
			assert.Equal(t, 25, tx.Amount)
			assert.Equal(t, models.CoinTransactionVerifiedReport, tx.Type)
			return nil
		})
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().BroadcastIncident(ctx, gomock.Any()).Return(nil)

	result, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))

	require.NoError(t, err)
	assert.Equal(t, 3, result.SimilarReportsCount)
	assert.InDelta(t, 0.7, result.CredibilityScore, 1e-9)
	assert.True(t, result.Verified)
	assert.Equal(t, 25, result.CoinsAwarded)
}

func TestSubmit_BannedUserRejected(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().
		GetByID(ctx, userID).
		Return(&models.User{ID: userID, IsBanned: true, BanReason: service.GPSBanReason}, nil)

	result, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrBanned)
}

func TestSubmit_LocationMismatchRecordsWarning(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, GPSWarnings: 0}, nil)
	m.users.EXPECT().IncrementGPSWarnings(ctx, userID).Return(1, nil)

	result, err := svc.Submit(ctx, userID, accidentReport(farDevice))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrLocationMismatch)

	var rejection *service.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, service.RejectionLocationMismatch, rejection.Kind)
	assert.Greater(t, rejection.DistanceMeters, 1000.0)
}

func TestSubmit_ThirdMismatchBansUser(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	gomock.InOrder(
		m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, GPSWarnings: 2}, nil),
		m.users.EXPECT().IncrementGPSWarnings(ctx, userID).Return(3, nil),
		m.users.EXPECT().Ban(ctx, userID, service.GPSBanReason).Return(nil),
	)

	_, err := svc.Submit(ctx, userID, accidentReport(farDevice))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrBanned)
	assert.NotErrorIs(t, err, service.ErrLocationMismatch)
}

func TestSubmit_MismatchEscalationSequence(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	steps := []struct {
		name       string
		warnings   int
		wantKind   service.RejectionKind
		wantBanned bool
	}{
		{name: "first mismatch", warnings: 1, wantKind: service.RejectionLocationMismatch},
		{name: "second mismatch", warnings: 2, wantKind: service.RejectionLocationMismatch},
		{name: "third mismatch bans", warnings: 3, wantKind: service.RejectionBanned, wantBanned: true},
	}

	var calls []any
	for _, step := range steps {
		calls = append(calls,
			m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, GPSWarnings: step.warnings - 1}, nil),
			m.users.EXPECT().IncrementGPSWarnings(ctx, userID).Return(step.warnings, nil),
		)
	}
	calls = append(calls, m.users.EXPECT().Ban(ctx, userID, service.GPSBanReason).Return(nil).Times(1))
	gomock.InOrder(calls...)
	m.store.EXPECT().Admit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			result, err := svc.Submit(ctx, userID, accidentReport(farDevice))

			require.Error(t, err)
			assert.Nil(t, result)

			var rejection *service.RejectionError
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, step.wantKind, rejection.Kind)
			if step.wantBanned {
				assert.Equal(t, service.GPSBanReason, rejection.Reason)
				assert.ErrorIs(t, err, service.ErrBanned)
			} else {
				assert.Greater(t, rejection.DistanceMeters, 1000.0)
				assert.ErrorIs(t, err, service.ErrLocationMismatch)
			}
		})
	}
}

func TestSubmit_BorderlineDistanceAdmittedWithoutWarning(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.users.EXPECT().IncrementGPSWarnings(gomock.Any(), gomock.Any()).Times(0)
	m.users.EXPECT().Ban(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nil, nil)
	m.tx.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Greater(t, inc.GPSDistanceMeters, 350.0)
			assert.LessOrEqual(t, inc.GPSDistanceMeters, 500.0)
			return nil
		})
	m.tx.EXPECT().AwardCoins(ctx, gomock.Any()).Return(nil)
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().BroadcastIncident(ctx, gomock.Any()).Return(nil)

	result, err := svc.Submit(ctx, userID, accidentReport(borderlineDevice))

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSubmit_EnforcementDisabledAdmitsFarReport(t *testing.T) {
	svc, m := newTestIntakeService(t, false)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.users.EXPECT().IncrementGPSWarnings(gomock.Any(), gomock.Any()).Times(0)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nil, nil)
	m.tx.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Greater(t, inc.GPSDistanceMeters, 1000.0)
			assert.Equal(t, farDevice.Latitude, inc.ReportedLatitude)
			return nil
		})
	m.tx.EXPECT().AwardCoins(ctx, gomock.Any()).Return(nil)
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().BroadcastIncident(ctx, gomock.Any()).Return(nil)

	_, err := svc.Submit(ctx, userID, accidentReport(farDevice))
	require.NoError(t, err)
}

func TestSubmit_PublishFailuresDoNotFailIntake(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nil, nil)
	m.tx.EXPECT().CreateIncident(ctx, gomock.Any()).Return(nil)
	m.tx.EXPECT().AwardCoins(ctx, gomock.Any()).Return(nil)
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))
	m.broadcaster.EXPECT().BroadcastIncident(ctx, gomock.Any()).Return(errors.New("nats down"))

	result, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSubmit_TransactionFailureNotPublished(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	dbErr := errors.New("insert failed")

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.expectAdmit(claimedPoint)
	m.tx.EXPECT().FindActiveNear(ctx, claimedPoint, 500.0).Return(nil, nil)
	m.tx.EXPECT().CreateIncident(ctx, gomock.Any()).Return(dbErr)

	result, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc, m := newTestIntakeService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(nil, service.ErrUserNotFound)

	_, err := svc.Submit(ctx, userID, accidentReport(claimedPoint))
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
