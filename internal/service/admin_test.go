package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/shenikar/etraffic/internal/service/mocks"
	"github.com/shenikar/etraffic/internal/webhook"
	webhook_mocks "github.com/shenikar/etraffic/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	repo      *mocks.MockAdminRepository
	incidents *mocks.MockIncidentRepository
	users     *mocks.MockUserRepository
	webhooks  *webhook_mocks.MockWebhookPublisher
}

func newTestAdminService(t *testing.T) (service.AdminService, adminMocks) {
	ctrl := gomock.NewController(t)
	m := adminMocks{
		repo:      mocks.NewMockAdminRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		webhooks:  webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewAdminService(m.repo, m.incidents, m.users, testCoinPolicy, m.webhooks, logger)
	return svc, m
}

func TestVerifyIncident_Success(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	adminID, incidentID, authorID := uuid.New(), uuid.New(), uuid.New()
	verified := &models.Incident{ID: incidentID, UserID: authorID, Verified: true}

	m.repo.EXPECT().VerifyIncident(ctx, incidentID, adminID, 25).Return(verified, nil)
	m.incidents.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.repo.EXPECT().
		CreateAuditLog(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, "verify_incident", entry.Action)
			assert.Equal(t, adminID, entry.AdminID)
			assert.Equal(t, incidentID.String(), entry.TargetID)
			return nil
		})
	m.webhooks.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventIncidentVerified, event.Event)
			require.NotNil(t, event.Incident)
			assert.Equal(t, verified.Public(), *event.Incident)
			return nil
		})

	incident, err := svc.VerifyIncident(ctx, adminID, incidentID)

	require.NoError(t, err)
	assert.True(t, incident.Verified)
}

func TestVerifyIncident_AlreadyVerified(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	adminID, incidentID := uuid.New(), uuid.New()

	m.repo.EXPECT().VerifyIncident(ctx, incidentID, adminID, 25).Return(nil, service.ErrAlreadyVerified)

	incident, err := svc.VerifyIncident(ctx, adminID, incidentID)

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, service.ErrAlreadyVerified)
}

func TestResolveIncident_AuditFailureIgnored(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	adminID, incidentID := uuid.New(), uuid.New()

	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusResolved).Return(nil)
	m.incidents.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(errors.New("redis down"))
	m.repo.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(errors.New("db down"))

	require.NoError(t, svc.ResolveIncident(ctx, adminID, incidentID))
}

func TestResolveIncident_NotFound(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusResolved).Return(service.ErrIncidentNotFound)

	err := svc.ResolveIncident(ctx, uuid.New(), incidentID)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestBanAndUnbanUser(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	adminID, userID := uuid.New(), uuid.New()

	m.users.EXPECT().Ban(ctx, userID, "spam").Return(nil)
	m.users.EXPECT().Unban(ctx, userID).Return(nil)
	m.repo.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, svc.BanUser(ctx, adminID, userID, "spam"))
	require.NoError(t, svc.UnbanUser(ctx, adminID, userID))
}

func TestVerifyUser_UnknownUser(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().SetVerified(ctx, userID, true).Return(service.ErrUserNotFound)

	err := svc.VerifyUser(ctx, uuid.New(), userID, true)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestListUsers_DefaultLimit(t *testing.T) {
	svc, m := newTestAdminService(t)
	ctx := context.Background()

	m.users.EXPECT().List(ctx, 100).Return([]*models.User{{ID: uuid.New()}}, nil)

	users, err := svc.ListUsers(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}
