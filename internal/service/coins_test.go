package service_test

import (
	"bytes"
	"context"
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

var testCoinPolicy = service.CoinPolicy{
	PerReport:         10,
	PerVerifiedReport: 25,
	MinForConversion:  100,
	BirrRate:          0.5,
}

func newTestCoinService(t *testing.T) (service.CoinService, *mocks.MockCoinRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCoinRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewCoinService(repoMock, testCoinPolicy, logger), repoMock
}

func TestCoinPolicy(t *testing.T) {
	assert.Equal(t, 10, testCoinPolicy.ReportReward(false))
	assert.Equal(t, 25, testCoinPolicy.ReportReward(true))
	assert.Equal(t, models.CoinTransactionReport, testCoinPolicy.ReportTransactionType(false))
	assert.Equal(t, models.CoinTransactionVerifiedReport, testCoinPolicy.ReportTransactionType(true))
	assert.InDelta(t, 60.0, testCoinPolicy.ToBirr(120), 1e-9)
}

func TestBalance(t *testing.T) {
	svc, repoMock := newTestCoinService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().GetBalance(ctx, userID).Return(240, nil)

	balance, err := svc.Balance(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 240, balance.Coins)
	assert.InDelta(t, 120.0, balance.BirrEquivalent, 1e-9)
}

func TestTransactions_ClampsLimit(t *testing.T) {
	svc, repoMock := newTestCoinService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().ListTransactions(ctx, userID, 50).Return([]*models.CoinTransaction{{ID: 1}}, nil)

	txs, err := svc.Transactions(ctx, userID, -1)

	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestConvert_Success(t *testing.T) {
	svc, repoMock := newTestCoinService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().
		Deduct(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.CoinTransaction) (int, error) {
			assert.Equal(t, userID, tx.UserID)
			assert.Equal(t, -150, tx.Amount)
			assert.Equal(t, models.CoinTransactionConversion, tx.Type)
			assert.Nil(t, tx.IncidentID)
			return 30, nil
		})

	conv, err := svc.Convert(ctx, userID, 150)

	require.NoError(t, err)
	assert.Equal(t, 150, conv.ConvertedCoins)
	assert.InDelta(t, 75.0, conv.BirrAmount, 1e-9)
	assert.Equal(t, 30, conv.NewBalance)
}

func TestConvert_BelowMinimum(t *testing.T) {
	svc, repoMock := newTestCoinService(t)
	ctx := context.Background()

	repoMock.EXPECT().Deduct(gomock.Any(), gomock.Any()).Times(0)

	conv, err := svc.Convert(ctx, uuid.New(), 99)

	assert.Nil(t, conv)
	assert.ErrorIs(t, err, service.ErrBelowMinimumConversion)
}

func TestConvert_InsufficientCoins(t *testing.T) {
	svc, repoMock := newTestCoinService(t)
	ctx := context.Background()

	repoMock.EXPECT().Deduct(ctx, gomock.Any()).Return(0, service.ErrInsufficientCoins)

	conv, err := svc.Convert(ctx, uuid.New(), 500)

	assert.Nil(t, conv)
	assert.ErrorIs(t, err, service.ErrInsufficientCoins)
}
