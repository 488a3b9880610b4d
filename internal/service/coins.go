package service

//go:generate mockgen -source=coins.go -destination=mocks/coins.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultTransactionsLimit = 50

// CoinPolicy - правила начисления и конвертации монет
type CoinPolicy struct {
	PerReport         int
	PerVerifiedReport int
	MinForConversion  int
	BirrRate          float64
}

// ReportReward - сколько монет начисляется за отчёт
func (p CoinPolicy) ReportReward(verified bool) int {
	if verified {
		return p.PerVerifiedReport
	}
	return p.PerReport
}

func (p CoinPolicy) ReportTransactionType(verified bool) models.CoinTransactionType {
	if verified {
		return models.CoinTransactionVerifiedReport
	}
	return models.CoinTransactionReport
}

func (p CoinPolicy) ToBirr(coins int) float64 {
	return float64(coins) * p.BirrRate
}

// CoinRepository определяет контракт для журнала монет
type CoinRepository interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.CoinTransaction, error)
	// Deduct списывает amount, только если баланс достаточен, и пишет запись в журнал
	Deduct(ctx context.Context, tx *models.CoinTransaction) (int, error)
}

type CoinService interface {
	Balance(ctx context.Context, userID uuid.UUID) (*models.CoinBalance, error)
	Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.CoinTransaction, error)
	Convert(ctx context.Context, userID uuid.UUID, amount int) (*models.CoinConversion, error)
}

type coinService struct {
	repo   CoinRepository
	policy CoinPolicy
	logger *logrus.Logger
}

func NewCoinService(repo CoinRepository, policy CoinPolicy, logger *logrus.Logger) CoinService {
	return &coinService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

func (s *coinService) Balance(ctx context.Context, userID uuid.UUID) (*models.CoinBalance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "coins",
		"method":  "Balance",
		"user_id": userID,
	})

	coins, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get coin balance")
		return nil, fmt.Errorf("service: could not get balance: %w", err)
	}

	return &models.CoinBalance{
		Coins:          coins,
		BirrEquivalent: s.policy.ToBirr(coins),
	}, nil
}

func (s *coinService) Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.CoinTransaction, error) {
	if limit < 1 || limit > 200 {
		limit = defaultTransactionsLimit
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "coins",
		"method":  "Transactions",
		"user_id": userID,
		"limit":   limit,
	})

	txs, err := s.repo.ListTransactions(ctx, userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list coin transactions")
		return nil, fmt.Errorf("service: could not list transactions: %w", err)
	}
	return txs, nil
}

// Convert переводит монеты в бырры по курсу политики
func (s *coinService) Convert(ctx context.Context, userID uuid.UUID, amount int) (*models.CoinConversion, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "coins",
		"method":  "Convert",
		"user_id": userID,
		"amount":  amount,
	})
	log.Info("Converting coins")

	if amount < s.policy.MinForConversion {
		log.Warn("Conversion amount below minimum")
		return nil, fmt.Errorf("%w: minimum %d coins required", ErrBelowMinimumConversion, s.policy.MinForConversion)
	}

	birr := s.policy.ToBirr(amount)
	newBalance, err := s.repo.Deduct(ctx, &models.CoinTransaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        models.CoinTransactionConversion,
		Description: fmt.Sprintf("Converted %d coins to %.2f Birr", amount, birr),
	})
	if err != nil {
		log.WithError(err).Warn("Failed to deduct coins")
		return nil, fmt.Errorf("service: could not convert coins: %w", err)
	}

	log.WithField("new_balance", newBalance).Info("Coins converted")
	return &models.CoinConversion{
		ConvertedCoins: amount,
		BirrAmount:     birr,
		NewBalance:     newBalance,
	}, nil
}
