package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

type CoinRepository struct {
	db *pgxpool.Pool
}

func NewCoinRepository(db *pgxpool.Pool) service.CoinRepository {
	return &CoinRepository{db: db}
}

func (r *CoinRepository) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	var coins int
	if err := r.db.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1`, userID).Scan(&coins); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %s: %w", userID, service.ErrUserNotFound)
		}
		return 0, fmt.Errorf("failed to get coin balance: %w", err)
	}
	return coins, nil
}

func (r *CoinRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.CoinTransaction, error) {
	query := `
		SELECT id, user_id, amount, transaction_type, incident_id, description, created_at
		FROM coin_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list coin transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*models.CoinTransaction, 0)
	for rows.Next() {
		tx := &models.CoinTransaction{}
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.IncidentID, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coin transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error transactions iteration: %w", err)
	}
	return txs, nil
}

// Deduct списывает -entry.Amount монет условным UPDATE и пишет запись в журнал.
// Возвращает новый баланс.
func (r *CoinRepository) Deduct(ctx context.Context, entry *models.CoinTransaction) (int, error) {
	amount := -entry.Amount
	var balance int

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE users SET
				coins = coins - $2,
				updated_at = NOW()
			WHERE id = $1 AND coins >= $2
			RETURNING coins;
		`, entry.UserID, amount).Scan(&balance)
		if errors.Is(err, pgx.ErrNoRows) {
			// баланса не хватило или пользователя нет
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, entry.UserID).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check user: %w", err)
			}
			if !exists {
				return fmt.Errorf("user %s: %w", entry.UserID, service.ErrUserNotFound)
			}
			return service.ErrInsufficientCoins
		}
		if err != nil {
			return fmt.Errorf("failed to deduct coins: %w", err)
		}

		return insertCoinTransaction(ctx, tx, entry)
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}
