package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

// uniqueViolation - SQLSTATE нарушения уникального индекса
const uniqueViolation = "23505"

const userColumns = `
	id, email, username, full_name, password_hash, role,
	is_verified, is_trusted, is_banned, ban_reason, gps_warnings, coins,
	created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FullName,
		&user.PasswordHash,
		&user.Role,
		&user.IsVerified,
		&user.IsTrusted,
		&user.IsBanned,
		&user.BanReason,
		&user.GPSWarnings,
		&user.Coins,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, username, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.FullName,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return service.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, service.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context, limit int) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return users, nil
}

// IncrementGPSWarnings увеличивает счётчик одним UPDATE, параллельные отчёты не теряют предупреждения
func (r *UserRepository) IncrementGPSWarnings(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE users SET
			gps_warnings = gps_warnings + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING gps_warnings;
	`
	var warnings int
	if err := r.db.QueryRow(ctx, query, id).Scan(&warnings); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %s: %w", id, service.ErrUserNotFound)
		}
		return 0, fmt.Errorf("failed to increment gps warnings: %w", err)
	}
	return warnings, nil
}

func (r *UserRepository) Ban(ctx context.Context, id uuid.UUID, reason string) error {
	return r.exec(ctx, id, `
		UPDATE users SET
			is_banned = TRUE,
			ban_reason = $2,
			updated_at = NOW()
		WHERE id = $1;
	`, reason)
}

func (r *UserRepository) Unban(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `
		UPDATE users SET
			is_banned = FALSE,
			ban_reason = '',
			gps_warnings = 0,
			updated_at = NOW()
		WHERE id = $1;
	`)
}

// SetVerified подтверждает пользователя; trusted дополнительно включает автоподтверждение его отчётов
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, trusted bool) error {
	return r.exec(ctx, id, `
		UPDATE users SET
			is_verified = TRUE,
			is_trusted = is_trusted OR $2,
			updated_at = NOW()
		WHERE id = $1;
	`, trusted)
}

func (r *UserRepository) exec(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	cmdTag, err := r.db.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, service.ErrUserNotFound)
	}
	return nil
}
