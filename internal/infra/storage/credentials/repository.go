package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
const uniqueViolation = "23505"

// Repository репозиторий сессий в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, session *domain.Session) error {
	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"id",
			"user_id",
			"role",
			"access_token",
			"refresh_token",
		).
		Values(
			session.ID,
			session.UserID,
			session.Role.String(),
			session.Credentials.AccessToken,
			session.Credentials.RefreshToken,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: id=%s", ErrSessionExists, session.ID)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"role",
		"access_token",
		"refresh_token",
		"created_at",
		"updated_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var session domain.Session
	var role string

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&role,
		&session.Credentials.AccessToken,
		&session.Credentials.RefreshToken,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	// Роль записана при входе; неизвестное значение означает порчу данных
	session.Role, err = domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - role: %v", ErrScanRow, err)
	}

	return &session, nil
}

// UpdateTokens сохраняет обновленную пару токенов сессии
func (r *Repository) UpdateTokens(ctx context.Context, id string, credentials domain.Credentials) error {
	query, args, err := psqlbuilder.Update("sessions").
		Set("access_token", credentials.AccessToken).
		Set("refresh_token", credentials.RefreshToken).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "UpdateTokens", query, args)
}

// Touch отмечает использование сессии
func (r *Repository) Touch(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Update("sessions").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Touch - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Touch", query, args)
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
}

// DeleteIdleSince удаляет сессии, не использовавшиеся с указанного момента
func (r *Repository) DeleteIdleSince(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdleSince - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdleSince - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdleSince - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}

	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
