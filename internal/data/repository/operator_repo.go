package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	FindByID(ctx context.Context, id int64) (*entity.Operator, error)
	FindByUsername(ctx context.Context, username string) (*entity.Operator, error)
	Count(ctx context.Context) (int64, error)
}

type operatorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOperatorRepository(db database.PgxIface, log *zap.Logger) OperatorRepository {
	return &operatorRepository{
		db:  db,
		log: log.With(zap.String("repository", "operator")),
	}
}

var operatorConstraints = map[string]error{
	"operators_username_key": ErrUsernameTaken,
}

const operatorColumns = `
	SELECT id, username, password_hash, role, is_active, created_at, updated_at
	FROM operators
`

func scanOperator(row pgx.Row) (*entity.Operator, error) {
	var operator entity.Operator
	err := row.Scan(
		&operator.ID,
		&operator.Username,
		&operator.PasswordHash,
		&operator.Role,
		&operator.IsActive,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	query := `
		INSERT INTO operators (username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	result, err := r.db.Run(ctx, query,
		operator.Username,
		operator.PasswordHash,
		operator.Role,
		operator.IsActive,
		operator.CreatedAt,
		operator.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create operator",
			zap.Error(err),
			zap.String("username", operator.Username),
		)
		return fmt.Errorf("create operator %s: %w", operator.Username, translate("operator.create", err, operatorConstraints))
	}

	operator.ID = result.LastInsertID
	return nil
}

func (r *operatorRepository) FindByID(ctx context.Context, id int64) (*entity.Operator, error) {
	operator, err := scanOperator(r.db.QueryRow(ctx, operatorColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find operator by ID",
			zap.Error(err),
			zap.Int64("operator_id", id),
		)
		return nil, fmt.Errorf("find operator by ID %d: %w", id, err)
	}

	return operator, nil
}

func (r *operatorRepository) FindByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	operator, err := scanOperator(r.db.QueryRow(ctx, operatorColumns+` WHERE username = $1`, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find operator by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find operator %s: %w", username, err)
	}

	return operator, nil
}

func (r *operatorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM operators`).Scan(&count); err != nil {
		r.log.Error("Failed to count operators", zap.Error(err))
		return 0, fmt.Errorf("count operators: %w", err)
	}
	return count, nil
}
