package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuditRepository interface {
	AppendTx(ctx context.Context, q database.Querier, entry *entity.AuditEntry) error
	FindRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

// AppendTx records entry inside the caller's transaction so the audit row
// commits or rolls back together with the ticket change.
func (r *auditRepository) AppendTx(ctx context.Context, q database.Querier, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO booking_audit (operation, ticket_id, screening_id, seat_label, actor)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.Operation,
		entry.TicketID,
		entry.ScreeningID,
		entry.SeatLabel,
		entry.Actor,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		r.log.Error("Failed to append audit entry",
			zap.Error(err),
			zap.String("operation", string(entry.Operation)),
			zap.Int64("screening_id", entry.ScreeningID),
		)
		return fmt.Errorf("append %s audit entry: %w", entry.Operation, database.Classify("audit.append", err))
	}

	return nil
}

func (r *auditRepository) FindRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, operation, ticket_id, screening_id, seat_label,
		       COALESCE(actor, 'system') AS actor, created_at
		FROM booking_audit
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find audit entries", zap.Error(err))
		return nil, fmt.Errorf("find audit entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.AuditEntry])
	if err != nil {
		r.log.Error("Failed to read audit entries", zap.Error(err))
		return nil, fmt.Errorf("read audit entries: %w", err)
	}

	return entries, nil
}
