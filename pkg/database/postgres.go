package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Querier is the statement surface shared by the pool and an open transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TxRunner runs fn as one unit of work: commit when fn returns nil,
// rollback otherwise. fn must issue its statements with the ctx it is
// given, which carries the query deadline.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}

// PgxIface is the persistence gateway used by every repository.
type PgxIface interface {
	Querier
	TxRunner
	Run(ctx context.Context, sql string, args ...any) (*Result, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Result is what Run reports for a single statement.
type Result struct {
	Kind         StatementKind
	Rows         []map[string]any
	LastInsertID int64
	RowsAffected int64
}

// DB connects lazily and checks liveness before every call. A failed check
// triggers exactly one inline reconnect.
type DB struct {
	mu          sync.Mutex
	pool        *pgxpool.Pool
	config      *pgxpool.Config
	timeout     time.Duration
	pingTimeout time.Duration
	log         *zap.Logger
}

func (db *DB) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	db.mu.Lock()
	pool := db.pool
	db.mu.Unlock()

	if pool != nil {
		err := db.ping(ctx, pool)
		if err == nil {
			return pool, nil
		}
		if ctx.Err() != nil {
			return nil, Classify("db.ping", ctx.Err())
		}
		db.log.Warn("Database liveness check failed, reconnecting", zap.Error(err))
	}

	return db.reconnect(ctx, pool)
}

func (db *DB) ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, db.pingTimeout)
	defer cancel()
	return pool.Ping(pingCtx)
}

func (db *DB) reconnect(ctx context.Context, stale *pgxpool.Pool) (*pgxpool.Pool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	// another caller already replaced the stale pool
	if db.pool != nil && db.pool != stale {
		return db.pool, nil
	}
	if db.pool != nil {
		db.pool.Close()
		db.pool = nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, db.config.Copy())
	if err != nil {
		db.log.Error("Failed to create connection pool", zap.Error(err))
		return nil, apperror.Wrap(apperror.KindConnectivity, "db.connect", err)
	}

	if err := db.ping(ctx, pool); err != nil {
		pool.Close()
		db.log.Error("Database unreachable", zap.Error(err))
		return nil, apperror.Wrap(apperror.KindConnectivity, "db.connect", err)
	}

	db.pool = pool
	db.log.Info("Database connected",
		zap.String("host", db.config.ConnConfig.Host),
		zap.String("database", db.config.ConnConfig.Database),
	)
	return pool, nil
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

// Query implements PgxIface. The deadline is released when rows are closed.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ctx, cancel := db.withTimeout(ctx)

	pool, err := db.acquire(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		cancel()
		return nil, Classify("db.query", err)
	}

	return &cancelRows{Rows: rows, cancel: cancel}, nil
}

// QueryRow implements PgxIface. pgx.ErrNoRows is returned unwrapped by Scan.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ctx, cancel := db.withTimeout(ctx)

	pool, err := db.acquire(ctx)
	if err != nil {
		cancel()
		return errRow{err: err}
	}

	return &cancelRow{row: pool.QueryRow(ctx, sql, args...), cancel: cancel}
}

// Exec implements PgxIface
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	pool, err := db.acquire(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	tag, err := pool.Exec(ctx, sql, args...)
	if err != nil {
		return tag, Classify("db.exec", err)
	}
	return tag, nil
}

// Begin implements PgxIface. The caller owns the transaction deadline.
func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	pool, err := db.acquire(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, Classify("db.begin", err)
	}
	return tx, nil
}

// WithTx implements TxRunner. One deadline covers the whole transaction.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	txCtx, cancel := db.withTimeout(ctx)
	defer cancel()

	tx, err := db.Begin(txCtx)
	if err != nil {
		return err
	}

	if err := fn(txCtx, tx); err != nil {
		// rollback must still reach the server after the deadline fired
		rbCtx, rbCancel := context.WithTimeout(context.WithoutCancel(ctx), db.pingTimeout)
		defer rbCancel()

		if rbErr := tx.Rollback(rbCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			db.log.Error("Failed to rollback transaction", zap.Error(rbErr))
			return errors.Join(err, Classify("db.rollback", rbErr))
		}
		return err
	}

	if err := tx.Commit(txCtx); err != nil {
		return Classify("db.commit", err)
	}
	return nil
}

// Run executes one statement and reports it according to its leading
// keyword. Writes run in their own transaction.
func (db *DB) Run(ctx context.Context, sql string, args ...any) (*Result, error) {
	kind := ClassifyStatement(sql)

	if !kind.Writes() {
		rows, err := db.Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		maps, err := pgx.CollectRows(rows, pgx.RowToMap)
		if err != nil {
			return nil, Classify("db.run", err)
		}
		return &Result{Kind: kind, Rows: maps}, nil
	}

	var result *Result
	err := db.WithTx(ctx, func(ctx context.Context, q Querier) error {
		var err error
		result, err = execute(ctx, q, kind, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func execute(ctx context.Context, q Querier, kind StatementKind, sql string, args ...any) (*Result, error) {
	result := &Result{Kind: kind}

	if kind != StatementCall && !hasReturning(sql) {
		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return nil, Classify("db.run", err)
		}
		result.RowsAffected = tag.RowsAffected()
		return result, nil
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, Classify("db.run", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	if len(fields) == 0 {
		for rows.Next() {
		}
		if err := rows.Err(); err != nil {
			return nil, Classify("db.run", err)
		}
		result.RowsAffected = rows.CommandTag().RowsAffected()
		return result, nil
	}

	firstColumn := fields[0].Name
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, Classify("db.run", err)
	}

	result.Rows = maps
	result.RowsAffected = rows.CommandTag().RowsAffected()
	if kind == StatementInsert && len(maps) > 0 {
		result.LastInsertID = toInt64(maps[0][firstColumn])
	}
	return result, nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int:
		return int64(n)
	default:
		return 0
	}
}

// Ping implements PgxIface
func (db *DB) Ping(ctx context.Context) error {
	_, err := db.acquire(ctx)
	return err
}

// Close implements PgxIface. A later call connects again.
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool != nil {
		db.pool.Close()
		db.pool = nil
	}
}

type cancelRows struct {
	pgx.Rows
	cancel context.CancelFunc
}

func (r *cancelRows) Close() {
	r.Rows.Close()
	r.cancel()
}

func (r *cancelRows) Err() error {
	if err := r.Rows.Err(); err != nil {
		return Classify("db.rows", err)
	}
	return nil
}

type cancelRow struct {
	row    pgx.Row
	cancel context.CancelFunc
}

func (r *cancelRow) Scan(dest ...any) error {
	defer r.cancel()

	err := r.row.Scan(dest...)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Classify("db.query_row", err)
	}
	return err
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// InitDB menyiapkan konfigurasi pool database. Koneksi baru dibuka saat
// call pertama.
func InitDB(config utils.DatabaseConfig, log *zap.Logger) (PgxIface, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = config.MinConns
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	return &DB{
		config:      poolConfig,
		timeout:     config.QueryTimeout,
		pingTimeout: 3 * time.Second,
		log:         log.With(zap.String("component", "database")),
	}, nil
}
