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

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

var customerDeleteConstraints = map[string]error{
	"tickets_customer_id_fkey": ErrStillReferenced,
}

const customerColumns = `SELECT id, name, phone, created_at, updated_at FROM customers`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var customer entity.Customer
	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	result, err := r.db.Run(ctx, query, customer.Name, customer.Phone, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("phone", customer.Phone),
		)
		return fmt.Errorf("create customer %s: %w", customer.Name, err)
	}

	customer.ID = result.LastInsertID
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, customerColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return customer, nil
}

// FindByPhone returns the earliest customer registered with phone.
func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	// Ambil customer paling awal kalau nomor dipakai lebih dari satu
	customer, err := scanCustomer(r.db.QueryRow(ctx, customerColumns+` WHERE phone = $1 ORDER BY id LIMIT 1`, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.db.Query(ctx, customerColumns+` ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to find customers", zap.Error(err))
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*entity.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Run(ctx, query, customer.ID, customer.Name, customer.Phone, customer.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.Int64("customer_id", customer.ID),
		)
		return fmt.Errorf("update customer %d: %w", customer.ID, err)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, ErrCustomerNotFound)
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Run(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return fmt.Errorf("delete customer %d: %w", id, translate("customer.delete", err, customerDeleteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrCustomerNotFound)
	}

	r.log.Info("Customer deleted", zap.Int64("customer_id", id))
	return nil
}
