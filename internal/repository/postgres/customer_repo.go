package postgres

import (
	"context"
	"database/sql"

	"designdesk/internal/domain"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

const customerColumns = `id, name, email, phone, address, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) Search(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Customer, int, error) {
	pattern := "%" + search + "%"

	var total int
	countQuery := `SELECT COUNT(*) FROM customers WHERE name ILIKE $1 OR email ILIKE $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, pattern, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := []*domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
