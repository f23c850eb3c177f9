package postgres

import (
	"context"
	"database/sql"

	"designdesk/internal/domain"
)

type StaffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(db *sql.DB) domain.StaffRepository {
	return &StaffRepository{
		DB: db,
	}
}

const staffColumns = `id, email, name, role, password_hash, salt, created_at, updated_at`

func scanStaff(row interface{ Scan(...any) error }) (*domain.Staff, error) {
	s := &domain.Staff{}
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Role, &s.PasswordHash, &s.Salt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	s, err := scanStaff(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE LOWER(email) = LOWER($1)`
	s, err := scanStaff(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
