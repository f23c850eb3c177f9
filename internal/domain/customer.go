package domain

import (
	"context"
	"time"
)

// Customer is a directory record used by the UI to pre-fill appointment
// fields. It plays no part in scheduling correctness.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerRepository defines the interface for the customer directory.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*Customer, error)
	// Search returns customers whose name or email contains the search term
	// (case-insensitive), paginated, with the total match count.
	Search(ctx context.Context, search string, params PaginationParams) ([]*Customer, int, error)
}

// CustomerService defines the business logic for the customer directory.
type CustomerService interface {
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	SearchCustomers(ctx context.Context, search string, params PaginationParams) ([]*Customer, int, error)
}
