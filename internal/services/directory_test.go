package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designdesk/internal/domain"
)

type fakeCustomerRepo struct {
	byID      map[string]*domain.Customer
	searchErr error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, search string, _ domain.PaginationParams) ([]*domain.Customer, int, error) {
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	var out []*domain.Customer
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func TestStaffService_ListStaff(t *testing.T) {
	repo := newFakeStaffRepo(defaultStaff()...)
	svc := NewStaffService(repo, 2*time.Second)

	list, err := svc.ListStaff(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, len(repo.byID))
}

func TestStaffService_GetStaff_NotFound(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo(defaultStaff()...), 2*time.Second)

	_, err := svc.GetStaff(context.Background(), "staff-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerService_SearchCustomers(t *testing.T) {
	repo := &fakeCustomerRepo{byID: map[string]*domain.Customer{
		"cust-1": {ID: "cust-1", Name: "Alma Reyes", Email: "alma@example.test"},
		"cust-2": {ID: "cust-2", Name: "Ben Ortiz", Email: "ben@example.test"},
	}}
	svc := NewCustomerService(repo, 2*time.Second)

	list, total, err := svc.SearchCustomers(context.Background(), "  alma  ", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)
}

func TestCustomerService_SearchCustomers_RepoError(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerRepo{searchErr: errors.New("db down")}, 2*time.Second)

	_, _, err := svc.SearchCustomers(context.Background(), "x", domain.PaginationParams{Page: 1, PageSize: 20})
	require.Error(t, err)
}

func TestCustomerService_SearchCustomers_EmptyIsNonNil(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerRepo{byID: map[string]*domain.Customer{}}, 2*time.Second)

	list, total, err := svc.SearchCustomers(context.Background(), "nobody", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
