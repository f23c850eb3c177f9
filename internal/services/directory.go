package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"designdesk/internal/domain"
)

type staffService struct {
	staffRepo      domain.StaffRepository
	contextTimeout time.Duration
}

// NewStaffService creates a StaffService backed by the staff directory.
func NewStaffService(staffRepo domain.StaffRepository, timeout time.Duration) domain.StaffService {
	return &staffService{
		staffRepo:      staffRepo,
		contextTimeout: timeout,
	}
}

func (s *staffService) GetStaff(ctx context.Context, id string) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	if list == nil {
		list = []*domain.Staff{}
	}
	return list, nil
}

type customerService struct {
	customerRepo   domain.CustomerRepository
	contextTimeout time.Duration
}

// NewCustomerService creates a CustomerService backed by the customer directory.
func NewCustomerService(customerRepo domain.CustomerRepository, timeout time.Duration) domain.CustomerService {
	return &customerService{
		customerRepo:   customerRepo,
		contextTimeout: timeout,
	}
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Customer, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	search = strings.TrimSpace(search)
	list, total, err := s.customerRepo.Search(ctx, search, params)
	if err != nil {
		return nil, 0, fmt.Errorf("search customers: %w", err)
	}
	if list == nil {
		list = []*domain.Customer{}
	}
	return list, total, nil
}
