package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designdesk/internal/delivery/http/helpers"
	"designdesk/internal/domain"
)

// fakeCustomerService implements domain.CustomerService for handler tests.
type fakeCustomerService struct {
	customer   *domain.Customer
	getErr     error
	results    []*domain.Customer
	total      int
	searchErr  error
	lastSearch string
	lastParams domain.PaginationParams
}

func (f *fakeCustomerService) GetCustomer(_ context.Context, _ string) (*domain.Customer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.customer, nil
}

func (f *fakeCustomerService) SearchCustomers(_ context.Context, search string, params domain.PaginationParams) ([]*domain.Customer, int, error) {
	f.lastSearch = search
	f.lastParams = params
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.results, f.total, nil
}

func TestCustomerController_SearchCustomers(t *testing.T) {
	fake := &fakeCustomerService{
		results: []*domain.Customer{
			{ID: "cust-1", Name: "Alma Reyes", Email: "alma@example.test"},
		},
		total: 41,
	}
	ctrl := NewCustomerController(testLogger(), fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/customers?search=alma&page=3&page_size=10", nil)
	req = authed(req, "staff-1", domain.RoleAssistant)
	rr := httptest.NewRecorder()

	ctrl.SearchCustomers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alma", fake.lastSearch)
	assert.Equal(t, 3, fake.lastParams.Page)
	assert.Equal(t, 10, fake.lastParams.PageSize)

	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var resp SearchCustomersResponse
	require.NoError(t, json.Unmarshal(dataBytes, &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 41, resp.Pagination.Total)
	assert.Equal(t, 5, resp.Pagination.TotalPages)
}

func TestCustomerController_GetCustomer(t *testing.T) {
	tests := []struct {
		name         string
		fake         *fakeCustomerService
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			fake:       &fakeCustomerService{customer: &domain.Customer{ID: "cust-1", Name: "Alma Reyes"}},
			wantStatus: http.StatusOK,
		},
		{
			name:         "not found",
			fake:         &fakeCustomerService{getErr: domain.ErrNotFound},
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
		{
			name:         "service error",
			fake:         &fakeCustomerService{getErr: assert.AnError},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewCustomerController(testLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/customers/cust-1", nil)
			req.SetPathValue("customerID", "cust-1")
			req = authed(req, "staff-1", domain.RoleAssistant)
			rr := httptest.NewRecorder()

			ctrl.GetCustomer(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}
