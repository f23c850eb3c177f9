package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"designdesk/internal/delivery/http/helpers"
	"designdesk/internal/domain"
)

// SearchCustomersResponse is the data payload for GET /customers (200).
type SearchCustomersResponse struct {
	Items      []*domain.Customer     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// SearchCustomersSuccessResponse is the success response envelope for GET /customers (200).
type SearchCustomersSuccessResponse struct {
	Data  SearchCustomersResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// CustomerSuccessResponse is the success response envelope for GET /customers/{customerID} (200).
type CustomerSuccessResponse struct {
	Data  *domain.Customer  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CustomerController struct {
	Logger  *slog.Logger
	Service domain.CustomerService
}

func NewCustomerController(logger *slog.Logger, svc domain.CustomerService) *CustomerController {
	return &CustomerController{
		Logger:  logger,
		Service: svc,
	}
}

// SearchCustomers godoc
// @Summary Search the customer directory
// @Description Returns a paginated list of customers whose name or email contains the search term (case-insensitive). Use page and page_size query params. Requires authentication.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Filter customers by name or email substring"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.SearchCustomersSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /customers [get]
func (c *CustomerController) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.SearchCustomers(r.Context(), search, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchCustomersResponse{Items: list, Pagination: meta})
}

// GetCustomer godoc
// @Summary Get a customer by ID
// @Description Returns a single customer directory record. Requires authentication.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Success 200 {object} controllers.CustomerSuccessResponse "data contains the customer"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /customers/{customerID} [get]
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.PathValue("customerID")
	if customerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing customerID")
		return
	}
	customer, err := c.Service.GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "customer not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, customer)
}
