package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"designdesk/internal/delivery/http/controllers"
	"designdesk/internal/delivery/http/middleware"
	"designdesk/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything except sign-in and swagger requires a Bearer token.
func NewRouter(
	scheduleController *controllers.ScheduleController,
	authController *controllers.AuthController,
	staffController *controllers.StaffController,
	customerController *controllers.CustomerController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/sign-in", authController.SignIn)

	// Appointments
	mux.HandleFunc("POST /appointments/proposals", auth(scheduleController.ProposeDefaults))
	mux.HandleFunc("POST /appointments", auth(scheduleController.CreateAppointment))
	mux.HandleFunc("GET /appointments/{appointmentID}", auth(scheduleController.GetAppointment))
	mux.HandleFunc("PATCH /appointments/{appointmentID}", auth(scheduleController.UpdateAppointment))
	mux.HandleFunc("POST /appointments/{appointmentID}/cancel", auth(scheduleController.CancelAppointment))
	mux.HandleFunc("GET /calendar", auth(scheduleController.ListCalendar))

	// Directories
	mux.HandleFunc("GET /staff", auth(staffController.ListStaff))
	mux.HandleFunc("GET /staff/me", auth(staffController.GetCurrentStaff))
	mux.HandleFunc("GET /customers", auth(customerController.SearchCustomers))
	mux.HandleFunc("GET /customers/{customerID}", auth(customerController.GetCustomer))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
