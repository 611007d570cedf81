package http

import (
	"net/http"

	"go-training-booking/internal/delivery/http/handler"
	"go-training-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	adminBookingHandler *handler.AdminBookingHandler
	trainerHandler      *handler.TrainerHandler
	companyHandler      *handler.CompanyHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	adminBookingHandler *handler.AdminBookingHandler,
	trainerHandler *handler.TrainerHandler,
	companyHandler *handler.CompanyHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		adminBookingHandler: adminBookingHandler,
		trainerHandler:      trainerHandler,
		companyHandler:      companyHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/company", r.authHandler.RegisterCompany).Methods(http.MethodPost)
	auth.HandleFunc("/register/trainer", r.authHandler.RegisterTrainer).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Trainer directory (any authenticated user)
	directory := api.PathPrefix("/trainers").Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.HandleFunc("", r.trainerHandler.ListTrainers).Methods(http.MethodGet)
	directory.HandleFunc("/{id}", r.trainerHandler.GetTrainer).Methods(http.MethodGet)
	directory.Handle("/{id}/catalog", middleware.RequireAdminOrTrainer(http.HandlerFunc(r.trainerHandler.UpdateCatalog))).Methods(http.MethodPut)

	// Company routes (protected - company only)
	company := api.PathPrefix("/company").Subrouter()
	company.Use(r.authMiddleware.Authenticate)
	company.Use(middleware.RequireCompany)
	company.HandleFunc("/profile", r.companyHandler.GetMyProfile).Methods(http.MethodGet)
	company.HandleFunc("/profile", r.companyHandler.UpdateMyProfile).Methods(http.MethodPut)
	company.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	company.HandleFunc("/bookings", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)

	// Trainer routes (protected - trainer only)
	trainer := api.PathPrefix("/trainer").Subrouter()
	trainer.Use(r.authMiddleware.Authenticate)
	trainer.Use(middleware.RequireTrainer)
	trainer.HandleFunc("/profile", r.trainerHandler.UpdateMyProfile).Methods(http.MethodPut)
	trainer.HandleFunc("/schedule", r.bookingHandler.GetMySchedule).Methods(http.MethodGet)

	// Booking lifecycle routes (role gates enforced in the usecase layer,
	// where ownership matters as much as role)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/confirm", r.bookingHandler.ConfirmBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/complete", r.bookingHandler.CompleteBooking).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/bookings", r.adminBookingHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/pending", r.adminBookingHandler.ListPendingApprovals).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/approve", r.adminBookingHandler.ApproveBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/reject", r.adminBookingHandler.RejectBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/trainers/{id}/deactivate", r.trainerHandler.DeactivateTrainer).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
