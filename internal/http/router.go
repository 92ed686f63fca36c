package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/handlers"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	linkageHandler *handlers.LinkageHandler,
	shgHandler *handlers.SHGHandler,
	memberHandler *handlers.SHGMemberHandler,
	repaymentHandler *handlers.MonthlyRepaymentHandler,
	ticketHandler *handlers.DeleteTicketHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	fileHandler *handlers.FileHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	ownerOnly := authMiddleware.RequireRole(models.RoleOwner)
	ownerAndFrontDesk := authMiddleware.RequireRole(models.RoleOwner, models.RoleFrontDesk)
	fieldOfficerOnly := authMiddleware.RequireRole(models.RoleFieldOfficer)

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.Detailed).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Current profile, any authenticated role. Registered before the
	// owner-only users subrouter so "me" is not captured as an {id}.
	meAPI := r.PathPrefix("/api/users/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// Protected API routes - Users (owner only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.Use(ownerOnly)
	usersAPI.HandleFunc("", userHandler.List).Methods("GET")
	usersAPI.HandleFunc("", userHandler.Create).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.Get).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.Update).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.Delete).Methods("DELETE")
	usersAPI.HandleFunc("/{id}/toggle-active", userHandler.ToggleActive).Methods("PATCH")

	// Protected API routes - Linkages
	linkagesAPI := r.PathPrefix("/api/linkages").Subrouter()
	linkagesAPI.Use(authMiddleware.Authenticate)
	linkagesAPI.HandleFunc("", linkageHandler.List).Methods("GET")
	linkagesAPI.HandleFunc("", ownerAndFrontDesk(http.HandlerFunc(linkageHandler.Create)).ServeHTTP).Methods("POST")
	linkagesAPI.HandleFunc("/{id}", linkageHandler.Get).Methods("GET")
	linkagesAPI.HandleFunc("/{id}", ownerAndFrontDesk(http.HandlerFunc(linkageHandler.Update)).ServeHTTP).Methods("PUT")
	linkagesAPI.HandleFunc("/{id}", ownerOnly(http.HandlerFunc(linkageHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - SHGs
	shgsAPI := r.PathPrefix("/api/shgs").Subrouter()
	shgsAPI.Use(authMiddleware.Authenticate)
	shgsAPI.HandleFunc("", shgHandler.List).Methods("GET") // Field officers see only their own
	shgsAPI.HandleFunc("", ownerAndFrontDesk(http.HandlerFunc(shgHandler.Create)).ServeHTTP).Methods("POST")
	shgsAPI.HandleFunc("/{id}", shgHandler.Get).Methods("GET")
	shgsAPI.HandleFunc("/{id}", ownerAndFrontDesk(http.HandlerFunc(shgHandler.Update)).ServeHTTP).Methods("PUT")
	shgsAPI.HandleFunc("/{id}", shgHandler.Delete).Methods("DELETE") // Service enforces owner-only
	shgsAPI.HandleFunc("/{id}/statement", shgHandler.Statement).Methods("GET")

	// Protected API routes - SHG Members
	membersAPI := r.PathPrefix("/api/shg-members").Subrouter()
	membersAPI.Use(authMiddleware.Authenticate)
	membersAPI.HandleFunc("", memberHandler.ListBySHG).Methods("GET")
	membersAPI.HandleFunc("", ownerAndFrontDesk(http.HandlerFunc(memberHandler.Create)).ServeHTTP).Methods("POST")
	membersAPI.HandleFunc("/{id}", memberHandler.Get).Methods("GET")
	membersAPI.HandleFunc("/{id}", ownerAndFrontDesk(http.HandlerFunc(memberHandler.Update)).ServeHTTP).Methods("PUT")
	membersAPI.HandleFunc("/{id}", memberHandler.Delete).Methods("DELETE") // Service enforces owner-only

	// Protected API routes - Monthly Repayments
	repaymentsAPI := r.PathPrefix("/api/monthly-repayments").Subrouter()
	repaymentsAPI.Use(authMiddleware.Authenticate)
	repaymentsAPI.HandleFunc("", repaymentHandler.List).Methods("GET")
	repaymentsAPI.HandleFunc("", fieldOfficerOnly(http.HandlerFunc(repaymentHandler.Create)).ServeHTTP).Methods("POST") // Field officers record collections
	repaymentsAPI.HandleFunc("/export/csv", ownerAndFrontDesk(http.HandlerFunc(repaymentHandler.ExportCSV)).ServeHTTP).Methods("GET")
	repaymentsAPI.HandleFunc("/{id}", repaymentHandler.Get).Methods("GET")
	repaymentsAPI.HandleFunc("/{id}", fieldOfficerOnly(http.HandlerFunc(repaymentHandler.Update)).ServeHTTP).Methods("PUT")
	repaymentsAPI.HandleFunc("/{id}", fieldOfficerOnly(http.HandlerFunc(repaymentHandler.Delete)).ServeHTTP).Methods("DELETE")
	repaymentsAPI.HandleFunc("/{id}/receipt", repaymentHandler.Receipt).Methods("GET")

	// Protected API routes - Delete Tickets
	ticketsAPI := r.PathPrefix("/api/delete-tickets").Subrouter()
	ticketsAPI.Use(authMiddleware.Authenticate)
	ticketsAPI.HandleFunc("", ticketHandler.List).Methods("GET")
	ticketsAPI.HandleFunc("", ownerAndFrontDesk(http.HandlerFunc(ticketHandler.Create)).ServeHTTP).Methods("POST")
	ticketsAPI.HandleFunc("/{id}", ticketHandler.Get).Methods("GET")
	ticketsAPI.HandleFunc("/{id}/approve", ownerOnly(http.HandlerFunc(ticketHandler.Approve)).ServeHTTP).Methods("POST")
	ticketsAPI.HandleFunc("/{id}/reject", ownerOnly(http.HandlerFunc(ticketHandler.Reject)).ServeHTTP).Methods("POST")

	// Protected API routes - Analytics (dashboard roles only)
	analyticsAPI := r.PathPrefix("/api/repayment-analytics").Subrouter()
	analyticsAPI.Use(authMiddleware.Authenticate)
	analyticsAPI.Use(ownerAndFrontDesk)
	analyticsAPI.HandleFunc("", analyticsHandler.GetRepaymentAnalytics).Methods("GET")

	// Protected API routes - File uploads
	filesAPI := r.PathPrefix("/api/files").Subrouter()
	filesAPI.Use(authMiddleware.Authenticate)
	filesAPI.HandleFunc("/upload", fileHandler.Upload).Methods("POST")

	return r
}
