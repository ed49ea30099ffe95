package http

import (
	"net/http"

	"family-records-api/internal/delivery/http/handler"
	"family-records-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	memberHandler       *handler.FamilyMemberHandler
	documentHandler     *handler.DocumentHandler
	vehicleHandler      *handler.VehicleHandler
	healthRecordHandler *handler.HealthRecordHandler
	reminderHandler     *handler.ReminderHandler
	dashboardHandler    *handler.DashboardHandler
	lookupHandler       *handler.LookupHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	memberHandler *handler.FamilyMemberHandler,
	documentHandler *handler.DocumentHandler,
	vehicleHandler *handler.VehicleHandler,
	healthRecordHandler *handler.HealthRecordHandler,
	reminderHandler *handler.ReminderHandler,
	dashboardHandler *handler.DashboardHandler,
	lookupHandler *handler.LookupHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		memberHandler:       memberHandler,
		documentHandler:     documentHandler,
		vehicleHandler:      vehicleHandler,
		healthRecordHandler: healthRecordHandler,
		reminderHandler:     reminderHandler,
		dashboardHandler:    dashboardHandler,
		lookupHandler:       lookupHandler,
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
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Household routes (any authenticated account)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Family members
	protected.HandleFunc("/members", r.memberHandler.CreateMember).Methods(http.MethodPost)
	protected.HandleFunc("/members", r.memberHandler.GetAllMembers).Methods(http.MethodGet)
	protected.HandleFunc("/members/{id}", r.memberHandler.GetMember).Methods(http.MethodGet)
	protected.HandleFunc("/members/{id}", r.memberHandler.UpdateMember).Methods(http.MethodPut)
	protected.HandleFunc("/members/{id}", r.memberHandler.DeleteMember).Methods(http.MethodDelete)

	// Documents
	protected.HandleFunc("/documents", r.documentHandler.CreateDocument).Methods(http.MethodPost)
	protected.HandleFunc("/documents", r.documentHandler.GetAllDocuments).Methods(http.MethodGet)
	protected.HandleFunc("/documents/{id}", r.documentHandler.GetDocument).Methods(http.MethodGet)
	protected.HandleFunc("/documents/{id}", r.documentHandler.UpdateDocument).Methods(http.MethodPut)
	protected.HandleFunc("/documents/{id}", r.documentHandler.DeleteDocument).Methods(http.MethodDelete)

	// Vehicles
	protected.HandleFunc("/vehicles", r.vehicleHandler.CreateVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", r.vehicleHandler.GetAllVehicles).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", r.vehicleHandler.GetVehicle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", r.vehicleHandler.UpdateVehicle).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id}", r.vehicleHandler.DeleteVehicle).Methods(http.MethodDelete)

	// Health records
	protected.HandleFunc("/health-records", r.healthRecordHandler.CreateRecord).Methods(http.MethodPost)
	protected.HandleFunc("/health-records", r.healthRecordHandler.GetAllRecords).Methods(http.MethodGet)
	protected.HandleFunc("/health-records/{id}", r.healthRecordHandler.GetRecord).Methods(http.MethodGet)
	protected.HandleFunc("/health-records/{id}", r.healthRecordHandler.UpdateRecord).Methods(http.MethodPut)
	protected.HandleFunc("/health-records/{id}", r.healthRecordHandler.DeleteRecord).Methods(http.MethodDelete)

	// Reminders
	protected.HandleFunc("/reminders", r.reminderHandler.GetFeed).Methods(http.MethodGet)
	protected.HandleFunc("/reminders", r.reminderHandler.CreateReminder).Methods(http.MethodPost)
	protected.HandleFunc("/reminders/{id}", r.reminderHandler.DeleteReminder).Methods(http.MethodDelete)

	// Dashboard and assistant
	protected.HandleFunc("/dashboard/summary", r.dashboardHandler.GetSummary).Methods(http.MethodGet)
	protected.HandleFunc("/assistant/ask", r.dashboardHandler.Ask).Methods(http.MethodPost)

	// Reference lists (read side)
	protected.HandleFunc("/lookups/document-types", r.lookupHandler.GetDocumentTypes).Methods(http.MethodGet)
	protected.HandleFunc("/lookups/blood-groups", r.lookupHandler.GetBloodGroups).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Account management (admin)
	admin.HandleFunc("/users", r.authHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/active", r.authHandler.SetUserActive).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}/members", r.memberHandler.GetUserMembers).Methods(http.MethodGet)

	// Reference list management (admin)
	admin.HandleFunc("/lookups/document-types", r.lookupHandler.CreateDocumentType).Methods(http.MethodPost)
	admin.HandleFunc("/lookups/document-types/{id}", r.lookupHandler.DeleteDocumentType).Methods(http.MethodDelete)
	admin.HandleFunc("/lookups/blood-groups", r.lookupHandler.CreateBloodGroup).Methods(http.MethodPost)
	admin.HandleFunc("/lookups/blood-groups/{id}", r.lookupHandler.DeleteBloodGroup).Methods(http.MethodDelete)

	// Activity feed (admin)
	admin.HandleFunc("/activity", r.auditLogHandler.GetRecentActivity).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
