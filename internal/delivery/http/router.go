package http

import (
	"net/http"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http/handler"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	pipelineHandler *handler.PipelineHandler
	stagingHandler  *handler.StagingHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	pipelineHandler *handler.PipelineHandler,
	stagingHandler *handler.StagingHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		pipelineHandler: pipelineHandler,
		stagingHandler:  stagingHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/token", r.authHandler.IssueToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/revoke", r.authHandler.RevokeToken).Methods(http.MethodPost)

	// Pipeline triggers (protected)
	pipeline := api.PathPrefix("/pipeline").Subrouter()
	pipeline.Use(r.authMiddleware.Authenticate)
	pipeline.HandleFunc("/ingest", r.pipelineHandler.IngestBundle).Methods(http.MethodPost)
	pipeline.HandleFunc("/ingest/synthetic", r.pipelineHandler.IngestSynthetic).Methods(http.MethodPost)
	pipeline.HandleFunc("/transform", r.pipelineHandler.RunTransform).Methods(http.MethodPost)

	// Pipeline observability (public)
	api.HandleFunc("/pipeline/runs", r.pipelineHandler.GetAllRuns).Methods(http.MethodGet)
	api.HandleFunc("/pipeline/runs/{id}", r.pipelineHandler.GetRun).Methods(http.MethodGet)
	api.HandleFunc("/pipeline/quality-report", r.pipelineHandler.GetQualityReport).Methods(http.MethodGet)

	// Staging view (public)
	api.HandleFunc("/staging/patients", r.stagingHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/staging/patients/{id}", r.stagingHandler.GetPatient).Methods(http.MethodGet)

	// Audit trail (public)
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
