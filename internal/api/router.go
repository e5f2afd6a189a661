package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftdeck/craftdeck/internal/api/handler"
	apimiddleware "github.com/craftdeck/craftdeck/internal/api/middleware"
	"github.com/craftdeck/craftdeck/internal/middleware"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/console"
	"github.com/craftdeck/craftdeck/internal/services/process"
	"github.com/craftdeck/craftdeck/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	AuditService   *audit.Service
	ConsoleService *console.Service
	RosterService  *roster.Service
	ProcessService *process.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	keyHandler := handler.NewKeyHandler(cfg.AuthService, cfg.AuditService)
	execHandler := handler.NewExecHandler(cfg.ConsoleService, cfg.AuditService)
	rosterHandler := handler.NewRosterHandler(cfg.RosterService, cfg.AuthService, cfg.AuditService)
	auditHandler := handler.NewAuditHandler(cfg.AuditService)
	serverHandler := handler.NewServerHandler(cfg.ProcessService, cfg.AuthService, cfg.AuditService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	rootMiddleware := apimiddleware.RootAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)
	requestIDMiddleware := middleware.RequestID()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(requestIDMiddleware)
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Credential management and audit query are gated on the root secret
	// alone; the credential store is never consulted
	rootOnly := api.PathPrefix("").Subrouter()
	rootOnly.Use(rootMiddleware)
	rootOnly.HandleFunc("/auth/keys", keyHandler.Issue).Methods(http.MethodPost)
	rootOnly.HandleFunc("/auth/keys", keyHandler.List).Methods(http.MethodGet)
	rootOnly.HandleFunc("/auth/keys/{key}", keyHandler.Revoke).Methods(http.MethodDelete)
	rootOnly.HandleFunc("/audit/logs", auditHandler.Logs).Methods(http.MethodGet)

	// Everything else requires any valid credential; finer role gates live
	// in the handlers
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/auth/keys/my", keyHandler.GetSelf).Methods(http.MethodGet)

	protected.HandleFunc("/exec", execHandler.Exec).Methods(http.MethodPost)
	protected.HandleFunc("/exec/history", execHandler.History).Methods(http.MethodGet)

	protected.HandleFunc("/whitelist", rosterHandler.WhitelistList).Methods(http.MethodGet)
	protected.HandleFunc("/whitelist/add/{player}", rosterHandler.WhitelistAdd).Methods(http.MethodPost)
	protected.HandleFunc("/whitelist/remove/{player}", rosterHandler.WhitelistRemove).Methods(http.MethodPost)
	protected.HandleFunc("/whitelist/enable", rosterHandler.WhitelistEnable).Methods(http.MethodPost)
	protected.HandleFunc("/whitelist/disable", rosterHandler.WhitelistDisable).Methods(http.MethodPost)

	protected.HandleFunc("/op/add/{player}", rosterHandler.OpAdd).Methods(http.MethodPost)
	protected.HandleFunc("/op/remove/{player}", rosterHandler.OpRemove).Methods(http.MethodPost)

	protected.HandleFunc("/players", rosterHandler.Players).Methods(http.MethodGet)
	protected.HandleFunc("/players/{name}", rosterHandler.PlayerData).Methods(http.MethodGet)

	protected.HandleFunc("/server/start", serverHandler.Start).Methods(http.MethodPost)
	protected.HandleFunc("/server/stop", serverHandler.Stop).Methods(http.MethodPost)
	protected.HandleFunc("/server/status", serverHandler.Status).Methods(http.MethodGet)
	protected.HandleFunc("/server/logs", serverHandler.Logs).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
