package handler

import (
	"net/http"

	"github.com/craftdeck/craftdeck/internal/api/middleware"
	"github.com/craftdeck/craftdeck/internal/api/response"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/process"
)

// ServerHandler handles managed-server lifecycle endpoints
type ServerHandler struct {
	processService *process.Service
	authService    *auth.Service
	auditService   *audit.Service
}

// NewServerHandler creates a new server handler
func NewServerHandler(processService *process.Service, authService *auth.Service, auditService *audit.Service) *ServerHandler {
	return &ServerHandler{
		processService: processService,
		authService:    authService,
		auditService:   auditService,
	}
}

// Start handles POST /api/v1/server/start (root or admin)
func (h *ServerHandler) Start(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())
	if err := h.authService.RequireRole(principal, model.RoleRoot, model.RoleAdmin); err != nil {
		WriteError(w, err)
		return
	}

	err := h.processService.Start(r.Context())
	h.auditService.Record(r.Context(), principal, "server_start", failureDetail("start", err))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ServerStatus{Status: "started"})
}

// Stop handles POST /api/v1/server/stop (root or admin)
func (h *ServerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())
	if err := h.authService.RequireRole(principal, model.RoleRoot, model.RoleAdmin); err != nil {
		WriteError(w, err)
		return
	}

	err := h.processService.Stop(r.Context())
	h.auditService.Record(r.Context(), principal, "server_stop", failureDetail("stop", err))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ServerStatus{Status: "stopped"})
}

// Status handles GET /api/v1/server/status
func (h *ServerHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.processService.Status(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ServerStatus{Status: status})
}

// Logs handles GET /api/v1/server/logs
func (h *ServerHandler) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.processService.Logs(process.DefaultLogLines)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.ServerLogs{Logs: logs}
	if logs == "" {
		resp.Message = "Log file not found"
	}
	response.JSON(w, http.StatusOK, resp)
}
