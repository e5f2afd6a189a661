package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/craftdeck/craftdeck/internal/api/middleware"
	"github.com/craftdeck/craftdeck/internal/api/request"
	"github.com/craftdeck/craftdeck/internal/api/response"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/console"
)

// ExecHandler handles console command endpoints
type ExecHandler struct {
	consoleService *console.Service
	auditService   *audit.Service
}

// NewExecHandler creates a new exec handler
func NewExecHandler(consoleService *console.Service, auditService *audit.Service) *ExecHandler {
	return &ExecHandler{
		consoleService: consoleService,
		auditService:   auditService,
	}
}

// Exec handles POST /api/v1/exec. Channel failures are embedded in the
// output field, not surfaced as HTTP errors: operators rely on seeing raw
// command failures inline.
func (h *ExecHandler) Exec(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	var req request.ExecRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Command == "" {
		WriteError(w, NewInvalidRequestError("command is required"))
		return
	}

	record, execErr := h.consoleService.Execute(r.Context(), req.Command)

	detail := req.Command
	if execErr != nil {
		detail = fmt.Sprintf("%s (failed: %v)", req.Command, execErr)
	}
	h.auditService.Record(r.Context(), principal, "exec", detail)

	response.JSON(w, http.StatusOK, response.CommandResultFromModel(record))
}

// History handles GET /api/v1/exec/history
func (h *ExecHandler) History(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK,
		response.CommandHistoryFromModel(h.consoleService.History()))
}
