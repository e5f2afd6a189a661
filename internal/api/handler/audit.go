package handler

import (
	"net/http"

	"github.com/craftdeck/craftdeck/internal/api/response"
	"github.com/craftdeck/craftdeck/internal/services/audit"
)

// AuditHandler handles the audit log query endpoint
type AuditHandler struct {
	auditService *audit.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Logs handles GET /api/v1/audit/logs (root only)
func (h *AuditHandler) Logs(w http.ResponseWriter, r *http.Request) {
	records, err := h.auditService.Recent(r.Context(), audit.RecentLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuditLogFromModel(records))
}
