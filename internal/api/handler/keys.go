package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftdeck/craftdeck/internal/api/middleware"
	"github.com/craftdeck/craftdeck/internal/api/request"
	"github.com/craftdeck/craftdeck/internal/api/response"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/auth"
)

// KeyHandler handles credential management endpoints
type KeyHandler struct {
	authService  *auth.Service
	auditService *audit.Service
}

// NewKeyHandler creates a new key handler
func NewKeyHandler(authService *auth.Service, auditService *audit.Service) *KeyHandler {
	return &KeyHandler{
		authService:  authService,
		auditService: auditService,
	}
}

// Issue handles POST /api/v1/auth/keys (root only)
func (h *KeyHandler) Issue(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	var req request.IssueKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	role := model.Role(req.Role)
	if !model.ValidIssuableRole(role) {
		WriteError(w, NewInvalidRequestError("role must be admin or player"))
		return
	}

	cred, err := h.authService.IssueCredential(r.Context(), role, req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.auditService.Record(r.Context(), principal, "key_issue",
		fmt.Sprintf("role=%s owner=%s", cred.Role, cred.Owner))

	response.JSON(w, http.StatusCreated, response.CredentialFromModel(cred))
}

// List handles GET /api/v1/auth/keys (root only)
func (h *KeyHandler) List(w http.ResponseWriter, r *http.Request) {
	creds, err := h.authService.ListCredentials(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CredentialListFromModel(creds))
}

// GetSelf handles GET /api/v1/auth/keys/my (any valid credential)
func (h *KeyHandler) GetSelf(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	cred, err := h.authService.SelfCredential(r.Context(), principal)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CredentialFromModel(cred))
}

// Revoke handles DELETE /api/v1/auth/keys/{key} (root only). Idempotent:
// revoking an unknown key succeeds.
func (h *KeyHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())
	key := mux.Vars(r)["key"]

	if err := h.authService.RevokeCredential(r.Context(), key); err != nil {
		WriteError(w, err)
		return
	}

	h.auditService.Record(r.Context(), principal, "key_revoke", key)

	response.JSON(w, http.StatusOK, response.DeletedKey{Deleted: key})
}
