package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftdeck/craftdeck/internal/api/middleware"
	"github.com/craftdeck/craftdeck/internal/api/response"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/roster"
)

// RosterHandler handles whitelist, operator, and player endpoints
type RosterHandler struct {
	rosterService *roster.Service
	authService   *auth.Service
	auditService  *audit.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service, authService *auth.Service, auditService *audit.Service) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		authService:   authService,
		auditService:  auditService,
	}
}

// WhitelistAdd handles POST /api/v1/whitelist/add/{player}
func (h *RosterHandler) WhitelistAdd(w http.ResponseWriter, r *http.Request) {
	h.playerAction(w, r, "whitelist_add", h.rosterService.WhitelistAdd)
}

// WhitelistRemove handles POST /api/v1/whitelist/remove/{player}
func (h *RosterHandler) WhitelistRemove(w http.ResponseWriter, r *http.Request) {
	h.playerAction(w, r, "whitelist_remove", h.rosterService.WhitelistRemove)
}

// WhitelistList handles GET /api/v1/whitelist
func (h *RosterHandler) WhitelistList(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	list, execErr := h.rosterService.WhitelistList(r.Context())
	h.auditService.Record(r.Context(), principal, "whitelist_list",
		failureDetail("whitelist list", execErr))

	response.JSON(w, http.StatusOK, response.Whitelist{
		Players:   list.Players,
		RawOutput: list.Record.Output,
	})
}

// WhitelistEnable handles POST /api/v1/whitelist/enable
func (h *RosterHandler) WhitelistEnable(w http.ResponseWriter, r *http.Request) {
	h.toggleAction(w, r, "whitelist_enable", h.rosterService.WhitelistEnable)
}

// WhitelistDisable handles POST /api/v1/whitelist/disable
func (h *RosterHandler) WhitelistDisable(w http.ResponseWriter, r *http.Request) {
	h.toggleAction(w, r, "whitelist_disable", h.rosterService.WhitelistDisable)
}

// OpAdd handles POST /api/v1/op/add/{player} (root or admin)
func (h *RosterHandler) OpAdd(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperatorRole(w, r) {
		return
	}
	h.playerAction(w, r, "op_add", h.rosterService.OpAdd)
}

// OpRemove handles POST /api/v1/op/remove/{player} (root or admin)
func (h *RosterHandler) OpRemove(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperatorRole(w, r) {
		return
	}
	h.playerAction(w, r, "op_remove", h.rosterService.OpRemove)
}

// Players handles GET /api/v1/players
func (h *RosterHandler) Players(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	list, execErr := h.rosterService.OnlinePlayers(r.Context())
	h.auditService.Record(r.Context(), principal, "players_list",
		failureDetail("list", execErr))

	response.JSON(w, http.StatusOK, response.OnlinePlayers{
		Count:   len(list.Players),
		Players: list.Players,
	})
}

// PlayerData handles GET /api/v1/players/{name}
func (h *RosterHandler) PlayerData(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())
	name := mux.Vars(r)["name"]

	record, err := h.rosterService.PlayerData(r.Context(), name)
	if errors.Is(err, roster.ErrInvalidPlayerName) {
		WriteError(w, err)
		return
	}

	h.auditService.Record(r.Context(), principal, "player_data",
		failureDetail(name, err))

	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerData{
		Player: name,
		RawNBT: record.Output,
	})
}

// requireOperatorRole gates operator grant/revoke to root and admin. A
// player credential gets the same uniform 403 as any other auth failure.
func (h *RosterHandler) requireOperatorRole(w http.ResponseWriter, r *http.Request) bool {
	principal := middleware.MustGetPrincipal(r.Context())
	if err := h.authService.RequireRole(principal, model.RoleRoot, model.RoleAdmin); err != nil {
		WriteError(w, err)
		return false
	}
	return true
}

type playerActionFunc func(ctx context.Context, player string) (model.CommandRecord, error)

func (h *RosterHandler) playerAction(w http.ResponseWriter, r *http.Request, action string, fn playerActionFunc) {
	principal := middleware.MustGetPrincipal(r.Context())
	player := mux.Vars(r)["player"]

	record, err := fn(r.Context(), player)
	if errors.Is(err, roster.ErrInvalidPlayerName) {
		WriteError(w, err)
		return
	}

	h.auditService.Record(r.Context(), principal, action, failureDetail(player, err))

	response.JSON(w, http.StatusOK, response.PlayerAction{
		Player: player,
		Output: record.Output,
	})
}

type toggleActionFunc func(ctx context.Context) (model.CommandRecord, error)

func (h *RosterHandler) toggleAction(w http.ResponseWriter, r *http.Request, action string, fn toggleActionFunc) {
	principal := middleware.MustGetPrincipal(r.Context())

	record, err := fn(r.Context())
	h.auditService.Record(r.Context(), principal, action, failureDetail(action, err))

	response.JSON(w, http.StatusOK, response.CommandOutput{Output: record.Output})
}

// failureDetail annotates an audit detail when the underlying command
// failed, so the audit trail distinguishes failure even though the HTTP
// body does not
func failureDetail(detail string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s (failed: %v)", detail, err)
	}
	return detail
}
