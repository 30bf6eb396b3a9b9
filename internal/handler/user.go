// Package handler contains the HTTP request handlers. Handlers parse the
// request, call into the service layer, and write the response — no business
// logic lives here.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/vxern/fcc-exercise-tracker-service/internal/service"
)

// UserHandler exposes the user directory over HTTP.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// HandleCreate registers a new user.
//
// HTTP: POST /api/users
// Body: username=<text> (urlencoded form, JSON also accepted)
// Response: {"id": "...", "username": "..."}
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := bodyValues(r)
	if err != nil {
		h.logger.Warn("invalid user request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body could not be parsed",
		})
		return
	}

	user, err := h.users.Create(r.Context(), values.Get("username"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleList returns every registered user.
//
// HTTP: GET /api/users
// Response: [{"id": "...", "username": "..."}, ...] — an empty store yields [].
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
