package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vxern/fcc-exercise-tracker-service/internal/service"
)

// ExerciseHandler exposes the exercise log over HTTP.
type ExerciseHandler struct {
	exercises *service.ExerciseService
	logger    *slog.Logger
}

func NewExerciseHandler(exercises *service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exercises: exercises,
		logger:    logger,
	}
}

// HandleLog records an exercise against a user.
//
// HTTP: POST /api/users/{id}/exercises
// Body: description, duration, date (all optional; date defaults to today)
// Response: the merged user+exercise record, e.g.
//
//	{"id":"...","username":"alice","description":"run","duration":30,"date":"Sun Jan 01 2023"}
//
// Unknown user ids get 404. Bad duration or date text does NOT fail the
// request — the service records the sentinel values instead.
func (h *ExerciseHandler) HandleLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	values, err := bodyValues(r)
	if err != nil {
		h.logger.Warn("invalid exercise request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body could not be parsed",
		})
		return
	}

	entry, err := h.exercises.Log(r.Context(), id,
		values.Get("description"),
		values.Get("duration"),
		values.Get("date"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// HandleLogs answers a log query.
//
// HTTP: GET /api/users/{id}/logs?from=2023-01-01&to=2023-12-31&limit=5
// Response: {"username":"alice","count":2,"log":[{...}, ...]}
//
// from/to are inclusive and optional; limit caps the result count. A limit
// that doesn't parse means "no limit" — not "no results".
func (h *ExerciseHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query()

	summary, err := h.exercises.Logs(r.Context(), id,
		query.Get("from"),
		query.Get("to"),
		query.Get("limit"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
