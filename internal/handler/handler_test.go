package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxern/fcc-exercise-tracker-service/internal/handler"
	"github.com/vxern/fcc-exercise-tracker-service/internal/repository/sqlite"
	"github.com/vxern/fcc-exercise-tracker-service/internal/service"
)

// newTestRouter wires the real dependency chain — handlers over services over
// an in-memory SQLite store — into a chi router. Routing through chi matters:
// the handlers read {id} via r.PathValue, which only works behind a router.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err, "creating in-memory database")
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	userService := service.NewUserService(db.Users(), logger)
	exerciseService := service.NewExerciseService(userService, db.Exercises(), logger)

	userHandler := handler.NewUserHandler(userService, logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, logger)

	r := chi.NewRouter()
	r.Post("/api/users", userHandler.HandleCreate)
	r.Get("/api/users", userHandler.HandleList)
	r.Post("/api/users/{id}/exercises", exerciseHandler.HandleLog)
	r.Get("/api/users/{id}/logs", exerciseHandler.HandleLogs)
	return r
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// createUser registers a user through the API and returns its id.
func createUser(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	rr := postForm(t, router, "/api/users", url.Values{"username": {username}})
	require.Equal(t, http.StatusCreated, rr.Code)

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
	require.NotEmpty(t, user.ID)
	return user.ID
}

func TestCreateUser_Form(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/api/users", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusCreated, rr.Code)

	// The response shape is exactly {id, username} — no storage metadata.
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "alice", body["username"])
	assert.NotEmpty(t, body["id"])
	assert.Len(t, body, 2)
}

func TestCreateUser_JSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"bob"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "bob", body["username"])
}

func TestCreateUser_MissingUsername(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/api/users", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error)
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)

	t.Run("empty store yields empty array", func(t *testing.T) {
		rr := get(t, router, "/api/users")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("returns registered users", func(t *testing.T) {
		createUser(t, router, "alice")
		createUser(t, router, "bob")

		rr := get(t, router, "/api/users")
		assert.Equal(t, http.StatusOK, rr.Code)

		var users []map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0]["username"])
		assert.Equal(t, "bob", users[1]["username"])
	})
}

func TestLogExercise(t *testing.T) {
	router := newTestRouter(t)
	id := createUser(t, router, "alice")

	rr := postForm(t, router, "/api/users/"+id+"/exercises", url.Values{
		"description": {"run"},
		"duration":    {"30"},
		"date":        {"2023-01-01"},
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, id, body["id"], "merged entry carries the user's id")
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "run", body["description"])
	assert.Equal(t, float64(30), body["duration"])
	assert.Equal(t, "Sun Jan 01 2023", body["date"])
	assert.Len(t, body, 5, "no extraneous fields in the merged entry")
}

func TestLogExercise_UnknownUser(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(t, router, "/api/users/no-such-id/exercises", url.Values{
		"description": {"run"},
		"duration":    {"30"},
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error)
}

func TestLogExercise_BadDurationRecordsNull(t *testing.T) {
	router := newTestRouter(t)
	id := createUser(t, router, "alice")

	rr := postForm(t, router, "/api/users/"+id+"/exercises", url.Values{
		"description": {"run"},
		"duration":    {"a while"},
		"date":        {"2023-01-01"},
	})
	assert.Equal(t, http.StatusCreated, rr.Code, "a bad duration must not fail the request")

	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Nil(t, body["duration"])
}

func TestGetLogs(t *testing.T) {
	router := newTestRouter(t)
	id := createUser(t, router, "alice")

	logEntry := func(description, date string) {
		rr := postForm(t, router, "/api/users/"+id+"/exercises", url.Values{
			"description": {description},
			"duration":    {"30"},
			"date":        {date},
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}
	logEntry("january", "2023-01-15")
	logEntry("june", "2023-06-15")

	decode := func(rr *httptest.ResponseRecorder) (summary struct {
		Username string `json:"username"`
		Count    int    `json:"count"`
		Log      []struct {
			Description string   `json:"description"`
			Duration    *float64 `json:"duration"`
			Date        string   `json:"date"`
		} `json:"log"`
	}) {
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&summary))
		return summary
	}

	t.Run("no filter", func(t *testing.T) {
		rr := get(t, router, "/api/users/"+id+"/logs")
		assert.Equal(t, http.StatusOK, rr.Code)

		summary := decode(rr)
		assert.Equal(t, "alice", summary.Username)
		assert.Equal(t, 2, summary.Count)
		require.Len(t, summary.Log, 2)
		assert.Equal(t, "Sun Jan 15 2023", summary.Log[0].Date)
	})

	t.Run("date range", func(t *testing.T) {
		rr := get(t, router, "/api/users/"+id+"/logs?from=2023-03-01&to=2023-12-31")
		summary := decode(rr)
		require.Equal(t, 1, summary.Count)
		assert.Equal(t, "june", summary.Log[0].Description)
	})

	t.Run("limit", func(t *testing.T) {
		rr := get(t, router, "/api/users/"+id+"/logs?limit=1")
		summary := decode(rr)
		assert.Equal(t, 1, summary.Count)
		require.Len(t, summary.Log, 1)
		assert.Equal(t, "january", summary.Log[0].Description, "cap takes the first entry in store order")
	})

	t.Run("unparseable limit returns everything", func(t *testing.T) {
		rr := get(t, router, "/api/users/"+id+"/logs?limit=abc")
		assert.Equal(t, http.StatusOK, rr.Code)
		summary := decode(rr)
		assert.Equal(t, 2, summary.Count, "a garbage limit must mean no limit, not zero results")
	})

	t.Run("unknown user", func(t *testing.T) {
		rr := get(t, router, "/api/users/no-such-id/logs")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
