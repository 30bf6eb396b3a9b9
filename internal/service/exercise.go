package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
	"github.com/vxern/fcc-exercise-tracker-service/internal/repository"
)

// UserDirectory is the slice of the user service the exercise log needs:
// resolving a user id to its record. Satisfied by *UserService; tests satisfy
// it with a stub.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ExerciseService is the exercise log store. Every operation starts by
// resolving the user id through the directory; the username on the resolved
// record — not the id — is what ties entries to their owner.
type ExerciseService struct {
	users  UserDirectory
	repo   repository.ExerciseRepository
	logger *slog.Logger
}

func NewExerciseService(users UserDirectory, repo repository.ExerciseRepository, logger *slog.Logger) *ExerciseService {
	return &ExerciseService{
		users:  users,
		repo:   repo,
		logger: logger,
	}
}

// Log records one exercise entry against the user with the given id and
// returns the merged response: the user's identity fields plus the entry's
// fields, with the date rendered as a day string.
//
// Parsing is deliberately lenient. An unparseable duration is recorded as the
// invalid sentinel (serialised as null), an unparseable date likewise (and it
// renders as "Invalid Date"), and an absent date defaults to the moment of
// creation. The one hard failure is an unknown user id: that returns
// ErrNotFound and persists nothing.
func (s *ExerciseService) Log(ctx context.Context, userID, description, durationText, dateText string) (*model.LogEntry, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	duration := model.ParseDuration(durationText)

	var date model.Date
	if strings.TrimSpace(dateText) == "" {
		date = model.DateNow()
	} else {
		date = model.ParseDate(dateText)
	}

	exercise := &model.Exercise{
		Username:    user.Username,
		Description: strings.TrimSpace(description),
		Duration:    duration,
		Date:        date,
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		s.logger.Error("failed to log exercise",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("logging exercise: %w", err)
	}

	s.logger.Info("exercise logged",
		slog.String("id", exercise.ID),
		slog.String("username", exercise.Username),
	)

	// The merged shape is composed field by field rather than by overlaying
	// one record on the other: id and username always come from the user
	// record, everything else from the entry just written.
	return &model.LogEntry{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.DayString(),
	}, nil
}

// Logs answers a range/limit query over a user's exercise log.
//
// from and to are inclusive date bounds; an absent or unparseable bound leaves
// that side open. limit caps the result count at the first N entries in store
// order when it parses to a positive number — when it is absent or doesn't
// parse, NO cap is applied. The upstream implementation fed the unparsed limit
// straight into its query cursor, so a garbage limit returned zero rows; that
// behaviour is a bug and is intentionally not reproduced.
func (s *ExerciseService) Logs(ctx context.Context, userID, fromText, toText, limitText string) (*model.LogSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var filter repository.LogFilter
	if d := model.ParseDate(fromText); d.Valid {
		from := d.Time
		filter.From = &from
	}
	if d := model.ParseDate(toText); d.Valid {
		to := d.Time
		filter.To = &to
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limitText)); err == nil && n > 0 {
		filter.Limit = n
	}

	exercises, err := s.repo.ListByUsername(ctx, user.Username, filter)
	if err != nil {
		s.logger.Error("failed to query exercise log",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("querying exercise log: %w", err)
	}

	log := make([]model.LogLine, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, model.LogLine{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.DayString(),
		})
	}

	return &model.LogSummary{
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}
