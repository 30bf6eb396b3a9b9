package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rs/xid"

	"github.com/vxern/fcc-exercise-tracker-service/internal/apperror"
	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
	"github.com/vxern/fcc-exercise-tracker-service/internal/repository"
)

// ExerciseDB is the exercises collection view over the shared connection pool.
type ExerciseDB struct {
	conn *sql.DB
}

// Exercises returns the exercise repository backed by this database.
func (db *DB) Exercises() *ExerciseDB {
	return &ExerciseDB{conn: db.conn}
}

// compile-time check that *ExerciseDB implements repository.ExerciseRepository
var _ repository.ExerciseRepository = (*ExerciseDB)(nil)

// Create inserts a new exercise entry, assigning a fresh id.
// Duration and Date implement driver.Valuer, so the invalid sentinels land in
// the database as NULL without any special-casing here.
func (e *ExerciseDB) Create(ctx context.Context, exercise *model.Exercise) error {
	exercise.ID = xid.New().String()

	_, err := e.conn.ExecContext(ctx,
		`INSERT INTO exercises (id, username, description, duration, date)
		 VALUES (?, ?, ?, ?, ?)`,
		exercise.ID,
		exercise.Username,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	)
	if err != nil {
		return apperror.Persistence("creating exercise", err)
	}

	return nil
}

// ListByUsername returns the exercises attributed to username, in storage
// (id) order, narrowed by the filter.
//
// The WHERE clause is assembled incrementally: each present bound appends a
// condition and an argument, so absent bounds cost nothing. Dates are stored
// as fixed-width RFC 3339 text, which makes >= and <= plain lexicographic
// comparisons; rows with a NULL date (the invalid sentinel) never satisfy a
// bound, which is exactly the behaviour we want.
//
// A non-positive filter.Limit means "no cap" — the LIMIT clause is simply
// omitted. Mapping absent or garbage limit input down to a non-positive int
// is the caller's job; this layer never sees the raw text.
func (e *ExerciseDB) ListByUsername(ctx context.Context, username string, filter repository.LogFilter) ([]model.Exercise, error) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT id, username, description, duration, date
		 FROM exercises
		 WHERE username = ?`)
	args := []any{username}

	if filter.From != nil {
		sb.WriteString(" AND date >= ?")
		args = append(args, model.SQLBound(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(" AND date <= ?")
		args = append(args, model.SQLBound(*filter.To))
	}

	sb.WriteString(" ORDER BY id")

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := e.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperror.Persistence("listing exercises", err)
	}
	defer rows.Close()

	exercises := make([]model.Exercise, 0)
	for rows.Next() {
		var ex model.Exercise
		if err := rows.Scan(&ex.ID, &ex.Username, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, apperror.Persistence("scanning exercise row", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("iterating exercises", err)
	}

	return exercises, nil
}
