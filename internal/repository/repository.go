// Package repository declares the storage interfaces the service layer depends
// on. Implementations live in subpackages (currently sqlite); tests substitute
// in-memory fakes. Neither the service nor the handlers ever see a concrete
// database type.
package repository

import (
	"context"
	"time"

	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
)

// LogFilter narrows an exercise log query.
//
// From and To are inclusive date bounds; a nil pointer means that side is
// unbounded. Limit caps the number of rows returned when positive; zero or
// negative means no cap. Callers that parse user input are responsible for
// mapping "absent or unparseable" to the no-op values — an unparseable limit
// must mean "everything", never "nothing".
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	ListByUsername(ctx context.Context, username string, filter LogFilter) ([]model.Exercise, error)
}
