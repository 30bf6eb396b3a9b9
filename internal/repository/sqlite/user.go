package sqlite

import (
	"context"
	"database/sql"

	"github.com/rs/xid"

	"github.com/vxern/fcc-exercise-tracker-service/internal/apperror"
	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
	"github.com/vxern/fcc-exercise-tracker-service/internal/repository"
)

// UserDB is the users collection view over the shared connection pool.
// The pool wrapper can't carry both repositories directly — each collection
// needs its own Create — so DB hands out one view per collection.
type UserDB struct {
	conn *sql.DB
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserDB {
	return &UserDB{conn: db.conn}
}

// compile-time check that *UserDB implements repository.UserRepository
var _ repository.UserRepository = (*UserDB)(nil)

// Create inserts a new user, assigning a fresh id.
//
// IDs are xids: 20 URL-safe characters, globally unique, and sortable by
// creation time — which is what makes "storage order" equal to "id order"
// throughout this package.
func (u *UserDB) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()

	_, err := u.conn.ExecContext(ctx,
		`INSERT INTO users (id, username) VALUES (?, ?)`,
		user.ID,
		user.Username,
	)
	if err != nil {
		return apperror.Persistence("creating user", err)
	}

	return nil
}

// List returns every user in storage (insertion) order.
func (u *UserDB) List(ctx context.Context) ([]model.User, error) {
	rows, err := u.conn.QueryContext(ctx,
		`SELECT id, username FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, apperror.Persistence("listing users", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var usr model.User
		if err := rows.Scan(&usr.ID, &usr.Username); err != nil {
			return nil, apperror.Persistence("scanning user row", err)
		}
		users = append(users, usr)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("iterating users", err)
	}

	return users, nil
}

// GetByID retrieves a user by id.
// Returns apperror.ErrNotFound if no user exists with that id.
func (u *UserDB) GetByID(ctx context.Context, id string) (*model.User, error) {
	var usr model.User

	err := u.conn.QueryRowContext(ctx,
		`SELECT id, username FROM users WHERE id = ?`,
		id,
	).Scan(&usr.ID, &usr.Username)
	if err != nil {
		// sql.ErrNoRows is not a storage failure — translate it to the
		// domain's not-found error so handlers can map it to 404.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Persistence("getting user", err)
	}

	return &usr, nil
}
