package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/vxern/fcc-exercise-tracker-service/internal/apperror"
	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
)

// mockUserRepo is an in-memory stand-in for the SQLite user repository. The
// service only sees the repository interface, so it can't tell the difference;
// tests get microsecond speed and a way to inject storage failures.
type mockUserRepo struct {
	users      []*model.User
	nextID     int
	failCreate error
	failList   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", id)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestUserService(t *testing.T) (*UserService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	return NewUserService(repo, testLogger()), repo
}

func TestUserCreate_Success(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Create(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Error("expected user to have an ID")
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
}

func TestUserCreate_TrimsWhitespace(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Create(context.Background(), "  alice  ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want trimmed %q", user.Username, "alice")
	}
}

func TestUserCreate_EmptyUsername(t *testing.T) {
	svc, repo := newTestUserService(t)

	_, err := svc.Create(context.Background(), "")
	if err == nil {
		t.Fatal("Create() should error on empty username")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	if len(repo.users) != 0 {
		t.Error("nothing should have been persisted")
	}
}

func TestUserCreate_WhitespaceOnlyUsername(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Create(context.Background(), "   ")
	if err == nil {
		t.Fatal("Create() should error on whitespace-only username")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestUserCreate_UniqueIDsAcrossCalls(t *testing.T) {
	svc, _ := newTestUserService(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		user, err := svc.Create(context.Background(), "alice") // duplicates allowed
		if err != nil {
			t.Fatalf("Create() #%d error = %v", i, err)
		}
		if seen[user.ID] {
			t.Fatalf("id %q returned twice", user.ID)
		}
		seen[user.ID] = true
	}
}

func TestUserCreate_PersistenceFailure(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.failCreate = apperror.Persistence("creating user", errors.New("disk full"))

	_, err := svc.Create(context.Background(), "alice")
	if err == nil {
		t.Fatal("Create() should surface the storage failure")
	}
	if !errors.Is(err, apperror.ErrPersistence) {
		t.Errorf("error = %v, want ErrPersistence", err)
	}
}

func TestUserList_Empty(t *testing.T) {
	svc, _ := newTestUserService(t)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if users == nil {
		t.Fatal("List() returned nil, want empty slice")
	}
	if len(users) != 0 {
		t.Errorf("List() returned %d users, want 0", len(users))
	}
}

func TestUserList_StorageOrder(t *testing.T) {
	svc, _ := newTestUserService(t)

	a, _ := svc.Create(context.Background(), "alice")
	b, _ := svc.Create(context.Background(), "bob")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 || users[0].ID != a.ID || users[1].ID != b.ID {
		t.Errorf("List() = %v, want [%s %s] in order", users, a.ID, b.ID)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if err == nil {
		t.Fatal("GetByID() should error on nonexistent id")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUserGetByID_EmptyID(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetByID(context.Background(), "")
	if err == nil {
		t.Fatal("GetByID() should error on empty id")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
