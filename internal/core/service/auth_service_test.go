package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkpress/article-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byUsername map[string]*domain.User
	nextID     int64
	createErr  error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = r.nextID
	r.nextID++
	r.byUsername[clone.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubSessionRepo struct {
	sessions  map[string]int64
	createErr error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]int64)}
}

func (r *stubSessionRepo) Create(_ context.Context, token string, userID int64) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.sessions[token] = userID
	return nil
}

func (r *stubSessionRepo) Resolve(_ context.Context, token string) (int64, error) {
	userID, ok := r.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)

	user, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("first user id: want 1, got %d", user.ID)
	}
	if user.Username != "alice" {
		t.Errorf("username: want alice, got %q", user.Username)
	}
}

func TestAuthService_Register_SequentialIDs(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)

	first, _ := svc.Register(context.Background(), "alice", "pw1")
	second, _ := svc.Register(context.Background(), "bob", "pw2")

	if second.ID != first.ID+1 {
		t.Errorf("ids must increase: %d then %d", first.ID, second.ID)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)

	cases := []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Errorf("(%q,%q): expected ErrMissingCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists regardless of password, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewAuthService(users, sessions, discardLogger)

	registered, _ := svc.Register(context.Background(), "alice", "pw1")

	token, user, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != registered.ID {
		t.Errorf("user id: want %d, got %d", registered.ID, user.ID)
	}

	resolved, err := sessions.Resolve(context.Background(), token)
	if err != nil || resolved != registered.ID {
		t.Errorf("token must resolve to user %d, got %d (err %v)", registered.ID, resolved, err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)
	_, _ = svc.Register(context.Background(), "alice", "pw1")

	if _, _, err := svc.Login(context.Background(), "alice", "bad"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionRepo(), discardLogger)

	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}
}

func TestAuthService_Login_ConcurrentSessionsStayValid(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := NewAuthService(newStubUserRepo(), sessions, discardLogger)
	registered, _ := svc.Register(context.Background(), "alice", "pw1")

	first, _, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, _, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if first == second {
		t.Fatal("each login must mint a distinct token")
	}
	for _, tok := range []string{first, second} {
		if resolved, err := sessions.Resolve(context.Background(), tok); err != nil || resolved != registered.ID {
			t.Errorf("token %q must stay valid, got %d (err %v)", tok, resolved, err)
		}
	}
}

func TestAuthService_Login_SessionStoreError(t *testing.T) {
	sessions := newStubSessionRepo()
	sessions.createErr = errors.New("store unavailable")
	svc := NewAuthService(newStubUserRepo(), sessions, discardLogger)
	_, _ = svc.Register(context.Background(), "alice", "pw1")

	if _, _, err := svc.Login(context.Background(), "alice", "pw1"); err == nil {
		t.Fatal("expected error when session store fails, got nil")
	}
}
