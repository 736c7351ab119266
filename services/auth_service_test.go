package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafestaff/repository"
	"cafestaff/testutil"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (*AuthService, *repository.StaffRepository) {
	t.Helper()
	db := testutil.OpenDB(t)
	repo := repository.NewStaffRepository(db)
	return NewAuthService(repo, "test-secret", time.Hour, zap.NewNop()), repo
}

func TestAuthenticate(t *testing.T) {
	auth, repo := newAuth(t)
	testutil.CreateStaff(t, repo.DB, "Alex", "alex", "s3cret")
	ctx := context.Background()

	if _, err := auth.Authenticate(ctx, "nobody", "s3cret"); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("unknown login: err = %v", err)
	}
	if _, err := auth.Authenticate(ctx, "alex", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("bad password: err = %v", err)
	}
	// the login must match exactly
	if _, err := auth.Authenticate(ctx, " alex", "s3cret"); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("padded login: err = %v", err)
	}
	s, err := auth.Authenticate(ctx, "alex", "s3cret")
	if err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if s.Login != "alex" {
		t.Errorf("login = %q", s.Login)
	}
}

func TestRegister(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	s, err := auth.Register(ctx, RegisterInput{Name: "Alex", Login: "alex", Email: "Alex@Cafe.Test", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Email != "alex@cafe.test" {
		t.Errorf("email = %q", s.Email)
	}
	if s.Password == "pw" || bcrypt.CompareHashAndPassword([]byte(s.Password), []byte("pw")) != nil {
		t.Error("password must be stored as a bcrypt hash")
	}

	if _, err := auth.Register(ctx, RegisterInput{Name: "Other", Login: "alex", Password: "pw"}); !errors.Is(err, ErrDuplicateLogin) {
		t.Errorf("duplicate login: err = %v", err)
	}
	if _, err := auth.Register(ctx, RegisterInput{Name: "Alex", Login: "alex2", Password: "pw"}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate name: err = %v", err)
	}
	if _, err := auth.Register(ctx, RegisterInput{Login: "", Password: "pw"}); err == nil {
		t.Error("empty login accepted")
	}
}

func TestResolveSession(t *testing.T) {
	auth, repo := newAuth(t)
	staff := testutil.CreateStaff(t, repo.DB, "Alex", "alex", "pw")
	ctx := context.Background()

	token, err := auth.IssueSession(staff)
	if err != nil {
		t.Fatal(err)
	}
	got, err := auth.ResolveSession(ctx, token)
	if err != nil || got.ID != staff.ID {
		t.Fatalf("ResolveSession = %v, %v", got, err)
	}

	if _, err := auth.ResolveSession(ctx, "garbage"); err == nil {
		t.Error("garbage token accepted")
	}

	other := NewAuthService(repo, "other-secret", time.Hour, zap.NewNop())
	if _, err := other.ResolveSession(ctx, token); err == nil {
		t.Error("token signed with another secret accepted")
	}

	if err := repo.DB.Model(staff).Update("login", "alex.k").Error; err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ResolveSession(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Errorf("renamed login: err = %v", err)
	}
}
