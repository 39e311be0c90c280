package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"busline/internal/admins"
	"busline/internal/shared/config"
)

type fakeAdminRepo struct {
	byUsername map[string]*admins.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byUsername: make(map[string]*admins.Admin)}
}

func (f *fakeAdminRepo) CreateAdmin(_ context.Context, admin *admins.Admin) error {
	f.byUsername[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) GetAdminByUsername(_ context.Context, username string) (*admins.Admin, error) {
	admin, ok := f.byUsername[username]
	if !ok {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			ExpiresIn: 2 * time.Hour,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{Username: "operator", Password: "qwerty"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}
	if resp.Admin.Username != "operator" {
		t.Fatalf("expected username operator, got %s", resp.Admin.Username)
	}
	if resp.ExpiresIn != int64((2 * time.Hour).Seconds()) {
		t.Fatalf("expected 7200s expiry, got %d", resp.ExpiresIn)
	}

	// Password must be stored hashed, never in clear.
	stored := repo.byUsername["operator"]
	if stored.PasswordHash == "qwerty" {
		t.Fatal("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("qwerty")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	login, err := svc.Login(context.Background(), &LoginRequest{Username: "operator", Password: "qwerty"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.AccessToken == "" {
		t.Fatal("expected access token on login")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, testConfig())

	if _, err := svc.Register(context.Background(), &RegisterRequest{Username: "operator", Password: "qwerty"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Register(context.Background(), &RegisterRequest{Username: "operator", Password: "other"})
	if !errors.Is(err, ErrAdminAlreadyExists) {
		t.Fatalf("expected ErrAdminAlreadyExists, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, testConfig())

	if _, err := svc.Register(context.Background(), &RegisterRequest{Username: "operator", Password: "qwerty"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Wrong password and unknown user both report the same error so a
	// caller cannot probe which usernames exist.
	if _, err := svc.Login(context.Background(), &LoginRequest{Username: "operator", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &LoginRequest{Username: "ghost", Password: "qwerty"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{Username: "operator", Password: "qwerty"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	claims, err := svc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Username != "operator" {
		t.Fatalf("expected operator in claims, got %s", claims.Username)
	}
	if claims.AdminID != resp.Admin.ID {
		t.Fatalf("claims admin id %s does not match %s", claims.AdminID, resp.Admin.ID)
	}

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	// Tokens signed with a different secret are rejected.
	other := NewService(repo, &config.Config{JWT: config.JWTConfig{Secret: "other-secret", ExpiresIn: time.Hour}})
	otherResp, err := other.Register(context.Background(), &RegisterRequest{Username: "second", Password: "qwerty"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.ValidateToken(otherResp.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}
