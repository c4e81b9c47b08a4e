package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

type memoryUsers struct {
	byEmail map[string]models.User
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return models.Conflictf("User already exists")
	}
	user.ID = uint(len(m.byEmail) + 1)
	m.byEmail[user.Email] = *user
	return nil
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return models.User{}, models.NotFoundf("user not found")
	}
	return user, nil
}

func newTestService() (*Service, *memoryUsers) {
	users := &memoryUsers{byEmail: map[string]models.User{}}
	svc := NewService(users, "test-secret", nil)
	svc.hashCost = bcrypt.MinCost
	return svc, users
}

func TestSignupStoresHashNotPassword(t *testing.T) {
	svc, users := newTestService()

	user, err := svc.Signup(context.Background(), models.SignupRequest{Username: "achieng", Email: " Achieng@Farm.test ", Password: "layers123"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Email != "achieng@farm.test" {
		t.Fatalf("email = %q", user.Email)
	}
	stored := users.byEmail["achieng@farm.test"]
	if stored.PasswordHash == "" || stored.PasswordHash == "layers123" {
		t.Fatalf("password stored in the clear: %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("layers123")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestSignupValidationAndConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for name, req := range map[string]models.SignupRequest{
		"missing username": {Email: "a@farm.test", Password: "secret1"},
		"missing email":    {Username: "a", Password: "secret1"},
		"short password":   {Username: "a", Email: "a@farm.test", Password: "123"},
		"bad email":        {Username: "a", Email: "not-an-email", Password: "secret1"},
	} {
		if _, err := svc.Signup(ctx, req); !errors.Is(err, models.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}

	if _, err := svc.Signup(ctx, models.SignupRequest{Username: "a", Email: "a@farm.test", Password: "secret1"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(ctx, models.SignupRequest{Username: "b", Email: "A@farm.test", Password: "secret2"})
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if models.PublicMessage(err, "") != "User already exists" {
		t.Fatalf("message = %q", models.PublicMessage(err, ""))
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Signup(ctx, models.SignupRequest{Username: "kamau", Email: "kamau@farm.test", Password: "broilers"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, user, err := svc.Login(ctx, models.LoginRequest{Email: "KAMAU@farm.test", Password: "broilers"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Username != "kamau" {
		t.Fatalf("token=%q user=%+v", token, user)
	}

	identity, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity.UserID != created.ID || identity.Email != "kamau@farm.test" || identity.Username != "kamau" {
		t.Fatalf("identity = %+v", identity)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Signup(ctx, models.SignupRequest{Username: "k", Email: "k@farm.test", Password: "broilers"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for name, req := range map[string]models.LoginRequest{
		"wrong password": {Email: "k@farm.test", Password: "layers"},
		"unknown email":  {Email: "nobody@farm.test", Password: "broilers"},
	} {
		token, _, err := svc.Login(ctx, req)
		if !errors.Is(err, models.ErrAuth) {
			t.Fatalf("%s: expected ErrAuth, got %v", name, err)
		}
		if token != "" {
			t.Fatalf("%s: token issued", name)
		}
	}

	if _, _, err := svc.Login(ctx, models.LoginRequest{Email: "k@farm.test"}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthenticateRejectsMissingAndTamperedTokens(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Authenticate("  "); !errors.Is(err, models.ErrAuth) {
		t.Fatalf("empty token: expected ErrAuth, got %v", err)
	}

	token, err := svc.issue(models.User{ID: 4, Email: "x@farm.test", Username: "x"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	for name, tok := range map[string]string{
		"garbage":  "not.a.token",
		"tampered": tampered,
	} {
		if _, err := svc.Authenticate(tok); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", name, err)
		}
	}

	other := NewService(&memoryUsers{byEmail: map[string]models.User{}}, "another-secret", nil)
	if _, err := other.Authenticate(token); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("foreign secret: expected ErrForbidden, got %v", err)
	}
}

func TestAuthenticateRejectsOtherAlgorithms(t *testing.T) {
	svc, _ := newTestService()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Authenticate(token); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
