package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

const minPasswordLength = 6

// UserStore persists user credentials.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// Identity is what a verified token tells the rest of the application.
type Identity struct {
	UserID   uint
	Email    string
	Username string
}

// Claims are the JWT claims carried by a session token. No expiry is set.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies session tokens.
type Service struct {
	users    UserStore
	secret   []byte
	hashCost int
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires an auth service that signs tokens with secret.
func NewService(users UserStore, secret string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:    users,
		secret:   []byte(secret),
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
		now:      time.Now,
	}
}

// Signup registers a user, storing only a bcrypt hash of the password.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)

	switch {
	case username == "":
		return models.User{}, models.Validationf("username is required")
	case email == "":
		return models.User{}, models.Validationf("email is required")
	case len(req.Password) < minPasswordLength:
		return models.User{}, models.Validationf("password must be at least %d characters", minPasswordLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, models.Validationf("email is not a valid address")
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, models.Conflictf("User already exists")
	} else if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return models.User{}, err
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (string, models.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return "", models.User{}, models.Validationf("email and password are required")
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Info("login rejected", zap.String("reason", "unknown email"))
		return "", models.User{}, models.Authf("Invalid credentials")
	}
	if err != nil {
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("reason", "password mismatch"), zap.Uint("user_id", user.ID))
		return "", models.User{}, models.Authf("Invalid credentials")
	}

	token, err := s.issue(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Authenticate verifies a bearer token. An empty token is an ErrAuth; a token
// that fails parsing or signature checks is an ErrForbidden.
func (s *Service) Authenticate(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, models.Authf("No token provided")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Identity{}, models.Forbiddenf("Invalid token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return Identity{}, models.Forbiddenf("Invalid token")
	}

	return Identity{UserID: uint(id), Email: claims.Email, Username: claims.Username}, nil
}

func (s *Service) issue(user models.User) (string, error) {
	claims := Claims{
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
