// Package auth gates the back office behind operator accounts. The first run
// bootstraps a single administrator; afterwards only login is possible.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"carshare/internal/database"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var (
	ErrEmailNotFound      = errors.New("no user with this email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrAdminAlreadyExists = errors.New("administrator already exists")
	ErrStoreUnavailable   = database.ErrStoreUnavailable
)

// Session identifies the logged-in operator. It is passed explicitly to
// whatever needs it; there is no ambient global.
type Session struct {
	UserID   int64
	Username string
	Email    string
}

// Service performs credential checks against the record store.
type Service struct {
	db     *database.DB
	cost   int
	logger *zerolog.Logger
}

// NewService constructs an auth service. cost is the bcrypt work factor.
func NewService(db *database.DB, cost int, logger *zerolog.Logger) *Service {
	if cost <= 0 {
		cost = 12
	}
	return &Service{db: db, cost: cost, logger: logger}
}

// HasUsers reports whether any operator account exists yet.
func (s *Service) HasUsers(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, ErrStoreUnavailable
	}
	count, err := s.db.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Login verifies the credentials and returns a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	user, err := s.db.GetUserByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrEmailNotFound
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	s.logger.Info().Str("email", email).Msg("operator logged in")
	return &Session{UserID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// CreateAdmin bootstraps the first operator account and logs it in.
// Validation happens before any store access.
func (s *Service) CreateAdmin(ctx context.Context, username, email, password, confirm string) (*Session, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	exists, err := s.HasUsers(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.db.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("administrator created")
	return &Session{UserID: user.ID, Username: user.Username, Email: user.Email}, nil
}
