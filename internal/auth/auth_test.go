package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/database"
)

// cost 4 keeps bcrypt fast in tests
const testCost = 4

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zerolog.Nop()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, testCost, &logger)
}

func TestService_CreateAdminAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	has, err := svc.HasUsers(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	session, err := svc.CreateAdmin(ctx, "admin", "admin@example.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, "admin@example.com", session.Email)

	has, err = svc.HasUsers(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	login, err := svc.Login(ctx, "admin@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, login.UserID)
}

func TestService_CreateAdminValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{"mismatch", "secret1", "secret2", ErrPasswordMismatch},
		{"too short", "abc", "abc", ErrPasswordTooShort},
		// mismatch wins over length: validation order matches the form
		{"mismatch and short", "abc", "abd", ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAdmin(ctx, "admin", "admin@example.com", tt.password, tt.confirm)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// nothing was persisted by the failed attempts
	has, err := svc.HasUsers(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestService_CreateAdminOnlyOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "admin", "admin@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, "second", "second@example.com", "secret2", "secret2")
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)
}

func TestService_LoginErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrEmailNotFound)

	_, err = svc.CreateAdmin(ctx, "admin", "admin@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestService_NoStore(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewService(nil, testCost, &logger)

	_, err := svc.Login(context.Background(), "a@b.c", "secret1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	// validation still runs before the store is touched
	_, err = svc.CreateAdmin(context.Background(), "admin", "a@b.c", "abc", "abc")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
