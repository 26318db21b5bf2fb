package services

import (
	"testing"
	"time"

	"github.com/surajprakash3/Foodie-project/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("Jane", "Jane@Example.com ", "secret123")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", user.Email)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "secret123", user.Password)

	token, logged, err := svc.Login("jane@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	_, err = svc.Register("Other Jane", "jane@example.com", "secret456")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("jane@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
