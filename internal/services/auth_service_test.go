package services

import (
	"testing"

	"github.com/garagesale/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuperAdminBootstrapOnce(t *testing.T) {
	svc := NewAuthService(testDB(t), testConfig())

	require.NoError(t, svc.CreateSuperAdmin("boss", "secret123"))

	err := svc.CreateSuperAdmin("boss2", "secret123")
	require.ErrorIs(t, err, ErrSuperAdminExists)

	var count int64
	svc.db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateAdmin(t *testing.T) {
	svc := NewAuthService(testDB(t), testConfig())

	require.NoError(t, svc.CreateAdmin("helper", "secret123"))

	err := svc.CreateAdmin("helper", "othersecret")
	require.ErrorIs(t, err, ErrUsernameTaken)

	var user models.User
	require.NoError(t, svc.db.Where("username = ?", "helper").First(&user).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(testDB(t), testConfig())
	require.NoError(t, svc.CreateSuperAdmin("boss", "secret123"))

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login("nobody", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("boss", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success embeds identity and role", func(t *testing.T) {
		tokenString, err := svc.Login("boss", "secret123")
		require.NoError(t, err)

		token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "boss", claims["username"])
		assert.Equal(t, models.RoleSuperAdmin, claims["role"])
		assert.NotEmpty(t, claims["sub"])
		assert.NotEmpty(t, claims["exp"])
	})
}
