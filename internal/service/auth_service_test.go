package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"instituteCMS/internal/config"
	"instituteCMS/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthService() (*authService, *MockAdminRepository) {
	repo := new(MockAdminRepository)
	cfg := &config.Config{
		JWTSecretKey:        testSecret,
		AccessTokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg).(*authService), repo
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	admin := &models.Admin{AdminID: models.NewID(), Email: "admin@example.com"}

	t.Run("issues token with admin subject", func(t *testing.T) {
		svc, repo := newTestAuthService()
		repo.On("VerifyPassword", ctx, "admin@example.com", "secret").Return(admin, nil)

		got, token, err := svc.Login(ctx, "admin@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, admin, got)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, admin.AdminID, claims.Subject)
		assert.Equal(t, admin.Email, claims.Email)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		svc, repo := newTestAuthService()
		repo.On("VerifyPassword", ctx, "admin@example.com", "nope").Return(nil, models.ErrUnauthorized)

		got, token, err := svc.Login(ctx, "admin@example.com", "nope")

		assert.Nil(t, got)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("malformed email is a credential failure", func(t *testing.T) {
		svc, repo := newTestAuthService()
		repo.On("VerifyPassword", ctx, "not-an-email", "secret").Return(nil, models.ErrUnauthorized)

		_, _, err := svc.Login(ctx, "not-an-email", "secret")

		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.NotErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, repo := newTestAuthService()

		_, _, err := svc.Login(ctx, "admin@example.com", "")

		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Contains(t, err.Error(), "password is required")
		repo.AssertNotCalled(t, "VerifyPassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, _ := newTestAuthService()

	sign := func(method jwt.SigningMethod, key any, claims AdminClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	valid := AdminClaims{
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   models.NewID(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{"valid", sign(jwt.SigningMethodHS256, []byte(testSecret), valid), true},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testSecret), expired), false},
		{"missing expiry", sign(jwt.SigningMethodHS256, []byte(testSecret), noExpiry), false},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), valid), false},
		{"other hmac alg", sign(jwt.SigningMethodHS512, []byte(testSecret), valid), false},
		{"garbage", "not.a.token", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tc.token)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, valid.Subject, claims.Subject)
				return
			}
			assert.ErrorIs(t, err, models.ErrUnauthorized)
		})
	}
}

func TestAuthService_GetAdminFromToken(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()
	admin := &models.Admin{AdminID: models.NewID(), Email: "admin@example.com"}

	token, err := svc.generateAccessToken(admin)
	require.NoError(t, err)

	repo.On("GetAdminByID", ctx, admin.AdminID).Return(admin, nil).Once()

	got, err := svc.GetAdminFromToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)

	repo.On("GetAdminByID", ctx, admin.AdminID).Return(nil, models.ErrNotFound).Once()

	_, err = svc.GetAdminFromToken(ctx, token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing admin", func(t *testing.T) {
		svc, repo := newTestAuthService()
		repo.On("GetAdminByEmail", ctx, "admin@example.com").Return(nil, models.ErrNotFound)
		repo.On("CreateAdmin", ctx, mock.MatchedBy(func(a *models.Admin) bool {
			return a.Email == "admin@example.com"
		}), "secret").Return(nil)

		created, err := svc.EnsureAdmin(ctx, "admin@example.com", "secret")

		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		svc, repo := newTestAuthService()
		repo.On("GetAdminByEmail", ctx, "admin@example.com").Return(&models.Admin{}, nil)

		created, err := svc.EnsureAdmin(ctx, "admin@example.com", "secret")

		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _ := newTestAuthService()

		_, err := svc.EnsureAdmin(ctx, "not-an-email", "secret")

		assert.ErrorIs(t, err, models.ErrValidation)
	})
}
