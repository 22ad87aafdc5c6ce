package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/config"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("secret", "https://idp.example", fixedClock{testNow})

	token, err := svc.GenerateToken("user-42", "ada@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, testNow.Add(time.Hour), claims.ExpiresAt.UTC())
}

func TestValidateAccessTokenUserIDClaim(t *testing.T) {
	svc := NewTokenService("secret", "", fixedClock{testNow})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		UserID: "legacy-7",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Minute)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "legacy-7", claims.UserID)
}

func TestValidateAccessTokenRejects(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("secret", "https://idp.example", fixedClock{testNow})

	expired, err := NewTokenService("secret", "https://idp.example", fixedClock{testNow.Add(-2 * time.Hour)}).
		GenerateToken("user-42", "", time.Hour)
	require.NoError(t, err)
	wrongSecret, err := NewTokenService("other", "https://idp.example", fixedClock{testNow}).
		GenerateToken("user-42", "", time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := NewTokenService("secret", "https://evil.example", fixedClock{testNow}).
		GenerateToken("user-42", "", time.Hour)
	require.NoError(t, err)
	noSubject, err := svc.GenerateToken("", "", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  domainerror.AuthErrorCode
	}{
		{"expired", expired, domainerror.ErrCodeExpiredToken},
		{"wrong secret", wrongSecret, domainerror.ErrCodeInvalidToken},
		{"wrong issuer", wrongIssuer, domainerror.ErrCodeInvalidToken},
		{"no subject", noSubject, domainerror.ErrCodeInvalidToken},
		{"garbage", "not-a-jwt", domainerror.ErrCodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(ctx, tt.token)
			assert.Equal(t, tt.want, authCode(t, err))
		})
	}
}

func TestConfigIdentityProvider(t *testing.T) {
	_, ok := NewConfigIdentityProvider(config.IdentityConfig{ProjectID: "planner"}).ClientConfig()
	assert.False(t, ok)

	cfg, ok := NewConfigIdentityProvider(config.IdentityConfig{APIKey: "key", ProjectID: "planner"}).ClientConfig()
	require.True(t, ok)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "planner", cfg.ProjectID)
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, SystemClock{}.Now().Location())
}
