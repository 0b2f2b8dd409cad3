package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"trimatch/internal/config"
	"trimatch/internal/domain"
	"trimatch/internal/service"
)

func testAuthService(t *testing.T, password string) service.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return service.NewAuthService(
		config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
			Issuer:            "trimatch-test",
		},
		config.AdminConfig{
			Email:        "operator@example.com",
			PasswordHash: string(hash),
		},
	)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := testAuthService(t, "correct-horse-battery")

	token, err := svc.Login(service.LoginInput{
		Email:    "operator@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator@example.com", claims.Email)
	assert.Equal(t, "trimatch-test", claims.Issuer)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := testAuthService(t, "correct-horse-battery")

	_, err := svc.Login(service.LoginInput{
		Email:    "operator@example.com",
		Password: "wrong-password-entirely",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginWrongEmail(t *testing.T) {
	svc := testAuthService(t, "correct-horse-battery")

	_, err := svc.Login(service.LoginInput{
		Email:    "intruder@example.com",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginDisabledWithoutHash(t *testing.T) {
	svc := service.NewAuthService(
		config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: time.Hour},
		config.AdminConfig{Email: "operator@example.com"},
	)

	_, err := svc.Login(service.LoginInput{
		Email:    "operator@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateGarbageToken(t *testing.T) {
	svc := testAuthService(t, "correct-horse-battery")

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenWrongSecret(t *testing.T) {
	issuer := testAuthService(t, "correct-horse-battery")
	token, err := issuer.Login(service.LoginInput{
		Email:    "operator@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	verifier := service.NewAuthService(
		config.JWTConfig{Secret: "different-secret", AccessTokenExpiry: time.Hour},
		config.AdminConfig{Email: "operator@example.com"},
	)
	_, err = verifier.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}
