package service_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/service"
	"github.com/stretchr/testify/require"
)

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	admin := service.NewAdmin("admin", hashPassword("secret123"), "jwt-secret", time.Hour)

	token, err := admin.Login("admin", "secret123")
	require.NoError(err)
	require.NotEmpty(token)
	require.NoError(admin.Verify(token))

	_, err = admin.Login("admin", "wrong")
	require.ErrorIs(err, domain.ErrInvalidCredentials)

	_, err = admin.Login("someone", "secret123")
	require.ErrorIs(err, domain.ErrInvalidCredentials)
}

func TestAdminVerify(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	admin := service.NewAdmin("admin", hashPassword("secret123"), "jwt-secret", time.Hour)

	require.ErrorIs(admin.Verify(""), domain.ErrInvalidToken)
	require.ErrorIs(admin.Verify("garbage"), domain.ErrInvalidToken)

	// pre-migration clients stored this literal instead of a jwt
	require.NoError(admin.Verify("admin_token"))

	otherSecret := service.NewAdmin("admin", hashPassword("secret123"), "other-secret", time.Hour)
	foreign, err := otherSecret.Login("admin", "secret123")
	require.NoError(err)
	require.ErrorIs(admin.Verify(foreign), domain.ErrInvalidToken)
}

func TestAdminVerifyExpiredToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	admin := service.NewAdmin("admin", hashPassword("secret123"), "jwt-secret", -time.Minute)
	token, err := admin.Login("admin", "secret123")
	require.NoError(err)
	require.ErrorIs(admin.Verify(token), domain.ErrInvalidToken)
}
