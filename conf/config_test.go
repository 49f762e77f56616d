package conf_test

import (
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"github.com/stretchr/testify/require"
)

func validConfig() conf.Config {
	return conf.Config{
		Resolver: conf.Resolver{BaseUrl: "https://resolver.example.com"},
		Admin: conf.Admin{
			Username:     "admin",
			PasswordHash: "abc",
			JwtSecret:    "secret",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.NoError(validConfig().Validate())

	noResolver := validConfig()
	noResolver.Resolver.BaseUrl = ""
	require.Error(noResolver.Validate())

	noAdmin := validConfig()
	noAdmin.Admin.PasswordHash = ""
	require.Error(noAdmin.Validate())

	noSecret := validConfig()
	noSecret.Admin.JwtSecret = ""
	require.Error(noSecret.Validate())

	limitsWithoutRedis := validConfig()
	limitsWithoutRedis.Limits.DownloadsPerDay = 10
	require.Error(limitsWithoutRedis.Validate())

	limitsWithRedis := limitsWithoutRedis
	limitsWithRedis.Redis = &conf.Redis{Address: "127.0.0.1:6379"}
	require.NoError(limitsWithRedis.Validate())

	emptyRedis := validConfig()
	emptyRedis.Redis = &conf.Redis{}
	require.Error(emptyRedis.Validate())

	// caching falls back to the in-process cache without redis
	cachingWithoutRedis := validConfig()
	cachingWithoutRedis.Caching.ResolvedUrlInSec = 300
	require.NoError(cachingWithoutRedis.Validate())
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(15*time.Second, conf.Resolver{}.Timeout())
	require.Equal(30*time.Second, conf.Resolver{TimeoutInSec: 30}.Timeout())
	require.Equal(24*time.Hour, conf.Admin{}.TokenTtl())
	require.Equal(time.Hour, conf.Admin{TokenTtlInSec: 3600}.TokenTtl())
}
