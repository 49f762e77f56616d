package conf

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultResolverTimeout = 15 * time.Second
	defaultTokenTtl        = 24 * time.Hour
)

type Config struct {
	Http     Http     `mapstructure:"http"`
	Resolver Resolver `mapstructure:"resolver"`
	Database Database `mapstructure:"database"`
	Redis    *Redis   `mapstructure:"redis"`
	Admin    Admin    `mapstructure:"admin"`
	Limits   Limits   `mapstructure:"limits"`
	Caching  Caching  `mapstructure:"caching"`
	Logging  Logging  `mapstructure:"logging"`
}

type Http struct {
	BindAddress        string `mapstructure:"bindAddress"`
	ReadTimeoutInSec   int    `mapstructure:"readTimeoutInSec"`
	WriteTimeoutInSec  int    `mapstructure:"writeTimeoutInSec"`
	MaxRequestBodySize int64  `mapstructure:"maxRequestBodySize"`
}

type Resolver struct {
	BaseUrl      string `mapstructure:"baseUrl"`
	TimeoutInSec int    `mapstructure:"timeoutInSec"`
}

func (r Resolver) Timeout() time.Duration {
	if r.TimeoutInSec <= 0 {
		return defaultResolverTimeout
	}
	return time.Duration(r.TimeoutInSec) * time.Second
}

type Database struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"logMode"`
}

type Redis struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type Admin struct {
	Username      string `mapstructure:"username"`
	PasswordHash  string `mapstructure:"passwordHash"`
	JwtSecret     string `mapstructure:"jwtSecret"`
	TokenTtlInSec int    `mapstructure:"tokenTtlInSec"`
}

func (a Admin) TokenTtl() time.Duration {
	if a.TokenTtlInSec <= 0 {
		return defaultTokenTtl
	}
	return time.Duration(a.TokenTtlInSec) * time.Second
}

type Limits struct {
	DownloadsPerDay   int64 `mapstructure:"downloadsPerDay"`
	RequestsPerSecond int   `mapstructure:"requestsPerSecond"`
}

type Caching struct {
	ResolvedUrlInSec int `mapstructure:"resolvedUrlInSec"`
}

func (c Caching) ResolvedUrlTtl() time.Duration {
	return time.Duration(c.ResolvedUrlInSec) * time.Second
}

type Logging struct {
	Level            string `mapstructure:"level"`
	File             string `mapstructure:"file"`
	RequestLogEnable bool   `mapstructure:"requestLogEnable"`
}

func (c Config) Validate() error {
	if c.Resolver.BaseUrl == "" {
		return errors.New("resolver.baseUrl is required")
	}
	if c.Admin.Username == "" || c.Admin.PasswordHash == "" {
		return errors.New("admin credentials are required")
	}
	if c.Admin.JwtSecret == "" {
		return errors.New("admin.jwtSecret is required")
	}
	limitsEnabled := c.Limits.DownloadsPerDay > 0 || c.Limits.RequestsPerSecond > 0
	if limitsEnabled && c.Redis == nil {
		return errors.New("redis is required if limits were specified")
	}
	if c.Redis != nil && c.Redis.Address == "" {
		return errors.New("invalid redis config. address is required")
	}
	return nil
}
