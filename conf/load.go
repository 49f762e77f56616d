package conf

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads configuration from the given file (defaults to config.yaml in
// the working directory) with TTDXP_* environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("TTDXP")
	v.AutomaticEnv()

	v.SetDefault("http.bindAddress", "0.0.0.0:5000")
	v.SetDefault("http.readTimeoutInSec", 60)
	v.SetDefault("http.writeTimeoutInSec", 60)
	v.SetDefault("database.path", "data/tiktok_downloader.db")
	v.SetDefault("logging.level", "info")

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, errors.WithMessage(err, "read config")
	}

	config := Config{}
	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, errors.WithMessage(err, "unmarshal config")
	}

	err = config.Validate()
	if err != nil {
		return Config{}, errors.WithMessage(err, "invalid config")
	}

	return config, nil
}
