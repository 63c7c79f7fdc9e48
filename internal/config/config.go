package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// BaseURL is the root of the portfolio content API. All paths (login,
	// personal-information, experience, project) are resolved against it.
	BaseURL *url.URL
	// CredentialsPath is the sqlite file holding the operator's login pair.
	CredentialsPath string
	// HTTPTimeout bounds every request to the API. The original client used
	// five seconds; anything slower is treated as a transport failure.
	HTTPTimeout time.Duration
	// Debug, if true, lowers the log level so every request is logged.
	Debug bool
}

// Load reads the configuration from the environment (FOLIO_ prefix) and, when
// present, a folioctl.yaml in the working directory or the user config dir.
// Environment values win over the file.
func Load() (Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("folio")
	v.AutomaticEnv()

	v.SetConfigName("folioctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "folioctl"))
	}

	v.SetDefault("http_timeout", 5*time.Second)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	raw := v.GetString("api_base_url")
	if raw == "" {
		return Configuration{}, errors.New("api_base_url is not set; export FOLIO_API_BASE_URL or add it to folioctl.yaml")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return Configuration{}, fmt.Errorf("invalid api_base_url: %w", err)
	}

	credPath := v.GetString("credentials_path")
	if credPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Configuration{}, fmt.Errorf("no credentials_path set and no user config dir: %w", err)
		}
		credPath = filepath.Join(dir, "folioctl", "credentials.db")
	}

	return Configuration{
		BaseURL:         base,
		CredentialsPath: credPath,
		HTTPTimeout:     v.GetDuration("http_timeout"),
		Debug:           v.GetBool("debug"),
	}, nil
}
