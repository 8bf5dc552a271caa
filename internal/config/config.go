package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port          string        `mapstructure:"PORT"`
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	StorageBucket string        `mapstructure:"STORAGE_BUCKET"`
	HLTBSearchURL string        `mapstructure:"HLTB_SEARCH_URL"`
	APIKey        string        `mapstructure:"API_KEY"`
	SteamStoreURL string        `mapstructure:"STEAM_STORE_URL"`
	SteamCDNURL   string        `mapstructure:"STEAM_CDN_URL"`
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	CORSOrigins   []string      `mapstructure:"CORS_ORIGINS"`
}

// requiredKeys must be present for the service to start.
var requiredKeys = []string{"DATABASE_URL", "STORAGE_BUCKET", "HLTB_SEARCH_URL", "API_KEY"}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("PORT", ":8080")
	v.SetDefault("STEAM_STORE_URL", "https://store.steampowered.com")
	v.SetDefault("STEAM_CDN_URL", "https://shared.cloudflare.steamstatic.com/store_item_assets/steam/apps")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")

	// Unmarshal only sees env vars for keys viper already knows about.
	for _, key := range requiredKeys {
		v.SetDefault(key, "")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Info().Msg(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every required setting that is empty.
func (c *Config) Validate() error {
	var missing []string
	for key, value := range map[string]string{
		"DATABASE_URL":    c.DatabaseURL,
		"STORAGE_BUCKET":  c.StorageBucket,
		"HLTB_SEARCH_URL": c.HLTBSearchURL,
		"API_KEY":         c.APIKey,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}
