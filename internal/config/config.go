package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Alchemy AlchemyConfig `yaml:"alchemy"`
	Helius  HeliusConfig  `yaml:"helius"`
	Gallery GalleryConfig `yaml:"gallery"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Wallets WalletsConfig `yaml:"wallets"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// AlchemyConfig holds the configuration for the EVM NFT indexing client.
type AlchemyConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	APIKey               string  `yaml:"apiKey"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	PageSize             int     `yaml:"pageSize"`
	RateLimit            float64 `yaml:"rateLimit"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// HeliusConfig holds the configuration for the Solana DAS client.
type HeliusConfig struct {
	RPCURL               string  `yaml:"rpcURL"`
	APIKey               string  `yaml:"apiKey"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	PageSize             int     `yaml:"pageSize"`
	RateLimit            float64 `yaml:"rateLimit"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// GalleryConfig holds configuration for the gallery refresh service.
type GalleryConfig struct {
	MaxConcurrentRefreshes int  `yaml:"maxConcurrentRefreshes"`
	RefreshOnAdd           bool `yaml:"refreshOnAdd"`
}

// StorageConfig holds configuration for the persisted state database.
type StorageConfig struct {
	DatabasePath string `yaml:"databasePath"`
}

// CacheConfig holds configuration for the refresh-result cache.
type CacheConfig struct {
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// WalletsConfig holds the seed wallet file used by the one-shot runner.
type WalletsConfig struct {
	SeedFile string `yaml:"seedFile"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Alchemy.PageSize == 0 {
		cfg.Alchemy.PageSize = 100
		logrus.Infof("Alchemy pageSize not set, defaulting to %d", cfg.Alchemy.PageSize)
	}
	if cfg.Alchemy.RequestTimeoutMillis == 0 {
		cfg.Alchemy.RequestTimeoutMillis = 15000
	}
	if cfg.Helius.PageSize == 0 {
		cfg.Helius.PageSize = 1000
		logrus.Infof("Helius pageSize not set, defaulting to %d", cfg.Helius.PageSize)
	}
	if cfg.Helius.RequestTimeoutMillis == 0 {
		cfg.Helius.RequestTimeoutMillis = 15000
	}
	if cfg.Gallery.MaxConcurrentRefreshes == 0 {
		cfg.Gallery.MaxConcurrentRefreshes = 4
		logrus.Infof("MaxConcurrentRefreshes not set, defaulting to %d", cfg.Gallery.MaxConcurrentRefreshes)
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "data/nft_tracker.db"
	}
	if cfg.Cache.CleanupIntervalMinutes == 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}
	if cfg.Wallets.SeedFile == "" {
		cfg.Wallets.SeedFile = "data/wallets.txt"
	}
}
