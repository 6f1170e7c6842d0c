package config

import (
	"fmt"
	"strings"
	"sync"

	"room-booking-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	BaseURL      string
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggerConfig struct {
	Level string
}

var (
	cfg *Config
	mu  sync.RWMutex
)

// Load reads configuration from environment variables (with optional .env
// file and config.yaml) and caches it for Get/GetSafe.
func Load() (*Config, error) {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "meetings")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("logger.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetInt("server.port"),
			BaseURL:      v.GetString("server.base_url"),
			AllowOrigins: v.GetStringSlice("server.allow_origins"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
		},
	}

	mu.Lock()
	cfg = c
	mu.Unlock()

	logger.Info("Config loaded",
		"server_host", c.Server.Host,
		"server_port", c.Server.Port,
		"database", c.Database.DBName,
	)

	return c, nil
}

// Get returns the loaded config. Panics if Load has not been called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		panic("config: Get called before Load")
	}
	return cfg
}

// GetSafe returns the loaded config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return cfg, cfg != nil
}
