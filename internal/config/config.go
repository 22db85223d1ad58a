package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Results ResultsConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type DBConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// ResultsConfig controls where interview report files are written.
type ResultsConfig struct {
	Dir string
}

// RedisConfig configures the recent-report index. An empty Address disables it.
type RedisConfig struct {
	Address     string
	Password    string
	DB          int
	RecentLimit int64
	RecentTTL   time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "questions.db")
	v.SetDefault("db.max_open_conns", 4)
	v.SetDefault("db.max_idle_conns", 4)

	v.SetDefault("results.dir", "results")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.recent_limit", 20)
	v.SetDefault("redis.recent_ttl", "720h")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
}

// LoadConfig reads config.yaml (optional), .env (optional) and APP_* environment variables.
func LoadConfig() (*Config, error) {
	// .env is a convenience for local runs; its absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Driver:       strings.ToLower(v.GetString("db.driver")),
			DSN:          v.GetString("db.dsn"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Results: ResultsConfig{
			Dir: v.GetString("results.dir"),
		},
		Redis: RedisConfig{
			Address:     v.GetString("redis.address"),
			Password:    v.GetString("redis.password"),
			DB:          v.GetInt("redis.db"),
			RecentLimit: v.GetInt64("redis.recent_limit"),
			RecentTTL:   v.GetDuration("redis.recent_ttl"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db.driver %q (expected %q or %q)", c.DB.Driver, DriverSQLite, DriverPostgres)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn must be set")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Results.Dir == "" {
		return fmt.Errorf("results.dir must be set")
	}
	return nil
}

// RedisEnabled reports whether the recent-report index should use Redis.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
