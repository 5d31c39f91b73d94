package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const EnvDevelopment = "development"

type App struct {
	Name string
	Env  string
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Seed struct {
	RandomCount int   // size of the random batch
	FakerSeed   int64 // 0 picks a time-based seed
}

type Metrics struct {
	// Textfile, when set, receives the run's metrics in Prometheus text
	// format (node_exporter textfile collector).
	Textfile string
}

type Config struct {
	App     App
	Log     Log
	DB      DB
	Seed    Seed
	Metrics Metrics
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.App.Env), EnvDevelopment)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "user-seeder")
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "seed.db")
	v.SetDefault("db.maxOpenConns", 5)
	v.SetDefault("db.maxIdleConns", 2)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.logLevel", "warn")
	v.SetDefault("seed.randomCount", 25)
}

// Load reads the YAML file at path (or $CONFIG_PATH, or
// ./configs/config.local.yaml) and applies APP_* env overrides, e.g.
// APP_APP_ENV=production or APP_DB_DSN=... .
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("config: db.driver %q not supported", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("config: db.dsn is required")
	}
	if c.Seed.RandomCount < 0 {
		return fmt.Errorf("config: seed.randomCount must be >= 0, got %d", c.Seed.RandomCount)
	}
	return nil
}
