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

// Supported database drivers.
const (
	DriverGoOra  = "oracle"
	DriverGodror = "godror"
)

type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Catalog   CatalogConfig
	App       AppConfig
	CacheTTLs CacheTTLConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type DBConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	SubmitRateLimit int // requests per minute per client on submit routes, 0 disables
}

type LoggerConfig struct {
	Level string
	Env   string
}

// AuthConfig controls user ownership tokens. An empty JWTSecret disables them.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// CatalogConfig points at a directory holding the seed files. Empty uses the bundled catalog.
type CatalogConfig struct {
	Path string
}

type AppConfig struct {
	Timezone string
}

type CacheTTLConfig struct {
	Stats string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.submit_rate_limit", 60)

	v.SetDefault("db.driver", DriverGoOra)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.user", "system")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "FREEPDB1")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "720h")

	v.SetDefault("catalog.path", "")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("cache_ttls.stats", "5m")
}

// LoadConfig reads config.yaml (optional), a .env file (optional) and
// APP_-prefixed environment variables, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	// a missing .env is fine
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
		DB: DBConfig{
			Driver:       v.GetString("db.driver"),
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			ReadTimeout:     time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout:    time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			SubmitRateLimit: v.GetInt("server.submit_rate_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  ParseTTLStringOrDefault(v.GetString("auth.token_ttl"), 720*time.Hour),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("catalog.path"),
		},
		App: AppConfig{
			Timezone: v.GetString("app.timezone"),
		},
		CacheTTLs: CacheTTLConfig{
			Stats: v.GetString("cache_ttls.stats"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverGoOra, DriverGodror:
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone that defines calendar days.
func (c *Config) Location() (*time.Location, error) {
	name := c.App.Timezone
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", name, err)
	}
	return loc, nil
}

// GetDSN returns the connection string for the configured driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == DriverGodror {
		return fmt.Sprintf(`user="%s" password="%s" connectString="%s:%d/%s"`,
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// ParseTTLStringOrDefault parses a duration string such as "5m", falling back to def.
func ParseTTLStringOrDefault(ttlString string, def time.Duration) time.Duration {
	if ttlString == "" {
		return def
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d < 0 {
		return def
	}
	return d
}
