package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	JWTSecret    string
	JWTIssuer    string
	JWTExpiresIn string // minutes

	AdminUsername string
	AdminPassword string

	UploadDir       string
	UploadURLPrefix string
	UploadMaxBytes  int64

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Port:            v.GetString("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		JWTExpiresIn:    v.GetString("JWT_EXPIRES_IN"),
		AdminUsername:   v.GetString("ADMIN_USERNAME"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		UploadDir:       v.GetString("UPLOAD_DIR"),
		UploadURLPrefix: strings.TrimRight(v.GetString("UPLOAD_URL_PREFIX"), "/"),
		UploadMaxBytes:  v.GetInt64("UPLOAD_MAX_BYTES"),
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "linkbio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "linkbio.db")
	v.SetDefault("JWT_SECRET", "supersecret_change_me")
	v.SetDefault("JWT_ISSUER", "linkbio")
	v.SetDefault("JWT_EXPIRES_IN", "60")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_URL_PREFIX", "/uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// DSN returns the postgres connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// TokenTTL parses JWTExpiresIn, defaulting to an hour.
func (c *Config) TokenTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTExpiresIn + "m")
	if err != nil || d <= 0 {
		return 60 * time.Minute
	}
	return d
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	if c.UploadMaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
