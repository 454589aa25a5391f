package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration
type Config struct {
	MySQL     MySQLConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Site      SiteConfig
	Wallpaper WallpaperConfig
	Migrate   bool
	HTTPAddr  string
}

// MySQLConfig holds MySQL configuration
type MySQLConfig struct {
	DSN string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	ExpireMinutes int
	Issuer        string
}

// SiteConfig holds site identity defaults and the public submission switch.
// Site name/description act as fallbacks when the corresponding settings
// rows are empty.
type SiteConfig struct {
	Name              string
	Description       string
	FooterText        string
	PublicSubmission  bool
	SeedAdminUser     string
	SeedAdminPassword string
}

// WallpaperConfig holds wallpaper feed client configuration
type WallpaperConfig struct {
	FetchTimeoutSec int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getEnv("MYSQL_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 1440),
			Issuer:        getEnv("JWT_ISSUER", "iori_nav"),
		},
		Site: SiteConfig{
			Name:              getEnv("SITE_NAME", ""),
			Description:       getEnv("SITE_DESCRIPTION", ""),
			FooterText:        getEnv("FOOTER_TEXT", ""),
			PublicSubmission:  getEnv("ENABLE_PUBLIC_SUBMISSION", "0") == "1" || getEnv("ENABLE_PUBLIC_SUBMISSION", "") == "true",
			SeedAdminUser:     getEnv("SEED_ADMIN_USER", ""),
			SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		Wallpaper: WallpaperConfig{
			FetchTimeoutSec: getEnvInt("WALLPAPER_FETCH_TIMEOUT_SEC", 5),
		},
		Migrate:  getEnv("MIGRATE", "0") == "1",
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// Validate required fields
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// LoadFromINI loads configuration from INI file with environment variable override
func LoadFromINI(iniPath string) (*Config, error) {
	cfgFile, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load INI file: %w", err)
	}

	// Helper function: get value with priority: ENV > INI > default
	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
			return value
		}
		return defaultValue
	}

	getValueInt := func(envKey, iniSection, iniKey string, defaultValue int) int {
		if value := os.Getenv(envKey); value != "" {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		if cfgFile.Section(iniSection).HasKey(iniKey) {
			if value, err := cfgFile.Section(iniSection).Key(iniKey).Int(); err == nil {
				return value
			}
		}
		return defaultValue
	}

	getValueBool := func(envKey, iniSection, iniKey string, defaultValue bool) bool {
		if value := os.Getenv(envKey); value != "" {
			return value == "1" || value == "true"
		}
		if value, err := cfgFile.Section(iniSection).Key(iniKey).Bool(); err == nil {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getValue("MYSQL_DSN", "mysql", "dsn", ""),
		},
		Redis: RedisConfig{
			Addr:     getValue("REDIS_ADDR", "redis", "addr", "localhost:6379"),
			Password: getValue("REDIS_PASS", "redis", "pass", ""),
			DB:       getValueInt("REDIS_DB", "redis", "db", 0),
		},
		JWT: JWTConfig{
			Secret:        getValue("JWT_SECRET", "jwt", "secret", ""),
			ExpireMinutes: getValueInt("JWT_EXPIRE_MINUTES", "jwt", "expire_minutes", 1440),
			Issuer:        getValue("JWT_ISSUER", "jwt", "issuer", "iori_nav"),
		},
		Site: SiteConfig{
			Name:              getValue("SITE_NAME", "site", "name", ""),
			Description:       getValue("SITE_DESCRIPTION", "site", "description", ""),
			FooterText:        getValue("FOOTER_TEXT", "site", "footer_text", ""),
			PublicSubmission:  getValueBool("ENABLE_PUBLIC_SUBMISSION", "site", "public_submission", false),
			SeedAdminUser:     getValue("SEED_ADMIN_USER", "site", "seed_admin_user", ""),
			SeedAdminPassword: getValue("SEED_ADMIN_PASSWORD", "site", "seed_admin_password", ""),
		},
		Wallpaper: WallpaperConfig{
			FetchTimeoutSec: getValueInt("WALLPAPER_FETCH_TIMEOUT_SEC", "wallpaper", "fetch_timeout_sec", 5),
		},
		Migrate:  getValueBool("MIGRATE", "app", "migrate", false),
		HTTPAddr: getValue("HTTP_ADDR", "http", "addr", ":8080"),
	}

	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
