package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"trimatch/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	OCR      OCRConfig
	Matching MatchingConfig
	Admin    AdminConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OCRConfig holds text-acquisition settings passed to the recognition engine.
type OCRConfig struct {
	Language             string `mapstructure:"language"`
	MaxPages             int    `mapstructure:"max_pages"`
	ResolutionDPI        int    `mapstructure:"resolution_dpi"`
	ForceFullRecognition bool   `mapstructure:"force_full_recognition"`
	LayoutHint           string `mapstructure:"layout_hint"`
}

// MatchingConfig holds the single tunable affecting matcher semantics.
type MatchingConfig struct {
	AmountTolerancePct float64 `mapstructure:"amount_tolerance_pct"`
}

// Validate rejects tolerance values outside the [0,100] percent range.
func (m *MatchingConfig) Validate() error {
	if m.AmountTolerancePct < 0 || m.AmountTolerancePct > 100 {
		return domain.ErrInvalidTolerance
	}
	return nil
}

// AdminConfig holds the single-operator login credentials.
type AdminConfig struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"`
}

// Load reads configuration from environment variables with the TRIMATCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "trimatch")
	v.SetDefault("db.password", "trimatch_secret")
	v.SetDefault("db.name", "trimatch_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "trimatch")

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "trimatch-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// OCR defaults: Indonesian plus English, bounded pages, 300 DPI scans
	v.SetDefault("ocr.language", "ind+eng")
	v.SetDefault("ocr.max_pages", 10)
	v.SetDefault("ocr.resolution_dpi", 300)
	v.SetDefault("ocr.force_full_recognition", false)
	v.SetDefault("ocr.layout_hint", string(domain.LayoutDocument))

	// Matching defaults
	v.SetDefault("matching.amount_tolerance_pct", 0.5)

	// Admin defaults; login is disabled until a password hash is configured
	v.SetDefault("admin.email", "admin@localhost")
	v.SetDefault("admin.password_hash", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "TRIMATCH_SERVER_PORT",
		"server.read_timeout":        "TRIMATCH_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "TRIMATCH_SERVER_WRITE_TIMEOUT",
		"server.environment":         "TRIMATCH_SERVER_ENVIRONMENT",
		"db.host":                    "TRIMATCH_DB_HOST",
		"db.port":                    "TRIMATCH_DB_PORT",
		"db.user":                    "TRIMATCH_DB_USER",
		"db.password":                "TRIMATCH_DB_PASSWORD",
		"db.name":                    "TRIMATCH_DB_NAME",
		"db.sslmode":                 "TRIMATCH_DB_SSLMODE",
		"db.max_open":                "TRIMATCH_DB_MAX_OPEN",
		"db.max_idle":                "TRIMATCH_DB_MAX_IDLE",
		"jwt.secret":                 "TRIMATCH_JWT_SECRET",
		"jwt.access_expiry":          "TRIMATCH_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                 "TRIMATCH_JWT_ISSUER",
		"s3.region":                  "TRIMATCH_S3_REGION",
		"s3.bucket":                  "TRIMATCH_S3_BUCKET",
		"s3.endpoint":                "TRIMATCH_S3_ENDPOINT",
		"s3.access_key":              "TRIMATCH_S3_ACCESS_KEY",
		"s3.secret_key":              "TRIMATCH_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "TRIMATCH_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":          "TRIMATCH_S3_PRESIGN_EXPIRY",
		"log.level":                  "TRIMATCH_LOG_LEVEL",
		"log.format":                 "TRIMATCH_LOG_FORMAT",
		"cors.allowed_origins":       "TRIMATCH_CORS_ALLOWED_ORIGINS",
		"ocr.language":               "TRIMATCH_OCR_LANGUAGE",
		"ocr.max_pages":              "TRIMATCH_OCR_MAX_PAGES",
		"ocr.resolution_dpi":         "TRIMATCH_OCR_RESOLUTION_DPI",
		"ocr.force_full_recognition": "TRIMATCH_OCR_FORCE_FULL_RECOGNITION",
		"ocr.layout_hint":            "TRIMATCH_OCR_LAYOUT_HINT",
		"matching.amount_tolerance_pct": "TRIMATCH_MATCHING_AMOUNT_TOLERANCE_PCT",
		"admin.email":                   "TRIMATCH_ADMIN_EMAIL",
		"admin.password_hash":           "TRIMATCH_ADMIN_PASSWORD_HASH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TRIMATCH_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TRIMATCH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.OCR = OCRConfig{
		Language:             v.GetString("ocr.language"),
		MaxPages:             v.GetInt("ocr.max_pages"),
		ResolutionDPI:        v.GetInt("ocr.resolution_dpi"),
		ForceFullRecognition: v.GetBool("ocr.force_full_recognition"),
		LayoutHint:           v.GetString("ocr.layout_hint"),
	}

	cfg.Matching = MatchingConfig{
		AmountTolerancePct: v.GetFloat64("matching.amount_tolerance_pct"),
	}
	if err := cfg.Matching.Validate(); err != nil {
		return nil, fmt.Errorf("matching config: %w", err)
	}

	cfg.Admin = AdminConfig{
		Email:        v.GetString("admin.email"),
		PasswordHash: v.GetString("admin.password_hash"),
	}

	return cfg, nil
}
