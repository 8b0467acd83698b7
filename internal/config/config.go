package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Upload UploadConfig
	Email  EmailConfig
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

// S3Config holds settings for the raw document archive. An empty
// Bucket disables archival entirely.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
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

// UploadConfig holds XML upload limits and batch processing settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxBatchFiles int   `mapstructure:"max_batch_files"`
	Concurrency   int   `mapstructure:"concurrency"`
}

// EmailConfig holds batch notification settings. NotifyAddress empty
// means batch summaries are not sent.
type EmailConfig struct {
	Provider      string `mapstructure:"provider"`
	Region        string `mapstructure:"region"`
	FromAddress   string `mapstructure:"from_address"`
	FromName      string `mapstructure:"from_name"`
	NotifyAddress string `mapstructure:"notify_address"`
}

// Load reads configuration from environment variables with the CREDITSEA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CREDITSEA")
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
	v.SetDefault("db.user", "creditsea")
	v.SetDefault("db.password", "creditsea_secret")
	v.SetDefault("db.name", "creditsea_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults (empty bucket disables archival)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.max_batch_files", 20)
	v.SetDefault("upload.concurrency", 4)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@creditsea.com")
	v.SetDefault("email.from_name", "CreditSea")
	v.SetDefault("email.notify_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "CREDITSEA_SERVER_PORT",
		"server.read_timeout":     "CREDITSEA_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "CREDITSEA_SERVER_WRITE_TIMEOUT",
		"server.environment":      "CREDITSEA_SERVER_ENVIRONMENT",
		"db.host":                 "CREDITSEA_DB_HOST",
		"db.port":                 "CREDITSEA_DB_PORT",
		"db.user":                 "CREDITSEA_DB_USER",
		"db.password":             "CREDITSEA_DB_PASSWORD",
		"db.name":                 "CREDITSEA_DB_NAME",
		"db.sslmode":              "CREDITSEA_DB_SSLMODE",
		"db.max_open":             "CREDITSEA_DB_MAX_OPEN",
		"db.max_idle":             "CREDITSEA_DB_MAX_IDLE",
		"s3.region":               "CREDITSEA_S3_REGION",
		"s3.bucket":               "CREDITSEA_S3_BUCKET",
		"s3.endpoint":             "CREDITSEA_S3_ENDPOINT",
		"s3.access_key":           "CREDITSEA_S3_ACCESS_KEY",
		"s3.secret_key":           "CREDITSEA_S3_SECRET_KEY",
		"s3.presign_expiry":       "CREDITSEA_S3_PRESIGN_EXPIRY",
		"log.level":               "CREDITSEA_LOG_LEVEL",
		"log.format":              "CREDITSEA_LOG_FORMAT",
		"cors.allowed_origins":    "CREDITSEA_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "CREDITSEA_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_batch_files":  "CREDITSEA_UPLOAD_MAX_BATCH_FILES",
		"upload.concurrency":      "CREDITSEA_UPLOAD_CONCURRENCY",
		"email.provider":          "CREDITSEA_EMAIL_PROVIDER",
		"email.region":            "CREDITSEA_EMAIL_REGION",
		"email.from_address":      "CREDITSEA_EMAIL_FROM_ADDRESS",
		"email.from_name":         "CREDITSEA_EMAIL_FROM_NAME",
		"email.notify_address":    "CREDITSEA_EMAIL_NOTIFY_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CREDITSEA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CREDITSEA_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
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

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxBatchFiles: v.GetInt("upload.max_batch_files"),
		Concurrency:   v.GetInt("upload.concurrency"),
	}

	cfg.Email = EmailConfig{
		Provider:      v.GetString("email.provider"),
		Region:        v.GetString("email.region"),
		FromAddress:   v.GetString("email.from_address"),
		FromName:      v.GetString("email.from_name"),
		NotifyAddress: v.GetString("email.notify_address"),
	}

	return cfg, nil
}
