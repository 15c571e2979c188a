package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Content sources
const (
	ContentEmbedded = "embedded"
	ContentFile     = "file"
	ContentR2       = "r2"
)

// Inquiry sinks
const (
	SinkLog     = "log"
	SinkWebhook = "webhook"
	SinkRedis   = "redis"
	SinkR2      = "r2"
)

// AI providers
const (
	ProviderREST  = "rest"
	ProviderGenAI = "genai"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`
	StaticDir       string        `json:"static_dir"`
	CORSOrigins     string        `json:"cors_origins"`

	// Content store
	ContentSource string `json:"content_source"`
	ContentFile   string `json:"content_file"`
	ContentKey    string `json:"content_key"`

	// CloudFlare R2 Configuration
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`
	R2AccountID string `json:"r2_account_id"`

	// AI Configuration
	AIApiKey   string        `json:"-"`
	AIProvider string        `json:"ai_provider"`
	AIModel    string        `json:"ai_model"`
	AIBaseURL  string        `json:"ai_base_url"`
	AITimeout  time.Duration `json:"ai_timeout"`

	// Inquiry intake
	InquirySink       string        `json:"inquiry_sink"`
	InquiryWebhookURL string        `json:"inquiry_webhook_url"`
	InquiryQueue      string        `json:"inquiry_queue"`
	InquiryPrefix     string        `json:"inquiry_prefix"`
	ContactRateLimit  int           `json:"contact_rate_limit"`
	ContactRateWindow time.Duration `json:"contact_rate_window"`

	// Redis configuration
	RedisURL    string `json:"redis_url"`
	RedisPrefix string `json:"redis_prefix"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	LogPretty bool   `json:"log_pretty"`
}

// Load loads configuration from environment variables and validates it.
// An invalid configuration terminates the process.
func Load() *Config {
	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv reads the environment (and .env when present) into a validated Config.
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		StaticDir:       getEnv("STATIC_DIR", "./dist"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),

		ContentSource: strings.ToLower(getEnv("CONTENT_SOURCE", ContentEmbedded)),
		ContentFile:   getEnv("CONTENT_FILE", "./data/content.yaml"),
		ContentKey:    getEnv("CONTENT_KEY", "content/catalog.yaml"),

		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", ""),
		R2AccountID: getEnv("CLOUDFLARE_ACCOUNT_ID", ""),

		AIApiKey:   getEnv("API_KEY", getEnv("AI_API_KEY", "")),
		AIProvider: strings.ToLower(getEnv("AI_PROVIDER", ProviderREST)),
		AIModel:    getEnv("AI_MODEL", "gemini-3-flash-preview"),
		AIBaseURL:  getEnv("AI_BASE_URL", ""),
		AITimeout:  getEnvAsDuration("AI_TIMEOUT", 30*time.Second),

		InquirySink:       strings.ToLower(getEnv("INQUIRY_SINK", SinkLog)),
		InquiryWebhookURL: getEnv("INQUIRY_WEBHOOK_URL", ""),
		InquiryQueue:      getEnv("INQUIRY_QUEUE", "inquiries"),
		InquiryPrefix:     getEnv("INQUIRY_PREFIX", "inquiries/"),
		ContactRateLimit:  getEnvAsInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: getEnvAsDuration("CONTACT_RATE_WINDOW", time.Minute),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnv("REDIS_PREFIX", "nexus:"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", ""),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and the settings required by the
// selected content source and inquiry sink. A missing AI credential is not
// an error here; the roadmap endpoint reports it per request.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	switch c.ContentSource {
	case ContentEmbedded:
	case ContentFile:
		if c.ContentFile == "" {
			return fmt.Errorf("CONTENT_FILE is required for content source %q", c.ContentSource)
		}
	case ContentR2:
		if err := c.requireR2(); err != nil {
			return fmt.Errorf("content source r2: %w", err)
		}
		if c.ContentKey == "" {
			return fmt.Errorf("CONTENT_KEY is required for content source r2")
		}
	default:
		return fmt.Errorf("unknown CONTENT_SOURCE %q", c.ContentSource)
	}

	switch c.InquirySink {
	case SinkLog:
	case SinkWebhook:
		if c.InquiryWebhookURL == "" {
			return fmt.Errorf("INQUIRY_WEBHOOK_URL is required for inquiry sink webhook")
		}
	case SinkRedis:
		if c.RedisURL == "" || c.InquiryQueue == "" {
			return fmt.Errorf("REDIS_URL and INQUIRY_QUEUE are required for inquiry sink redis")
		}
	case SinkR2:
		if err := c.requireR2(); err != nil {
			return fmt.Errorf("inquiry sink r2: %w", err)
		}
	default:
		return fmt.Errorf("unknown INQUIRY_SINK %q", c.InquirySink)
	}

	switch c.AIProvider {
	case ProviderREST, ProviderGenAI:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}

	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	if c.ContactRateLimit < 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must not be negative")
	}
	return nil
}

// R2EndpointURL returns the configured endpoint, or the account endpoint
// derived from CLOUDFLARE_ACCOUNT_ID.
func (c *Config) R2EndpointURL() string {
	if c.R2Endpoint != "" {
		return c.R2Endpoint
	}
	if c.R2AccountID != "" {
		return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.R2AccountID)
	}
	return ""
}

func (c *Config) requireR2() error {
	if c.R2Bucket == "" {
		return fmt.Errorf("R2_BUCKET is required")
	}
	if c.R2EndpointURL() == "" {
		return fmt.Errorf("R2_ENDPOINT or CLOUDFLARE_ACCOUNT_ID is required")
	}
	if c.R2AccessKey == "" || c.R2SecretKey == "" {
		return fmt.Errorf("R2_ACCESS_KEY and R2_SECRET_ACCESS_KEY are required")
	}
	return nil
}

// Helper functions for environment variable handling.
// An exported but empty variable counts as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
