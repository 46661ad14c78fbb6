package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Upload  UploadConfig  `mapstructure:"upload"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is optional at load time. An empty key surfaces as a
	// configuration error on the first model call.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName string `mapstructure:"model_name" validate:"required"`

	// RequestTimeoutSeconds bounds a single model call. Zero means no
	// client-side timeout; the call waits for the provider.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// SessionConfig controls the in-memory chat session store.
type SessionConfig struct {
	MaxSessions int `mapstructure:"max_sessions" validate:"required,gt=0"`
	// TTLMinutes of zero keeps sessions until they are evicted by size.
	TTLMinutes int `mapstructure:"ttl_minutes" validate:"gte=0"`
}

// UploadConfig limits dashboard file uploads.
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,gt=0"`
}
