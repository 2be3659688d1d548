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
	Parser ParserConfig
	CORS   CORSConfig
	Log    LogConfig
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

// ProviderConfig holds settings for a single LLM provider.
type ProviderConfig struct {
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ParserConfig holds extraction gateway settings. Default names which
// provider handles requests that carry no explicit provider field.
type ParserConfig struct {
	Default string         `mapstructure:"default"`
	Gemini  ProviderConfig `mapstructure:"gemini"`
	OpenAI  ProviderConfig `mapstructure:"openai"`
	Claude  ProviderConfig `mapstructure:"claude"`
}

// Providers returns the per-provider configs keyed by provider name.
func (p *ParserConfig) Providers() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		"gemini": &p.Gemini,
		"openai": &p.OpenAI,
		"claude": &p.Claude,
	}
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ConfigError reports a missing or invalid startup setting. It is fatal:
// the process must exit rather than serve requests with a broken backend.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Key, e.Reason)
}

// Load reads configuration from environment variables with the DOCREADER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3001")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "docreader")
	v.SetDefault("db.password", "docreader_secret")
	v.SetDefault("db.name", "docreader_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Parser defaults
	v.SetDefault("parser.default", "gemini")
	v.SetDefault("parser.gemini.api_key", "")
	v.SetDefault("parser.gemini.default_model", "gemini-1.5-flash")
	v.SetDefault("parser.gemini.timeout_secs", 120)
	v.SetDefault("parser.openai.api_key", "")
	v.SetDefault("parser.openai.default_model", "gpt-4o")
	v.SetDefault("parser.openai.timeout_secs", 120)
	v.SetDefault("parser.claude.api_key", "")
	v.SetDefault("parser.claude.default_model", "claude-sonnet-4-20250514")
	v.SetDefault("parser.claude.timeout_secs", 120)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "DOCREADER_SERVER_PORT",
		"server.read_timeout":         "DOCREADER_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "DOCREADER_SERVER_WRITE_TIMEOUT",
		"server.environment":          "DOCREADER_SERVER_ENVIRONMENT",
		"db.host":                     "DOCREADER_DB_HOST",
		"db.port":                     "DOCREADER_DB_PORT",
		"db.user":                     "DOCREADER_DB_USER",
		"db.password":                 "DOCREADER_DB_PASSWORD",
		"db.name":                     "DOCREADER_DB_NAME",
		"db.sslmode":                  "DOCREADER_DB_SSLMODE",
		"db.max_open":                 "DOCREADER_DB_MAX_OPEN",
		"db.max_idle":                 "DOCREADER_DB_MAX_IDLE",
		"parser.default":              "DOCREADER_PARSER_DEFAULT",
		"parser.gemini.api_key":       "DOCREADER_PARSER_GEMINI_API_KEY",
		"parser.gemini.default_model": "DOCREADER_PARSER_GEMINI_DEFAULT_MODEL",
		"parser.gemini.timeout_secs":  "DOCREADER_PARSER_GEMINI_TIMEOUT_SECS",
		"parser.openai.api_key":       "DOCREADER_PARSER_OPENAI_API_KEY",
		"parser.openai.default_model": "DOCREADER_PARSER_OPENAI_DEFAULT_MODEL",
		"parser.openai.timeout_secs":  "DOCREADER_PARSER_OPENAI_TIMEOUT_SECS",
		"parser.claude.api_key":       "DOCREADER_PARSER_CLAUDE_API_KEY",
		"parser.claude.default_model": "DOCREADER_PARSER_CLAUDE_DEFAULT_MODEL",
		"parser.claude.timeout_secs":  "DOCREADER_PARSER_CLAUDE_TIMEOUT_SECS",
		"cors.allowed_origins":        "DOCREADER_CORS_ALLOWED_ORIGINS",
		"log.level":                   "DOCREADER_LOG_LEVEL",
		"log.format":                  "DOCREADER_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCREADER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCREADER_SERVER_PORT") == "" {
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
	cfg.Parser = ParserConfig{
		Default: v.GetString("parser.default"),
		Gemini: ProviderConfig{
			APIKey:       v.GetString("parser.gemini.api_key"),
			DefaultModel: v.GetString("parser.gemini.default_model"),
			TimeoutSecs:  v.GetInt("parser.gemini.timeout_secs"),
		},
		OpenAI: ProviderConfig{
			APIKey:       v.GetString("parser.openai.api_key"),
			DefaultModel: v.GetString("parser.openai.default_model"),
			TimeoutSecs:  v.GetInt("parser.openai.timeout_secs"),
		},
		Claude: ProviderConfig{
			APIKey:       v.GetString("parser.claude.api_key"),
			DefaultModel: v.GetString("parser.claude.default_model"),
			TimeoutSecs:  v.GetInt("parser.claude.timeout_secs"),
		},
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}

// Validate checks the settings the process cannot run without: the default
// provider's API key and the database coordinates. Called once at startup;
// a non-nil result is fatal.
func (c *Config) Validate() error {
	providers := c.Parser.Providers()
	def, ok := providers[c.Parser.Default]
	if !ok {
		return &ConfigError{Key: "parser.default", Reason: fmt.Sprintf("unknown provider %q", c.Parser.Default)}
	}
	if def.APIKey == "" {
		return &ConfigError{
			Key:    "parser." + c.Parser.Default + ".api_key",
			Reason: "API key for the default provider is not set",
		}
	}
	if c.DB.Host == "" || c.DB.Name == "" {
		return &ConfigError{Key: "db", Reason: "database host and name must be set"}
	}
	return nil
}
