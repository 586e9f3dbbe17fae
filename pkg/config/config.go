package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:replyflock.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Response cache configuration"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=AI provider configuration"`

	Engine EngineConfig `yaml:"engine" json:"engine" jsonschema:"description=Bot engine configuration"`

	Surface SurfaceConfig `yaml:"surface" json:"surface" jsonschema:"description=Action surface configuration"`
}

// CacheConfig holds response cache settings
type CacheConfig struct {
	Backend    string        `yaml:"backend" json:"backend" jsonschema:"default=memory,enum=memory,enum=redis,description=Cache backend"`
	TTL        time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=5m,description=Entry time to live"`
	MaxEntries int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=1000,description=Maximum resident entries (memory backend)"`
	Redis      struct {
		Addr     string `yaml:"addr" json:"addr" jsonschema:"default=localhost:6379,description=Redis address"`
		Password string `yaml:"password" json:"password" jsonschema:"description=Redis password (can use environment variable)"`
		DB       int    `yaml:"db" json:"db" jsonschema:"default=0,description=Redis database number"`
	} `yaml:"redis" json:"redis" jsonschema:"description=Redis backend settings"`
}

// AIConfig holds provider settings shared by all accounts; per-account API keys
// live on the account itself
type AIConfig struct {
	OpenAIModel    string        `yaml:"openai_model" json:"openai_model" jsonschema:"default=gpt-3.5-turbo,description=OpenAI model name"`
	OpenAIEndpoint string        `yaml:"openai_endpoint" json:"openai_endpoint" jsonschema:"description=OpenAI-compatible API endpoint override"`
	GeminiModel    string        `yaml:"gemini_model" json:"gemini_model" jsonschema:"default=gemini-1.5-pro,description=Gemini model name"`
	Temperature    float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens      int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=100,description=Maximum tokens in response"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	ReplyLimit     int           `yaml:"reply_limit" json:"reply_limit" jsonschema:"default=100,description=Maximum reply length in characters"`
}

// EngineConfig holds tunables shared by every bot engine
type EngineConfig struct {
	MinDelay        time.Duration `yaml:"min_delay" json:"min_delay" jsonschema:"default=2s,description=Lower bound of the randomized delay between candidates"`
	MaxDelay        time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=6s,description=Upper bound of the randomized delay between candidates"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"default=5s,description=Grace period for in-flight work on stop"`
	EventBuffer     int           `yaml:"event_buffer" json:"event_buffer" jsonschema:"default=128,description=Per-engine event channel capacity"`
}

// SurfaceConfig holds settings for the built-in RSS action surface
type SurfaceConfig struct {
	FeedURL   string        `yaml:"feed_url" json:"feed_url" jsonschema:"description=Feed mode URL template ({user} is replaced with the account username)"`
	UserURL   string        `yaml:"user_url" json:"user_url" jsonschema:"description=User mode URL template ({user} is replaced with the target username)"`
	SearchURL string        `yaml:"search_url" json:"search_url" jsonschema:"description=Trending mode URL template ({query} is replaced with the keyword)"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout"`
	DryRun    bool          `yaml:"dry_run" json:"dry_run" jsonschema:"default=true,description=Record write actions as successes without performing them"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:replyflock.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for cache
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = 1000
	}
	if cfg.Cache.Redis.Addr == "" {
		cfg.Cache.Redis.Addr = "localhost:6379"
	}

	// set defaults for AI providers
	if cfg.AI.OpenAIModel == "" {
		cfg.AI.OpenAIModel = "gpt-3.5-turbo"
	}
	if cfg.AI.GeminiModel == "" {
		cfg.AI.GeminiModel = "gemini-1.5-pro"
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 100
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30 * time.Second
	}
	if cfg.AI.ReplyLimit == 0 {
		cfg.AI.ReplyLimit = 100
	}

	// set defaults for engine
	if cfg.Engine.MinDelay == 0 {
		cfg.Engine.MinDelay = 2 * time.Second
	}
	if cfg.Engine.MaxDelay == 0 {
		cfg.Engine.MaxDelay = 6 * time.Second
	}
	if cfg.Engine.ShutdownTimeout == 0 {
		cfg.Engine.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Engine.EventBuffer == 0 {
		cfg.Engine.EventBuffer = 128
	}

	// set defaults for surface
	if cfg.Surface.Timeout == 0 {
		cfg.Surface.Timeout = 30 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate cache config
	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be memory or redis")
	}
	if cfg.Cache.TTL < time.Second {
		return fmt.Errorf("cache.ttl must be at least 1 second")
	}
	if cfg.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be at least 1")
	}

	// validate AI config
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}
	if cfg.AI.MaxTokens < 1 {
		return fmt.Errorf("ai.max_tokens must be at least 1")
	}
	if cfg.AI.ReplyLimit < 1 {
		return fmt.Errorf("ai.reply_limit must be at least 1")
	}

	// validate engine config
	if cfg.Engine.MinDelay < 0 || cfg.Engine.MaxDelay < 0 {
		return fmt.Errorf("engine delays must be non-negative")
	}
	if cfg.Engine.MaxDelay < cfg.Engine.MinDelay {
		return fmt.Errorf("engine.max_delay must be >= engine.min_delay")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCacheConfig returns response cache configuration
func (c *Config) GetCacheConfig() CacheConfig {
	return c.Cache
}

// GetAIConfig returns AI provider configuration
func (c *Config) GetAIConfig() AIConfig {
	return c.AI
}

// GetEngineConfig returns bot engine configuration
func (c *Config) GetEngineConfig() EngineConfig {
	return c.Engine
}
