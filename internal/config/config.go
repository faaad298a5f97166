package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Worker pool
	WorkerCount         int `yaml:"worker_count"`
	MaxQueueSize        int `yaml:"max_queue_size"`
	MaxConcurrentBlocks int `yaml:"max_concurrent_blocks"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Job state
	JobTTL      time.Duration `yaml:"job_ttl"`
	StatsWindow time.Duration `yaml:"stats_window"`

	// Compilation
	BlockSeparator string `yaml:"block_separator"`
	OutputDir      string `yaml:"output_dir"`

	LogLevel string `yaml:"log_level"`
}

// Defaults returns the configuration used when neither a file nor the
// environment sets a value.
func Defaults() Config {
	return Config{
		Port:                "8090",
		WorkerCount:         4,
		MaxQueueSize:        100,
		MaxConcurrentBlocks: 8,
		MaxUploadBytes:      10485760, // 10MB
		JobTTL:              1 * time.Hour,
		StatsWindow:         1 * time.Hour,
		BlockSeparator:      "---",
		OutputDir:           ".",
		LogLevel:            "info",
	}
}

// Load reads the file named by DC4U_CONFIG, if any, and applies the
// environment on top.
func Load() (Config, error) {
	return LoadFile(os.Getenv("DC4U_CONFIG"))
}

// LoadFile layers defaults, the YAML file at path (skipped when empty) and
// environment variables, in that order.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("DC4U_API_KEY", cfg.APIKey)

	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)
	cfg.MaxConcurrentBlocks = envInt("MAX_CONCURRENT_BLOCKS", cfg.MaxConcurrentBlocks)

	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)
	cfg.StatsWindow = envDuration("STATS_WINDOW", cfg.StatsWindow)

	cfg.BlockSeparator = envOr("BLOCK_SEPARATOR", cfg.BlockSeparator)
	cfg.OutputDir = envOr("OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Defaults()
	if c.WorkerCount <= 0 {
		c.WorkerCount = def.WorkerCount
	}
	if c.MaxQueueSize <= 0 {
		c.MaxQueueSize = def.MaxQueueSize
	}
	if c.MaxConcurrentBlocks <= 0 {
		c.MaxConcurrentBlocks = def.MaxConcurrentBlocks
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = def.MaxUploadBytes
	}
	if c.JobTTL <= 0 {
		c.JobTTL = def.JobTTL
	}
	if c.StatsWindow <= 0 {
		c.StatsWindow = def.StatsWindow
	}
	if strings.TrimSpace(c.BlockSeparator) == "" {
		c.BlockSeparator = def.BlockSeparator
	}
}

// Validate checks settings shared by every entry point.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ValidateServer additionally requires the settings the HTTP server needs.
func (c Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("DC4U_API_KEY is required")
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
