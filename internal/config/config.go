package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cypherlabdev/fixture-insights-service/pkg/insights"
)

// Config holds all configuration for fixture-insights-service
type Config struct {
	Server   ServerConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Insights InsightsConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (upstream_payloads)
	GroupID string `mapstructure:"group_id"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// InsightsConfig holds view-building parameters
type InsightsConfig struct {
	Timezone       string // IANA zone used for date buckets and kickoff times
	WindowSize     int    `mapstructure:"window_size"`      // trailing matches behind fixture scores
	TeamWindowSize int    `mapstructure:"team_window_size"` // trailing matches on team pages
	RankingsLimit  int    `mapstructure:"rankings_limit"`   // leaderboard entries kept
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "upstream_payloads")
	v.SetDefault("kafka.group_id", "fixture-insights")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 30*time.Minute)

	v.SetDefault("insights.timezone", insights.DefaultTimezone)
	v.SetDefault("insights.window_size", 5)
	v.SetDefault("insights.team_window_size", 10)
	v.SetDefault("insights.rankings_limit", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("FIXTURE_INSIGHTS")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Insights.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the view-building parameters
func (c *InsightsConfig) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("insights.window_size must be positive, got %d", c.WindowSize)
	}
	if c.TeamWindowSize <= 0 {
		return fmt.Errorf("insights.team_window_size must be positive, got %d", c.TeamWindowSize)
	}
	if c.RankingsLimit < 0 {
		return fmt.Errorf("insights.rankings_limit must not be negative, got %d", c.RankingsLimit)
	}
	if _, err := insights.ResolveLocation(c.Timezone); err != nil {
		return fmt.Errorf("insights.timezone: %w", err)
	}
	return nil
}

// ToBuildParams converts config to view builder parameters
func (c *InsightsConfig) ToBuildParams() (insights.Params, error) {
	loc, err := insights.ResolveLocation(c.Timezone)
	if err != nil {
		return insights.Params{}, err
	}

	return insights.Params{
		Location:       loc,
		WindowSize:     c.WindowSize,
		TeamWindowSize: c.TeamWindowSize,
		RankingsLimit:  c.RankingsLimit,
	}, nil
}
