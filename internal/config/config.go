package config

import (
	"fmt"
	"time"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	pkgconfig "github.com/weiawesome/wes-io-live/ulid-udf/pkg/config"
)

type Config struct {
	Server    ServerConfig
	DateParse DateParseConfig `mapstructure:"dateparse"`
	Batch     BatchConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DateParseConfig struct {
	Location         string `mapstructure:"location"`
	PreferMonthFirst bool   `mapstructure:"prefer_month_first"`
	RetryAmbiguous   bool   `mapstructure:"retry_ambiguous"`
}

type BatchConfig struct {
	MaxRows int `mapstructure:"max_rows"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// DateParser builds the date parser described by c.
func (c DateParseConfig) DateParser() (resolver.DateparseParser, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return resolver.DateparseParser{}, fmt.Errorf("invalid dateparse.location %q: %w", c.Location, err)
	}
	return resolver.DateparseParser{
		Location:         loc,
		PreferMonthFirst: c.PreferMonthFirst,
		RetryAmbiguous:   c.RetryAmbiguous,
	}, nil
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("dateparse.location", "UTC")
	v.SetDefault("dateparse.prefer_month_first", true)
	v.SetDefault("dateparse.retry_ambiguous", true)
	v.SetDefault("batch.max_rows", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("dateparse.location", "ULID_DATE_LOCATION")
	v.BindEnv("dateparse.prefer_month_first", "ULID_PREFER_MONTH_FIRST")
	v.BindEnv("dateparse.retry_ambiguous", "ULID_RETRY_AMBIGUOUS")
	v.BindEnv("batch.max_rows", "ULID_BATCH_MAX_ROWS")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Batch.MaxRows < 1 {
		return nil, fmt.Errorf("batch.max_rows must be at least 1, got %d", cfg.Batch.MaxRows)
	}
	if _, err := cfg.DateParse.DateParser(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
