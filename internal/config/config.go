package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"tabboz/internal/game"
)

type GameConfig struct {
	StartingFunds      int64 `env:"TABBOZ_STARTING_FUNDS" envDefault:"100"`
	StartingReputation int   `env:"TABBOZ_STARTING_REPUTATION" envDefault:"0"`
	Holiday            bool  `env:"TABBOZ_HOLIDAY" envDefault:"false"`
}

type APIConfig struct {
	Addr           string        `env:"TABBOZ_API_ADDR" envDefault:":8080"`
	LogLevel       string        `env:"TABBOZ_LOG_LEVEL" envDefault:"info"`
	MaxSessions    int           `env:"TABBOZ_MAX_SESSIONS" envDefault:"1000"`
	SessionIdleTTL time.Duration `env:"TABBOZ_SESSION_IDLE_TTL" envDefault:"30m"`
	Game           GameConfig
}

type CLIConfig struct {
	Plain    bool   `env:"TABBOZ_PLAIN" envDefault:"false"`
	LogLevel string `env:"TABBOZ_LOG_LEVEL" envDefault:"warn"`
	Game     GameConfig
}

func LoadAPIFromEnv() (APIConfig, error) {
	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Addr = port
	}
	if cfg.MaxSessions <= 0 {
		return cfg, fmt.Errorf("TABBOZ_MAX_SESSIONS must be > 0")
	}
	if cfg.SessionIdleTTL <= 0 {
		return cfg, fmt.Errorf("TABBOZ_SESSION_IDLE_TTL must be > 0")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, cfg.Game.Validate()
}

func LoadCLIFromEnv() (CLIConfig, error) {
	var cfg CLIConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, cfg.Game.Validate()
}

func (c GameConfig) Validate() error {
	if c.StartingFunds < 0 {
		return fmt.Errorf("TABBOZ_STARTING_FUNDS must be >= 0")
	}
	if c.StartingReputation < game.MinReputation || c.StartingReputation > game.MaxReputation {
		return fmt.Errorf("TABBOZ_STARTING_REPUTATION must be in [%d,%d]", game.MinReputation, game.MaxReputation)
	}
	return nil
}

func (c GameConfig) NewLedger() *game.Ledger {
	return game.NewLedger(c.StartingFunds, c.StartingReputation)
}

func (c GameConfig) Calendar() game.Calendar {
	return game.Calendar{Holiday: c.Holiday}
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
