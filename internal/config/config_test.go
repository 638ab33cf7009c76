package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadAPIFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := LoadAPIFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.MaxSessions != 1000 || cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.Game.StartingFunds != 100 || cfg.Game.StartingReputation != 0 || cfg.Game.Holiday {
		t.Fatalf("got game config %+v", cfg.Game)
	}
}

func TestLoadAPIFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TABBOZ_STARTING_FUNDS", "500")
	t.Setenv("TABBOZ_HOLIDAY", "true")
	cfg, err := LoadAPIFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("got addr %q", cfg.Addr)
	}
	l := cfg.Game.NewLedger()
	if l.Funds() != 500 || !cfg.Game.Calendar().Holiday {
		t.Fatalf("got funds=%d calendar=%+v", l.Funds(), cfg.Game.Calendar())
	}
}

func TestLoadAPIFromEnvRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"TABBOZ_STARTING_REPUTATION": "101",
		"TABBOZ_STARTING_FUNDS":      "-1",
		"TABBOZ_MAX_SESSIONS":        "0",
		"TABBOZ_LOG_LEVEL":           "loud",
		"TABBOZ_SESSION_IDLE_TTL":    "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadAPIFromEnv(); err == nil {
				t.Fatalf("expected %s=%s to fail", key, value)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	if err != nil || level != slog.LevelWarn {
		t.Fatalf("got level=%v err=%v", level, err)
	}
}
