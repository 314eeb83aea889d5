package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
}

func TestConfig_ApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json", Output: "stderr"}
	cfg.ApplyDefaults()
	if cfg.Level != "debug" || cfg.Format != "json" || cfg.Output != "stderr" {
		t.Errorf("explicit values were overwritten: %+v", cfg)
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(&Config{Level: "nope"}, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test")
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Info("hello")
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	l := NewFromEnv("test")
	if l.GetLogger().GetLevel().String() != "warn" {
		t.Errorf("expected warn level, got %s", l.GetLogger().GetLevel())
	}
}

func TestWithHelpers(t *testing.T) {
	l := NewDefault("test").
		WithComponent("utility").
		WithFields(map[string]any{"k": "v"}).
		WithError(nil)
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Debug("debug", map[string]any{"n": 1})
	l.Warn("warn")
	l.Error("error")
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected custom global logger")
	}
}
