package database

import (
	"strings"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{DBName: "app", User: "svc"}
	cfg.ApplyDefaults()
	if cfg.Host != "localhost" {
		t.Errorf("expected localhost, got %s", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("expected 5432, got %d", cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("expected disable, got %s", cfg.SSLMode)
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBName: "app", User: "svc", Password: "secret", Host: "db", Port: 5433}
	dsn := cfg.DSN()
	for _, part := range []string{"host=db", "port=5433", "user=svc", "password=secret", "dbname=app", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}

func TestConfig_DSN_KeepsExplicit(t *testing.T) {
	cfg := Config{DBName: "app", User: "svc", Host: "remote", Port: 6000, SSLMode: "require"}
	dsn := cfg.DSN()
	if !strings.Contains(dsn, "host=remote") || !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("explicit values were overwritten: %q", dsn)
	}
}
