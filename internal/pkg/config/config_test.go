package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestProcess_Defaults(t *testing.T) {
	cfg, err := Process(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if cfg.Port != "3005" {
		t.Errorf("expected port 3005, got %q", cfg.Port)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Errorf("expected 10m session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.Persist.Mode != PersistNone || cfg.Persist.Seed != SeedFile || cfg.Persist.Workers != 2 {
		t.Errorf("unexpected persistence defaults %+v", cfg.Persist)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" {
		t.Errorf("expected optional stores disabled, got mongo=%q redis=%q", cfg.Mongo.URI, cfg.Redis.Addr)
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Errorf("expected 5s redis timeout, got %v", cfg.Redis.Timeout)
	}
	if cfg.Redis.IdempotencyTTL != time.Hour {
		t.Errorf("expected 1h idempotency ttl, got %v", cfg.Redis.IdempotencyTTL)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development env by default")
	}
}

func TestProcess_Overrides(t *testing.T) {
	cfg, err := Process(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":         "9000",
		"SESSION_TTL":  "30s",
		"PERSIST_MODE": "mongo",
		"MONGO_URI":    "mongodb://db:27017",
		"REDIS_ADDR":   "cache:6379",
	}))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if cfg.Port != "9000" || cfg.SessionTTL != 30*time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Mongo.Database != "commerce" {
		t.Errorf("expected default db name, got %q", cfg.Mongo.Database)
	}
}

func TestProcess_RejectsInvalidCombinations(t *testing.T) {
	cases := map[string]map[string]string{
		"mongo persistence without uri": {"PERSIST_MODE": "mongo"},
		"mongo seed without uri":        {"SEED_SOURCE": "mongo"},
		"unknown persist mode":          {"PERSIST_MODE": "s3"},
		"unknown seed source":           {"SEED_SOURCE": "http"},
		"non-positive session ttl":      {"SESSION_TTL": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Process(context.Background(), envconfig.MapLookuper(env))
			if err == nil {
				t.Fatal("expected error")
			}
			if strings.TrimSpace(err.Error()) == "" {
				t.Error("expected a descriptive error")
			}
		})
	}
}
