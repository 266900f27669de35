package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultsApply(t *testing.T) {
	cfg := Load()

	if cfg.Store.Backend != "memory" {
		t.Errorf("expected default STORE_BACKEND 'memory', got '%s'", cfg.Store.Backend)
	}
	if cfg.Risk.BankruptcyThreshold != -50000.0 {
		t.Errorf("expected default BANKRUPTCY_THRESHOLD -50000, got %f", cfg.Risk.BankruptcyThreshold)
	}
	if len(cfg.Sweep.Seeds) != 10 {
		t.Errorf("expected 10 default sweep seeds, got %d", len(cfg.Sweep.Seeds))
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	os.Setenv("SIMCORE_STORE_BACKEND", "redis")
	os.Setenv("SIMCORE_BANKRUPTCY_THRESHOLD", "-75000")
	defer func() {
		os.Unsetenv("SIMCORE_STORE_BACKEND")
		os.Unsetenv("SIMCORE_BANKRUPTCY_THRESHOLD")
	}()

	cfg := Load()

	if cfg.Store.Backend != "redis" {
		t.Errorf("expected env override 'redis', got '%s'", cfg.Store.Backend)
	}
	if cfg.Risk.BankruptcyThreshold != -75000 {
		t.Errorf("expected env override -75000, got %f", cfg.Risk.BankruptcyThreshold)
	}
}

func TestValidateStoreConfig(t *testing.T) {
	if err := ValidateStoreConfig(StoreConfig{Backend: "memory"}); err != nil {
		t.Errorf("expected memory backend to validate without connection info, got: %v", err)
	}

	if err := ValidateStoreConfig(StoreConfig{Backend: "gorm"}); err == nil {
		t.Error("expected error for gorm backend missing DATABASE_URL")
	}

	if err := ValidateStoreConfig(StoreConfig{Backend: "redis"}); err == nil {
		t.Error("expected error for redis backend missing REDIS_URL")
	}

	if err := ValidateStoreConfig(StoreConfig{Backend: "bogus"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
