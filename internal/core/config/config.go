// Package config loads simulator-wide defaults via viper, grounded on the
// teacher's internal/config/config.go: SetDefault per key, AutomaticEnv,
// a dotted env-key replacer, and a single Load() entry point.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable the simulator core reads at startup: logging,
// snapshot store backend selection, the scenario-sweep cron schedule and
// seed set, and risk defaults (see RiskConfig).
type Config struct {
	Logging LoggingConfig
	Store   StoreConfig
	Sweep   SweepConfig
	Risk    RiskConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

// StoreConfig selects and configures the SnapshotStore backend. Backend is
// one of "memory", "gorm", "redis".
type StoreConfig struct {
	Backend     string
	DatabaseURL string
	RedisURL    string
	RedisTTLMin int
}

// SweepConfig drives internal/core/sweep.Scheduler.
type SweepConfig struct {
	Enabled  bool
	CronExpr string
	Seeds    []int64
}

// RiskConfig holds node-parameter defaults. Nothing in internal/core reads
// it: node constructors take these values as explicit arguments.
type RiskConfig struct {
	BankruptcyThreshold     float64
	BankruptcyLiquidFloor   float64
	CreditScoreAlpha        float64
	LiquidationBalanceFloor float64
}

// Load reads configuration from environment variables (and an optional
// .env file in the working directory), falling back to setDefaults().
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIMCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	_ = viper.ReadInConfig() // absent .env is not an error; env vars and defaults cover it

	return &Config{
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Store: StoreConfig{
			Backend:     viper.GetString("STORE_BACKEND"),
			DatabaseURL: viper.GetString("DATABASE_URL"),
			RedisURL:    viper.GetString("REDIS_URL"),
			RedisTTLMin: viper.GetInt("REDIS_SNAPSHOT_TTL_MIN"),
		},
		Sweep: SweepConfig{
			Enabled:  viper.GetBool("SWEEP_ENABLED"),
			CronExpr: viper.GetString("SWEEP_CRON"),
			Seeds:    toInt64Slice(viper.GetIntSlice("SWEEP_SEEDS")),
		},
		Risk: RiskConfig{
			BankruptcyThreshold:     viper.GetFloat64("BANKRUPTCY_THRESHOLD"),
			BankruptcyLiquidFloor:   viper.GetFloat64("BANKRUPTCY_LIQUID_FLOOR"),
			CreditScoreAlpha:        viper.GetFloat64("CREDIT_SCORE_ALPHA"),
			LiquidationBalanceFloor: viper.GetFloat64("LIQUIDATION_BALANCE_FLOOR"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379")
	viper.SetDefault("REDIS_SNAPSHOT_TTL_MIN", 1440)

	viper.SetDefault("SWEEP_ENABLED", false)
	viper.SetDefault("SWEEP_CRON", "0 0 * * * *") // hourly, seconds precision
	viper.SetDefault("SWEEP_SEEDS", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	viper.SetDefault("BANKRUPTCY_THRESHOLD", -50000.0)
	viper.SetDefault("BANKRUPTCY_LIQUID_FLOOR", 100.0)
	viper.SetDefault("CREDIT_SCORE_ALPHA", 0.1)
	viper.SetDefault("LIQUIDATION_BALANCE_FLOOR", 0.0)
}

func toInt64Slice(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

// ValidateStoreConfig checks that the selected backend has the connection
// info it needs, mirroring the teacher's ValidateConfig checks for
// required-but-blank settings.
func ValidateStoreConfig(cfg StoreConfig) error {
	switch cfg.Backend {
	case "memory":
		return nil
	case "gorm":
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("config: STORE_BACKEND=gorm requires DATABASE_URL")
		}
	case "redis":
		if cfg.RedisURL == "" {
			return fmt.Errorf("config: STORE_BACKEND=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.Backend)
	}
	return nil
}
