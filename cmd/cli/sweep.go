package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"personalfinancedss/internal/core"
	coreconfig "personalfinancedss/internal/core/config"
	"personalfinancedss/internal/core/engine"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/sweep"
	"personalfinancedss/internal/core/wallet"
)

var sweepDays int

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the configured seed set once and print a cross-scenario report",
	Long:  `Fans the baseline scenario out across every seed in SWEEP_SEEDS, collects each run's final balance, and prints the resulting percentile summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSweep()
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepDays, "days", 365, "number of days per scenario run")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep() {
	cfg := coreconfig.Load()

	logger, err := core.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	factory := func(seed int64) (*engine.Engine, error) {
		graph, err := buildBaselineDAG()
		if err != nil {
			return nil, err
		}
		walletCfg := wallet.Config{
			StartDate:          baselineStart(sweepDays),
			EndDate:            baselineStart(sweepDays).AddDate(0, 0, sweepDays-1),
			InitialBalance:     money.New(10000),
			InitialCreditScore: wallet.DefaultInitialCreditScore,
			RandomSeed:         seed,
			BaseCurrency:       "USD",
		}
		return engine.New(walletCfg, graph, nil, logger)
	}

	scheduler := sweep.NewScheduler(factory, cfg.Sweep.Seeds, logger)

	report, err := scheduler.RunOnce(context.Background())
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal report: %v", err)
	}
	fmt.Println(string(out))
}
