package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"personalfinancedss/internal/core"
	coreconfig "personalfinancedss/internal/core/config"
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/engine"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/nodes"
	"personalfinancedss/internal/core/wallet"
)

var (
	runSeed    int64
	runDays    int
	runBalance float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one deterministic simulation and print its output packet",
	Long:  `Runs a baseline scenario (salary, rent, variable spending, taxes, credit score, bankruptcy guard) and prints the spec's output packet as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSimulation()
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "RNG seed")
	runCmd.Flags().IntVar(&runDays, "days", 365, "number of days to simulate")
	runCmd.Flags().Float64Var(&runBalance, "balance", 10000, "initial wallet balance")
	rootCmd.AddCommand(runCmd)
}

// buildBaselineDAG constructs the default node set a bare simcore run
// exercises: income, fixed and variable expenses, investable surplus,
// progressive income tax, credit score drift, and a bankruptcy guard.
func buildBaselineDAG() (*dag.DAG, error) {
	g := dag.New()

	adds := []dag.Node{
		nodes.NewSalaryNode("salary", money.New(60000), 1),
		nodes.NewFixedExpenseNode("rent", money.New(1500), 1, "rent", "salary"),
		nodes.NewVariableExpenseNode("daily_expenses", money.New(60), money.New(20), "daily living expenses"),
		nodes.NewAssetPurchaseNode("invest_surplus", wallet.AssetStocks, money.New(5000), 0.5, "salary", "rent", "daily_expenses"),
		nodes.NewAssetPortfolioNode("portfolio", "invest_surplus"),
		nodes.NewInvestmentReturnNode("portfolio_return", money.New(7), "portfolio"),
		nodes.NewIncomeTaxNode("income_tax", nodes.DefaultTaxBrackets(), 4, 15, "salary"),
		nodes.NewCreditScoreNode("credit_score", 0.1, "rent", "daily_expenses", "income_tax"),
		nodes.NewBankruptcyCheckNode("bankruptcy_check", money.New(-50000), "credit_score"),
	}
	for _, n := range adds {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("run: building baseline dag: %w", err)
		}
	}
	return g, nil
}

func runSimulation() {
	cfg := coreconfig.Load()

	logger, err := core.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	graph, err := buildBaselineDAG()
	if err != nil {
		log.Fatalf("failed to build simulation dag: %v", err)
	}

	start := baselineStart(runDays)
	walletCfg := wallet.Config{
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, runDays-1),
		InitialBalance:     money.FromFloat(runBalance),
		InitialCreditScore: wallet.DefaultInitialCreditScore,
		RandomSeed:         runSeed,
		BaseCurrency:       "USD",
	}

	eng, err := engine.New(walletCfg, graph, nil, logger)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	ctx := context.Background()
	if err := eng.Run(ctx); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	balances := make([]float64, 0, len(eng.DailyMetrics()))
	for _, m := range eng.DailyMetrics() {
		balances = append(balances, m.Balance.Float64())
	}

	packet := buildPacket(eng, balances)
	out, err := json.MarshalIndent(packet, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal output packet: %v", err)
	}
	fmt.Println(string(out))
}
