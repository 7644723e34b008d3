package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	replayapp "github.com/smedge/backend/internal/application/replay"
	reportapp "github.com/smedge/backend/internal/application/report"
	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/trade"
	"github.com/smedge/backend/internal/infrastructure/config"
	"github.com/smedge/backend/internal/infrastructure/loader"
	"github.com/smedge/backend/internal/infrastructure/logger"
	"github.com/smedge/backend/internal/infrastructure/persistence"
	"github.com/smedge/backend/internal/interfaces/display"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a data file, replay it and print the reports",
	Long: `Run loads the YAML data file, replays clients, payments, standalone
transactions and orders into an in-memory database, auto-applies
available client credit to each order, then prints the order list and
the three finance reports.

The --client and status flag options only restrict which orders are
displayed; reports always cover the whole ledger unless --client is
given, in which case the profit report is restricted too.`,
	Example: `  smedge run --data books.yaml
  smedge run --data books.yaml --client "Ron Traders"
  smedge run --data books.yaml --awaiting-print --printing`,
	RunE: runRun,
}

var orderFlagNames = []string{
	"awaiting-design",
	"awaiting-material",
	"awaiting-print",
	"printing",
	"printed",
	"delivered",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("data", "", "Path to the YAML data file (required)")
	runCmd.Flags().String("client", "", "Restrict order display and profit report to one client")
	for _, name := range orderFlagNames {
		runCmd.Flags().Bool(name, false, "Only show orders with the "+name+" flag active")
	}
	_ = runCmd.MarkFlagRequired("data")
}

func runRun(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	clientName, _ := cmd.Flags().GetString("client")

	flagFilters := selectedStatusFlags(cmd)

	log, err := logger.New(&logger.Config{Level: "warn", Format: "console", Output: "stderr"})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	file, err := loader.Load(dataPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", dataPath, err)
	}

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	clientRepo := persistence.NewGormClientRepository(db.DB)
	txRepo := persistence.NewGormTransactionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	l := ledger.NewLedger()

	clientService := partnerapp.NewClientService(clientRepo, txRepo, l, log)
	orderService := tradeapp.NewOrderService(orderRepo, clientRepo, txRepo, l, trade.NewOrderNumberGenerator(), log)
	reportService := reportapp.NewReportService(l)
	replayService := replayapp.NewReplayService(clientService, orderService, log)

	ctx := context.Background()
	result, err := replayService.Replay(ctx, file)
	if err != nil {
		return fmt.Errorf("replaying %s: %w", dataPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d clients, %d payments, %d transactions, %d orders (%d credits applied)\n",
		result.Clients, result.Payments, result.Transactions, result.Orders, result.CreditsApplied)
	if result.SkippedTransactions > 0 || result.SkippedOrders > 0 {
		fmt.Fprintf(out, "Skipped %d transactions and %d orders for unknown clients\n",
			result.SkippedTransactions, result.SkippedOrders)
	}

	orders, err := orderService.List(ctx, trade.OrderFilter{
		ClientName: clientName,
		Flags:      flagFilters,
	})
	if err != nil {
		return fmt.Errorf("listing orders: %w", err)
	}

	fmt.Fprintf(out, "\n=== Orders (%d) ===\n", len(orders))
	for _, order := range orders {
		fmt.Fprintln(out)
		display.RenderOrder(out, order)
	}

	fmt.Fprintln(out)
	display.RenderClientReceipts(out, reportService.ReceiptsByClient())
	fmt.Fprintln(out)
	display.RenderMonthly(out, reportService.ReceiptsByMonth())
	fmt.Fprintln(out)
	display.RenderProfit(out, reportService.Profit(clientName))

	return nil
}

// selectedStatusFlags translates the set boolean CLI flags into domain
// status flags. The CLI spells them with hyphens, the domain with
// underscores.
func selectedStatusFlags(cmd *cobra.Command) []trade.StatusFlag {
	selected := make([]trade.StatusFlag, 0, len(orderFlagNames))
	for _, name := range orderFlagNames {
		if set, _ := cmd.Flags().GetBool(name); set {
			selected = append(selected, trade.StatusFlag(underscored(name)))
		}
	}
	return selected
}

func underscored(flagName string) string {
	out := []byte(flagName)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}
