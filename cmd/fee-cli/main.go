package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Victor-armando18/service-fees/internal/clock"
	"github.com/Victor-armando18/service-fees/internal/config"
	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/registry"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/repository"
	"github.com/Victor-armando18/service-fees/internal/observability/logger"
	"github.com/Victor-armando18/service-fees/internal/usecase"
	"go.uber.org/zap"
)

const usage = `usage:
  fee-cli run [-date YYYY-MM-DD] <fees.json|fees.yaml> <order.json>
  fee-cli import <fees.json|fees.yaml>`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = run(os.Args[2:])
	case "import":
		err = importFees(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Printf("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	date := fs.String("date", "", "evaluate as of this day instead of today")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("run needs a fee file and an order file\n%s", usage)
	}

	var clk engine.Clock = clock.System{}
	if *date != "" {
		d, err := domain.ParseDate(*date)
		if err != nil {
			return err
		}
		clk = clock.NewFakeClock(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC))
	}

	order, err := readOrder(fs.Arg(1))
	if err != nil {
		return err
	}

	log, err := logger.New(nil, logger.Config{ServiceName: "fee-cli", Level: "warn", Format: "console"})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc := usecase.NewFeeService(usecase.FeeServiceParams{
		Loader:   infrastructure.NewPathFeeLoader(fs.Arg(0)),
		Resolver: registry.NewDefaultResolver(infrastructure.NewJsonLogicExecutor()),
		Engine:   engine.New(clk),
		Log:      log,
	})

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("   FEE ENGINE CLI - DIAGNOSTIC TOOL")
	fmt.Println(strings.Repeat("=", 60))

	result, err := svc.Refresh(context.Background(), order)
	if err != nil {
		return err
	}
	displayExecutionSummary(result)
	return nil
}

// importFees copies a fee file into the configured database.
func importFees(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("import needs a fee file\n%s", usage)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(nil, logger.Config{ServiceName: "fee-cli", Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := repository.NewDB(cfg, log)
	if err != nil {
		return err
	}
	node, err := repository.NewSnowflake(cfg)
	if err != nil {
		return err
	}
	repo := repository.NewFeeRepository(db, node)

	ctx := context.Background()
	fees, err := infrastructure.NewPathFeeLoader(args[0]).Load(ctx)
	if err != nil {
		return err
	}
	for i := range fees {
		if err := repo.Create(ctx, &fees[i]); err != nil {
			return fmt.Errorf("import fee %q: %w", fees[i].Name, err)
		}
		log.Info("fee imported", zap.String("fee_id", fees[i].ID), zap.String("name", fees[i].Name))
	}
	fmt.Printf("imported %d fees into %s\n", len(fees), cfg.Database.Type)
	return nil
}

func readOrder(path string) (domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Order{}, fmt.Errorf("read order %s: %w", path, err)
	}
	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return domain.Order{}, fmt.Errorf("parse order %s: %w", path, err)
	}
	return order, nil
}

func displayExecutionSummary(res *domain.RefreshResult) {
	fmt.Println("\n[1. EXECUTION LOG]")
	for _, step := range res.ExecutionLog {
		fmt.Printf("   [%-14s] Fee: %-20s -> %s\n",
			strings.ToUpper(step.Outcome), step.FeeID, step.Message)
	}

	fmt.Println("\n[2. ADJUSTMENTS]")
	if len(res.Adjustments) == 0 {
		fmt.Println("   No fees applied.")
	}
	for _, adj := range res.Adjustments {
		fmt.Printf("   %-30s %10s  (%s)\n", adj.Label, adj.Amount.StringFixed(2), adj.SourceID)
	}

	fmt.Println("\n[3. ORDER]")
	orderJSON, _ := json.MarshalIndent(res.Order, "   ", "  ")
	fmt.Println("   " + string(orderJSON))

	fmt.Println("\n[4. SUMMARY]")
	fmt.Printf("   Subtotal:    %s %s\n", res.Subtotal.StringFixed(2), res.Order.Currency)
	fmt.Printf("   Total:       %s %s\n", res.TotalPrice.StringFixed(2), res.Order.Currency)
	fmt.Printf("   Delta:       %v (changes made by the server)\n", res.ServerDelta)

	fmt.Println(strings.Repeat("=", 60))
}
