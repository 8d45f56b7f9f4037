package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/engine"
	"github.com/rxtech-lab/argo-strategy/internal/execution"
	"github.com/rxtech-lab/argo-strategy/internal/identity"
	"github.com/rxtech-lab/argo-strategy/internal/indicator"
	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/internal/marketdata"
	"github.com/rxtech-lab/argo-strategy/internal/order"
	"github.com/rxtech-lab/argo-strategy/internal/strategy"
	"github.com/rxtech-lab/argo-strategy/internal/strategy/emacross"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/urfave/cli/v3"
)

// paperAction wires a duckdb bar source, a replay feed, a simulated execution
// provider and the emacross strategy into one session, with identifier
// counters checkpointed so a restart never reissues an identifier.
func paperAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	dataPath := cmd.String("data")
	countsPath := cmd.String("counts")
	table := cmd.String("table")
	traderTag := cmd.String("trader")
	balance := cmd.Float64("balance")
	start := cmd.String("start")
	end := cmd.String("end")

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read strategy config: %w", err)
	}

	config, err := emacross.ParseConfig(raw)
	if err != nil {
		return fmt.Errorf("invalid strategy config: %w", err)
	}

	strat, err := emacross.New(config)
	if err != nil {
		return err
	}

	// Load the bars to replay.
	source, err := marketdata.NewDuckDBSource(dataPath, table)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	startOpt := optional.None[string]()
	if start != "" {
		startOpt = optional.Some(start)
	}

	endOpt := optional.None[string]()
	if end != "" {
		endOpt = optional.Some(end)
	}

	bars, err := source.Bars(config.Symbol, startOpt, endOpt)
	if err != nil {
		return err
	}

	if len(bars) == 0 {
		return fmt.Errorf("no bars for %s in %s", config.Symbol, dataPath)
	}

	barType := types.NewBarType(config.Symbol, config.BarInterval)
	feed := marketdata.NewReplayFeed()

	// The first warmup_bars bars become pre-session history so OnStart can
	// seed the indicators; only the rest are replayed.
	if config.WarmupBars > 0 {
		if len(bars) <= config.WarmupBars {
			return fmt.Errorf("need more than %d bars to warm up, got %d", config.WarmupBars, len(bars))
		}

		feed.SeedHistory(barType, bars[:config.WarmupBars])
		bars = bars[config.WarmupBars:]
	}

	feed.Load(barType, bars)

	// Identifier generators resume from their last checkpoint.
	strategyTag := "EMACROSS"

	orderGen, err := identity.NewOrderIDGenerator(traderTag, strategyTag, nil)
	if err != nil {
		return err
	}

	positionGen, err := identity.NewPositionIDGenerator(traderTag, strategyTag, nil)
	if err != nil {
		return err
	}

	counts, err := identity.NewCountStore(countsPath, appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = counts.Close() }()

	if err := counts.Restore(orderGen); err != nil {
		return err
	}

	if err := counts.Restore(positionGen); err != nil {
		return err
	}

	orders, err := order.NewFactory(strat.Name(), orderGen, nil)
	if err != nil {
		return err
	}

	provider := execution.NewSimulated(balance, appLogger)

	sctx := &strategy.Context{
		Clock:       time.Now,
		Logger:      appLogger,
		Orders:      orders,
		PositionIDs: positionGen,
		Execution:   provider,
		MarketData:  feed,
		Indicators:  indicator.NewRegistry(),
	}

	runner, err := engine.New(appLogger, strat, sctx, feed)
	if err != nil {
		return err
	}

	runCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runErr := runner.Run(runCtx)

	// Checkpoint regardless of how the session ended, so the counters issued
	// during this run are never reused.
	if err := counts.Checkpoint(orderGen); err != nil {
		return err
	}

	if err := counts.Checkpoint(positionGen); err != nil {
		return err
	}

	return runErr
}

func main() {
	cmd := &cli.Command{
		Name:  "paper",
		Usage: "Run the emacross strategy over recorded bars with simulated execution",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the strategy yaml config",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to the duckdb database holding bars",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "counts",
				Usage: "Path to the duckdb database holding identifier checkpoints",
				Value: "counts.db",
			},
			&cli.StringFlag{
				Name:  "table",
				Usage: "Name of the bars table",
				Value: "bars",
			},
			&cli.StringFlag{
				Name:  "trader",
				Usage: "Trader tag stamped into every identifier",
				Value: "TRADER-001",
			},
			&cli.Float64Flag{
				Name:  "balance",
				Usage: "Starting balance for the simulated account",
				Value: 100000,
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Only replay bars at or after this time (YYYY-MM-DD HH:MM:SS)",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "Only replay bars at or before this time (YYYY-MM-DD HH:MM:SS)",
			},
		},
		Action: paperAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
