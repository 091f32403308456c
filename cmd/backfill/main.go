package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/gridiron-analytics/gridrank/app"
	"github.com/gridiron-analytics/gridrank/config"
)

// backfill generates retrospective forecasts for completed seasons, one
// season per invocation, and prints the batch report.
func main() {
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:  "backfill",
		Usage: "generate and score retrospective predictions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the configuration file",
			},
			&cli.IntFlag{
				Name:     "season",
				Usage:    "season to backfill",
				Required: true,
			},
		},
		Action: runBackfill,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runBackfill(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	season := c.Int("season")
	report, err := application.PredictionService.Backfill(ctx, season)
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	fmt.Printf("Backfill for season %d: %d succeeded, %d failed, %d degraded\n",
		season, report.Succeeded, report.Failed, report.Warnings)
	for _, e := range report.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	if report.Failed > 0 && report.Succeeded == 0 {
		return fmt.Errorf("every game in season %d failed to backfill", season)
	}
	return nil
}
