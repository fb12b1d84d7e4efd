package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shopforge/internal/config"
	"shopforge/internal/report"
	"shopforge/pkg/database"
)

var (
	reportDatabaseURL string
	reportOutputPath  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the analytics queries and write the insights file",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatabaseURL, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	reportCmd.Flags().StringVar(&reportOutputPath, "output", "results/insights.txt", "path for the rendered report")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := config.GetLogger()

	dsn := reportDatabaseURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return fmt.Errorf("no database URL: pass --database-url or set DATABASE_URL")
	}

	ctx := cmd.Context()
	pool, err := database.NewPool(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	output, err := report.NewRunner(pool, report.DefaultQueries, log).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Print(output)

	if err := os.MkdirAll(filepath.Dir(reportOutputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(reportOutputPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("analytics results written to %s\n", reportOutputPath)
	return nil
}
