package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopforge/internal/config"
	"shopforge/internal/export"
	"shopforge/pkg/database"
)

var (
	loadInputDir    string
	loadDatabaseURL string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create the Postgres schema and bulk-load generated CSV files",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadInputDir, "input", "data/synthetic", "directory holding the generated CSV files")
	loadCmd.Flags().StringVar(&loadDatabaseURL, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := config.GetLogger()

	dsn := loadDatabaseURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return fmt.Errorf("no database URL: pass --database-url or set DATABASE_URL")
	}

	ds, err := export.ReadCSV(loadInputDir)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := database.NewPool(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	loader := export.NewPostgresLoader(pool, log)
	if err := loader.CreateSchema(ctx); err != nil {
		return err
	}
	if err := loader.Load(ctx, ds); err != nil {
		return err
	}
	if err := loader.VerifyIntegrity(ctx); err != nil {
		return err
	}
	fmt.Printf("loaded %d products, %d customers, %d orders, %d order items, %d reviews\n",
		len(ds.Products), len(ds.Customers), len(ds.Orders), len(ds.OrderItems), len(ds.Reviews))
	return nil
}
