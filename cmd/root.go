package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopforge [command]",
	Short: "Synthetic e-commerce dataset toolkit",
	Long:  `Generate an interlinked e-commerce dataset with realistic business rules, load it into Postgres, and run analytics reports against it.`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(reportCmd)
}
