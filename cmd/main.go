package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for DATABASE_URL and friends.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
