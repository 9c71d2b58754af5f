// Package main provides the entry point for the OSINT-Hive search service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "osint_hive",
	Short: "OSINT-Hive candidate search service",
	Long:  "OSINT-Hive scans local GitHub and LinkedIn-style candidate datasets, applies multi-criteria filters and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
