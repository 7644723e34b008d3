package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smedge",
	Short: "Smedge - accounts for a small print shop",
	Long: `Smedge tracks clients, their advance payments, print orders and the
resulting income and expenses, then reports receipts and profit.

Data is loaded from a YAML file and replayed through the same services
the HTTP server uses, so the numbers match what the API would report.`,
	SilenceUsage: true,
}
