package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solset/stringlens/cmd/stringlens/commands"
	"github.com/solset/stringlens/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stringlens",
	Short: "stringlens - String property analysis and natural-language querying",
	Long: `stringlens analyzes strings for structural properties (length, palindrome
detection, character frequency, word counts) and answers natural-language
queries over the stored collection.

Available commands:
  analyze - Analyze a string and show its properties
  query   - Filter stored strings with a natural-language phrase
  db      - Manage the stringlens database
  server  - Start the HTTP API server

Examples:
  stringlens analyze "racecar"                       # Show properties
  stringlens analyze --save "hello world"            # Analyze and store
  stringlens query "all single word palindromes"     # Query stored strings
  stringlens db stats                                # Database statistics
  stringlens server                                  # Start the HTTP API`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as structured JSON")

	rootCmd.AddCommand(commands.AnalyzeCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
