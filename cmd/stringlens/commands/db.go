package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solset/stringlens/errors"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the stringlens database",
	Long: `Manage database operations including statistics and diagnostics.

Examples:
  stringlens db stats    # Show database statistics`,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long:  "Display collection statistics: stored strings, palindromes, length distribution, and word counts",
	RunE:  runDbStats,
}

var dbStatsDBPath string

func init() {
	DbCmd.AddCommand(dbStatsCmd)
	dbStatsCmd.Flags().StringVar(&dbStatsDBPath, "db-path", "", "Custom database path (overrides config)")
}

func runDbStats(cmd *cobra.Command, args []string) error {
	database, dbPath, err := openDatabase(dbStatsDBPath)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	var total, palindromes, multiWord int
	var avgLength, maxLength sql.NullFloat64
	err = database.QueryRow(`
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(is_palindrome), 0) as palindromes,
			COALESCE(SUM(word_count > 1), 0) as multi_word,
			AVG(length) as avg_length,
			MAX(length) as max_length
		FROM strings
	`).Scan(&total, &palindromes, &multiWord, &avgLength, &maxLength)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to query storage stats: %w", err)
	}

	fmt.Println("Database Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()
	fmt.Printf("Database Path:     %s\n", dbPath)
	fmt.Printf("Stored Strings:    %d\n", total)
	fmt.Printf("Palindromes:       %d\n", palindromes)
	fmt.Printf("Multi-word:        %d\n", multiWord)
	if avgLength.Valid {
		fmt.Printf("Average Length:    %.1f\n", avgLength.Float64)
	}
	if maxLength.Valid {
		fmt.Printf("Longest String:    %.0f characters\n", maxLength.Float64)
	}

	return nil
}
