package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/solset/stringlens/analysis"
	"github.com/solset/stringlens/errors"
)

// AnalyzeCmd analyzes a string and shows its computed properties
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze <string>",
	Short: "Analyze a string and show its properties",
	Long: `Compute the structural properties of a string: length, palindrome
detection, unique character count, word count, per-character frequency,
and the SHA-256 content hash used as its storage identity.

Examples:
  stringlens analyze "racecar"
  stringlens analyze --save "hello world"    # Also store in the database
  stringlens analyze --json "abc"            # Machine-readable output`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeSave   bool
	analyzeJSON   bool
	analyzeDBPath string
)

func init() {
	AnalyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store the analyzed string in the database")
	AnalyzeCmd.Flags().BoolVarP(&analyzeJSON, "json", "j", false, "Output the property record as JSON")
	AnalyzeCmd.Flags().StringVar(&analyzeDBPath, "db-path", "", "Custom database path (overrides config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	record := analysis.Analyze(args[0])

	if analyzeSave {
		if err := storeRecord(record); err != nil {
			return err
		}
	}

	if analyzeJSON {
		output, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printRecord(record)
	if analyzeSave {
		pterm.Success.Println("Stored in database")
	}
	return nil
}

func storeRecord(record analysis.PropertyRecord) error {
	database, _, err := openDatabase(analyzeDBPath)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	store := newStore(database)
	if err := store.CreateRecord(record); err != nil {
		if errors.IsConflictError(err) {
			return fmt.Errorf("string already stored (hash %s)", record.ContentHash)
		}
		return errors.Wrap(err, "failed to store record")
	}
	return nil
}

func printRecord(record analysis.PropertyRecord) {
	palindrome := "no"
	if record.IsPalindrome {
		palindrome = "yes"
	}

	data := pterm.TableData{
		{"Property", "Value"},
		{"Value", strconv.Quote(record.Value)},
		{"Length", strconv.Itoa(record.Length)},
		{"Palindrome", palindrome},
		{"Unique characters", strconv.Itoa(record.UniqueCharacters)},
		{"Word count", strconv.Itoa(record.WordCount)},
		{"Content hash", record.ContentHash},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	fmt.Println()
	pterm.DefaultSection.Println("Character frequency")
	for _, line := range frequencyLines(record.CharacterFrequency) {
		fmt.Println("  " + line)
	}
}

// frequencyLines renders the frequency map in deterministic character order
func frequencyLines(freq map[string]int) []string {
	chars := make([]string, 0, len(freq))
	for ch := range freq {
		chars = append(chars, ch)
	}
	sort.Strings(chars)

	lines := make([]string, 0, len(chars))
	for _, ch := range chars {
		lines = append(lines, fmt.Sprintf("%s × %d", strconv.Quote(ch), freq[ch]))
	}
	return lines
}
