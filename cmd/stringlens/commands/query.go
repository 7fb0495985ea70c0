package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/filter"
	"github.com/solset/stringlens/nlq"
)

// QueryCmd filters stored strings with a natural-language phrase
var QueryCmd = &cobra.Command{
	Use:   "query <phrase>",
	Short: "Filter stored strings with a natural-language phrase",
	Long: `Interpret a free-text phrase as a conjunction of property filters and
apply it to the stored collection.

Examples:
  stringlens query "all single word palindromic strings"
  stringlens query "strings longer than five characters"
  stringlens query "strings containing the letter z"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

var queryDBPath string

func init() {
	QueryCmd.Flags().StringVar(&queryDBPath, "db-path", "", "Custom database path (overrides config)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	phrase := args[0]

	result, err := nlq.Parse(phrase)
	if err != nil {
		var upe *nlq.UnparsablePhraseError
		if errors.As(err, &upe) {
			pterm.Error.Printf("Could not interpret %q\n", upe.Phrase)
			for _, frag := range upe.Fragments {
				pterm.Println("  unrecognized: " + frag)
			}
			return errors.New("phrase produced no filters")
		}
		return err
	}

	for _, warning := range result.Warnings {
		pterm.Warning.Println(warning)
	}

	pterm.DefaultSection.Println("Interpreted filters")
	for _, clause := range result.Predicate.Clauses {
		fmt.Printf("  %s %s %s\n", clause.Property, clause.Op, clause.Operand)
	}

	database, _, err := openDatabase(queryDBPath)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	records, err := newStore(database).ListRecords()
	if err != nil {
		return errors.Wrap(err, "failed to list records")
	}

	matched := filter.Apply(records, result.Predicate)

	pterm.DefaultSection.Printf("Matches (%d of %d)\n", len(matched), len(records))
	if len(matched) == 0 {
		pterm.Println("  none")
		return nil
	}

	data := pterm.TableData{{"Value", "Length", "Palindrome", "Words", "Unique"}}
	for _, record := range matched {
		data = append(data, []string{
			strconv.Quote(record.Value),
			strconv.Itoa(record.Length),
			strconv.FormatBool(record.IsPalindrome),
			strconv.Itoa(record.WordCount),
			strconv.Itoa(record.UniqueCharacters),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
