package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"

	"support-kit/core/fulltext"

	"github.com/spf13/cobra"
)

var (
	queryFlag string
	fileFlag  string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [text]...",
	Short: "Score text against a query",
	Long: `Prints the relevance of the given text for --query. With --file every
line of the file is scored and the matching lines are printed best first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := appConfig.Search.Options()
		out := cmd.OutOrStdout()

		if fileFlag == "" {
			parts := make([]any, len(args))
			for i, arg := range args {
				parts[i] = arg
			}
			score := fulltext.New(parts, opts...).Search(queryFlag)
			fmt.Fprintln(out, strconv.FormatFloat(score, 'f', -1, 64))
			return nil
		}

		data, err := readInput(cmd, fileFlag)
		if err != nil {
			return err
		}

		var lines []string
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to split lines: %w", err)
		}

		ranked := fulltext.Rank(lines, func(line string) []any { return []any{line} }, queryFlag, opts...)
		for _, line := range ranked {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Search query")
	searchCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Rank the lines of a file (- for stdin)")
}
