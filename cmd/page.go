package cmd

import (
	"encoding/json"
	"errors"

	"support-kit/core/database"
	"support-kit/core/jsondecode"
	"support-kit/core/pagination"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

var (
	pageFlag    int
	perPageFlag int
	tableFlag   string
)

// pageCmd represents the page command
var pageCmd = &cobra.Command{
	Use:   "page [file|-]",
	Short: "Print one page of a JSON array or database table",
	Long: `Prints one page of the JSON array read from a file or stdin. With --table
the rows are read from the configured MySQL database instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, perPage := appConfig.Pagination.Normalize(pageFlag, perPageFlag)

		var out string
		var err error
		switch {
		case tableFlag != "":
			out, err = tablePage(cmd, page, perPage)
		case len(args) == 1:
			out, err = filePage(cmd, args[0], page, perPage)
		default:
			err = errors.New("either a file or --table is required")
		}
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(pretty.Pretty([]byte(out)))
		return err
	},
}

func init() {
	RootCmd.AddCommand(pageCmd)

	pageCmd.Flags().IntVar(&pageFlag, "page", 1, "Page to print, starting at 1")
	pageCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "Items per page (default from PAGINATION_PER_PAGE)")
	pageCmd.Flags().StringVar(&tableFlag, "table", "", "Page through a database table instead of a file")
}

func filePage(cmd *cobra.Command, name string, page, perPage int) (string, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return "", err
	}

	items, err := jsondecode.DecodeInto[[]json.RawMessage](string(data))
	if err != nil {
		return "", err
	}

	return pagination.SectionOf(items, page, perPage).ToJSON()
}

func tablePage(cmd *cobra.Command, page, perPage int) (string, error) {
	ctx := cmd.Context()

	db, err := database.Connect(ctx, appConfig.Database)
	if err != nil {
		return "", err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	columns, err := database.GetTableColumns(db, tableFlag)
	if err != nil {
		return "", err
	}
	zap.L().Debug("Paging table",
		zap.String("table", tableFlag),
		zap.Strings("columns", database.ColumnNames(columns)),
		zap.Int("page", page),
		zap.Int("per_page", perPage),
	)

	s, err := pagination.LoadSection[map[string]any](ctx, db.Table(tableFlag), page, perPage)
	if err != nil {
		return "", err
	}
	return s.ToJSON()
}
