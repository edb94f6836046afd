package cmd

import (
	"fmt"

	"support-kit/core/jsondecode"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var pathFlag string

// jsonCmd represents the json command
var jsonCmd = &cobra.Command{
	Use:   "json <file|->",
	Short: "Validate and pretty print a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		doc, err := jsondecode.DecodeObject(string(data))
		if err != nil {
			return err
		}

		raw := doc.Raw
		if pathFlag != "" {
			result := doc.Get(pathFlag)
			if !result.Exists() {
				return fmt.Errorf("path %q not found", pathFlag)
			}
			raw = result.Raw
		}

		_, err = cmd.OutOrStdout().Write(pretty.Pretty([]byte(raw)))
		return err
	},
}

func init() {
	RootCmd.AddCommand(jsonCmd)

	jsonCmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Print only the value at this path (e.g. users.0.name)")
}
