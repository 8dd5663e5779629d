package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kombinator/json/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that files contain valid JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var asJSON bool
			switch outputFormat {
			case "text":
			case "json":
				asJSON = true
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read %s: %w", filename, err)
				}
				if _, err := parser.Parse(string(data)); err != nil {
					failed++
					if err := report(cmd.OutOrStdout(), filename, err, asJSON); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed: %w", failed, len(args), errInvalidInput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "diagnostic format (text, json)")

	return cmd
}
