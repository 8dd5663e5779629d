package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/kombinator/format"
	"github.com/dhamidi/kombinator/json/parser"
	"github.com/dhamidi/kombinator/parse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("invalid input")

func newParseCmd() *cobra.Command {
	var outputFormat string
	var colorMode string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON document and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := useColor(colorMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout(), format.WithColor(color))
			case "text":
				encoder = format.NewLineEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			name := "<stdin>"
			var data []byte
			if len(args) == 1 {
				name = args[0]
				data, err = os.ReadFile(name)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			value, err := parser.Parse(string(data))
			if err != nil {
				if reportErr := report(cmd.ErrOrStderr(), name, err, false); reportErr != nil {
					return reportErr
				}
				return errInvalidInput
			}
			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "highlight json output (auto, always, never)")

	return cmd
}

// report writes a parse failure as a diagnostic.
func report(w io.Writer, name string, err error, asJSON bool) error {
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("%s: %w", name, err)
	}
	var enc *format.DiagnosticEncoder
	if asJSON {
		enc = format.NewJSONDiagnosticEncoder(w, format.WithFile(name))
	} else {
		enc = format.NewDiagnosticEncoder(w, format.WithFile(name))
	}
	return enc.Encode(perr)
}

// useColor resolves a --color mode. auto highlights only when w is a
// terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	}
	return false, fmt.Errorf("unknown color mode: %s", mode)
}
