package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc2eprints/format"
	"github.com/lehigh-university-libraries/marc2eprints/mapping"
)

var (
	validateInput     string
	validateNamespace string
	validateVerbose   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [input]",
	Short: "Check a MARCXML file without converting",
	Long: `Parse a MARCXML file and report what would be converted.

This command reads the input and reports the number of records found
without producing output. With --verbose it lists, per record, the tags
that will be mapped and the tags that will be ignored.

Input defaults to the configured input file; use "-" for stdin.

Examples:
  marc2eprints validate tesis.xml
  marc2eprints validate -i tesis.xml --verbose
  cat tesis.xml | marc2eprints validate -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input MARCXML file")
	validateCmd.Flags().StringVar(&validateNamespace, "namespace", "", "MARC XML namespace URI")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = validateInput
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("namespace") {
		cfg.Namespace = validateNamespace
	}

	var input io.Reader
	inputName := cfg.Input
	if cfg.Input == "-" {
		input = cmd.InOrStdin()
		inputName = "stdin"
	} else {
		f, openErr := os.Open(cfg.Input)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	}

	parser, err := format.GetParser("marcxml")
	if err != nil {
		return err
	}

	input, err = format.Sniff(input, parser)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	opts := cfg.ParseOptions()
	opts.SourceName = inputName
	records, err := parser.Parse(input, opts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Valid: parsed %d records from %s\n", len(records), inputName)

	if validateVerbose {
		mapper := mapping.NewMapper(nil)
		fmt.Fprintln(out, "\nRecord summary:")
		for _, r := range records {
			var mapped, ignored []string
			for _, tag := range r.Tags() {
				if mapper.Handles(tag) {
					mapped = append(mapped, tag)
				} else {
					ignored = append(ignored, tag)
				}
			}
			eprint := mapper.MapRecord(r)

			fmt.Fprintf(out, "\n  Record %d:\n", r.Index+1)
			if title, ok := eprint.First("title"); ok {
				fmt.Fprintf(out, "    Title: %s\n", truncate(strings.ReplaceAll(strings.TrimSpace(title.Text), "\n", " "), 60))
			}
			fmt.Fprintf(out, "    Data fields: %d\n", len(r.Fields))
			fmt.Fprintf(out, "    Mapped tags: %s\n", joinOrNone(mapped))
			fmt.Fprintf(out, "    Ignored tags: %s\n", joinOrNone(ignored))
			fmt.Fprintf(out, "    EPrints elements: %d\n", len(eprint.Elements))
		}
	}

	return nil
}

func joinOrNone(tags []string) string {
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, ", ")
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
