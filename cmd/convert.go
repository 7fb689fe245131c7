package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc2eprints/config"
	"github.com/lehigh-university-libraries/marc2eprints/convert"
)

var (
	inputFile    string
	outputFile   string
	targetFormat string
	namespace    string
	pretty       bool
	indent       int
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert a MARCXML file to EPrints XML",
	Long: `Convert every MARC record in a MARCXML file into one eprint.

Arguments:
  input   MARCXML file (default: tesis.xml)
  output  EPrints file (default: output_eprints.xml)

Positional arguments take precedence over --input/--output, which take
precedence over the config file and environment.

The output file is replaced only when the whole conversion succeeds.

Examples:
  marc2eprints convert
  marc2eprints convert tesis.xml output_eprints.xml
  marc2eprints convert -i catalogo.xml -o catalogo_eprints.xml --pretty
  marc2eprints convert -i catalogo.xml -o eprints.json --to eprints-json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input MARCXML file")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file")
	convertCmd.Flags().StringVarP(&targetFormat, "to", "t", "", "Output format (eprints, eprints-json)")
	convertCmd.Flags().StringVar(&namespace, "namespace", "", "MARC XML namespace URI")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent output")
	convertCmd.Flags().IntVar(&indent, "indent", 0, "Spaces per indent level with --pretty")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyConvertFlags(cmd, cfg, args)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	conv, err := convert.New(cfg)
	if err != nil {
		return err
	}
	conv.Logger = slog.Default()

	if !conv.Run(cfg.Input, cfg.Output) {
		return fmt.Errorf("conversion of %s failed", cfg.Input)
	}
	return nil
}

func applyConvertFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputFile
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("to") {
		cfg.Format = targetFormat
	}
	if flags.Changed("namespace") {
		cfg.Namespace = namespace
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("indent") {
		cfg.Indent = indent
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
}
