package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/marc2eprints/mapping"
)

var fieldsOutput string

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the MARC fields that are mapped",
	Long:  `Show the fixed mapping from MARC data field tags to EPrints elements.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := mapping.Fields()
		out := cmd.OutOrStdout()

		switch fieldsOutput {
		case "yaml":
			data, err := yaml.Marshal(fields)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
		case "", "table":
			fmt.Fprintf(out, "%-5s %-12s %-10s %s\n", "Tag", "Name", "Subfields", "EPrints elements")
			fmt.Fprintf(out, "%-5s %-12s %-10s %s\n", "---", "----", "---------", "----------------")
			for _, f := range fields {
				fmt.Fprintf(out, "%-5s %-12s %-10s %s\n", f.Tag, f.Name, strings.Join(f.Subfields, ","), strings.Join(f.Elements, ", "))
			}
		default:
			return fmt.Errorf("unknown output %q (use table or yaml)", fieldsOutput)
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().StringVarP(&fieldsOutput, "output", "o", "table", "Output style (table, yaml)")
}
