package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc2eprints/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available input and output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available formats:")
		for _, name := range format.List() {
			f, _ := format.Get(name)
			var caps []string
			if _, ok := f.(format.Parser); ok {
				caps = append(caps, "read")
			}
			if _, ok := f.(format.Serializer); ok {
				caps = append(caps, "write")
			}
			exts := "." + strings.Join(f.Extensions(), ", .")
			fmt.Fprintf(out, "  %-14s %-11v %-8s %s\n", name, caps, exts, f.Description())
		}
		return nil
	},
}
