package main

import (
	"github.com/lehigh-university-libraries/marc2eprints/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/marc2eprints/format/eprintsjson"
	_ "github.com/lehigh-university-libraries/marc2eprints/format/eprintsxml"
	_ "github.com/lehigh-university-libraries/marc2eprints/format/marcxml"
)

func main() {
	cmd.Execute()
}
