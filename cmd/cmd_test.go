package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/marc2eprints/config"

	_ "github.com/lehigh-university-libraries/marc2eprints/format/eprintsjson"
	_ "github.com/lehigh-university-libraries/marc2eprints/format/eprintsxml"
	_ "github.com/lehigh-university-libraries/marc2eprints/format/marcxml"
)

const record = `<collection xmlns="http://www.loc.gov/MARC21/slim"><record>
<datafield tag="245"><subfield code="a">Foo</subfield></datafield>
<datafield tag="700"><subfield code="a">Doe, Jane</subfield></datafield>
</record></collection>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configFile = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyConvertFlagsPositionalWins(t *testing.T) {
	cfg := config.Default()
	if err := convertCmd.Flags().Set("input", "flag.xml"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		convertCmd.Flags().Lookup("input").Changed = false
		inputFile = ""
	})

	applyConvertFlags(convertCmd, cfg, nil)
	if cfg.Input != "flag.xml" {
		t.Errorf("Input: got %q", cfg.Input)
	}
	if cfg.Output != "output_eprints.xml" {
		t.Errorf("Output: got %q", cfg.Output)
	}

	applyConvertFlags(convertCmd, cfg, []string{"arg.xml", "arg_out.xml"})
	if cfg.Input != "arg.xml" || cfg.Output != "arg_out.xml" {
		t.Errorf("paths: got %q -> %q", cfg.Input, cfg.Output)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tesis.xml")
	output := filepath.Join(dir, "output_eprints.xml")
	if err := os.WriteFile(input, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "convert", input, output); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<title>Foo\n</title>") {
		t.Errorf("unexpected output: %q", data)
	}

	if _, err := execute(t, "convert", filepath.Join(dir, "missing.xml"), output); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestValidateCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "tesis.xml")
	if err := os.WriteFile(input, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "validate", input, "--verbose")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	for _, want := range []string{"parsed 1 records", "Mapped tags: 245", "Ignored tags: 700", "Title: Foo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFieldsCommand(t *testing.T) {
	out, err := execute(t, "fields")
	if err != nil {
		t.Fatalf("fields failed: %v", err)
	}
	for _, tag := range []string{"100", "245", "264", "653"} {
		if !strings.Contains(out, tag) {
			t.Errorf("output missing tag %s:\n%s", tag, out)
		}
	}

	out, err = execute(t, "fields", "-o", "yaml")
	if err != nil {
		t.Fatalf("fields -o yaml failed: %v", err)
	}
	if !strings.Contains(out, "tag: \"245\"") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	if err != nil {
		t.Fatalf("formats failed: %v", err)
	}
	for _, name := range []string{"marcxml", "eprints", "eprints-json", ".json", ".xml, .marcxml"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %s:\n%s", name, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("a very long title indeed", 10); got != "a very ..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("Diseño de módulos", 10); got != "Diseño ..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("Ingeniería", 10); got != "Ingeniería" {
		t.Errorf("got %q", got)
	}
}

func TestValidateRejectsEPrintsInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "output_eprints.xml")
	eprintsXML := `<?xml version="1.0" encoding="UTF-8"?>
<eprints><eprint><title>Foo
</title></eprint></eprints>`
	if err := os.WriteFile(input, []byte(eprintsXML), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "validate", input)
	if err == nil {
		t.Fatal("expected validate to reject EPrints XML")
	}
	if !strings.Contains(err.Error(), "looks like eprints") {
		t.Errorf("unexpected error: %v", err)
	}
}
