// Package convert drives a MARCXML to EPrints conversion: parse the input,
// map every record, serialize the resulting document.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/marc2eprints/config"
	"github.com/lehigh-university-libraries/marc2eprints/format"
	"github.com/lehigh-university-libraries/marc2eprints/mapping"
)

// Converter converts MARC input to an EPrints document.
// A Converter holds no per-run state and may be shared.
type Converter struct {
	Parser           format.Parser
	Serializer       format.Serializer
	ParseOptions     *format.ParseOptions
	SerializeOptions *format.SerializeOptions
	Logger           *slog.Logger
}

// New creates a Converter for cfg using the default format registry. The
// marcxml and output format plugins must be registered.
func New(cfg *config.Config) (*Converter, error) {
	parser, err := format.GetParser("marcxml")
	if err != nil {
		return nil, fmt.Errorf("source format: %w", err)
	}

	serializer, err := format.GetSerializer(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("target format %q: %w", cfg.Format, err)
	}

	return &Converter{
		Parser:           parser,
		Serializer:       serializer,
		ParseOptions:     cfg.ParseOptions(),
		SerializeOptions: cfg.SerializeOptions(),
		Logger:           slog.Default(),
	}, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Convert reads MARC records from r and writes one eprint per record to w,
// in source order. It returns the number of records converted. Input that
// another registered format recognizes is rejected before parsing.
func (c *Converter) Convert(r io.Reader, w io.Writer) (int, error) {
	return c.convert(r, w, c.ParseOptions)
}

func (c *Converter) convert(r io.Reader, w io.Writer, opts *format.ParseOptions) (int, error) {
	r, err := format.Sniff(r, c.Parser)
	if err != nil {
		return 0, fmt.Errorf("parsing input: %w", err)
	}

	records, err := c.Parser.Parse(r, opts)
	if err != nil {
		return 0, fmt.Errorf("parsing input: %w", err)
	}
	c.logger().Debug("parsed records", "count", len(records))

	doc := mapping.NewMapper(c.logger()).MapRecords(records)

	if err := c.Serializer.Serialize(w, doc, c.SerializeOptions); err != nil {
		return 0, fmt.Errorf("serializing output: %w", err)
	}
	return doc.Len(), nil
}

// ConvertFile converts inputPath into outputPath. Output goes to a temporary
// file in the destination directory that replaces outputPath only once the
// whole document has been written; on failure outputPath is left untouched.
func (c *Converter) ConvertFile(inputPath, outputPath string) (n int, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	opts := format.NewParseOptions()
	if c.ParseOptions != nil {
		*opts = *c.ParseOptions
	}
	opts.SourceName = inputPath

	n, err = c.convert(in, tmp, opts)
	if err != nil {
		return 0, err
	}

	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), outputPath); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}
	return n, nil
}

// Run converts inputPath into outputPath and reports success. Every kind of
// failure is logged the same way and yields false.
func (c *Converter) Run(inputPath, outputPath string) bool {
	log := c.logger()
	log.Info("Converting", "input", inputPath, "output", outputPath)

	n, err := c.ConvertFile(inputPath, outputPath)
	if err != nil {
		log.Error("Conversion failed", "input", inputPath, "err", err)
		return false
	}

	log.Info("Conversion completed", "records", n, "output", outputPath)
	return true
}
