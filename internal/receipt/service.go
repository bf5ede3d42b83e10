package receipt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-tax/internal/scanning"
	"github.com/zombor/receipt-tax/internal/tax"
)

// ErrOutputIsInput is returned when the output name resolves to the input file itself
var ErrOutputIsInput = errors.New("output path is the input path")

// Calculator prices a single item
type Calculator interface {
	Compute(name string, price decimal.Decimal) tax.Pricing
}

// Options controls how input files are selected and named
type Options struct {
	// Extension is required on every input path; empty accepts any file
	Extension string
	// OutputPrefix is prepended to the input file name to name the output
	OutputPrefix string
}

// DefaultOptions accepts .txt files and writes output-<name> next to them
func DefaultOptions() Options {
	return Options{
		Extension:    ".txt",
		OutputPrefix: DefaultOutputPrefix,
	}
}

// Service handles receipt processing
type Service struct {
	storage    Storage
	parser     scanning.LineParser
	calculator Calculator
	options    Options
}

// NewService creates a new Service with the default grammar and tax policy
func NewService(storage Storage, options Options) *Service {
	return &Service{
		storage:    storage,
		parser:     scanning.NewGrammar(),
		calculator: tax.NewCalculator(tax.DefaultPolicy()),
		options:    options,
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(storage Storage, parser scanning.LineParser, calculator Calculator, options Options) *Service {
	return &Service{
		storage:    storage,
		parser:     parser,
		calculator: calculator,
		options:    options,
	}
}

// ProcessFiles processes each path in order. A failure on one file never stops the batch.
func (s *Service) ProcessFiles(paths []string) []FileReport {
	reports := make([]FileReport, 0, len(paths))
	for _, path := range paths {
		reports = append(reports, s.ProcessFile(path))
	}
	return reports
}

// ProcessFile reads one receipt and writes its taxed copy
func (s *Service) ProcessFile(path string) FileReport {
	report := FileReport{Input: path}

	if s.options.Extension != "" && !strings.HasSuffix(path, s.options.Extension) {
		slog.Warn("Skipping file with unsupported extension", "path", path, "extension", s.options.Extension)
		report.Status = StatusSkipped
		return report
	}

	in, err := s.storage.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Error("File not found", "path", path)
			report.Status = StatusMissing
		} else {
			slog.Error("Failed to open file", "path", path, "error", err)
			report.Status = StatusFailed
		}
		report.Err = err
		return report
	}
	defer in.Close()

	report.Output = OutputPath(path, s.options.OutputPrefix)
	if filepath.Clean(report.Output) == filepath.Clean(path) {
		slog.Error("Output file would overwrite input", "path", path, "output", report.Output)
		report.Status = StatusFailed
		report.Err = fmt.Errorf("%w: %s", ErrOutputIsInput, path)
		return report
	}
	out, err := s.storage.Create(report.Output)
	if err != nil {
		slog.Error("Failed to create output file", "path", path, "output", report.Output, "error", err)
		report.Status = StatusFailed
		report.Err = err
		return report
	}

	slog.Info("Parsing file", "path", path, "output", report.Output)
	totals, counts, err := s.Process(in, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing output: %w", closeErr)
	}
	report.Totals = totals
	report.Counts = counts
	if err != nil {
		slog.Error("Failed to process file", "path", path, "error", err)
		// Clean up the partial output since processing failed
		if delErr := s.storage.Delete(report.Output); delErr != nil {
			slog.Warn("Failed to delete partial output", "output", report.Output, "error", delErr)
		}
		report.Status = StatusFailed
		report.Err = err
		return report
	}

	slog.Info("Processed file",
		"path", path,
		"items", counts.Items,
		"unrecognized", counts.Unrecognized,
		"tax", totals.Tax.StringFixed(2),
		"total", totals.Price.StringFixed(2),
	)
	report.Status = StatusProcessed
	return report
}

// Process prices every line of r and writes the receipt to w
func (s *Service) Process(r io.Reader, w io.Writer) (Totals, Counts, error) {
	var (
		totals Totals
		counts Counts
	)

	bw := bufio.NewWriter(w)
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return totals, counts, fmt.Errorf("reading input: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		result := s.parser.ParseLine(line)
		if !result.Matched() {
			slog.Debug("Unrecognized line", "length", len(line), "reason", result.Reason)
			counts.Unrecognized++
			if _, err := bw.WriteString(UnrecognizedLine + "\n"); err != nil {
				return totals, counts, fmt.Errorf("writing output: %w", err)
			}
		} else {
			item := result.Item
			pricing := s.calculator.Compute(item.Name, item.Price)
			totals.Add(pricing)
			counts.Items++
			if _, err := bw.WriteString(FormatItem(item.Name, pricing.UpdatedPrice)); err != nil {
				return totals, counts, fmt.Errorf("writing output: %w", err)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if _, err := bw.WriteString(FormatSummary(totals)); err != nil {
		return totals, counts, fmt.Errorf("writing output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return totals, counts, fmt.Errorf("writing output: %w", err)
	}

	return totals, counts, nil
}
