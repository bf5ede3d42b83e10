package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/receipt-tax/internal/receipt"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for version flag before parsing other flags
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Fprintln(stdout, version)
			return exitOK
		}
	}

	fs := ff.NewFlagSet("receipt-tax")
	var (
		prefix    = fs.StringLong("prefix", receipt.DefaultOutputPrefix, "Prefix added to each input file name to name its output")
		extension = fs.StringLong("ext", ".txt", "Required input file extension (empty accepts any file)")
		dir       = fs.StringLong("dir", "", "Base directory for relative file paths")
		useStdin  = fs.BoolLong("stdin", "Read a receipt from stdin and write the result to stdout")
		logLevel  = fs.StringLong("log-level", "info", "Log level: debug, info, warn or error")
		_         = fs.StringLong("config", "", "Config file with one 'flag value' pair per line (optional)")
		_         = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("RECEIPT_TAX"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	if *prefix == "" {
		fmt.Fprintf(stderr, "error: --prefix must not be empty\n")
		return exitUsage
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "error: invalid log level %q\n", *logLevel)
		return exitUsage
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	store, err := receipt.NewLocalStorage(*dir)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return exitFailed
	}

	service := receipt.NewService(store, receipt.Options{
		Extension:    *extension,
		OutputPrefix: *prefix,
	})

	if *useStdin {
		if _, _, err := service.Process(stdin, stdout); err != nil {
			slog.Error("Failed to process stdin", "error", err)
			return exitFailed
		}
		return exitOK
	}

	files := fs.GetArgs()
	if len(files) == 0 {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(stderr, "error: at least one receipt file is required\n")
		return exitUsage
	}

	code := exitOK
	for _, report := range service.ProcessFiles(files) {
		if report.Status == receipt.StatusFailed {
			code = exitFailed
		}
	}
	return code
}
