package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/NSTRvG/Sequence-Analyzer/internal/app"
	"github.com/NSTRvG/Sequence-Analyzer/internal/config"
	"github.com/NSTRvG/Sequence-Analyzer/internal/history"
	"github.com/NSTRvG/Sequence-Analyzer/internal/report"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a
// timestamped line to the underlying writer. Partial lines are kept in the
// buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries
// that inspect the file descriptor (for TTY detection) can work with
// wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// newLogger builds the charm logger behind the timestamping writer, with an
// optional log file mirrored alongside stderr.
func newLogger(logFile string) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	closer := func() {}
	if logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			out = io.MultiWriter(os.Stderr, f)
			closer = func() { _ = f.Close() }
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	tw := &timestampWriter{w: out}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	return log.New(termW), closer
}

func applyLogLevel(logger *log.Logger, verbose bool, cfgLevel string) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	switch strings.ToLower(cfgLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfgLevel)
	}
}

func main() {
	// CLI flags
	inputFlag := flag.String("in", "", "input FASTA file path (more paths may follow as arguments)")
	outputFlag := flag.String("out", "", "export the accumulated table to this .txt path")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	historyFlag := flag.String("history", "", "sqlite history database path (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("sequence-analyzer", version)
		return
	}

	// load config (optional file) and merge CLI flags over it
	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}
	if *inputFlag != "" {
		cfg.InputFasta = *inputFlag
	}
	if *outputFlag != "" {
		cfg.ExportTxt = *outputFlag
	}
	if *historyFlag != "" {
		cfg.HistoryDB = *historyFlag
	}

	logger, closeLog := newLogger(cfg.LogFile)
	defer closeLog()
	applyLogLevel(logger, *verbose, cfg.LogLevel)

	logger.Debug("loaded config", "input_fasta", cfg.InputFasta, "export_txt", cfg.ExportTxt, "history_db", cfg.HistoryDB, "log_file", cfg.LogFile, "log_level", cfg.LogLevel)

	// gather input paths: -in first, then positional arguments, loaded in order
	var inputs []string
	if cfg.InputFasta != "" {
		inputs = append(inputs, cfg.InputFasta)
	}
	inputs = append(inputs, flag.Args()...)
	if len(inputs) == 0 {
		logger.Fatal("no input files given; use -in or positional paths")
	}

	analyzer := app.New()
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			logger.Fatal("failed to open history database", "path", cfg.HistoryDB, "err", err)
		}
		defer store.Close()
		analyzer.History = store
		logger.Info("history database open", "path", cfg.HistoryDB)
	}

	logger.Info("starting sequence-analyzer", "inputs", len(inputs), "export_txt", cfg.ExportTxt)

	ctx := context.Background()
	loaded := 0
	for _, path := range inputs {
		records, err := analyzer.LoadFile(ctx, path)
		if err != nil {
			if len(records) == 0 {
				// read failure: this file contributes nothing
				logger.Error("failed to read input fasta", "path", path, "err", err)
				continue
			}
			// records parsed but the history write failed; keep going
			logger.Warn("history not updated", "path", path, "err", err)
		}
		if len(records) == 0 {
			logger.Warn("no records found in file", "path", path)
			continue
		}
		loaded++
		logger.Info("parsed fasta", "path", path, "records", len(records))
		if err := report.Render(os.Stdout, records); err != nil {
			logger.Error("failed to print table", "path", path, "err", err)
		}
	}

	if loaded == 0 {
		logger.Warn("no records accumulated; nothing to export")
		return
	}

	if cfg.ExportTxt != "" {
		if err := analyzer.Export(cfg.ExportTxt); err != nil {
			logger.Error("failed to export table", "path", cfg.ExportTxt, "err", err)
		} else {
			logger.Info("exported accumulated table", "path", cfg.ExportTxt, "records", analyzer.Session.Len())
		}
	}
}
