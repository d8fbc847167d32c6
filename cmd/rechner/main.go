package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/codefionn/rechner/internal/cli"
	"github.com/codefionn/rechner/internal/config"
	"github.com/codefionn/rechner/internal/expr"
	"github.com/codefionn/rechner/internal/history"
	"github.com/codefionn/rechner/internal/logger"
	"github.com/codefionn/rechner/internal/session"
	"github.com/codefionn/rechner/internal/tui"
)

type cliArgs struct {
	expression  string
	plain       bool
	noHistory   bool
	historyPath string
	backend     string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	args, parseErr := parseCLIArgs(os.Args[1:])
	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return nil
		}
		return parseErr
	}

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment variables override config file values.
	if envLevel := strings.TrimSpace(os.Getenv("RECHNER_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("RECHNER_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}
	if envHistory := strings.TrimSpace(os.Getenv("RECHNER_HISTORY")); envHistory != "" {
		cfg.HistoryPath = envHistory
	}
	if args.historyPath != "" {
		cfg.HistoryPath = args.historyPath
	}
	if args.backend != "" {
		cfg.HistoryBackend = args.backend
	}

	var loggerInitialized bool
	defer func() {
		if !loggerInitialized {
			return
		}
		if err != nil {
			logger.Error("Fatal error: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()

	if initErr := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); initErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", initErr)
	}
	loggerInitialized = true

	logger.Info("rechner starting")
	logger.Debug("Configuration: history_path=%s, history_backend=%s, log_level=%s",
		cfg.HistoryPath, cfg.HistoryBackend, cfg.LogLevel)

	// One-shot mode: evaluate the argument and exit.
	if args.expression != "" {
		if args.noHistory {
			result, evalErr := expr.Evaluate(args.expression)
			if evalErr != nil {
				return evalErr
			}
			fmt.Println(history.FormatResult(result))
			return nil
		}
		return runOnce(cfg, args.expression)
	}

	store, err := history.Open(cfg.HistoryBackend, cfg.HistoryPath)
	if err != nil {
		return err
	}
	sess := session.New(store)
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", closeErr)
		}
	}()

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if stdinTTY && stdoutTTY && !args.plain {
		logger.Info("Running in TUI mode")
		program := tea.NewProgram(tui.New(sess), tea.WithAltScreen())
		if _, runErr := program.Run(); runErr != nil {
			return fmt.Errorf("TUI error: %w", runErr)
		}
		return nil
	}

	logger.Info("Running in plain REPL mode (interactive=%v)", stdinTTY)
	repl := cli.New(sess, &cli.Options{
		Interactive: stdinTTY && stdoutTTY,
		RecallPath:  filepath.Join(filepath.Dir(cfg.HistoryPath), "input_history"),
	})
	return repl.Run()
}

func runOnce(cfg *config.Config, expression string) error {
	store, err := history.Open(cfg.HistoryBackend, cfg.HistoryPath)
	if err != nil {
		return err
	}
	sess := session.New(store)
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", closeErr)
		}
	}()

	return cli.RunOnce(sess, expression, os.Stdout)
}

func parseCLIArgs(args []string) (*cliArgs, error) {
	fs := flag.NewFlagSet("rechner", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		plain       bool
		noHistory   bool
		historyPath string
		backend     string
		showHelp    bool
	)

	fs.BoolVar(&plain, "plain", false, "Use the line-oriented REPL instead of the full-screen interface")
	fs.BoolVar(&noHistory, "no-history", false, "Do not record the calculation (one-shot mode only)")
	fs.StringVar(&historyPath, "history", "", "Path to the history file (overrides config)")
	fs.StringVar(&backend, "backend", "", "History backend: text or sqlite (overrides config)")
	fs.BoolVar(&showHelp, "help", false, "Show usage information")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [\"expression\"]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Without an expression, starts the interactive calculator.")
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showHelp {
		fs.Usage()
		return nil, flag.ErrHelp
	}

	expression := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if noHistory && expression == "" {
		return nil, fmt.Errorf("-no-history requires an expression argument")
	}

	return &cliArgs{
		expression:  expression,
		plain:       plain,
		noHistory:   noHistory,
		historyPath: historyPath,
		backend:     backend,
	}, nil
}
