// Package cli implements the line-oriented front-ends: the plain REPL
// (line editing and input recall on a TTY, a scanner loop on a pipe)
// and the one-shot evaluation mode.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/codefionn/rechner/internal/history"
	"github.com/codefionn/rechner/internal/logger"
	"github.com/codefionn/rechner/internal/session"
)

const prompt = "> "

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options adjust how the REPL runs. The zero value reads stdin with a
// plain scanner and writes to stdout.
type Options struct {
	// Interactive enables liner-based line editing and input recall;
	// it requires a real terminal.
	Interactive bool
	// RecallPath is where the liner input-recall history lives.
	// Derived from the calculation history path when empty.
	RecallPath string
	In         io.Reader
	Out        io.Writer
}

// REPL drives one interactive session over a line-oriented terminal.
type REPL struct {
	sess        *session.Session
	interactive bool
	recallPath  string
	in          io.Reader
	out         io.Writer
}

// New creates a REPL around an already-loaded session.
func New(sess *session.Session, opts *Options) *REPL {
	r := &REPL{
		sess: sess,
		in:   os.Stdin,
		out:  os.Stdout,
	}
	if opts != nil {
		r.interactive = opts.Interactive
		r.recallPath = opts.RecallPath
		if opts.In != nil {
			r.in = opts.In
		}
		if opts.Out != nil {
			r.out = opts.Out
		}
	}
	return r
}

// Run executes the read-dispatch-print loop until quit or EOF. The
// caller closes the session afterwards, which persists the log.
func (r *REPL) Run() error {
	r.printBanner()

	if r.interactive {
		return r.runLiner()
	}
	return r.runScanner()
}

func (r *REPL) printBanner() {
	fmt.Fprintln(r.out, bannerStyle.Render("============================"))
	fmt.Fprintln(r.out, bannerStyle.Render("||   CLI Calculator v1.0  ||"))
	fmt.Fprintln(r.out, bannerStyle.Render("============================"))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, noticeStyle.Render("Type 'help' for available commands"))
	fmt.Fprintln(r.out)

	if n := r.sess.LoadedEntries(); n > 0 {
		fmt.Fprintln(r.out, noticeStyle.Render(fmt.Sprintf("Loaded %d entries from history", n)))
		fmt.Fprintln(r.out)
	}
}

// runLiner is the TTY path: line editing, input recall across runs,
// Ctrl+D to exit.
func (r *REPL) runLiner() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	recallPath := r.recallPath
	if recallPath == "" {
		recallPath = filepath.Join(os.TempDir(), "rechner_input_history")
	}
	if f, err := os.Open(recallPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(recallPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		input, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out, noticeStyle.Render("Type 'exit' to quit"))
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			ln.AppendHistory(input)
		}
		if quit := r.handle(input); quit {
			return nil
		}
	}
}

// runScanner is the non-TTY path used for piped input.
func (r *REPL) runScanner() error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle dispatches one line and prints the reply.
func (r *REPL) handle(input string) (quit bool) {
	reply := r.sess.Dispatch(input)
	if reply.Text != "" {
		fmt.Fprintln(r.out, r.render(reply))
		fmt.Fprintln(r.out)
	}
	return reply.Quit
}

func (r *REPL) render(reply session.Reply) string {
	switch {
	case reply.IsError:
		return errStyle.Render(reply.Text)
	case strings.HasPrefix(reply.Text, "= "):
		return resultStyle.Render(reply.Text)
	default:
		return noticeStyle.Render(reply.Text)
	}
}

// RunOnce evaluates a single expression, prints the result and
// records it in the session log. Used by the non-interactive mode.
func RunOnce(sess *session.Session, expression string, out io.Writer) error {
	result, err := sess.Evaluate(expression)
	if err != nil {
		logger.Debug("One-shot evaluation failed: %v", err)
		return err
	}
	fmt.Fprintln(out, history.FormatResult(result))
	return nil
}
