// Package session wires the evaluator to the calculation log and
// turns one line of user input into a displayable reply. The TUI and
// the plain REPL share this dispatcher, so command behavior cannot
// drift between modes.
package session

import (
	"fmt"
	"strings"

	"github.com/codefionn/rechner/internal/expr"
	"github.com/codefionn/rechner/internal/history"
	"github.com/codefionn/rechner/internal/logger"
)

// HelpText lists the interactive commands and the operator set.
const HelpText = `Available commands:
  <expression>   Evaluate an infix expression (e.g. 5 + 3 * 2)
  history        Show calculation history
  clear          Clear history
  save           Save history to disk now
  last           Show last calculation
  help           Show this help
  exit, quit     Exit the calculator

Operators: + - * / % ^ and s (square root), with parentheses.`

// Reply is the outcome of dispatching one input line.
type Reply struct {
	Text    string
	IsError bool
	// Quit signals the front-end to terminate its loop.
	Quit bool
}

// Session owns the calculation log for one interactive run. It is
// driven by a single front-end loop and is not safe for concurrent
// use; concurrent sessions each get their own Session and store.
type Session struct {
	log    *history.Log
	store  history.Store
	loaded int
}

// New loads the persisted history into a fresh session. A load
// failure is logged and treated as an empty history rather than
// refusing to start.
func New(store history.Store) *Session {
	entries, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load history: %v", err)
		entries = nil
	}
	return &Session{
		log:    history.NewLogWith(entries),
		store:  store,
		loaded: len(entries),
	}
}

// LoadedEntries returns how many entries the session started with,
// for the front-end's greeting line.
func (s *Session) LoadedEntries() int {
	return s.loaded
}

// Entries exposes the current log for transcript rendering.
func (s *Session) Entries() []history.Entry {
	return s.log.Entries()
}

// Dispatch handles one line of input: a housekeeping verb or an
// expression to evaluate. Blank lines produce an empty reply.
func (s *Session) Dispatch(input string) Reply {
	input = strings.TrimSpace(input)

	switch input {
	case "":
		return Reply{}

	case "exit", "quit":
		return Reply{Text: "Goodbye!", Quit: true}

	case "history":
		if s.log.Len() == 0 {
			return Reply{Text: "History is empty"}
		}
		var sb strings.Builder
		sb.WriteString("Calculation history:\n")
		for i, entry := range s.log.Entries() {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, entry)
		}
		return Reply{Text: strings.TrimRight(sb.String(), "\n")}

	case "clear":
		s.log.Clear()
		return Reply{Text: "History cleared"}

	case "save":
		if err := s.store.Save(s.log.Entries()); err != nil {
			logger.Error("Failed to save history: %v", err)
			return Reply{Text: fmt.Sprintf("Error: %v", err), IsError: true}
		}
		return Reply{Text: "History saved"}

	case "last":
		if entry, ok := s.log.Last(); ok {
			return Reply{Text: "Last calculation: " + entry.String()}
		}
		return Reply{Text: "No calculations yet"}

	case "help":
		return Reply{Text: HelpText}

	default:
		result, err := s.Evaluate(input)
		if err != nil {
			return Reply{Text: "Error: " + err.Error(), IsError: true}
		}
		return Reply{Text: "= " + history.FormatResult(result)}
	}
}

// Evaluate evaluates input and, on success, appends the calculation
// to the session log. A failed evaluation leaves the log and any
// persisted state untouched.
func (s *Session) Evaluate(input string) (float64, error) {
	result, err := expr.Evaluate(input)
	if err != nil {
		logger.Debug("Evaluation failed for %q: %v", input, err)
		return 0, err
	}
	s.log.Add(history.Entry{Expression: input, Result: result})
	logger.Debug("Evaluated %q = %s", input, history.FormatResult(result))
	return result, nil
}

// Close persists the log and releases the store, mirroring the
// save-on-exit of the interactive loop.
func (s *Session) Close() error {
	saveErr := s.store.Save(s.log.Entries())
	closeErr := s.store.Close()
	if saveErr != nil {
		return fmt.Errorf("failed to save history: %w", saveErr)
	}
	return closeErr
}
