// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the loon language.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/interface/literal"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/engine"
	"github.com/loon-lang/loon/internal/reader"
	"github.com/loon-lang/loon/internal/system/history"
	"github.com/peterh/liner"
)

const help = `Commands:
  :help            Show this help
  :quit | :q       Exit
  :load <path>     Load a file into the session
  :show            Print currently loaded file text (if any)
  :clear           Clear loaded file/text
Anything else is parsed and evaluated.`

// T (ui) is an interactive loon session.
type T struct {
	engine *engine.T

	loadedPath string
	loadedText string
}

type ui = T

// New creates a session around the engine e.
func New(e *engine.T) *T {
	return &ui{engine: e}
}

// Evaluate parses and evaluates one form of text against the session,
// printing the result or the failure.
func (u *ui) Evaluate(text string) {
	c, err := reader.One("repl", text)
	if err != nil {
		fmt.Printf("!> %s\n", err)

		return
	}

	r, err := u.engine.Evaluate(c)
	if err != nil {
		fmt.Printf("!> %s\n", err)

		return
	}

	fmt.Printf("=> %s\n", literal.String(r))
}

// Load reads the file at path and evaluates its top-level forms in
// order. Loading stops at the first failing form. The last result is
// returned so callers can display it.
func (u *ui) Load(path string) (cell.I, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	forms, err := reader.All(path, string(text))
	if err != nil {
		return nil, err
	}

	last := pair.Null
	for _, c := range forms {
		last, err = u.engine.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	u.loadedPath = path
	u.loadedText = string(text)

	return last, nil
}

// Run launches the REPL. It returns when the user quits.
func (u *ui) Run() {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.complete)

	_ = history.Load(cli.ReadHistory)

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			// EOF or a read error; either way the session is over.
			fmt.Println()
			_ = history.Save(cli.WriteHistory)

			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cli.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if u.command(line) {
				break
			}

			continue
		}

		u.Evaluate(line)
	}

	_ = history.Save(cli.WriteHistory)
}

// command handles a host command. It returns true to exit the REPL.
func (u *ui) command(line string) bool {
	parts := strings.Fields(line)

	switch parts[0] {
	case ":q", ":quit":
		return true
	case ":help":
		fmt.Println(help)
	case ":load":
		if len(parts) < 2 {
			fmt.Fprintln(os.Stderr, "usage: :load <path>")

			break
		}

		r, err := u.Load(parts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading %s: %s\n", parts[1], err)

			break
		}

		fmt.Printf("Loaded %s => %s\n", parts[1], literal.String(r))
	case ":show":
		if u.loadedPath == "" {
			fmt.Println("(no file loaded)")

			break
		}

		fmt.Printf("--- %s ---\n%s\n", u.loadedPath, u.loadedText)
	case ":clear":
		u.loadedPath = ""
		u.loadedText = ""

		fmt.Println("Cleared.")
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s (try :help)\n", parts[0])
	}

	return false
}

// complete offers the names callable in head position plus the host
// commands.
func (u *ui) complete(line string, pos int) (string, []string, string) {
	head := line[:pos]
	tail := line[pos:]

	start := len(head)
	for start > 0 && !strings.ContainsRune(" \t()", rune(head[start-1])) {
		start--
	}

	prefix := head[start:]
	head = head[:start]

	candidates := u.engine.Names()
	candidates = append(candidates, ":clear", ":help", ":load", ":q", ":quit", ":show")

	var completions []string
	for _, c := range candidates {
		if prefix != "" && strings.HasPrefix(c, prefix) {
			completions = append(completions, c)
		}
	}

	return head, completions, tail
}
