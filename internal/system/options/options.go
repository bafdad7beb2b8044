// Released under an MIT license. See LICENSE.

// Package options parses loon's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `loon

Usage:
  loon [SCRIPT]
  loon -c COMMAND
  loon -h
  loon -v

Arguments:
  SCRIPT  Path to a loon file to load before starting the REPL.

Options:
  -c, --command=COMMAND  Evaluate the specified command and exit.
  -h, --help             Display this help.
  -v, --version          Print loon version.

If loon's stdin is a TTY and no command was given, an interactive REPL
is started after any script is loaded. Otherwise forms are read from
stdin, evaluated, and their results printed.
`
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, "loon "+version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && isatty.IsTerminal(os.Stdin.Fd())
}

func Script() string {
	return script
}
