/*
File    : waspi/repl/repl.go
Author  : waspi contributors

Package repl implements the interactive Read-Eval-Print Loop (SPEC_FULL.md
§6.3): one top-level statement per line, against a persistent symbol table
so declarations and mutations carry across lines for the life of the
session.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/waspi-lang/waspi/eval"
	"github.com/waspi-lang/waspi/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session:
// banner, version, author, license, separator line, and prompt string.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner/version/prompt configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner writes the startup banner and usage hints to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "/exit quits, /scope shows the current symbol table.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop: read a line, parse it as one top-level
// statement, execute it against a session-long Evaluator, print `give`
// output or report the error, and go back for the next line. Lexical and
// syntax errors abort only the offending line, not the session (spec.md
// §7's "abort the whole program" applies to file mode, not the REPL).
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Bye.")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "/exit" {
			fmt.Fprintln(writer, "Bye.")
			return nil
		}
		if line == "/scope" {
			ev.Sym.Dump(writer)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, ev)
	}
}

// evalLine parses and executes a single line, reporting any lexical,
// syntax, or runtime error in red and leaving the session's state intact
// for the next line. `give` output is written by execGive as it runs; a
// bare expression statement instead produces a Value here, which is
// echoed in yellow the way the teacher's executeWithRecovery echoes a
// non-nil, non-error result.
func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator) {
	stmts, err := parser.ParseProgram(line)
	if err != nil {
		redColor.Fprintf(writer, "Error: %s\n", err)
		return
	}
	for _, stmt := range stmts {
		v, err := ev.Exec(stmt)
		if err != nil {
			redColor.Fprintf(writer, "Error: %s\n", err)
			return
		}
		if v != nil {
			yellowColor.Fprintln(writer, v.String())
		}
	}
}
