/*
File    : waspi/cmd/waspi/main.go
Author  : waspi contributors

Package main is the waspi interpreter's entry point: a single source
file, or no arguments at all to drop into the REPL (SPEC_FULL.md §6.1).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/waspi-lang/waspi/eval"
	"github.com/waspi-lang/waspi/parser"
	"github.com/waspi-lang/waspi/repl"
)

const (
	version = "v0.1.0"
	author  = "waspi contributors"
	license = "MIT"
	prompt  = "waspi >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
 __      __ _    ____  ____ ___
 \ \    / /\ \  / ___||  _ \_ _|
  \ \/\/ /  \ \ \___ \| |_) | |
   \_/\_/    \ \ ___) |  __/| |
              \_\____/|_|  |___|
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repler := repl.New(banner, version, author, line, license, prompt)
		if err := repler.Start(os.Stdin, os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	}

	showScope := false
	path := args[0]
	for _, a := range args[1:] {
		if a == "--scope" {
			showScope = true
		}
	}

	runFile(path, showScope)
}

func showHelp() {
	cyanColor.Println("waspi - a small statically-typed imperative language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  waspi                   start the interactive REPL")
	fmt.Println("  waspi <file>            run a source file")
	fmt.Println("  waspi <file> --scope    run a file, printing scope state after each statement")
	fmt.Println("  waspi --help            show this message")
	fmt.Println("  waspi --version         show version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	fmt.Println("  /exit                   exit the REPL")
	fmt.Println("  /scope                  show the current symbol table")
}

func showVersion() {
	cyanColor.Printf("waspi %s (%s)\n", version, license)
}

// runFile reads path, then executes its statements one at a time. A
// lexical or syntax error aborts the whole file (spec.md §7); a runtime
// error aborts only the statement that raised it and execution continues
// with the next one. The process exits 0 in either case — only a driver
// failure (the file can't be read) exits non-zero.
func runFile(path string, showScope bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	stmts, err := parser.ParseProgram(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		return
	}

	ev := eval.New(os.Stdout)
	for _, stmt := range stmts {
		if _, err := ev.Exec(stmt); err != nil {
			redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		if showScope {
			cyanColor.Fprintln(os.Stderr, line)
			ev.Sym.Dump(os.Stderr)
			cyanColor.Fprintln(os.Stderr, line)
		}
	}
}
