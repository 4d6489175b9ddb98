/*
File    : waspi/eval/eval.go
Author  : waspi contributors

Package eval implements the recursive visitor (spec §4.5) that executes
parsed statements against a symbol table, producing values.Value results
and the side effects (binding, printing) that make up a running program.
*/
package eval

import (
	"fmt"
	"io"

	"github.com/waspi-lang/waspi/parser"
	"github.com/waspi-lang/waspi/symtab"
	"github.com/waspi-lang/waspi/values"
)

// RuntimeError is any semantic/runtime failure raised while executing a
// statement: double declaration, undeclared use, type mismatch, division
// by zero, array bounds, illegal operation, invalid code point (spec §7).
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// Evaluator owns the single process-wide Symbol Table (spec §9: "owned
// structure threaded through the evaluator... rather than true global
// state") and the destination for `give` output.
type Evaluator struct {
	Sym    *symtab.SymbolTable
	Writer io.Writer
}

// New creates an Evaluator with a fresh symbol table, writing `give`
// output to w.
func New(w io.Writer) *Evaluator {
	return &Evaluator{Sym: symtab.New(), Writer: w}
}

// Exec executes one top-level statement. Each call is independent (spec
// §9: "parser returns a flat list of top-level statements; each is
// evaluated independently so that runtime errors in one need not abort
// the program") — the caller is responsible for catching the returned
// error, reporting it, and moving on to the next statement. The returned
// Value is non-nil only for a bare expression statement (*parser.ExprStmt);
// every other statement kind returns nil, letting a caller like the REPL
// echo "the value of bare expression statements" without also echoing
// declarations, give, or control flow.
func (e *Evaluator) Exec(stmt parser.Stmt) (values.Value, error) {
	switch n := stmt.(type) {
	case *parser.VarAssign:
		return nil, e.execVarAssign(n)
	case *parser.ArrayAssign:
		return nil, e.execArrayAssign(n)
	case *parser.ArrayElemAssign:
		return nil, e.execArrayElemAssign(n)
	case *parser.ExprStmt:
		return e.eval(n.Value)
	case *parser.If:
		return nil, e.execIf(n)
	case *parser.While:
		return nil, e.execWhile(n)
	case *parser.For:
		return nil, e.execFor(n)
	case *parser.Block:
		return nil, e.execBlock(n.Statements)
	case *parser.Give:
		return nil, e.execGive(n)
	default:
		return nil, runtimeErrorf("cannot execute statement of type %T", stmt)
	}
}

// execBlock runs stmts under their own scope: push a frame before,
// pop it after (spec §4.5: "snapshot... execute... restore on normal
// exit"). Used for Block and each If/elif/else case, which enter their
// body exactly once.
func (e *Evaluator) execBlock(stmts []parser.Stmt) error {
	e.Sym.PushScope()
	defer e.Sym.PopScope()
	return e.execStatements(stmts)
}

// execStatements runs stmts in order against the current scope without
// pushing a frame of its own. While/For use this directly for their body
// so that the frame push/pop happens once around the whole loop rather
// than once per iteration (spec §4.5's closing paragraph).
func (e *Evaluator) execStatements(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if _, err := e.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execGive evaluates expr and writes its printable form followed by a
// newline (spec §4.5).
func (e *Evaluator) execGive(n *parser.Give) error {
	v, err := e.eval(n.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Writer, v.String())
	return nil
}

// defaultValueFor returns the zero value for an uninitialized declaration
// of the given declared type (spec §4.2: int/dec default to 0/0.0, word
// defaults to the empty string).
func defaultValueFor(kind values.Kind) values.Value {
	return values.ZeroOf(kind)
}
