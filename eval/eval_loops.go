/*
File    : waspi/eval/eval_loops.go
Author  : waspi contributors

While/For push one scope frame around the whole loop rather than one
per iteration (spec §4.5's closing paragraph), so a name declared
inside the body on one iteration is still present — and a
redeclaration error — on the next. This matches the source interpreter's
actual behavior; it is not re-derived per iteration.
*/
package eval

import "github.com/waspi-lang/waspi/parser"

// execWhile repeatedly evaluates the condition and executes the body
// while truthy (spec §4.5).
func (e *Evaluator) execWhile(n *parser.While) error {
	e.Sym.PushScope()
	defer e.Sym.PopScope()

	for {
		cond, err := e.eval(n.Cond)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := e.execStatements(n.Body); err != nil {
			return err
		}
	}
}

// execFor executes decl once, then repeatedly checks cond, runs the
// body, and runs inc — once per iteration, not once per body statement
// (spec §9 Open Questions: a documented bug in the source ran inc once
// per body statement; this fix runs it once per iteration).
func (e *Evaluator) execFor(n *parser.For) error {
	e.Sym.PushScope()
	defer e.Sym.PopScope()

	if err := e.execVarAssign(n.Decl); err != nil {
		return err
	}
	for {
		cond, err := e.eval(n.Cond)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := e.execStatements(n.Body); err != nil {
			return err
		}
		if err := e.execVarAssign(n.Inc); err != nil {
			return err
		}
	}
}
