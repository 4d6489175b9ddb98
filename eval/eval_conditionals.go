/*
File    : waspi/eval/eval_conditionals.go
Author  : waspi contributors
*/
package eval

import "github.com/waspi-lang/waspi/parser"

// execIf evaluates cases in order, running the first truthy case's body
// and skipping the rest; falls through to the else body if present and
// no case matched (spec §4.5).
func (e *Evaluator) execIf(n *parser.If) error {
	for _, c := range n.Cases {
		cond, err := e.eval(c.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return e.execBlock(c.Body)
		}
	}
	if n.ElseBody != nil {
		return e.execBlock(n.ElseBody)
	}
	return nil
}
