/*
File    : waspi/eval/eval_assignments.go
Author  : waspi contributors
*/
package eval

import (
	"github.com/waspi-lang/waspi/lexer"
	"github.com/waspi-lang/waspi/parser"
	"github.com/waspi-lang/waspi/values"
)

// keyToKind maps the declaration keyword token to the value Kind it
// declares.
func keyToKind(key lexer.TokenType) values.Kind {
	switch key {
	case lexer.INT_KEY:
		return values.IntegerKind
	case lexer.DEC_KEY:
		return values.DecimalKind
	case lexer.WORD_KEY:
		return values.StrKind
	default:
		return values.IntegerKind
	}
}

// execVarAssign implements both the declaring and reassigning forms of
// VarAssign (spec §4.5).
func (e *Evaluator) execVarAssign(n *parser.VarAssign) error {
	if n.DeclaredType != "" {
		return e.declareScalar(n)
	}
	return e.reassignScalar(n)
}

func (e *Evaluator) declareScalar(n *parser.VarAssign) error {
	if e.Sym.HasLocal(n.Name) {
		return runtimeErrorf("variable declared twice %s", n.Name)
	}
	kind := keyToKind(n.DeclaredType)

	var value values.Value
	if n.Value == nil {
		value = defaultValueFor(kind)
	} else {
		v, err := e.eval(n.Value)
		if err != nil {
			return err
		}
		coerced, err := values.Coerce(v, kind)
		if err != nil {
			return runtimeErrorf("%s", err)
		}
		value = coerced
	}

	e.Sym.Declare(n.Name, kind, value)
	return nil
}

func (e *Evaluator) reassignScalar(n *parser.VarAssign) error {
	kind, ok := e.Sym.GetType(n.Name)
	if !ok {
		return runtimeErrorf("undeclared variable %s", n.Name)
	}
	v, err := e.eval(n.Value)
	if err != nil {
		return err
	}
	coerced, err := values.Coerce(v, kind)
	if err != nil {
		return runtimeErrorf("%s", err)
	}
	e.Sym.Assign(n.Name, coerced)
	return nil
}

// execArrayAssign declares a fixed-size array, zero-filling elements when
// no initializer list is given and coercing each supplied element to the
// declared type (spec §4.5). A mismatched initializer-list length is a
// runtime error (spec §4.2).
func (e *Evaluator) execArrayAssign(n *parser.ArrayAssign) error {
	if e.Sym.HasLocal(n.Name) {
		return runtimeErrorf("variable declared twice %s", n.Name)
	}
	kind := keyToKind(n.DeclaredType)

	sizeVal, err := e.eval(n.Init.Size)
	if err != nil {
		return err
	}
	sizeInt, ok := sizeVal.(*values.Integer)
	if !ok {
		return runtimeErrorf("array size must be an int, got %s", sizeVal.Kind())
	}
	size := int(sizeInt.Value)
	if size < 0 {
		return runtimeErrorf("array size must be non-negative, got %d", size)
	}

	elements := make([]values.Value, size)
	if n.Init.Elements == nil {
		for i := range elements {
			elements[i] = defaultValueFor(kind)
		}
	} else {
		if len(n.Init.Elements) != size {
			return runtimeErrorf("array %s declared with size %d but %d initializer(s)", n.Name, size, len(n.Init.Elements))
		}
		for i, elemExpr := range n.Init.Elements {
			v, err := e.eval(elemExpr)
			if err != nil {
				return err
			}
			coerced, err := values.Coerce(v, kind)
			if err != nil {
				return runtimeErrorf("%s", err)
			}
			elements[i] = coerced
		}
	}

	e.Sym.Declare(n.Name, values.ArrayKind, &values.Array{Elem: kind, Elements: elements})
	return nil
}

// execArrayElemAssign writes a[index] = value in place (spec §4.5).
func (e *Evaluator) execArrayElemAssign(n *parser.ArrayElemAssign) error {
	arr, err := e.lookupArray(n.Name)
	if err != nil {
		return err
	}
	idx, err := e.evalIndex(n.Index, len(arr.Elements))
	if err != nil {
		return err
	}
	v, err := e.eval(n.Value)
	if err != nil {
		return err
	}
	coerced, err := values.Coerce(v, arr.Elem)
	if err != nil {
		return runtimeErrorf("%s", err)
	}
	arr.Elements[idx] = coerced
	return nil
}

// lookupArray resolves name to a declared Array, or a runtime error if
// it's undeclared or not an array.
func (e *Evaluator) lookupArray(name string) (*values.Array, error) {
	v, ok := e.Sym.Get(name)
	if !ok {
		return nil, runtimeErrorf("undeclared variable %s", name)
	}
	arr, ok := v.(*values.Array)
	if !ok {
		return nil, runtimeErrorf("%s is not an array", name)
	}
	return arr, nil
}

// evalIndex evaluates an index expression and checks it against bounds
// [0, size) (spec §4.5, §8 "array bounds").
func (e *Evaluator) evalIndex(expr parser.Expr, size int) (int, error) {
	v, err := e.eval(expr)
	if err != nil {
		return 0, err
	}
	i, ok := v.(*values.Integer)
	if !ok {
		return 0, runtimeErrorf("array index must be an int, got %s", v.Kind())
	}
	idx := int(i.Value)
	if idx < 0 || idx >= size {
		return 0, runtimeErrorf("index %d out of bounds for array of size %d", idx, size)
	}
	return idx, nil
}
