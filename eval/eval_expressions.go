/*
File    : waspi/eval/eval_expressions.go
Author  : waspi contributors
*/
package eval

import (
	"github.com/waspi-lang/waspi/lexer"
	"github.com/waspi-lang/waspi/parser"
	"github.com/waspi-lang/waspi/values"
)

// eval evaluates expr to a Value, dispatching by node variant.
func (e *Evaluator) eval(expr parser.Expr) (values.Value, error) {
	switch n := expr.(type) {
	case *parser.NumLit:
		if n.IsDecimal {
			return &values.Decimal{Value: n.DecValue}, nil
		}
		return &values.Integer{Value: n.IntValue}, nil

	case *parser.StrLit:
		return &values.Str{Value: n.Value}, nil

	case *parser.VarRef:
		v, ok := e.Sym.Get(n.Name)
		if !ok {
			return nil, runtimeErrorf("undeclared variable %s", n.Name)
		}
		return v, nil

	case *parser.ArrayIndex:
		arr, err := e.lookupArray(n.Name)
		if err != nil {
			return nil, err
		}
		idx, err := e.evalIndex(n.Index, len(arr.Elements))
		if err != nil {
			return nil, err
		}
		return arr.Elements[idx], nil

	case *parser.BinOp:
		return e.evalBinOp(n)

	case *parser.UnaryOp:
		return e.evalUnaryOp(n)

	case *parser.CharCast:
		return e.evalCharCast(n)

	default:
		return nil, runtimeErrorf("cannot evaluate expression of type %T", expr)
	}
}

// evalBinOp evaluates both operands then dispatches on the operator
// token kind to the values package's operation (spec §4.5).
func (e *Evaluator) evalBinOp(n *parser.BinOp) (values.Value, error) {
	left, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}

	var result values.Value
	switch n.Op.Type {
	case lexer.PLUS:
		result, err = values.Add(left, right)
	case lexer.MIN:
		result, err = values.Sub(left, right)
	case lexer.MUL:
		result, err = values.Mul(left, right)
	case lexer.DIV:
		result, err = values.Div(left, right)
	case lexer.MOD:
		result, err = values.Mod(left, right)
	case lexer.EQ:
		result, err = values.Eq(left, right)
	case lexer.NE:
		result, err = values.Ne(left, right)
	case lexer.LT:
		result, err = values.Lt(left, right)
	case lexer.LTE:
		result, err = values.Lte(left, right)
	case lexer.GT:
		result, err = values.Gt(left, right)
	case lexer.GTE:
		result, err = values.Gte(left, right)
	case lexer.AND_KEY:
		result, err = values.And(left, right)
	case lexer.OR_KEY:
		result, err = values.Or(left, right)
	default:
		return nil, runtimeErrorf("unknown binary operator %s", n.Op)
	}
	if err != nil {
		return nil, runtimeErrorf("%s", err)
	}
	return result, nil
}

// evalUnaryOp implements unary +, -, and not (spec §4.5).
func (e *Evaluator) evalUnaryOp(n *parser.UnaryOp) (values.Value, error) {
	operand, err := e.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	var result values.Value
	switch n.Op.Type {
	case lexer.PLUS:
		result, err = values.Pos(operand)
	case lexer.MIN:
		result, err = values.Neg(operand)
	case lexer.NOT_KEY:
		result, err = values.Not(operand)
	default:
		return nil, runtimeErrorf("unknown unary operator %s", n.Op)
	}
	if err != nil {
		return nil, runtimeErrorf("%s", err)
	}
	return result, nil
}

// evalCharCast converts an Integer code point to a one-character string;
// an out-of-range code point is a runtime error (spec §4.5).
func (e *Evaluator) evalCharCast(n *parser.CharCast) (values.Value, error) {
	v, err := e.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	i, ok := v.(*values.Integer)
	if !ok {
		return nil, runtimeErrorf("char() requires an int, got %s", v.Kind())
	}
	if i.Value < 0 || i.Value > 0x10FFFF {
		return nil, runtimeErrorf("invalid code point %d", i.Value)
	}
	return &values.Str{Value: string(rune(i.Value))}, nil
}
