/*
File    : waspi/values/arithmetic.go
Author  : waspi contributors

Operator dispatch: a matrix keyed by (operator, left kind, right kind)
producing a result kind, with explicit illegal entries, per spec §9's
recommendation over scattered type checks.
*/
package values

import "math"

// numberOf extracts a float64 view of an Integer or Decimal, and reports
// whether the value is numeric at all.
func numberOf(v Value) (float64, bool) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), true
	case *Decimal:
		return n.Value, true
	default:
		return 0, false
	}
}

// bothInt reports whether both operands are Integer, so integer ops can
// stay in integer arithmetic instead of widening to decimal (spec §4.3:
// "Mixed integer/decimal arithmetic widens to decimal").
func bothInt(a, b Value) (int64, int64, bool) {
	ai, aok := a.(*Integer)
	bi, bok := b.(*Integer)
	if aok && bok {
		return ai.Value, bi.Value, true
	}
	return 0, 0, false
}

func boolInt(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

// Add implements `+`: integer+integer, decimal(-mixed) addition, or string
// concatenation.
func Add(left, right Value) (Value, error) {
	if ls, ok := left.(*Str); ok {
		if rs, ok := right.(*Str); ok {
			return &Str{Value: ls.Value + rs.Value}, nil
		}
		return nil, illegalOp("+", left.Kind(), right.Kind())
	}
	if li, ri, ok := bothInt(left, right); ok {
		return &Integer{Value: li + ri}, nil
	}
	if lf, lok := numberOf(left); lok {
		if rf, rok := numberOf(right); rok {
			return &Decimal{Value: lf + rf}, nil
		}
	}
	return nil, illegalOp("+", left.Kind(), right.Kind())
}

// Sub implements `-` for numbers only.
func Sub(left, right Value) (Value, error) {
	if li, ri, ok := bothInt(left, right); ok {
		return &Integer{Value: li - ri}, nil
	}
	if lf, lok := numberOf(left); lok {
		if rf, rok := numberOf(right); rok {
			return &Decimal{Value: lf - rf}, nil
		}
	}
	return nil, illegalOp("-", left.Kind(), right.Kind())
}

// Mul implements `*`: numeric multiplication, or Str×Int repetition
// (spec §4.3: "Str repeated n times (`*` only)").
func Mul(left, right Value) (Value, error) {
	if li, ri, ok := bothInt(left, right); ok {
		return &Integer{Value: li * ri}, nil
	}
	if lf, lok := numberOf(left); lok {
		if rf, rok := numberOf(right); rok {
			return &Decimal{Value: lf * rf}, nil
		}
	}
	if ls, ok := left.(*Str); ok {
		if ri, ok := right.(*Integer); ok {
			return repeatStr(ls.Value, ri.Value)
		}
	}
	if ri, ok := left.(*Integer); ok {
		if rs, ok := right.(*Str); ok {
			return repeatStr(rs.Value, ri.Value)
		}
	}
	return nil, illegalOp("*", left.Kind(), right.Kind())
}

func repeatStr(s string, n int64) (Value, error) {
	if n < 0 {
		return nil, &OpError{Message: "cannot repeat a string a negative number of times"}
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return &Str{Value: string(out)}, nil
}

// Div implements `/` for numbers. Unlike Sub/Mul/Mod, Integer÷Integer still
// produces a Decimal (spec §4.3's "Integer/Decimal" cell for this row is
// division widening even on two integer operands; the source's `/` is
// always true division). Division by zero is a runtime error regardless
// of operand kinds.
func Div(left, right Value) (Value, error) {
	lf, lok := numberOf(left)
	rf, rok := numberOf(right)
	if lok && rok {
		if rf == 0 {
			return nil, &OpError{Message: "Division by zero"}
		}
		return &Decimal{Value: lf / rf}, nil
	}
	return nil, illegalOp("/", left.Kind(), right.Kind())
}

// Mod implements `%` for numbers. Division by zero is a runtime error.
func Mod(left, right Value) (Value, error) {
	if li, ri, ok := bothInt(left, right); ok {
		if ri == 0 {
			return nil, &OpError{Message: "Division by zero"}
		}
		return &Integer{Value: li % ri}, nil
	}
	lf, lok := numberOf(left)
	rf, rok := numberOf(right)
	if lok && rok {
		if rf == 0 {
			return nil, &OpError{Message: "Division by zero"}
		}
		return &Decimal{Value: math.Mod(lf, rf)}, nil
	}
	return nil, illegalOp("%", left.Kind(), right.Kind())
}

// compare produces the Integer(0/1) result for a comparison op shared
// across numbers and strings (spec §4.3: "comparisons | Integer(0/1)").
func compare(left, right Value, numOp func(a, b float64) bool, strOp func(a, b string) bool) (Value, error) {
	if lf, lok := numberOf(left); lok {
		if rf, rok := numberOf(right); rok {
			return boolInt(numOp(lf, rf)), nil
		}
	}
	if ls, ok := left.(*Str); ok {
		if rs, ok := right.(*Str); ok {
			return boolInt(strOp(ls.Value, rs.Value)), nil
		}
	}
	return nil, &OpError{Message: "illegal comparison between " + string(left.Kind()) + " and " + string(right.Kind())}
}

func Eq(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a == b }, func(a, b string) bool { return a == b })
}

func Ne(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a != b }, func(a, b string) bool { return a != b })
}

func Lt(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a < b }, func(a, b string) bool { return a < b })
}

func Lte(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a <= b }, func(a, b string) bool { return a <= b })
}

func Gt(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a > b }, func(a, b string) bool { return a > b })
}

func Gte(left, right Value) (Value, error) {
	return compare(left, right, func(a, b float64) bool { return a >= b }, func(a, b string) bool { return a >= b })
}

// And implements logical `and` by truthiness, over numbers, strings, or
// arrays, producing Integer(0/1) (spec §4.3).
func And(left, right Value) (Value, error) {
	return boolInt(left.Truthy() && right.Truthy()), nil
}

// Or implements logical `or` by truthiness.
func Or(left, right Value) (Value, error) {
	return boolInt(left.Truthy() || right.Truthy()), nil
}

// Neg implements unary `-`: negate a number, illegal on strings/arrays.
func Neg(v Value) (Value, error) {
	switch n := v.(type) {
	case *Integer:
		return &Integer{Value: -n.Value}, nil
	case *Decimal:
		return &Decimal{Value: -n.Value}, nil
	default:
		return nil, &OpError{Message: "illegal operation: -" + string(v.Kind())}
	}
}

// Pos implements unary `+`: identity on numbers, illegal otherwise.
func Pos(v Value) (Value, error) {
	switch v.(type) {
	case *Integer, *Decimal:
		return v, nil
	default:
		return nil, &OpError{Message: "illegal operation: +" + string(v.Kind())}
	}
}

// Not implements unary `not`: 1 iff v is false by truthiness.
func Not(v Value) (Value, error) {
	return boolInt(!v.Truthy()), nil
}
