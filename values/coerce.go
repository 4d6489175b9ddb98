/*
File    : waspi/values/coerce.go
Author  : waspi contributors
*/
package values

import "fmt"

// Coerce converts v to the declared variable kind, per spec §4.5:
//   - int  -> truncate a decimal toward zero, or pass an integer through
//   - dec  -> widen an integer, or pass a decimal through
//   - word -> require v already be a Str; no implicit conversion (spec §9
//     Open Questions: non-Str right-hand sides are a runtime error)
func Coerce(v Value, kind Kind) (Value, error) {
	switch kind {
	case IntegerKind:
		switch n := v.(type) {
		case *Integer:
			return &Integer{Value: n.Value}, nil
		case *Decimal:
			return &Integer{Value: int64(n.Value)}, nil // truncation toward zero
		default:
			return nil, fmt.Errorf("cannot assign %s to a variable of type int", v.Kind())
		}
	case DecimalKind:
		switch n := v.(type) {
		case *Decimal:
			return &Decimal{Value: n.Value}, nil
		case *Integer:
			return &Decimal{Value: float64(n.Value)}, nil
		default:
			return nil, fmt.Errorf("cannot assign %s to a variable of type dec", v.Kind())
		}
	case StrKind:
		if s, ok := v.(*Str); ok {
			return &Str{Value: s.Value}, nil
		}
		return nil, fmt.Errorf("cannot assign %s to a variable of type word", v.Kind())
	default:
		return nil, fmt.Errorf("unknown declared type %q", kind)
	}
}
