/*
File    : waspi/values/values_test.go
Author  : waspi contributors
*/
package values

import "testing"

func TestAdd_IntegerAndDecimal(t *testing.T) {
	result, err := Add(&Integer{Value: 5}, &Integer{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Integer).Value; got != 8 {
		t.Errorf("expected 8, got %d", got)
	}

	result, err = Add(&Integer{Value: 1}, &Decimal{Value: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Decimal).Value; got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
}

func TestAdd_StringConcat(t *testing.T) {
	result, err := Add(&Str{Value: "hi"}, &Str{Value: "!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Str).Value; got != "hi!" {
		t.Errorf("expected hi!, got %q", got)
	}
}

func TestAdd_IllegalCombination(t *testing.T) {
	_, err := Add(&Str{Value: "hi"}, &Integer{Value: 1})
	if err == nil {
		t.Fatal("expected an illegal-operation error")
	}
}

func TestMul_StringRepeat(t *testing.T) {
	result, err := Mul(&Str{Value: "ab"}, &Integer{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Str).Value; got != "ababab" {
		t.Errorf("expected ababab, got %q", got)
	}
}

func TestDiv_ByZero(t *testing.T) {
	_, err := Div(&Integer{Value: 10}, &Integer{Value: 0})
	if err == nil {
		t.Fatal("expected division by zero error")
	}
	if err.Error() != "Division by zero" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDiv_IntegerIntegerAlwaysWidensToDecimal(t *testing.T) {
	result, err := Div(&Integer{Value: 10}, &Integer{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(*Decimal); !ok {
		t.Fatalf("expected a Decimal result, got %T", result)
	}

	// Even an evenly-divisible pair still widens, matching the source's
	// always-true-division semantics for `/`.
	result, err = Div(&Integer{Value: 6}, &Integer{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Decimal).Value; got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestComparisons(t *testing.T) {
	eq, _ := Eq(&Integer{Value: 1}, &Integer{Value: 1})
	if !eq.Truthy() {
		t.Error("expected 1 == 1 to be truthy")
	}
	lt, _ := Lt(&Str{Value: "a"}, &Str{Value: "b"})
	if !lt.Truthy() {
		t.Error("expected \"a\" < \"b\" to be truthy")
	}
}

func TestArray_String(t *testing.T) {
	arr := &Array{Elem: IntegerKind, Elements: []Value{&Integer{Value: 1}, &Integer{Value: 9}, &Integer{Value: 3}}}
	if got, want := arr.String(), "[1, 9, 3]"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCoerce_IntTruncatesDecimal(t *testing.T) {
	result, err := Coerce(&Decimal{Value: 1.9}, IntegerKind)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.(*Integer).Value; got != 1 {
		t.Errorf("expected truncation to 1, got %d", got)
	}
}

func TestCoerce_WordRejectsNonString(t *testing.T) {
	_, err := Coerce(&Integer{Value: 5}, StrKind)
	if err == nil {
		t.Fatal("expected an error coercing int to word")
	}
}

func TestTruthiness(t *testing.T) {
	if (&Integer{Value: 0}).Truthy() {
		t.Error("0 should not be truthy")
	}
	if !(&Integer{Value: 1}).Truthy() {
		t.Error("1 should be truthy")
	}
	if (&Str{Value: ""}).Truthy() {
		t.Error("empty string should not be truthy")
	}
	if !(&Str{Value: "x"}).Truthy() {
		t.Error("non-empty string should be truthy")
	}
}
