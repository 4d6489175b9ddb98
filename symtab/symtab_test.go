/*
File    : waspi/symtab/symtab_test.go
Author  : waspi contributors
*/
package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/waspi-lang/waspi/values"
)

func TestDeclareAndGet(t *testing.T) {
	st := New()
	st.Declare("x", values.IntegerKind, &values.Integer{Value: 5})

	v, ok := st.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(5), v.(*values.Integer).Value)

	kind, ok := st.GetType("x")
	assert.True(t, ok)
	assert.Equal(t, values.IntegerKind, kind)
}

func TestPushScope_ShadowsOuterNameWithoutError(t *testing.T) {
	st := New()
	st.Declare("a", values.IntegerKind, &values.Integer{Value: 1})

	st.PushScope()
	assert.False(t, st.HasLocal("a"), "a belongs to the outer frame, not this one")
	st.Declare("a", values.IntegerKind, &values.Integer{Value: 2})

	v, _ := st.Get("a")
	assert.Equal(t, int64(2), v.(*values.Integer).Value, "inner declaration shadows the outer one")

	st.PopScope()
	v, _ = st.Get("a")
	assert.Equal(t, int64(1), v.(*values.Integer).Value, "outer binding is restored once the shadow's scope exits")
}

func TestPushScope_RemovesNewNamesOnPop(t *testing.T) {
	st := New()
	st.PushScope()
	st.Declare("b", values.IntegerKind, &values.Integer{Value: 99})
	st.PopScope()

	_, ok := st.Get("b")
	assert.False(t, ok, "b was declared inside the popped scope and must be gone")
}

func TestPushScope_IdempotentOnReadOnlyBlock(t *testing.T) {
	st := New()
	st.Declare("outer", values.IntegerKind, &values.Integer{Value: 7})

	st.PushScope()
	_, _ = st.Get("outer") // a block that only reads makes no declarations
	st.PopScope()

	v, ok := st.Get("outer")
	assert.True(t, ok)
	assert.Equal(t, int64(7), v.(*values.Integer).Value)
}

func TestAssign_MutatesTheDeclaringFrame(t *testing.T) {
	st := New()
	st.Declare("x", values.IntegerKind, &values.Integer{Value: 1})

	st.PushScope()
	st.Assign("x", &values.Integer{Value: 2}) // reassignment from inside a nested block
	st.PopScope()

	v, _ := st.Get("x")
	assert.Equal(t, int64(2), v.(*values.Integer).Value, "mutations to an outer name persist after the block exits")
}
