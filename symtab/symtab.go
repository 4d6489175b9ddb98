/*
File    : waspi/symtab/symtab.go
Author  : waspi contributors

Package symtab implements the Symbol Table described in spec §3 and
§4.4: a name→Value mapping paired with a name→declared-type mapping,
scoped by blocks. Scoping is a stack of frames searched child-to-parent
on read (spec §9 design note: "a cleaner re-architecture is a stack of
environments... prefer the stack model"), grounded on the teacher's
scope.Scope chain. A frame is pushed on block entry and popped on block
exit; declaring a name already bound in an outer frame shadows it for
the frame's lifetime rather than erroring, while redeclaring a name
already bound in the *same* frame is the "declared twice" error (spec
§3).
*/
package symtab

import (
	"fmt"
	"io"

	"github.com/waspi-lang/waspi/values"
)

// frame is one lexical scope's bindings.
type frame struct {
	vals  map[string]values.Value
	types map[string]values.Kind
}

func newFrame() *frame {
	return &frame{
		vals:  make(map[string]values.Value),
		types: make(map[string]values.Kind),
	}
}

// SymbolTable is a stack of frames, frames[0] being the global scope that
// lives for the program's entire run.
type SymbolTable struct {
	frames []*frame
}

// New creates a SymbolTable with just the global frame.
func New() *SymbolTable {
	return &SymbolTable{frames: []*frame{newFrame()}}
}

// top is the innermost (current) frame.
func (st *SymbolTable) top() *frame {
	return st.frames[len(st.frames)-1]
}

// PushScope enters a new nested scope, e.g. a block, or an if/while/for
// body (spec §4.5: "snapshot the symbol table... restore on normal
// exit"). Pair with PopScope.
func (st *SymbolTable) PushScope() {
	st.frames = append(st.frames, newFrame())
}

// PopScope exits the innermost scope, discarding every binding declared
// in it. Bindings it shadowed in an outer frame become visible again.
func (st *SymbolTable) PopScope() {
	st.frames = st.frames[:len(st.frames)-1]
}

// Get searches frames innermost-to-outermost for name's value.
func (st *SymbolTable) Get(name string) (values.Value, bool) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if v, ok := st.frames[i].vals[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetType searches frames innermost-to-outermost for name's declared type.
func (st *SymbolTable) GetType(name string) (values.Kind, bool) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if k, ok := st.frames[i].types[name]; ok {
			return k, true
		}
	}
	return "", false
}

// HasLocal reports whether name is declared in the innermost frame only
// — the check a declaration uses to detect "declared twice" without
// rejecting a legitimate shadow of an outer name.
func (st *SymbolTable) HasLocal(name string) bool {
	_, ok := st.top().vals[name]
	return ok
}

// Declare binds name to value with the given type in the innermost
// frame. Callers must check HasLocal first (spec §3: "declaring an
// already-present name is an error").
func (st *SymbolTable) Declare(name string, kind values.Kind, value values.Value) {
	st.top().types[name] = kind
	st.top().vals[name] = value
}

// Assign writes value into the frame where name was originally declared
// (spec §4.5: reassignment mutates the existing binding, wherever it
// lives in the scope chain). The caller must already know name is
// declared somewhere, typically via GetType.
func (st *SymbolTable) Assign(name string, value values.Value) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if _, ok := st.frames[i].vals[name]; ok {
			st.frames[i].vals[name] = value
			return
		}
	}
}

// Dump writes every frame, innermost first, with each binding's declared
// type and current value — the implementation-defined diagnostic behind
// `--scope`/`/scope`.
func (st *SymbolTable) Dump(w io.Writer) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		depth := len(st.frames) - 1 - i
		fmt.Fprintf(w, "scope %d:\n", depth)
		f := st.frames[i]
		if len(f.vals) == 0 {
			fmt.Fprintf(w, "  (empty)\n")
			continue
		}
		for name, v := range f.vals {
			fmt.Fprintf(w, "  %s %s = %s\n", f.types[name], name, v.String())
		}
	}
}
