/*
File    : waspi/parser/parser_test.go
Author  : waspi contributors
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waspi-lang/waspi/lexer"
)

func TestParseProgram_ScalarDeclaration(t *testing.T) {
	stmts, err := ParseProgram(`int a = 5;`)
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)

	decl, ok := stmts[0].(*VarAssign)
	assert.True(t, ok)
	assert.Equal(t, "a", decl.Name)
	num, ok := decl.Value.(*NumLit)
	assert.True(t, ok)
	assert.Equal(t, int64(5), num.IntValue)
}

func TestParseProgram_UninitializedDeclarationHasNilValue(t *testing.T) {
	stmts, err := ParseProgram(`dec x;`)
	assert.NoError(t, err)
	decl := stmts[0].(*VarAssign)
	assert.Nil(t, decl.Value)
}

func TestParseProgram_Reassignment(t *testing.T) {
	stmts, err := ParseProgram(`a = a + 1;`)
	assert.NoError(t, err)
	assign, ok := stmts[0].(*VarAssign)
	assert.True(t, ok)
	assert.Equal(t, lexer.TokenType(""), assign.DeclaredType)

	bin, ok := assign.Value.(*BinOp)
	assert.True(t, ok)
	left, ok := bin.Left.(*VarRef)
	assert.True(t, ok)
	assert.Equal(t, "a", left.Name)
}

func TestParseProgram_ArrayDeclarationWithInitializer(t *testing.T) {
	stmts, err := ParseProgram(`int a[3] = {1, 2, 3};`)
	assert.NoError(t, err)
	decl, ok := stmts[0].(*ArrayAssign)
	assert.True(t, ok)
	assert.Len(t, decl.Init.Elements, 3)
}

func TestParseProgram_ArrayElementAssignAndRead(t *testing.T) {
	stmts, err := ParseProgram(`a[1] = 9; give(a[0]);`)
	assert.NoError(t, err)
	assert.Len(t, stmts, 2)

	elemAssign, ok := stmts[0].(*ArrayElemAssign)
	assert.True(t, ok)
	assert.Equal(t, "a", elemAssign.Name)

	give, ok := stmts[1].(*Give)
	assert.True(t, ok)
	_, ok = give.Value.(*ArrayIndex)
	assert.True(t, ok)
}

func TestParseProgram_IfElifElse(t *testing.T) {
	src := `if (1 == 1) { give(1); } elif (1 == 2) { give(2); } else { give(3); };`
	stmts, err := ParseProgram(src)
	assert.NoError(t, err)
	ifNode, ok := stmts[0].(*If)
	assert.True(t, ok)
	assert.Len(t, ifNode.Cases, 2)
	assert.NotNil(t, ifNode.ElseBody)
}

func TestParseProgram_WhileLoop(t *testing.T) {
	src := `while (i < 3) { give(i); i = i + 1; };`
	stmts, err := ParseProgram(src)
	assert.NoError(t, err)
	_, ok := stmts[0].(*While)
	assert.True(t, ok)
}

func TestParseProgram_ForLoop(t *testing.T) {
	src := `for (int i = 0; i < 3; i = i + 1) { give(i); };`
	stmts, err := ParseProgram(src)
	assert.NoError(t, err)
	forNode, ok := stmts[0].(*For)
	assert.True(t, ok)
	assert.Equal(t, "i", forNode.Decl.Name)
	assert.Equal(t, "i", forNode.Inc.Name)
}

func TestParseProgram_AndOrChainBelowComparison(t *testing.T) {
	stmts, err := ParseProgram(`give(1 == 1 and 2 == 2 or 0);`)
	assert.NoError(t, err)
	give := stmts[0].(*Give)
	outer, ok := give.Value.(*BinOp)
	assert.True(t, ok)
	assert.Equal(t, "or", string(outer.Op.Type))
}

func TestParseProgram_NotPrefix(t *testing.T) {
	stmts, err := ParseProgram(`give(not 0);`)
	assert.NoError(t, err)
	give := stmts[0].(*Give)
	_, ok := give.Value.(*UnaryOp)
	assert.True(t, ok)
}

func TestParseProgram_CharCast(t *testing.T) {
	stmts, err := ParseProgram(`give(char(65));`)
	assert.NoError(t, err)
	give := stmts[0].(*Give)
	_, ok := give.Value.(*CharCast)
	assert.True(t, ok)
}

func TestParseProgram_MissingSemicolonIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(`int a = 5`)
	assert.Error(t, err)
	var syn *SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestParseProgram_UnexpectedTokenIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(`int a = ;`)
	assert.Error(t, err)
}
