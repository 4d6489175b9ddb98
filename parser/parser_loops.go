/*
File    : waspi/parser/parser_loops.go
Author  : waspi contributors
*/
package parser

import "github.com/waspi-lang/waspi/lexer"

// parseWhile parses `'while' '(' comp_expr ')' block_body`.
func (p *Parser) parseWhile() (Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCompExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body}, nil
}

// parseFor parses `'for' '(' var_decl ';' comp_expr ';' var_decl ')' block_body`.
// decl and inc must each resolve to a VarAssign (spec §4.5: "the decl
// contributes a name visible only inside the loop").
func (p *Parser) parseFor() (Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	declStmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	decl, ok := declStmt.(*VarAssign)
	if !ok {
		return nil, p.errorf("expected a declaration or assignment as the for-loop initializer")
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}

	cond, err := p.parseCompExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}

	incStmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	inc, ok := incStmt.(*VarAssign)
	if !ok {
		return nil, p.errorf("expected an assignment as the for-loop increment")
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return &For{Decl: decl, Cond: cond, Inc: inc, Body: body}, nil
}
