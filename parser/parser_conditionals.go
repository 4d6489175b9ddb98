/*
File    : waspi/parser/parser_conditionals.go
Author  : waspi contributors
*/
package parser

import "github.com/waspi-lang/waspi/lexer"

// parseIf parses `'if' '(' comp_expr ')' block_body ( 'elif' '(' comp_expr ')' block_body )* ( 'else' block_body )?`.
func (p *Parser) parseIf() (Stmt, error) {
	node := &If{}

	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	firstCase, err := p.parseIfCase()
	if err != nil {
		return nil, err
	}
	node.Cases = append(node.Cases, firstCase)

	for p.at(lexer.ELIF_KEY) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		c, err := p.parseIfCase()
		if err != nil {
			return nil, err
		}
		node.Cases = append(node.Cases, c)
	}

	if p.at(lexer.ELSE_KEY) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		node.ElseBody = body
	}

	return node, nil
}

// parseIfCase parses `'(' comp_expr ')' block_body` shared by `if`/`elif`.
func (p *Parser) parseIfCase() (IfCase, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return IfCase{}, err
	}
	cond, err := p.parseCompExpr()
	if err != nil {
		return IfCase{}, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return IfCase{}, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return IfCase{}, err
	}
	return IfCase{Cond: cond, Body: body}, nil
}
