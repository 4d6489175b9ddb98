/*
File    : waspi/parser/parser_statements.go
Author  : waspi contributors
*/
package parser

import "github.com/waspi-lang/waspi/lexer"

// parseStatement parses one production of the `statement` rule (spec §4.2).
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.curr.Type {
	case lexer.INT_KEY, lexer.DEC_KEY:
		return p.parseNumericDecl()
	case lexer.WORD_KEY:
		return p.parseWordDecl()
	case lexer.GIVE_KEY:
		return p.parseGive()
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.LBRACES:
		return p.parseBlock()
	case lexer.IDENTIFIER:
		return p.parseIdentifierLedStatement()
	default:
		expr, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Value: expr}, nil
	}
}

// parseBlockBody parses `'{' statement (';' statement)* ';' '}'`, the
// body shared by blocks, if/elif/else, while, and for (spec §4.2
// `block_body`).
func (p *Parser) parseBlockBody() ([]Stmt, error) {
	if _, err := p.expect(lexer.LBRACES); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.at(lexer.RBRACES) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RBRACES); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseBlock parses a standalone `{ ... }` block statement.
func (p *Parser) parseBlock() (Stmt, error) {
	stmts, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return &Block{Statements: stmts}, nil
}

// parseGive parses `'give' '(' comp_expr ')'`.
func (p *Parser) parseGive() (Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseCompExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &Give{Value: expr}, nil
}

// parseIdentifierLedStatement disambiguates the three IDENT-led statement
// forms (spec §4.2): plain reassignment, array element assignment/read, or
// a bare expression statement (the IDENT is just part of a larger
// comp_expr, e.g. `a + b;`).
func (p *Parser) parseIdentifierLedStatement() (Stmt, error) {
	name := p.curr
	switch p.peek.Type {
	case lexer.ASSIGN:
		if err := p.advance(); err != nil { // consume IDENT
			return nil, err
		}
		if err := p.advance(); err != nil { // consume '='
			return nil, err
		}
		value, err := p.parseTypeCast()
		if err != nil {
			return nil, err
		}
		return &VarAssign{Name: name.Literal, Value: value, Tok: name}, nil

	case lexer.SLBRACES:
		if err := p.advance(); err != nil { // consume IDENT
			return nil, err
		}
		if err := p.advance(); err != nil { // consume '['
			return nil, err
		}
		index, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SRBRACES); err != nil {
			return nil, err
		}
		if p.at(lexer.ASSIGN) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseCompExpr()
			if err != nil {
				return nil, err
			}
			return &ArrayElemAssign{Name: name.Literal, Index: index, Value: value, Tok: name}, nil
		}
		return &ExprStmt{Value: &ArrayIndex{Name: name.Literal, Index: index, Tok: name}}, nil

	default:
		expr, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Value: expr}, nil
	}
}
