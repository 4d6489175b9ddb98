/*
File    : waspi/parser/parser_expressions.go
Author  : waspi contributors

Expression parsing in precedence order, highest to lowest:
factor > term > expr > comp_expr (comparison, with prefix `not`) > the
and/or chain, which spec §4.2's prose places "below comparison, above
statement" — every other production's reference to `comp_expr` actually
means this and/or level, so parseCompExpr is the entry point used
throughout the rest of the parser.
*/
package parser

import "github.com/waspi-lang/waspi/lexer"

var comparisonOps = map[lexer.TokenType]bool{
	lexer.EQ: true, lexer.NE: true,
	lexer.LT: true, lexer.LTE: true,
	lexer.GT: true, lexer.GTE: true,
}

// parseCompExpr is the entry point used everywhere the grammar names
// `comp_expr` as a subexpression: it layers the and/or chain over the
// literal comparison-level production.
func (p *Parser) parseCompExpr() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.AND_KEY) || p.at(lexer.OR_KEY) {
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseTypeCast parses `type_cast := 'char' '(' comp_expr ')' | comp_expr`.
// factor already implements the `char` alternative, so this is just an
// alias kept for fidelity to the grammar's naming.
func (p *Parser) parseTypeCast() (Expr, error) {
	return p.parseCompExpr()
}

// parseComparison implements the literal `comp_expr` production: an
// optional prefix `not`, then a left-associative chain of comparisons
// over `expr`.
func (p *Parser) parseComparison() (Expr, error) {
	if p.at(lexer.NOT_KEY) {
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: op, Operand: operand}, nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.curr.Type] {
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseExpr implements `expr := term ( (PLUS|MIN) term )*`.
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.PLUS) || p.at(lexer.MIN) {
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseTerm implements `term := factor ( (MUL|DIV|MOD) factor )*`.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.MUL) || p.at(lexer.DIV) || p.at(lexer.MOD) {
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseFactor implements the `factor` production (spec §4.2).
func (p *Parser) parseFactor() (Expr, error) {
	switch p.curr.Type {
	case lexer.INT_CONST:
		tok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseIntLit(tok)

	case lexer.DEC_CONST:
		tok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseDecLit(tok)

	case lexer.WORD_CONST:
		tok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StrLit{Value: tok.Literal}, nil

	case lexer.IDENTIFIER:
		tok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.at(lexer.SLBRACES) {
			return &VarRef{Name: tok.Literal, Tok: tok}, nil
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
		return &ArrayIndex{Name: tok.Literal, Index: index, Tok: tok}, nil

	case lexer.PLUS, lexer.MIN:
		op := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: op, Operand: operand}, nil

	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.CHAR_KEY:
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
		return &CharCast{Operand: expr}, nil

	default:
		return nil, p.errorf("unexpected token %s", p.curr)
	}
}
