/*
File    : waspi/parser/parser_declarations.go
Author  : waspi contributors

Parses `int`/`dec`/`word` declarations, including the array-declaration
form of `int`/`dec`. Uninitialized scalars are left with a nil Value;
the evaluator fills in the spec's default zero value (§4.2 "int and dec
with no initializer default to 0 and 0.0 respectively").
*/
package parser

import "github.com/waspi-lang/waspi/lexer"

// parseNumericDecl parses the `('int'|'dec') IDENT ...` alternative of
// var_decl, which may continue as a scalar or array declaration.
func (p *Parser) parseNumericDecl() (Stmt, error) {
	keyword := p.curr.Type
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	switch {
	case p.at(lexer.ASSIGN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		return &VarAssign{Name: name.Literal, Value: value, DeclaredType: keyword, Tok: name}, nil

	case p.at(lexer.SLBRACES):
		return p.parseArrayDecl(name, keyword)

	default:
		return &VarAssign{Name: name.Literal, Value: nil, DeclaredType: keyword, Tok: name}, nil
	}
}

// parseArrayDecl parses the `'[' comp_expr ']' ( '=' '{' comp_expr (',' comp_expr)* '}' )?`
// tail of an array declaration.
func (p *Parser) parseArrayDecl(name lexer.Token, keyword lexer.TokenType) (Stmt, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	size, err := p.parseCompExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SRBRACES); err != nil {
		return nil, err
	}

	init := &ArrayInit{Size: size}
	if p.at(lexer.ASSIGN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LBRACES); err != nil {
			return nil, err
		}
		for {
			elem, err := p.parseCompExpr()
			if err != nil {
				return nil, err
			}
			init.Elements = append(init.Elements, elem)
			if p.at(lexer.COMMA) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(lexer.RBRACES); err != nil {
			return nil, err
		}
	}

	return &ArrayAssign{Name: name.Literal, Init: init, DeclaredType: keyword, Tok: name}, nil
}

// parseWordDecl parses `'word' IDENT ( '=' type_cast )?`.
func (p *Parser) parseWordDecl() (Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.ASSIGN) {
		return &VarAssign{Name: name.Literal, Value: nil, DeclaredType: lexer.WORD_KEY, Tok: name}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseTypeCast()
	if err != nil {
		return nil, err
	}
	return &VarAssign{Name: name.Literal, Value: value, DeclaredType: lexer.WORD_KEY, Tok: name}, nil
}
