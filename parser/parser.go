/*
File    : waspi/parser/parser.go
Author  : waspi contributors

Package parser implements a recursive-descent parser with one-token
lookahead over the language's grammar (spec §4.2). Unlike a Pratt parser,
precedence here is expressed directly as a chain of grammar productions
(comp_expr > expr > term > factor), which matches the grammar as given
rather than a table of binding powers.

The parser raises on the first syntax error and aborts the rest of the
parse, rather than collecting multiple errors — a deliberate departure
from the teacher's error-collecting Pratt parser, because the language's
grammar has no statement-level recovery point to resume from.
*/
package parser

import (
	"fmt"

	"github.com/waspi-lang/waspi/lexer"
)

// SyntaxError is raised for any unexpected-token condition during parsing.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

// Parser holds a cursor over the token stream produced by lex.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
	peek lexer.Token
}

// New creates a Parser over src, priming the one-token lookahead.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts curr := peek and reads a fresh peek token from the lexer.
func (p *Parser) advance() error {
	p.curr = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

// at reports whether curr is of the given type.
func (p *Parser) at(t lexer.TokenType) bool {
	return p.curr.Type == t
}

// peekAt reports whether peek is of the given type.
func (p *Parser) peekAt(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expect checks curr is of type t, consumes it, and advances; otherwise it
// raises a SyntaxError naming the offending token.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if !p.at(t) {
		return lexer.Token{}, p.errorf("expected %s, got %s", t, p.curr)
	}
	tok := p.curr
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Line:    p.curr.Line,
		Column:  p.curr.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

// ParseProgram parses the full input as a sequence of semicolon-terminated
// top-level statements (spec §4.2: program := statement (';' statement)* ';').
func ParseProgram(src string) ([]Stmt, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.at(lexer.EOF_TYPE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}
