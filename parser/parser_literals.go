/*
File    : waspi/parser/parser_literals.go
Author  : waspi contributors
*/
package parser

import (
	"strconv"

	"github.com/waspi-lang/waspi/lexer"
)

// parseIntLit converts an INT_CONST token's literal text to a NumLit. The
// lexer guarantees the text is a valid `[0-9]+` run, so a conversion
// failure here would indicate a lexer bug, not user input.
func parseIntLit(tok lexer.Token) (*NumLit, error) {
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &SyntaxError{Line: tok.Line, Column: tok.Column, Message: "malformed integer literal " + tok.Literal}
	}
	return &NumLit{IntValue: n}, nil
}

// parseDecLit converts a DEC_CONST token's literal text to a NumLit.
func parseDecLit(tok lexer.Token) (*NumLit, error) {
	f, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, &SyntaxError{Line: tok.Line, Column: tok.Column, Message: "malformed decimal literal " + tok.Literal}
	}
	return &NumLit{IsDecimal: true, DecValue: f}, nil
}
