/*
File    : waspi/lexer/lexer_utils.go
Author  : waspi contributors
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c is an ASCII letter (a-z, A-Z).
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlnumOrUnderscore reports whether c may continue an identifier:
// a letter, digit, or underscore, per the language's `[A-Za-z0-9_]*` rule.
func isAlnumOrUnderscore(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// isWhitespace reports whether c is one of the three whitespace characters
// the language recognizes as a token separator: space, tab, newline.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// readNumber scans a digit-led run starting at lex.Current, consuming
// `[0-9]+` optionally followed by a single `.` and more digits. A second
// `.` is not consumed — it terminates the number (per spec §4.1, "a second
// `.` terminates the number"), leaving the lexer positioned to tokenize
// whatever follows (e.g. a DOT token or the start of another number).
func readNumber(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position
	sawDot := false

	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && !sawDot {
		sawDot = true
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	literal := lex.Src[start:lex.Position]
	if sawDot {
		return NewTokenWithMetadata(DEC_CONST, literal, startLine, startCol)
	}
	return NewTokenWithMetadata(INT_CONST, literal, startLine, startCol)
}

// readIdentifier scans a letter-led run of `[A-Za-z0-9_]*` and classifies
// it as a keyword (Type equals the spelling) or a plain IDENTIFIER.
func readIdentifier(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position

	for isAlnumOrUnderscore(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	kind := lookupIdent(literal)
	if kind == IDENTIFIER {
		return NewTokenWithMetadata(IDENTIFIER, literal, startLine, startCol)
	}
	// Keyword tokens carry no payload; only Type matters.
	return NewTokenWithMetadata(kind, "", startLine, startCol)
}
