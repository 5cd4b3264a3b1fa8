package lexer

import "strings"

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokMinus,
		'*': TokStar,
		'/': TokSlash,
		'>': TokGreater,
		'<': TokLess,
		'=': TokAssign,
		',': TokComma,
		'(': TokParenLeft,
		')': TokParenRight,
		'{': TokBraceLeft,
		'}': TokBraceRight,
	}

	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(" \t\r\n")
		l.ignore()
		return lexText
	case r == '#':
		return lexComment
	case r == '"':
		return lexString
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

// lexComment consumes '#' through end of line, emitting nothing.
func lexComment(l *Lexer) stateFn {
	for {
		r := l.next()
		if r == 0 || r == '\n' {
			break
		}
	}
	l.ignore()
	return lexText
}

// lexNumber accepts digits with a single optional decimal point.
// The lexeme is kept verbatim; the parser converts it to an exact rational.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	if l.peek() == '.' {
		l.next()
		l.acceptRun(digitChars)
	}
	return l.emit(TokNumber)
}

// lexString scans a double-quoted literal. The literal runs verbatim until
// the next '"', no escape sequence processing.
func lexString(l *Lexer) stateFn {
	l.accept(`"`)
	l.ignore()
	for {
		r := l.next()
		if r == 0 {
			return l.errorf("unclosed string literal")
		}
		if r == '"' {
			break
		}
	}
	tok := l.thisToken(TokString)
	tok.Value = strings.TrimSuffix(tok.Value, `"`)
	return l.emitToken(tok)
}

// lexIdentifier scans an identifier and resolves it against the keyword table.
func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	tok := l.thisToken(TokIdentifier)
	if kw, ok := keywords[tok.Value]; ok {
		tok.Type = kw
	}
	return l.emitToken(tok)
}
