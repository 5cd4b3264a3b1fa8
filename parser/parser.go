// Package parser builds a nimbus syntax tree from a token stream using
// recursive descent with a single token of lookahead.
package parser

import (
	"fmt"
	"strings"

	"go.creack.net/nimbus/ast"
	"go.creack.net/nimbus/lexer"
)

// SyntaxError is an expected-token mismatch. Parsing is not resumable:
// the first mismatch aborts the whole file.
type SyntaxError struct {
	Expected []lexer.TokenType // Empty when no specific token was expected.
	Found    lexer.Token
	Line     int
	Msg      string // Free-form detail, overrides the expected/found rendering.
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("parse error: line %d: %s", e.Line, e.Msg)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error: line %d: unexpected token %s", e.Line, e.Found.Type)
	}
	kinds := make([]string, 0, len(e.Expected))
	for _, kind := range e.Expected {
		kinds = append(kinds, fmt.Sprintf("%q", kind.String()))
	}
	return fmt.Sprintf("parse error: line %d: expected token %s, found %q",
		e.Line, strings.Join(kinds, " or "), e.Found.Type.String())
}

type parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token

	peekToken *lexer.Token // Buffer.
}

func newParser(lex *lexer.Lexer) *parser {
	p := &parser{lex: lex}
	p.nextToken()
	return p
}

// Parse consumes the lexer and returns the program's top-level statements.
// The parser panics internally on the first mismatch; the panic is recovered
// here and surfaced as a *SyntaxError or *lexer.Error.
func Parse(lex *lexer.Lexer) (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	p := newParser(lex)
	for p.curToken.Type != lexer.TokEOF {
		prog.Stmts = append(prog.Stmts, parseStatement(p))
	}
	return prog, nil
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.peekToken != nil {
		p.curToken = *p.peekToken
		p.peekToken = nil
	} else {
		p.curToken = p.lex.NextToken()
	}
	if err := p.curToken.Err(); err != nil {
		panic(err)
	}
	return p.curToken
}

func (p *parser) peek() lexer.Token {
	if p.peekToken != nil {
		return *p.peekToken
	}
	tok := p.lex.NextToken()
	p.peekToken = &tok
	return tok
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	panic(&SyntaxError{Expected: kind, Found: p.curToken, Line: p.curToken.Line()})
}

// consume checks the current token type and advances past it.
func (p *parser) consume(kind ...lexer.TokenType) lexer.Token {
	tok := p.expect(kind...)
	p.nextToken()
	return tok
}

func (p *parser) unexpected() {
	panic(&SyntaxError{Found: p.curToken, Line: p.curToken.Line()})
}

func (p *parser) errorf(format string, args ...any) {
	panic(&SyntaxError{
		Found: p.curToken,
		Line:  p.curToken.Line(),
		Msg:   fmt.Sprintf(format, args...),
	})
}
