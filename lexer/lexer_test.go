package lexer

import (
	"testing"
)

// Helper function to test the lexer.
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF || tok.Type == TokError {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d", len(expectedTokens), len(tokens))
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerAssignment(t *testing.T) {
	input := "x = 5"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "x"},
		{Type: TokAssign, Value: "="},
		{Type: TokNumber, Value: "5"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerOperators(t *testing.T) {
	input := "1 + 2.5 * 3 / 4 - 5"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "2.5"},
		{Type: TokStar, Value: "*"},
		{Type: TokNumber, Value: "3"},
		{Type: TokSlash, Value: "/"},
		{Type: TokNumber, Value: "4"},
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "5"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerComparisons(t *testing.T) {
	input := "a > b < c"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "a"},
		{Type: TokGreater, Value: ">"},
		{Type: TokIdentifier, Value: "b"},
		{Type: TokLess, Value: "<"},
		{Type: TokIdentifier, Value: "c"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerKeywords(t *testing.T) {
	input := "print if else function import call"
	expectedTokens := []Token{
		{Type: TokPrint, Value: "print"},
		{Type: TokIf, Value: "if"},
		{Type: TokElse, Value: "else"},
		{Type: TokFunction, Value: "function"},
		{Type: TokImport, Value: "import"},
		{Type: TokCall, Value: "call"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerBuiltins(t *testing.T) {
	input := "dewpoint ftoc ctof ctok ktoc ftok ktof"
	expectedTokens := []Token{
		{Type: TokDewpoint, Value: "dewpoint"},
		{Type: TokFToC, Value: "ftoc"},
		{Type: TokCToF, Value: "ctof"},
		{Type: TokCToK, Value: "ctok"},
		{Type: TokKToC, Value: "ktoc"},
		{Type: TokFToK, Value: "ftok"},
		{Type: TokKToF, Value: "ktof"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerConstants(t *testing.T) {
	input := "_pi_ _kelvin_ _rd_ _cp_ _p0_ _lv_ _cw_ _rho_air_ _rho_water_ _g_"
	expectedTokens := []Token{
		{Type: TokPi, Value: "_pi_"},
		{Type: TokKelvin, Value: "_kelvin_"},
		{Type: TokRD, Value: "_rd_"},
		{Type: TokCP, Value: "_cp_"},
		{Type: TokP0, Value: "_p0_"},
		{Type: TokLV, Value: "_lv_"},
		{Type: TokCW, Value: "_cw_"},
		{Type: TokRhoAir, Value: "_rho_air_"},
		{Type: TokRhoWater, Value: "_rho_water_"},
		{Type: TokG, Value: "_g_"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerCallExpr(t *testing.T) {
	input := "print(ctof(0), x)"
	expectedTokens := []Token{
		{Type: TokPrint, Value: "print"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokCToF, Value: "ctof"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "0"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokComma, Value: ","},
		{Type: TokIdentifier, Value: "x"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerString(t *testing.T) {
	input := `print("hello world")`
	expectedTokens := []Token{
		{Type: TokPrint, Value: "print"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokString, Value: "hello world"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

// No escape-sequence processing: the literal runs verbatim until the next '"'.
func TestLexerStringNoEscapes(t *testing.T) {
	input := `"a\nb"`
	expectedTokens := []Token{
		{Type: TokString, Value: `a\nb`},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerComment(t *testing.T) {
	input := "x = 1 # first\n# full line\ny = 2"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "x"},
		{Type: TokAssign, Value: "="},
		{Type: TokNumber, Value: "1"},
		{Type: TokIdentifier, Value: "y"},
		{Type: TokAssign, Value: "="},
		{Type: TokNumber, Value: "2"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerBraces(t *testing.T) {
	input := "if (x > 1) { print(x) } else { }"
	expectedTokens := []Token{
		{Type: TokIf, Value: "if"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokIdentifier, Value: "x"},
		{Type: TokGreater, Value: ">"},
		{Type: TokNumber, Value: "1"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokBraceLeft, Value: "{"},
		{Type: TokPrint, Value: "print"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokIdentifier, Value: "x"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokBraceRight, Value: "}"},
		{Type: TokElse, Value: "else"},
		{Type: TokBraceLeft, Value: "{"},
		{Type: TokBraceRight, Value: "}"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerUnderscoreIdentifier(t *testing.T) {
	// Underscore-wrapped names that are not in the constant table stay
	// plain identifiers.
	input := "_foo_ importx"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "_foo_"},
		{Type: TokIdentifier, Value: "importx"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerUnexpectedChar(t *testing.T) {
	l := New("x = 5 @")
	var tok Token
	for {
		tok = l.NextToken()
		if tok.Type == TokError || tok.Type == TokEOF {
			break
		}
	}
	if tok.Type != TokError {
		t.Fatalf("Expected error token, got %s", tok)
	}
	err := tok.Err()
	if err == nil {
		t.Fatal("Expected Err() to return an error")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if lexErr.Line != 1 {
		t.Fatalf("Expected line 1, got %d", lexErr.Line)
	}
	// Error tokens carry the same absolute input offset as regular tokens.
	if tok.pos != 6 {
		t.Fatalf("Expected error token at offset 6, got %d", tok.pos)
	}
}

func TestLexerUnclosedString(t *testing.T) {
	l := New(`print("oops`)
	var tok Token
	for {
		tok = l.NextToken()
		if tok.Type == TokError || tok.Type == TokEOF {
			break
		}
	}
	if tok.Type != TokError {
		t.Fatalf("Expected error token, got %s", tok)
	}
}

func TestLexerLineTracking(t *testing.T) {
	l := New("x = 1\ny = 2")
	var last Token
	for {
		tok := l.NextToken()
		if tok.Type == TokEOF {
			break
		}
		last = tok
	}
	if last.Line() != 2 {
		t.Fatalf("Expected last token on line 2, got %d", last.Line())
	}
}
