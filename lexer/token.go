package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals + identifiers.
	TokNumber
	TokString
	TokIdentifier

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokGreater
	TokLess
	TokAssign

	// Delimiters.
	TokComma
	TokParenLeft
	TokParenRight
	TokBraceLeft
	TokBraceRight

	// Keywords.
	TokPrint
	TokIf
	TokElse
	TokFunction
	TokImport
	TokCall

	// Builtin conversions and formulas.
	TokDewpoint
	TokFToC
	TokCToF
	TokCToK
	TokKToC
	TokFToK
	TokKToF

	// Named physical constants.
	TokPi
	TokKelvin
	TokRD
	TokCP
	TokP0
	TokLV
	TokCW
	TokRhoAir
	TokRhoWater
	TokG

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokString:     "STRING",
	TokIdentifier: "IDENTIFIER",

	TokPlus:    "+",
	TokMinus:   "-",
	TokStar:    "*",
	TokSlash:   "/",
	TokGreater: ">",
	TokLess:    "<",
	TokAssign:  "=",

	TokComma:      "COMMA",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokBraceLeft:  "BRACE_LEFT",
	TokBraceRight: "BRACE_RIGHT",

	TokPrint:    "print",
	TokIf:       "if",
	TokElse:     "else",
	TokFunction: "function",
	TokImport:   "import",
	TokCall:     "call",

	TokDewpoint: "dewpoint",
	TokFToC:     "ftoc",
	TokCToF:     "ctof",
	TokCToK:     "ctok",
	TokKToC:     "ktoc",
	TokFToK:     "ftok",
	TokKToF:     "ktof",

	TokPi:       "_pi_",
	TokKelvin:   "_kelvin_",
	TokRD:       "_rd_",
	TokCP:       "_cp_",
	TokP0:       "_p0_",
	TokLV:       "_lv_",
	TokCW:       "_cw_",
	TokRhoAir:   "_rho_air_",
	TokRhoWater: "_rho_water_",
	TokG:        "_g_",
}

// Keyword lookup for identifiers. Anything not in here
// lexes as a plain TokIdentifier.
var keywords = map[string]TokenType{
	"print":    TokPrint,
	"if":       TokIf,
	"else":     TokElse,
	"function": TokFunction,
	"import":   TokImport,
	"call":     TokCall,

	"dewpoint": TokDewpoint,
	"ftoc":     TokFToC,
	"ctof":     TokCToF,
	"ctok":     TokCToK,
	"ktoc":     TokKToC,
	"ftok":     TokFToK,
	"ktof":     TokKToF,

	"_pi_":        TokPi,
	"_kelvin_":    TokKelvin,
	"_rd_":        TokRD,
	"_cp_":        TokCP,
	"_p0_":        TokP0,
	"_lv_":        TokLV,
	"_cw_":        TokCW,
	"_rho_air_":   TokRhoAir,
	"_rho_water_": TokRhoWater,
	"_g_":         TokG,
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsBuiltin reports whether the token type is a fixed-arity builtin invocation.
func (tt TokenType) IsBuiltin() bool {
	return tt >= TokDewpoint && tt <= TokKToF
}

// IsConstant reports whether the token type is a named physical constant.
func (tt TokenType) IsConstant() bool {
	return tt >= TokPi && tt <= TokG
}

// Token represents a lexical token in a nimbus script.
type Token struct {
	Type  TokenType
	Value string

	pos  int
	line int
}

// Line returns the 1-based source line the token was produced on.
func (t Token) Line() int { return t.line }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.line, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.pos, t.Value)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%d:%d]: %s", t.line, t.pos, t.Value)
	return out
}

// Error is a lexical failure: a character that matches no token class.
type Error struct {
	Msg  string
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error: line %d: %s", e.Line, e.Msg)
}

// Err converts an error token into a *Error. Returns nil for any other token.
func (t Token) Err() error {
	if t.Type != TokError {
		return nil
	}
	return &Error{Msg: t.Value, Line: t.line}
}
