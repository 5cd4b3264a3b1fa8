package ast

import (
	"fmt"
	"math/big"
	"strings"

	"go.creack.net/nimbus/lexer"
)

// NumberLit is a numeric literal, held as an exact rational. A lexeme with
// a decimal point is the exact finite decimal fraction, never a float.
type NumberLit struct {
	Value *big.Rat
}

func (NumberLit) exprNode() {}

func (n NumberLit) Dump() string {
	return n.Value.RatString()
}

// StringLit is a double-quoted literal, stored without the quotes.
type StringLit struct {
	Value string
}

func (StringLit) exprNode() {}

func (s StringLit) Dump() string {
	return fmt.Sprintf("%q", s.Value)
}

// Ident references a variable binding.
type Ident struct {
	Name string
}

func (Ident) exprNode() {}

func (i Ident) Dump() string {
	return i.Name
}

// BinaryExpr applies one of `+ - * / > <` to two sub-expressions.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

func (BinaryExpr) exprNode() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("%s %s %s", b.Left.Dump(), b.Op, b.Right.Dump())
}

// CallExpr invokes a user-defined function by name.
type CallExpr struct {
	Name string
	Args []Expr
}

func (CallExpr) exprNode() {}

func (c CallExpr) Dump() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.Dump())
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// BuiltinExpr invokes a fixed-arity builtin (conversion or formula),
// identified by its keyword token type.
type BuiltinExpr struct {
	Builtin lexer.TokenType
	Args    []Expr
}

func (BuiltinExpr) exprNode() {}

func (b BuiltinExpr) Dump() string {
	args := make([]string, 0, len(b.Args))
	for _, arg := range b.Args {
		args = append(args, arg.Dump())
	}
	return fmt.Sprintf("%s(%s)", b.Builtin, strings.Join(args, ", "))
}

// ConstExpr references a named physical constant keyword.
type ConstExpr struct {
	Const lexer.TokenType
}

func (ConstExpr) exprNode() {}

func (c ConstExpr) Dump() string {
	return c.Const.String()
}

// BlockExpr is a braced sub-expression in expression position.
type BlockExpr struct {
	Block *Block
}

func (BlockExpr) exprNode() {}

func (b BlockExpr) Dump() string {
	return b.Block.Dump()
}
