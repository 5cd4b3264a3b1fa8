package ast

import (
	"fmt"
	"strings"
)

// Block is a braced list of statements, executed strictly in order.
// A block used in expression position yields the value of its last
// expression statement.
type Block struct {
	Stmts []Stmt
}

func (Block) stmtNode() {}

func (b Block) Dump() string {
	out := make([]string, 0, len(b.Stmts))
	for _, stmt := range b.Stmts {
		out = append(out, stmt.Dump())
	}
	return "{ " + strings.Join(out, "\n") + " }"
}

// Assign binds the value of an expression to a name in the current
// environment, overwriting any prior binding.
type Assign struct {
	Name  string
	Value Expr
}

func (Assign) stmtNode() {}

func (a Assign) Dump() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.Dump())
}

// Print writes one line to standard output: the literal text for a string
// literal operand, the decimal rendering of the value otherwise.
type Print struct {
	Value Expr
}

func (Print) stmtNode() {}

func (p Print) Dump() string {
	return fmt.Sprintf("print(%s)", p.Value.Dump())
}

// If executes exactly one of its branches. Else may be nil.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (If) stmtNode() {}

func (i If) Dump() string {
	out := fmt.Sprintf("if (%s) %s", i.Cond.Dump(), i.Then.Dump())
	if i.Else != nil {
		out += " else " + i.Else.Dump()
	}
	return out
}

// FuncDef declares a user function: a parameter-name list and a body block.
type FuncDef struct {
	Name   string
	Params []string
	Body   *Block
}

func (FuncDef) stmtNode() {}

func (f FuncDef) Dump() string {
	return fmt.Sprintf("function %s(%s) %s", f.Name, strings.Join(f.Params, ", "), f.Body.Dump())
}

// Import loads a sibling module by name. The name carries no extension;
// resolution appends the configured one.
type Import struct {
	Name string
}

func (Import) stmtNode() {}

func (i Import) Dump() string {
	return fmt.Sprintf("import %q", i.Name)
}

// ExprStmt is a bare expression in statement position, e.g. the trailing
// `a + b` of a function body or a `call(...)` statement.
type ExprStmt struct {
	X Expr
}

func (ExprStmt) stmtNode() {}

func (e ExprStmt) Dump() string {
	return e.X.Dump()
}
