// Package ast defines the syntax tree for nimbus programs.
//
// A program is a flat list of statements. Every node exclusively owns its
// children; there is no sharing and no back-reference, so a tree can be
// walked or discarded without bookkeeping.
package ast

import "strings"

// Program represents the top-level program: an ordered list of statements.
type Program struct {
	Stmts []Stmt
}

func (p Program) Dump() string {
	out := make([]string, 0, len(p.Stmts))
	for _, stmt := range p.Stmts {
		out = append(out, stmt.Dump())
	}
	return strings.Join(out, "\n")
}

// Stmt is a statement node. The stmtNode marker closes the interface to
// this package.
type Stmt interface {
	Dump() string
	stmtNode()
}

// Expr is an expression node, evaluating to a value.
type Expr interface {
	Dump() string
	exprNode()
}
