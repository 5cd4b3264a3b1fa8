// Package executor walks a nimbus syntax tree, maintaining the variable
// environment and the function table.
//
// Evaluation is single threaded, synchronous, and depth first. Each function
// invocation runs in a call frame holding a copy of the caller's variable
// bindings: a callee never observes bindings the caller creates after the
// call begins, and the caller never observes the callee's locals after
// return. The function table is shared across frames and mutated only by
// function-definition statements.
package executor

import (
	"fmt"
	"io"
	"maps"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.creack.net/nimbus/ast"
	"go.creack.net/nimbus/lexer"
	"go.creack.net/nimbus/parser"
)

// FileExt is the script file extension, used to resolve import targets:
// `import "foo"` loads foo.nbs next to the importing file.
const FileExt = "nbs"

type Executor struct {
	vars  map[string]*big.Rat
	funcs map[string]ast.FuncDef

	dir    string // Import resolution context.
	stdout io.Writer

	// Absolute paths of the imports currently in flight, outermost first.
	// Used to reject cycles.
	importStack []string
}

// New creates an executor with an empty environment. Imports resolve
// relative to dir. A nil stdout defaults to os.Stdout.
func New(dir string, stdout io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Executor{
		vars:   map[string]*big.Rat{},
		funcs:  map[string]ast.FuncDef{},
		dir:    dir,
		stdout: stdout,
	}
}

// RunScript reads, tokenizes, parses, and executes the script at path.
func RunScript(path string, stdout io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return RunSource(string(src), filepath.Dir(path), stdout)
}

// RunSource executes src, resolving imports relative to dir.
func RunSource(src, dir string, stdout io.Writer) error {
	prog, err := parser.Parse(lexer.New(src))
	if err != nil {
		return err
	}
	return New(dir, stdout).Run(prog)
}

// Run executes the program's statements in order, stopping at the first
// failure.
func (e *Executor) Run(prog ast.Program) error {
	for _, stmt := range prog.Stmts {
		if err := e.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute performs a statement's effects.
func (e *Executor) Execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case ast.Assign:
		value, err := e.Evaluate(s.Value)
		if err != nil {
			return err
		}
		e.vars[s.Name] = value
		return nil

	case ast.Print:
		// A string literal prints verbatim, anything else prints its
		// decimal rendering.
		if str, ok := s.Value.(ast.StringLit); ok {
			_, err := fmt.Fprintln(e.stdout, str.Value)
			return err
		}
		value, err := e.Evaluate(s.Value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.stdout, FormatRat(value))
		return err

	case ast.If:
		cond, err := e.Evaluate(s.Cond)
		if err != nil {
			return err
		}
		if cond.Sign() != 0 {
			_, err := e.evalBlock(s.Then)
			return err
		}
		if s.Else != nil {
			_, err := e.evalBlock(s.Else)
			return err
		}
		return nil

	case ast.FuncDef:
		e.funcs[s.Name] = s
		return nil

	case ast.Import:
		return e.importModule(s.Name)

	case *ast.Block:
		_, err := e.evalBlock(s)
		return err

	case ast.ExprStmt:
		_, err := e.Evaluate(s.X)
		return err

	default:
		return evalErrorf("unexpected statement node %T", stmt)
	}
}

// Evaluate computes an expression's value in the current environment.
func (e *Executor) Evaluate(expr ast.Expr) (*big.Rat, error) {
	switch x := expr.(type) {
	case ast.NumberLit:
		return x.Value, nil

	case ast.StringLit:
		return nil, evalErrorf("string literal %q used as a numeric value", x.Value)

	case ast.Ident:
		value, ok := e.vars[x.Name]
		if !ok {
			return nil, evalErrorf("undefined variable %q", x.Name)
		}
		return value, nil

	case ast.BinaryExpr:
		return e.evalBinary(x)

	case ast.BuiltinExpr:
		args := make([]*big.Rat, 0, len(x.Args))
		for _, arg := range x.Args {
			value, err := e.Evaluate(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, value)
		}
		return e.evalBuiltin(x, args)

	case ast.ConstExpr:
		value, ok := constants[x.Const]
		if !ok {
			return nil, evalErrorf("unknown constant %s", x.Const)
		}
		return value, nil

	case ast.CallExpr:
		return e.call(x)

	case ast.BlockExpr:
		return e.evalBlock(x.Block)

	default:
		return nil, evalErrorf("unexpected expression node %T", expr)
	}
}

func (e *Executor) evalBinary(b ast.BinaryExpr) (*big.Rat, error) {
	left, err := e.Evaluate(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case lexer.TokPlus:
		return new(big.Rat).Add(left, right), nil
	case lexer.TokMinus:
		return new(big.Rat).Sub(left, right), nil
	case lexer.TokStar:
		return new(big.Rat).Mul(left, right), nil
	case lexer.TokSlash:
		if right.Sign() == 0 {
			return nil, evalErrorf("division by zero")
		}
		return new(big.Rat).Quo(left, right), nil
	case lexer.TokGreater:
		return boolRat(left.Cmp(right) > 0), nil
	case lexer.TokLess:
		return boolRat(left.Cmp(right) < 0), nil
	default:
		return nil, evalErrorf("unexpected operator %s", b.Op)
	}
}

// boolRat maps a comparison result to exactly 1 or exactly 0.
func boolRat(b bool) *big.Rat {
	if b {
		return big.NewRat(1, 1)
	}
	return new(big.Rat)
}

// call invokes a user-defined function: arguments are evaluated in the
// caller's environment, then the body runs in a fresh frame seeded with a
// copy of the caller's bindings plus the parameters.
func (e *Executor) call(c ast.CallExpr) (*big.Rat, error) {
	fn, ok := e.funcs[c.Name]
	if !ok {
		return nil, evalErrorf("undefined function %q", c.Name)
	}
	if len(c.Args) != len(fn.Params) {
		return nil, evalErrorf("function %q expects %d argument(s), got %d",
			c.Name, len(fn.Params), len(c.Args))
	}

	args := make([]*big.Rat, 0, len(c.Args))
	for _, arg := range c.Args {
		value, err := e.Evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	frame := &Executor{
		vars:        maps.Clone(e.vars),
		funcs:       e.funcs,
		dir:         e.dir,
		stdout:      e.stdout,
		importStack: e.importStack,
	}
	for i, param := range fn.Params {
		frame.vars[param] = args[i]
	}
	return frame.evalBlock(fn.Body)
}

// evalBlock executes the block's statements in order and returns the value
// of the last expression statement, zero if there is none.
func (e *Executor) evalBlock(b *ast.Block) (*big.Rat, error) {
	last := new(big.Rat)
	for _, stmt := range b.Stmts {
		if es, ok := stmt.(ast.ExprStmt); ok {
			value, err := e.Evaluate(es.X)
			if err != nil {
				return nil, err
			}
			last = value
			continue
		}
		if err := e.Execute(stmt); err != nil {
			return nil, err
		}
	}
	return last, nil
}

// importModule runs the whole pipeline against the named sibling file in an
// isolated environment, then merges only its function definitions.
func (e *Executor) importModule(name string) error {
	path := filepath.Join(e.dir, name+"."+FileExt)
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if slices.Contains(e.importStack, abs) {
		chain := append(slices.Clone(e.importStack), abs)
		for i, elem := range chain {
			chain[i] = filepath.Base(elem)
		}
		return &ImportError{Module: name, Err: fmt.Errorf("cycle detected: %s",
			strings.Join(chain, " -> "))}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return &ImportError{Module: name, Err: err}
	}
	prog, err := parser.Parse(lexer.New(string(src)))
	if err != nil {
		return &ImportError{Module: name, Err: err}
	}

	sub := New(filepath.Dir(path), e.stdout)
	sub.importStack = append(slices.Clone(e.importStack), abs)
	if err := sub.Run(prog); err != nil {
		return &ImportError{Module: name, Err: err}
	}

	// Only the function table merges back; the module's variable bindings
	// stay behind.
	maps.Copy(e.funcs, sub.funcs)
	return nil
}

// FormatRat renders the nearest double-precision decimal approximation of
// an exact rational, matching the display contract of print. Always plain
// decimal, never scientific notation.
func FormatRat(r *big.Rat) string {
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}
