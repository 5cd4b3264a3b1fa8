package parser

import (
	"math/big"

	"go.creack.net/nimbus/ast"
	"go.creack.net/nimbus/lexer"
)

// Declared argument counts for the builtin invocations.
var builtinArity = map[lexer.TokenType]int{
	lexer.TokDewpoint: 2,
	lexer.TokFToC:     1,
	lexer.TokCToF:     1,
	lexer.TokCToK:     1,
	lexer.TokKToC:     1,
	lexer.TokFToK:     1,
	lexer.TokKToF:     1,
}

// parseExpression handles the additive/relational level: `+ - > <`,
// left-associative.
func parseExpression(p *parser) ast.Expr {
	node := parseTerm(p)
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus, lexer.TokGreater, lexer.TokLess) {
		op := p.curToken.Type
		p.nextToken()
		node = ast.BinaryExpr{Left: node, Op: op, Right: parseTerm(p)}
	}
	return node
}

// parseTerm handles the multiplicative level: `* /`.
func parseTerm(p *parser) ast.Expr {
	node := parseFactor(p)
	for p.curToken.Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		op := p.curToken.Type
		p.nextToken()
		node = ast.BinaryExpr{Left: node, Op: op, Right: parseFactor(p)}
	}
	return node
}

func parseFactor(p *parser) ast.Expr {
	switch tok := p.curToken; {
	case tok.Type == lexer.TokNumber:
		value, ok := new(big.Rat).SetString(tok.Value)
		if !ok {
			p.errorf("invalid number literal %q", tok.Value)
		}
		p.nextToken()
		return ast.NumberLit{Value: value}

	case tok.Type == lexer.TokString:
		p.nextToken()
		return ast.StringLit{Value: tok.Value}

	case tok.Type == lexer.TokIdentifier:
		p.nextToken()
		if p.curToken.Type == lexer.TokParenLeft {
			p.nextToken()
			args := parseArgs(p)
			p.consume(lexer.TokParenRight)
			return ast.CallExpr{Name: tok.Value, Args: args}
		}
		return ast.Ident{Name: tok.Value}

	case tok.Type.IsBuiltin():
		return parseBuiltin(p)

	case tok.Type.IsConstant():
		p.nextToken()
		return ast.ConstExpr{Const: tok.Type}

	case tok.Type == lexer.TokParenLeft:
		p.nextToken()
		expr := parseExpression(p)
		p.consume(lexer.TokParenRight)
		return expr

	case tok.Type == lexer.TokBraceLeft:
		return ast.BlockExpr{Block: parseBlock(p)}

	default:
		p.unexpected()
		return nil
	}
}

// parseBuiltin parses `name(arg[, arg...])` and enforces the declared arity.
func parseBuiltin(p *parser) ast.Expr {
	builtin := p.curToken.Type
	p.nextToken()
	p.consume(lexer.TokParenLeft)
	args := parseArgs(p)
	p.consume(lexer.TokParenRight)

	if want := builtinArity[builtin]; len(args) != want {
		p.errorf("%s expects %d argument(s), got %d", builtin, want, len(args))
	}
	return ast.BuiltinExpr{Builtin: builtin, Args: args}
}

// parseArgs parses a comma separated expression list, stopping at the
// closing parenthesis without consuming it. A trailing comma is rejected.
func parseArgs(p *parser) []ast.Expr {
	var args []ast.Expr
	for p.curToken.Type != lexer.TokParenRight {
		args = append(args, parseExpression(p))
		if p.curToken.Type == lexer.TokComma {
			p.nextToken()
			if p.curToken.Type == lexer.TokParenRight {
				p.errorf("trailing comma before closing parenthesis")
			}
			continue
		}
		p.expect(lexer.TokParenRight)
	}
	return args
}
