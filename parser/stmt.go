package parser

import (
	"go.creack.net/nimbus/ast"
	"go.creack.net/nimbus/lexer"
)

func parseStatement(p *parser) ast.Stmt {
	switch p.curToken.Type {
	case lexer.TokIdentifier:
		if p.peek().Type == lexer.TokAssign {
			return parseAssignment(p)
		}
		// Not an assignment: a call or a bare value expression.
		return ast.ExprStmt{X: parseExpression(p)}
	case lexer.TokPrint:
		return parsePrint(p)
	case lexer.TokIf:
		return parseIf(p)
	case lexer.TokFunction:
		return parseFunctionDef(p)
	case lexer.TokImport:
		return parseImport(p)
	case lexer.TokCall:
		return parseCall(p)
	case lexer.TokBraceLeft:
		return parseBlock(p)
	default:
		// Anything that can start an expression is a bare expression
		// statement; a function body yields the last one's value.
		if canStartExpression(p.curToken.Type) {
			return ast.ExprStmt{X: parseExpression(p)}
		}
		p.unexpected()
		return nil
	}
}

func canStartExpression(tt lexer.TokenType) bool {
	return tt.IsOneOf(lexer.TokNumber, lexer.TokString, lexer.TokIdentifier, lexer.TokParenLeft) ||
		tt.IsBuiltin() || tt.IsConstant()
}

func parseAssignment(p *parser) ast.Stmt {
	name := p.consume(lexer.TokIdentifier).Value
	p.consume(lexer.TokAssign)
	return ast.Assign{Name: name, Value: parseExpression(p)}
}

func parsePrint(p *parser) ast.Stmt {
	p.consume(lexer.TokPrint)
	p.consume(lexer.TokParenLeft)
	expr := parseExpression(p)
	p.consume(lexer.TokParenRight)
	return ast.Print{Value: expr}
}

func parseIf(p *parser) ast.Stmt {
	p.consume(lexer.TokIf)
	p.consume(lexer.TokParenLeft)
	cond := parseExpression(p)
	p.consume(lexer.TokParenRight)
	then := parseBlock(p)

	var elseBranch *ast.Block
	if p.curToken.Type == lexer.TokElse {
		p.nextToken()
		elseBranch = parseBlock(p)
	}
	return ast.If{Cond: cond, Then: then, Else: elseBranch}
}

func parseFunctionDef(p *parser) ast.Stmt {
	p.consume(lexer.TokFunction)
	name := p.consume(lexer.TokIdentifier).Value
	p.consume(lexer.TokParenLeft)

	var params []string
	for p.curToken.Type != lexer.TokParenRight {
		params = append(params, p.consume(lexer.TokIdentifier).Value)
		if p.curToken.Type == lexer.TokComma {
			p.nextToken()
			// A parameter must follow the comma.
			p.expect(lexer.TokIdentifier)
		}
	}
	p.consume(lexer.TokParenRight)

	return ast.FuncDef{Name: name, Params: params, Body: parseBlock(p)}
}

func parseImport(p *parser) ast.Stmt {
	p.consume(lexer.TokImport)
	name := p.consume(lexer.TokString).Value
	return ast.Import{Name: name}
}

// parseCall handles the statement form `call(name(args))`.
func parseCall(p *parser) ast.Stmt {
	p.consume(lexer.TokCall)
	p.consume(lexer.TokParenLeft)
	name := p.consume(lexer.TokIdentifier).Value
	p.consume(lexer.TokParenLeft)
	args := parseArgs(p)
	p.consume(lexer.TokParenRight)
	p.consume(lexer.TokParenRight)
	return ast.ExprStmt{X: ast.CallExpr{Name: name, Args: args}}
}

// parseBlock parses a braced statement list, consuming both braces.
func parseBlock(p *parser) *ast.Block {
	p.consume(lexer.TokBraceLeft)
	block := &ast.Block{}
	for !p.curToken.Type.IsOneOf(lexer.TokBraceRight, lexer.TokEOF) {
		block.Stmts = append(block.Stmts, parseStatement(p))
	}
	p.consume(lexer.TokBraceRight)
	return block
}
