package parser

import (
	"github.com/kodeflow/monkey/ast"
	"github.com/kodeflow/monkey/token"
)

// parseLetStatement parses `let <ident> = <expr>;`.
//
// The source this parser is descended from skipped tokens with a
// `while curToken == SEMICOLON` loop here, which never fires because
// the cursor sits on ASSIGN (or the parsed expression's last token),
// not SEMICOLON, at that point — the loop was dead code and the
// trailing semicolon was left unconsumed for the caller to trip over.
// This version parses the value expression directly and then advances
// past a trailing semicolon once, if present, which is what the
// dead loop was presumably meant to do.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses `return <expr>;`.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression used as a
// statement. The trailing semicolon is optional so that REPL-style
// single expressions (and the last statement of a source file) don't
// need one.
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseBlockStatement parses a brace-delimited run of statements,
// starting on the { token and ending with curToken on the matching }
// (or on EOF, for unterminated input — the missing brace is not
// reported as an error).
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}
