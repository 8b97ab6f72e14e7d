// File: parser.go
// Title: Recursive Descent Parser
// Description: Builds a Program from a token stream. The first syntax error
//              aborts parsing; there is no recovery. Syntax the grammar
//              reserves for later is rejected with its own error category.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/mictylish/foundation/lang/ast"
	"github.com/msto63/mictylish/foundation/lang/diag"
	"github.com/msto63/mictylish/foundation/lang/lexer"
	"github.com/msto63/mictylish/foundation/lang/span"
	"github.com/msto63/mictylish/foundation/lang/token"
)

// Parser implements recursive descent parsing over a token slice
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a parser. A missing trailing EOF token is supplied.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		end := 0
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Span.End()
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, span.New(end, 0)))
	}
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses source in one call
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

// ParseProgram parses statements until end of input
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program, nil
}

// parseStatement dispatches on the leading token
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.Let:
		return p.parseLet()
	default:
		return nil, p.expected("statement")
	}
}

// parseLet parses: 'let' 'mut'? identifier '=' expression
func (p *Parser) parseLet() (ast.Stmt, error) {
	letTok := p.advance()

	mutable := false
	if p.check(token.Mut) {
		p.advance()
		mutable = true
	}

	nameTok := p.advance()
	if nameTok.Kind != token.Ident {
		return nil, diag.NewSyntaxError(
			fmt.Sprintf("expected identifier, found %s", nameTok.Kind.Label()),
			nameTok.Span,
		)
	}

	if _, err := p.expect(token.Equal, "'=' after let binding"); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Mutable:  mutable,
		Value:    value,
		At:       span.Cover(letTok.Span, value.Span()),
	}, nil
}

// parseExpression parses a primary and refuses a trailing pipe
func (p *Parser) parseExpression() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.check(token.PipeGreater) {
		return nil, &diag.SyntaxError{
			Message:  "pipe operator '|>' is not available yet",
			At:       p.peek().Span,
			Category: diag.CategoryUnsupported,
		}
	}
	return expr, nil
}

// parsePrimary parses literals, variable references and lists
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.advance()

	switch {
	case tok.Kind == token.Int:
		return &ast.IntLit{Value: tok.Int, At: tok.Span}, nil
	case tok.Kind == token.String:
		return &ast.StringLit{Value: tok.Text, At: tok.Span}, nil
	case tok.Kind == token.Ident:
		return &ast.Var{Name: tok.Text, At: tok.Span}, nil
	case tok.Kind == token.LBracket:
		return p.parseList(tok)
	case tok.Kind.IsKeyword():
		return nil, &diag.SyntaxError{
			Message:  fmt.Sprintf("expected expression, found reserved keyword %s", tok.Kind.Label()),
			At:       tok.Span,
			Category: diag.CategoryReserved,
		}
	default:
		return nil, diag.NewSyntaxError(
			fmt.Sprintf("expected expression, found %s", tok.Kind.Label()),
			tok.Span,
		)
	}
}

// parseList parses the rest of a list after its opening bracket
func (p *Parser) parseList(open token.Token) (ast.Expr, error) {
	var items []ast.Expr

	if !p.check(token.RBracket) {
		for {
			item, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			items = append(items, item)

			if !p.check(token.Comma) {
				break
			}
			p.advance() // consume ','
		}
	}

	closeTok, err := p.expect(token.RBracket, "']' to close list")
	if err != nil {
		return nil, err
	}

	return &ast.List{Items: items, At: span.Cover(open.Span, closeTok.Span)}, nil
}

// Utility methods

// peek returns the current token; at the end it keeps returning EOF
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// advance returns the current token and moves past it, never beyond EOF
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// check compares kinds only; payloads never take part in matching
func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) atEOF() bool {
	return p.check(token.EOF)
}

// expect consumes a token of the given kind or reports what was found
func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	if !p.check(kind) {
		return token.Token{}, p.expected(what)
	}
	return p.advance(), nil
}

// expected builds "expected X, found Y" at the current token
func (p *Parser) expected(what string) *diag.SyntaxError {
	tok := p.peek()
	return diag.NewSyntaxError(fmt.Sprintf("expected %s, found %s", what, tok.Kind.Label()), tok.Span)
}
