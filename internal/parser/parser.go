// Package parser implements the recursive-descent parser described in
// spec.md §4.2. It never panics out of Parse: a syntax error is recorded
// into the shared diagnostics.Report, the parser synchronizes to the next
// statement boundary, and parsing continues so multiple errors can be
// reported from a single pass.
package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/token"
)

const maxArgs = 255

// parseError unwinds a single declaration()/statement() attempt back to the
// synchronization point. It never escapes Parser.Parse.
type parseError struct{}

// Parser consumes a flat token slice and produces a list of statements.
type Parser struct {
	tokens  []token.Token
	current int
	report  *diagnostics.Report
}

// New creates a Parser over tokens, reporting syntax errors into report.
func New(tokens []token.Token, report *diagnostics.Report) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// Parse runs the parser to completion, returning every statement it could
// recover. Callers should check report.HadError() before evaluating the
// result (spec.md §7: evaluation is skipped when any static error fired).
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			statements = append(statements, decl)
		}
	}
	return statements
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or records a syntax error
// and unwinds the current declaration via parseError.
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a diagnostic anchored to tok and returns the unwind
// signal for the caller to panic with.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	if tok.Type == token.EOF {
		p.report.ErrorAtEnd(tok.Line, "%s", message)
	} else {
		p.report.Errorf(tok.Line, tok.Lexeme, "%s", message)
	}
	return parseError{}
}

// synchronize discards tokens until it finds a plausible statement
// boundary, per spec.md §4.2.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}

// declaration parses one top-level or block-level declaration, recovering
// at the statement boundary if parsing panics with a parseError.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")
	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionExpr
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.functionBody("method", token.Token{}))
	}

	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Methods: methods}
}

// function parses a named function declaration: `fun` has already been
// consumed by declaration().
func (p *Parser) function(kind string) ast.Stmt {
	keyword := p.previous()
	return &ast.FunctionStmt{Declaration: p.functionBody(kind, keyword)}
}

// functionBody parses `IDENT "(" parameters? ")" block`, shared by funDecl
// and class methods. keyword is the originating `fun` token for a
// declaration, or the zero token for a method (whose grammar has none).
func (p *Parser) functionBody(kind string, keyword token.Token) *ast.FunctionExpr {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionExpr{Keyword: keyword, Name: &name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
