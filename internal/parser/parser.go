// Package parser builds an AST from a token stream (spec.md §6,
// "Parser → Core interface"), grounded on the teacher's internal/parser
// precedence-climbing structure.
//
// Grammar (highest to lowest precedence omitted for brevity; see the method
// names below, which follow it top to bottom):
//
//	program     → declaration* EOF ;
//	declaration → classDecl | funDecl | varDecl | statement ;
//	classDecl   → "class" IDENT ( "<" IDENT )? "{" function* "}" ;
//	funDecl     → "fun" function ;
//	function    → IDENT "(" parameters? ")" block ;
//	varDecl     → "var" IDENT ( "=" expression )? ";" ;
//	statement   → exprStmt | forStmt | ifStmt | printStmt
//	            | returnStmt | whileStmt | block ;
//	forStmt     → "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement ;
//	expression  → assignment ;
//	assignment  → ( call "." )? IDENT "=" assignment | logic_or ;
package parser

import (
	"fmt"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/token"
)

// maxArgs is the parse-time limit on parameter/argument count (spec.md §8).
const maxArgs = 255

// Error is a single parse failure, formatted per spec.md §6:
// "[line N] Error at '<lexeme>': <message>" (or "at end").
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	where := "at '" + e.Token.Lexeme + "'"
	if e.Token.Type == token.EOF {
		where = "at end"
	}
	return fmt.Sprintf("[line %d] Error %s: %s", e.Token.Line, where, e.Message)
}

// Parser is a recursive-descent parser over a fixed token slice.
type Parser struct {
	tokens  []token.Token
	current int
	errs    []*Error
}

// New creates a Parser over the given token stream (normally the output of
// lexer.ScanTokens).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream into a list of top-level statements.
// On a parse error it synchronizes at the next statement boundary and
// continues, so a single program can report more than one error per run
// (spec.md §6). Errors() reports whatever accumulated.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Errors returns every parse error accumulated by Parse.
func (p *Parser) Errors() []*Error {
	return p.errs
}

// ---- declarations ----

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
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.Ident, "Expect class name.")

	var superclass *ast.Var
	if p.match(token.Less) {
		p.consume(token.Ident, "Expect superclass name.")
		superclass = &ast.Var{Name: p.previous()}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method").(*ast.FunctionStmt))
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.Ident, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(token.Ident, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Ident, "Expect variable name.")
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// ---- statements ----

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for` into `while` at parse time (SPEC_FULL.md §4):
// there is no ForStmt AST node, matching the reference interpreter.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.check(token.Var):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExprStmt{Expression: expr}
}

// ---- expressions ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Var:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Ident, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number):
		return &ast.Literal{Value: *p.previous().Literal.(*float64)}
	case p.match(token.String):
		return &ast.Literal{Value: *p.previous().Literal.(*string)}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Ident, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Ident):
		return &ast.Var{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}

// ---- token stream primitives ----

// parseError is the sentinel recover()ed by declaration() to resume parsing
// at the next statement boundary (spec.md §6: "the parser synchronizes at
// statement boundaries after each error").
type parseError struct{}

func (p *Parser) errorAt(tok token.Token, message string) parseError {
	p.errs = append(p.errs, &Error{Token: tok, Message: message})
	return parseError{}
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

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return t == token.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so a single parse error doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
