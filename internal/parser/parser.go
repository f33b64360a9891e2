// Package parser turns a token stream into a *ast.Method. It is a single
// recursive-descent pass (spec.md §4.1): newlines and semicolons are pure
// statement separators and carry no grammatical meaning, so the parser
// discards them at the token-fetching layer and relies on each construct's
// leading keyword or bracket to decide what it is looking at.
package parser

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/internal/lexer"
	"github.com/mdsl-lang/mdslc/internal/token"
)

// Parser holds two tokens of lookahead over a lexer.Lexer.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New wraps source in a Parser positioned at its first significant token.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}
	p.next()
	p.next()
	return p
}

// Parse builds the Method AST for source, linking parent pointers before
// returning it. The only error it can return is a *diagnostics.SyntaxError.
func Parse(source string) (m *ast.Method, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*diagnostics.SyntaxError)
			if !ok {
				panic(r)
			}
			m, err = nil, se
		}
	}()

	p := New(source)
	method := p.parseMethod()
	ast.Link(method)
	return method, nil
}

func (p *Parser) next() {
	p.cur = p.peek
	for {
		p.peek = p.lex.NextToken()
		if p.peek.Type == token.NEWLINE || p.peek.Type == token.SEMICOLON {
			continue
		}
		break
	}
}

func (p *Parser) fail(format string, args ...interface{}) {
	panic(diagnostics.NewSyntaxError(p.cur.Pos.Line, p.cur.Pos.Column, format, args...))
}

// expect consumes the current token if it has type tt, returning it;
// otherwise raises a SyntaxError.
func (p *Parser) expect(tt token.Type) token.Token {
	if p.cur.Type != tt {
		p.fail("expected %s, found %s %q", tt, p.cur.Type, p.cur.Lexeme)
	}
	tok := p.cur
	p.next()
	return tok
}

func (p *Parser) at(tt token.Type) bool { return p.cur.Type == tt }

func (p *Parser) ident() *ast.Identifier {
	tok := p.expect(token.IDENT)
	return ast.NewIdentifier(tok.Pos, tok.Literal)
}

func (p *Parser) parseMethod() *ast.Method {
	pos := p.cur.Pos
	p.expect(token.NAME)
	nameTok := p.expect(token.IDENT)
	m := ast.NewMethod(pos, nameTok.Literal)

	for a, ok := p.tryParseAnnotation(); ok; a, ok = p.tryParseAnnotation() {
		m.Annotations = append(m.Annotations, a)
	}
	for !p.at(token.EOF) {
		m.Statements = append(m.Statements, p.parseStatement())
	}
	p.expect(token.EOF)
	return m
}
