package parser

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	if p.at(token.FOR) {
		return p.parseForStatement()
	}
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Statement {
	pos := p.cur.Pos
	lhs := p.parseLHS()
	p.expect(token.ASSIGN)
	rhs := p.parseExpr()
	return ast.NewAssignment(pos, lhs, rhs)
}

// parseLHS parses a bare name or a Name[idx,...] subscript, the only two
// shapes an Assignment target can take.
func (p *Parser) parseLHS() ast.Expression {
	pos := p.cur.Pos
	name := p.ident()
	if !p.at(token.LBRACKET) {
		return ast.NewName(pos, name.Name, false)
	}
	p.next()
	indices := []*ast.Identifier{p.ident()}
	for p.at(token.COMMA) {
		p.next()
		indices = append(indices, p.ident())
	}
	p.expect(token.RBRACKET)
	return ast.NewSubscript(pos, name, indices)
}

func (p *Parser) parseForStatement() ast.Statement {
	pos := p.cur.Pos
	p.expect(token.FOR)
	if p.at(token.EACH) {
		p.next()
		return p.parseObjectFor(pos)
	}
	return p.parseBoundedFor(pos)
}

func (p *Parser) parseBoundedFor(pos ast.Position) ast.Statement {
	counter := p.ident()
	p.expect(token.ASSIGN)
	lower := p.parseExpr()
	p.expect(token.TO)
	upper := p.parseExpr()
	p.expect(token.COLON)
	body := p.parseBlock()
	return ast.NewBoundedFor(pos, counter, lower, upper, body)
}

func (p *Parser) parseObjectFor(pos ast.Position) ast.Statement {
	name := p.ident()
	p.expect(token.IS)
	kind, decompose := p.parseObjectKindAndDecompose()
	constraint := p.tryParseSuchThat()
	p.expect(token.COLON)
	body := p.parseBlock()
	return ast.NewObjectFor(pos, name, kind, decompose, constraint, body)
}

// parseBlock parses the statement list owned by a for-loop, up to and
// including the terminating `end`.
func (p *Parser) parseBlock() []ast.Statement {
	var stmts []ast.Statement
	for !p.at(token.END) {
		if p.at(token.EOF) {
			p.fail("unterminated loop body, expected end")
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.END)
	return stmts
}
