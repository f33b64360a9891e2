package parser

import (
	"strconv"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/token"
)

// parseExpr is the entry point for the standard arithmetic grammar:
// unary, `^` (right-assoc), `*`/`/`, `+`/`-` (spec.md §4.1).
func (p *Parser) parseExpr() ast.Expression { return p.parseAddSub() }

func (p *Parser) parseAddSub() ast.Expression {
	left := p.parseMulDiv()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		pos, op := p.cur.Pos, p.cur.Lexeme
		p.next()
		right := p.parseMulDiv()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseMulDiv() ast.Expression {
	left := p.parsePow()
	for p.at(token.STAR) || p.at(token.SLASH) {
		pos, op := p.cur.Pos, p.cur.Lexeme
		p.next()
		right := p.parsePow()
		left = ast.NewBinary(pos, op, left, right)
	}
	return left
}

// parsePow is right-associative: a^b^c parses as a^(b^c).
func (p *Parser) parsePow() ast.Expression {
	base := p.parseUnary()
	if p.at(token.CARET) {
		pos := p.cur.Pos
		p.next()
		right := p.parsePow()
		return ast.NewBinary(pos, "^", base, right)
	}
	return base
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Type {
	case token.MINUS:
		pos := p.cur.Pos
		p.next()
		return ast.NewUnary(pos, p.parseUnary())
	case token.PLUS:
		p.next()
		return p.parseUnary()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Type {
	case token.INT, token.FLOAT:
		return p.parseNumber()
	case token.LPAREN:
		p.next()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e
	case token.SUM:
		return p.parseSum()
	case token.EE:
		return p.parseEE()
	case token.LBRACE:
		return p.parsePlaceholder()
	case token.IDENT:
		if p.peek.Type == token.LPAREN {
			return p.parseCall()
		}
		if p.peek.Type == token.LBRACKET {
			return p.parseSubscriptExpr()
		}
		tok := p.cur
		p.next()
		return ast.NewName(tok.Pos, tok.Literal, false)
	default:
		p.fail("expected an expression, found %s %q", p.cur.Type, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseNumber() ast.Expression {
	tok := p.cur
	p.next()
	n := ast.NewNumber(tok.Pos)
	if tok.Type == token.INT {
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail("invalid integer literal %q", tok.Literal)
		}
		n.IntValue = v
		return n
	}
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.fail("invalid float literal %q", tok.Literal)
	}
	n.IsFloat = true
	n.FloatValue = v
	return n
}

func (p *Parser) parseCall() ast.Expression {
	nameTok := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	arg := p.parseExpr()
	p.expect(token.RPAREN)
	return ast.NewCall(nameTok.Pos, nameTok.Literal, arg)
}

func (p *Parser) parseSubscriptExpr() ast.Expression {
	nameTok := p.expect(token.IDENT)
	name := ast.NewIdentifier(nameTok.Pos, nameTok.Literal)
	p.expect(token.LBRACKET)
	indices := []*ast.Identifier{p.ident()}
	for p.at(token.COMMA) {
		p.next()
		indices = append(indices, p.ident())
	}
	p.expect(token.RBRACKET)
	return ast.NewSubscript(nameTok.Pos, name, indices)
}

// parseSum parses `sum <name> [such that <constraint>] : <body>`.
func (p *Parser) parseSum() ast.Expression {
	pos := p.cur.Pos
	p.expect(token.SUM)
	bound := p.ident()
	constraint := p.tryParseSuchThat()
	p.expect(token.COLON)
	body := p.parseExpr()
	return ast.NewSum(pos, bound, constraint, body)
}

func (p *Parser) parsePlaceholder() ast.Expression {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	p.expect(token.RBRACE)
	return ast.NewPlaceholder(pos)
}

// parseEE parses `EE[ row i, col j : diag d, off o, rhs r [, cutoff radius c] ]`.
func (p *Parser) parseEE() ast.Expression {
	pos := p.cur.Pos
	p.expect(token.EE)
	p.expect(token.LBRACKET)
	p.expect(token.ROW)
	row := p.ident()
	p.expect(token.COMMA)
	p.expect(token.COL)
	col := p.ident()
	p.expect(token.COLON)
	p.expect(token.DIAG)
	diag := p.parseExpr()
	p.expect(token.COMMA)
	p.expect(token.OFF)
	off := p.parseExpr()
	p.expect(token.COMMA)
	p.expect(token.RHS)
	rhs := p.parseExpr()

	var radius ast.Expression
	cutoff := false
	if p.at(token.COMMA) {
		p.next()
		p.expect(token.CUTOFF)
		p.expect(token.RADIUS)
		radius = p.parseExpr()
		cutoff = true
	}
	p.expect(token.RBRACKET)
	return ast.NewEE(pos, row, col, diag, off, rhs, cutoff, radius)
}
