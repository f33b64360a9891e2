package parser

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/token"
)

func (p *Parser) parseConstraint() ast.Constraint { return p.parseOr() }

func (p *Parser) parseOr() ast.Constraint {
	left := p.parseAnd()
	for p.at(token.OR) {
		pos := p.cur.Pos
		p.next()
		right := p.parseAnd()
		left = ast.NewBinaryLogicalOp(pos, "or", left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Constraint {
	left := p.parseUnaryConstraint()
	for p.at(token.AND) {
		pos := p.cur.Pos
		p.next()
		right := p.parseUnaryConstraint()
		left = ast.NewBinaryLogicalOp(pos, "and", left, right)
	}
	return left
}

func (p *Parser) parseUnaryConstraint() ast.Constraint {
	if p.at(token.NOT) {
		pos := p.cur.Pos
		p.next()
		return ast.NewUnaryLogicalOp(pos, p.parseUnaryConstraint())
	}
	return p.parsePrimaryConstraint()
}

func (p *Parser) parsePrimaryConstraint() ast.Constraint {
	if p.at(token.LPAREN) {
		p.next()
		c := p.parseConstraint()
		p.expect(token.RPAREN)
		return c
	}
	if p.at(token.IDENT) && p.peek.Type == token.LPAREN {
		if _, ok := catalog.LookupPredicate(p.cur.Literal); ok {
			return p.parsePredicate()
		}
	}
	return p.parseRelOp()
}

func (p *Parser) parsePredicate() ast.Constraint {
	pos := p.cur.Pos
	name := p.expect(token.IDENT).Literal
	p.expect(token.LPAREN)
	args := []ast.Expression{p.parsePredicateArg()}
	for p.at(token.COMMA) {
		p.next()
		args = append(args, p.parsePredicateArg())
	}
	p.expect(token.RPAREN)
	return ast.NewPredicate(pos, name, args)
}

// parsePredicateArg covers the three argument shapes spec.md §4.2's
// "Predicate checking" allows: a double-quoted string literal, a bare Name
// (an Object currently being iterated, or an element symbol), or a Numeric
// expression.
func (p *Parser) parsePredicateArg() ast.Expression {
	if p.at(token.STRING) {
		tok := p.cur
		p.next()
		return ast.NewName(tok.Pos, tok.Literal, true)
	}
	return p.parseExpr()
}

var relOps = map[token.Type]string{
	token.LT: "<", token.LE: "<=",
	token.GT: ">", token.GE: ">=",
	token.EQ: "==", token.NE: "!=",
}

func (p *Parser) parseRelOp() ast.Constraint {
	pos := p.cur.Pos
	left := p.parseExpr()
	op, ok := relOps[p.cur.Type]
	if !ok {
		p.fail("expected a relational operator, found %s %q", p.cur.Type, p.cur.Lexeme)
	}
	p.next()
	right := p.parseExpr()
	return ast.NewRelOp(pos, op, left, right)
}
