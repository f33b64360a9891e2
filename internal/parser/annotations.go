package parser

import (
	"strings"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/catalog"
	"github.com/mdsl-lang/mdslc/internal/token"
	"github.com/mdsl-lang/mdslc/internal/typesystem"
)

// tryParseAnnotation consumes one annotation if the current token starts
// one, returning (nil, false) without consuming anything otherwise. The
// declarative preamble ends at the first line this rejects: a `for`, or a
// bare `name = expr`. Inside the preamble a `name[idx,...] = expr` line is
// always read as a Substitution annotation; after it, the same shape is a
// subscripted Assignment statement.
func (p *Parser) tryParseAnnotation() (ast.Annotation, bool) {
	switch p.cur.Type {
	case token.PARAMETER:
		return p.parseParameterAnnotation(), true
	case token.IDENT:
		switch p.peek.Type {
		case token.IS:
			return p.parseIsAnnotation(), true
		case token.LBRACKET:
			return p.parseSubstitutionAnnotation(), true
		}
	}
	return nil, false
}

func (p *Parser) parseParameterAnnotation() ast.Annotation {
	pos := p.cur.Pos
	p.expect(token.PARAMETER)
	kind := typesystem.AtomParameter
	switch p.cur.Type {
	case token.BOND:
		p.next()
		kind = typesystem.BondParameter
	case token.COMMON:
		p.next()
		kind = typesystem.CommonParameter
	}
	name := p.ident()
	return ast.NewParameterAnnotation(pos, name, kind)
}

// parseIsAnnotation handles every `<name> is ...` form: Object, Property,
// and Constant annotations share this prefix and are disambiguated by what
// follows `is`.
func (p *Parser) parseIsAnnotation() ast.Annotation {
	pos := p.cur.Pos
	name := p.ident()
	p.expect(token.IS)

	if p.at(token.ATOM) || p.at(token.BOND) {
		kind, decompose := p.parseObjectKindAndDecompose()
		constraint := p.tryParseSuchThat()
		return ast.NewObjectAnnotation(pos, name, kind, decompose, constraint)
	}

	property := p.parsePropertyPhrase()
	if p.at(token.OF) {
		p.next()
		elem := p.ident()
		return ast.NewConstantAnnotation(pos, name, property, elem)
	}
	return ast.NewPropertyAnnotation(pos, name, property)
}

// parsePropertyPhrase greedily consumes bare words. Until the phrase names
// a catalog.Indexed entry it takes every following word, failing when the
// words run out; once it names one, it is extended only while doing so
// keeps it a prefix of some entry, so that "van der waals radius" is
// consumed whole without swallowing the start of the next preamble line.
func (p *Parser) parsePropertyPhrase() string {
	if !p.at(token.IDENT) {
		p.fail("expected a property name, found %s %q", p.cur.Type, p.cur.Lexeme)
	}
	words := []string{p.cur.Literal}
	p.next()
	for {
		phrase := strings.Join(words, " ")
		if catalog.IsKnownPropertyPhrase(phrase) {
			if p.at(token.IDENT) && catalog.IsKnownPropertyPrefix(phrase+" "+p.cur.Literal) {
				words = append(words, p.cur.Literal)
				p.next()
				continue
			}
			return phrase
		}
		if !p.at(token.IDENT) {
			p.fail("unknown property %q", phrase)
		}
		words = append(words, p.cur.Literal)
		p.next()
	}
}

func (p *Parser) parseSubstitutionAnnotation() ast.Annotation {
	pos := p.cur.Pos
	name := p.ident()
	p.expect(token.LBRACKET)
	formals := []*ast.Identifier{p.ident()}
	for p.at(token.COMMA) {
		p.next()
		formals = append(formals, p.ident())
	}
	p.expect(token.RBRACKET)
	p.expect(token.ASSIGN)
	body := p.parseExpr()
	var guard ast.Constraint
	if p.at(token.IF) {
		p.next()
		guard = p.parseConstraint()
	}
	return ast.NewSubstitutionAnnotation(pos, name, formals, guard, body)
}

// parseObjectKindAndDecompose parses `atom` or `bond [(i-j)]`, shared by
// ObjectAnnotation and ObjectFor.
func (p *Parser) parseObjectKindAndDecompose() (typesystem.ObjectKind, *ast.BondDecomposition) {
	switch p.cur.Type {
	case token.ATOM:
		p.next()
		return typesystem.Atom, nil
	case token.BOND:
		p.next()
		var decompose *ast.BondDecomposition
		if p.at(token.LPAREN) {
			p.next()
			a := p.ident()
			p.expect(token.MINUS)
			b := p.ident()
			p.expect(token.RPAREN)
			decompose = &ast.BondDecomposition{AtomA: a, AtomB: b}
		}
		return typesystem.Bond, decompose
	default:
		p.fail("expected atom or bond, found %s %q", p.cur.Type, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) tryParseSuchThat() ast.Constraint {
	if !p.at(token.SUCH) {
		return nil
	}
	p.next()
	p.expect(token.THAT)
	return p.parseConstraint()
}
