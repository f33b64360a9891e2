// Package complexity implements the compiler's symbolic cost analyzer
// (spec.md §4.3): given a fully typed Method, it returns either a
// simplified polynomial or an O(·) asymptotic bound in two free
// variables, N (atom count) and M (bond count).
package complexity

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// term is one monomial's exponent pair: N^powN * M^powM.
type term struct {
	powN, powM int
}

// Cost is an additive polynomial over N and M with rational coefficients,
// represented sparsely by monomial. Zero value is the cost 0.
type Cost struct {
	terms map[term]*big.Rat
}

func newCost() Cost { return Cost{terms: make(map[term]*big.Rat)} }

// Const builds the constant cost k.
func Const(k int64) Cost {
	c := newCost()
	c.add(term{0, 0}, big.NewRat(k, 1))
	return c
}

// NPow builds the monomial N^p (p=1 for plain N).
func NPow(p int) Cost {
	c := newCost()
	c.add(term{p, 0}, big.NewRat(1, 1))
	return c
}

// MPow builds the monomial M^p (p=1 for plain M).
func MPow(p int) Cost {
	c := newCost()
	c.add(term{0, p}, big.NewRat(1, 1))
	return c
}

func (c *Cost) add(t term, coeff *big.Rat) {
	if c.terms == nil {
		c.terms = make(map[term]*big.Rat)
	}
	if existing, ok := c.terms[t]; ok {
		existing.Add(existing, coeff)
		return
	}
	cp := new(big.Rat).Set(coeff)
	c.terms[t] = cp
}

// Add returns c+d.
func (c Cost) Add(d Cost) Cost {
	r := newCost()
	for t, coeff := range c.terms {
		r.add(t, coeff)
	}
	for t, coeff := range d.terms {
		r.add(t, coeff)
	}
	return r
}

// Mul returns the cross-product c*d: every pair of monomials multiplies,
// exponents add, coefficients multiply. Used for nested loop/array costs.
func (c Cost) Mul(d Cost) Cost {
	r := newCost()
	for t1, c1 := range c.terms {
		for t2, c2 := range d.terms {
			t := term{powN: t1.powN + t2.powN, powM: t1.powM + t2.powM}
			coeff := new(big.Rat).Mul(c1, c2)
			r.add(t, coeff)
		}
	}
	return r
}

// Scale multiplies every term's coefficient by k.
func (c Cost) Scale(k int64) Cost {
	return c.Mul(Const(k))
}

// simplify drops zero-coefficient terms, returning the remaining ones
// sorted by descending total degree (then by N-degree) for deterministic
// output.
func (c Cost) simplify() []term {
	var ts []term
	for t, coeff := range c.terms {
		if coeff.Sign() != 0 {
			ts = append(ts, t)
		}
	}
	sort.Slice(ts, func(i, j int) bool {
		di, dj := ts[i].powN+ts[i].powM, ts[j].powN+ts[j].powM
		if di != dj {
			return di > dj
		}
		if ts[i].powN != ts[j].powN {
			return ts[i].powN > ts[j].powN
		}
		return ts[i].powM > ts[j].powM
	})
	return ts
}

func monomial(coeff *big.Rat, t term) string {
	var parts []string
	if t.powN > 0 {
		if t.powN == 1 {
			parts = append(parts, "N")
		} else {
			parts = append(parts, fmt.Sprintf("N^%d", t.powN))
		}
	}
	if t.powM > 0 {
		if t.powM == 1 {
			parts = append(parts, "M")
		} else {
			parts = append(parts, fmt.Sprintf("M^%d", t.powM))
		}
	}
	factor := ""
	if coeff.Cmp(big.NewRat(1, 1)) != 0 || len(parts) == 0 {
		factor = coeff.RatString()
		if len(parts) > 0 {
			factor += "*"
		}
	}
	return factor + strings.Join(parts, "*")
}

// String renders the simplified polynomial, e.g. "N^3 + 2*N*M + 5".
func (c Cost) String() string {
	ts := c.simplify()
	if len(ts) == 0 {
		return "0"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = monomial(c.terms[t], t)
	}
	return strings.Join(parts, " + ")
}

// Asymptotic collapses c under dominance as N,M -> infinity and wraps the
// surviving leading monomial in O(.) notation (spec.md §4.3
// "Simplification").
func (c Cost) Asymptotic() string {
	ts := c.simplify()
	if len(ts) == 0 {
		return "O(1)"
	}
	lead := ts[0]
	one := big.NewRat(1, 1)
	return "O(" + monomial(one, lead) + ")"
}

// IsZero reports whether every term has a zero coefficient.
func (c Cost) IsZero() bool {
	for _, coeff := range c.terms {
		if coeff.Sign() != 0 {
			return false
		}
	}
	return true
}
