package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// collectSums brings a sum into canonical form: the constant literal
// first, then the other constant terms, then the rest. Like terms are
// merged at the position of their first occurrence and zero terms are
// dropped.
func collectSums(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsSum(e) {
		return e, nil
	}
	ts, err := splitSum(e)
	if err != nil {
		return nil, err
	}
	var groups []term
	var keys []expr.Expr
outer:
	for _, t := range ts {
		if !t.isLiteral() {
			k := t.key()
			for i := range groups {
				if keys[i] != nil && expr.Equivalent(keys[i], k) {
					groups[i].coef = groups[i].coef.Plus(t.coef)
					continue outer
				}
			}
			keys = append(keys, k)
		} else {
			keys = append(keys, nil)
		}
		groups = append(groups, t)
	}
	c := terms.New()
	for _, t := range groups {
		c.Add(t.build())
	}
	ordered := make([]term, 0, len(groups))
	for _, f := range terms.CollectConstantsInSum(c).Terms() {
		t, err := splitProduct(f)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, t)
	}
	return assembleSum(ordered), nil
}

// commonDenominator writes a sum with a non-constant denominator in
// one of its terms as a single fraction over the least common multiple
// of the denominators.
func commonDenominator(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsSum(e) {
		return e, nil
	}
	ts, err := splitSum(e)
	if err != nil {
		return nil, err
	}
	if len(ts) < 2 {
		return e, nil
	}
	found := false
	for _, t := range ts {
		if len(t.den) != 0 {
			found = true
			break
		}
	}
	if !found {
		return e, nil
	}

	type factor struct {
		base expr.Expr
		n    *big.Int
	}
	// powersOf splits a denominator into bases with integer exponents.
	powersOf := func(den []expr.Expr) []factor {
		var fs []factor
		for _, f := range terms.CollectFactorsByPowers(terms.New(den...)).Terms() {
			b, n, ok := terms.IntegerPower(f)
			if !ok {
				b, n = f, big.NewInt(1)
			}
			fs = append(fs, factor{b, n})
		}
		return fs
	}
	find := func(fs []factor, b expr.Expr) int {
		for i, f := range fs {
			if expr.Equivalent(f.base, b) {
				return i
			}
		}
		return -1
	}

	bases := terms.New()
	dens := make([][]factor, len(ts))
	for i, t := range ts {
		if err := p.checkAborted(); err != nil {
			return nil, err
		}
		dens[i] = powersOf(t.den)
		for _, f := range dens[i] {
			bases.Add(f.base)
		}
	}
	bases.RemoveMultipleTerms()
	var lcm []factor
	for _, b := range bases.Terms() {
		n := big.NewInt(0)
		for i := range dens {
			if j := find(dens[i], b); j >= 0 && dens[i][j].n.Cmp(n) > 0 {
				n = dens[i][j].n
			}
		}
		lcm = append(lcm, factor{b, n})
	}

	nts := make([]term, len(ts))
	for i, t := range ts {
		num := append([]expr.Expr(nil), t.num...)
		for _, f := range lcm {
			n := new(big.Int).Set(f.n)
			if j := find(dens[i], f.base); j >= 0 {
				n.Sub(n, dens[i][j].n)
			}
			if m := power(f.base, n); m != nil {
				num = append(num, m)
			}
		}
		nts[i] = term{coef: t.coef, num: num}
	}
	den := terms.New()
	for _, f := range lcm {
		den.Add(power(f.base, f.n))
	}
	return terms.ProduceQuotient(terms.New(assembleSum(nts)), den), nil
}
