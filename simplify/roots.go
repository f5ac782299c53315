package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/factor"
)

// extractRoot pulls perfect q-th powers out of the radicand a of
// a^(p/q). It returns the factor outside the root, already raised to
// the p-th power, and the remaining radicand.
func (p *Pass) extractRoot(a *big.Int, num, q int64) (*big.Int, *big.Int, error) {
	out, rem := big.NewInt(1), new(big.Int).Set(a)
	if r, exact, err := factor.Root(a, int(q)); err != nil {
		return nil, nil, err
	} else if exact {
		return r.Exp(r, big.NewInt(num), nil), big.NewInt(1), nil
	}
	bq, bp := big.NewInt(q), big.NewInt(num)
	for _, d := range factor.Divisors(a, p.cfg.MaxDivisorInput) {
		if err := p.checkAborted(); err != nil {
			return nil, nil, err
		}
		if factor.IsOne(d) {
			continue
		}
		dq := new(big.Int).Exp(d, bq, nil)
		if dq.Cmp(rem) > 0 {
			break
		}
		m := new(big.Int)
		for {
			quo, r := new(big.Int).QuoRem(rem, dq, m)
			if r.Sign() != 0 {
				break
			}
			rem = quo
			out.Mul(out, new(big.Int).Exp(d, bp, nil))
		}
	}
	return out, rem, nil
}

// factorizeRoots extracts perfect powers from the numerator and the
// denominator of a rational radicand: 8^(1/2) becomes 2*2^(1/2) and
// 108^(2/3) becomes 9*4^(2/3).
func factorizeRoots(p *Pass, e expr.Expr) (expr.Expr, error) {
	base, q, ok := rationalPower(e)
	if !ok || q.IsInt() || q.Sign() <= 0 || q.Cmp(big.NewRat(1, 1)) >= 0 {
		return e, nil
	}
	if !q.Denom().IsInt64() || q.Denom().Int64() > p.cfg.MaxExponent {
		return e, nil
	}
	num, deg := q.Num().Int64(), q.Denom().Int64()
	outN, remN, err := p.extractRoot(base.Num(), num, deg)
	if err != nil {
		return nil, err
	}
	outD, remD, err := p.extractRoot(base.Denom(), num, deg)
	if err != nil {
		return nil, err
	}
	if factor.IsOne(outN) && factor.IsOne(outD) {
		return e, nil
	}
	coef := expr.Rat(new(big.Rat).SetFrac(outN, outD))
	rad := new(big.Rat).SetFrac(remN, remD)
	if rad.Cmp(big.NewRat(1, 1)) == 0 {
		return coef, nil
	}
	return buildProduct(coef, []expr.Expr{expr.Pow(expr.Rat(rad), expr.Rat(q))}, nil), nil
}

// collectRoots merges the radicals of a numerator into one root whose
// degree is the least common multiple of their degrees.
func collectRoots(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	var idx []int
	var degs []*big.Int
	for i, f := range t.num {
		if isRadical(f) {
			_, q, _ := rationalPower(f)
			idx = append(idx, i)
			degs = append(degs, q.Denom())
		}
	}
	if len(idx) < 2 {
		return e, nil
	}
	l := factor.LCM(degs...)
	acc := expr.One
	for _, i := range idx {
		base, q, _ := rationalPower(t.num[i])
		k := new(big.Int).Mul(q.Num(), l)
		k.Quo(k, q.Denom())
		if !k.IsInt64() || k.Int64() > p.cfg.MaxCommonRootExponent {
			return e, nil
		}
		v, err := expr.Rat(base).PowInt(k.Int64())
		if err != nil {
			return nil, err
		}
		acc = acc.Times(v)
	}
	var num []expr.Expr
	for _, f := range t.num {
		if isRadical(f) {
			continue
		}
		num = append(num, f)
	}
	root := expr.Pow(acc, expr.Rat(new(big.Rat).SetFrac(big.NewInt(1), l)))
	return buildProduct(t.coef, append(num, root), t.den), nil
}

// squareRootTerm reports whether t squares to a rational number: it is
// a literal or a literal times the square root of a rational constant.
func squareRootTerm(t term) (radical bool, ok bool) {
	if t.isLiteral() {
		return false, t.coef.IsExact()
	}
	if len(t.num) != 1 || len(t.den) != 0 || !t.coef.IsExact() {
		return false, false
	}
	_, q, ok := rationalPower(t.num[0])
	return true, ok && q.Cmp(big.NewRat(1, 2)) == 0
}

// conjugate returns the two terms of a binomial whose terms square to
// rational numbers, at least one of them being a square root.
func conjugate(e expr.Expr) (term, term, bool) {
	if !expr.IsSum(e) {
		return term{}, term{}, false
	}
	ts, err := splitSum(e)
	if err != nil || len(ts) != 2 {
		return term{}, term{}, false
	}
	r1, ok1 := squareRootTerm(ts[0])
	r2, ok2 := squareRootTerm(ts[1])
	if !ok1 || !ok2 || !(r1 || r2) {
		return term{}, term{}, false
	}
	return ts[0], ts[1], true
}

// differenceOfSquares builds a^2-b^2.
func differenceOfSquares(a, b term) expr.Expr {
	return expr.Sub(expr.Pow(a.build(), expr.Two), expr.Pow(b.build(), expr.Two))
}

// rationalizeDenominator removes a radical or a binomial with a square
// root from the denominator: c/a^(p/q) becomes c*a^(1-p/q)/a and
// c/(a+b*r^(1/2)) is expanded with the conjugate binomial.
func rationalizeDenominator(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	for i, f := range t.den {
		base, q, ok := rationalPower(f)
		if !ok || q.Sign() <= 0 || q.Cmp(big.NewRat(1, 1)) >= 0 {
			continue
		}
		coef, err := t.coef.Over(expr.Rat(base))
		if err != nil {
			return nil, err
		}
		rest := new(big.Rat).Sub(big.NewRat(1, 1), q)
		num := append(append([]expr.Expr(nil), t.num...), expr.Pow(expr.Rat(base), expr.Rat(rest)))
		return buildProduct(coef, num, without(t.den, i)), nil
	}
	for i, f := range t.den {
		a, b, ok := conjugate(f)
		if !ok {
			continue
		}
		nb := b
		nb.coef = b.coef.Neg()
		conj := assembleSum([]term{a, nb})
		num := append(append([]expr.Expr(nil), t.num...), conj)
		den := append(without(t.den, i), differenceOfSquares(a, b))
		return buildProduct(t.coef, num, den), nil
	}
	return e, nil
}

// thirdBinomialFormula multiplies conjugate binomials with a square
// root: (a+b)*(a-b) becomes a^2-b^2.
func thirdBinomialFormula(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(t.num); i++ {
		c1, c2, ok := binomialTerms(t.num[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(t.num); j++ {
			d1, d2, ok := binomialTerms(t.num[j])
			if !ok {
				continue
			}
			var sq expr.Expr
			switch {
			case sameTerm(c1, d1) && oppositeTerm(c2, d2), sameTerm(c1, d2) && oppositeTerm(c2, d1):
				sq = differenceOfSquares(c1, c2)
			case sameTerm(c2, d2) && oppositeTerm(c1, d1), sameTerm(c2, d1) && oppositeTerm(c1, d2):
				sq = differenceOfSquares(c2, c1)
			default:
				continue
			}
			num := without(without(t.num, j), i)
			return buildProduct(t.coef, append(num, sq), t.den), nil
		}
	}
	return e, nil
}

// binomialTerms returns the two terms of a binomial in which a square
// root occurs.
func binomialTerms(e expr.Expr) (term, term, bool) {
	if !expr.IsSum(e) {
		return term{}, term{}, false
	}
	ts, err := splitSum(e)
	if err != nil || len(ts) != 2 {
		return term{}, term{}, false
	}
	for _, t := range ts {
		for _, f := range t.num {
			if isSquareRoot(f) {
				return ts[0], ts[1], true
			}
		}
	}
	return term{}, term{}, false
}
