package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/factor"
)

// side is one side of a quotient, split into terms. A side that is not
// a sum is a single term.
type side struct {
	ts  []term
	sum bool
}

func splitSide(e expr.Expr) (side, error) {
	if expr.IsSum(e) {
		ts, err := splitSum(e)
		return side{ts: ts, sum: true}, err
	}
	t, err := splitProduct(e)
	return side{ts: []term{t}}, err
}

func (s side) build() expr.Expr {
	if s.sum {
		return assembleSum(s.ts)
	}
	return s.ts[0].build()
}

func asQuotient(e expr.Expr) (*expr.Binary, bool) {
	b, ok := e.(*expr.Binary)
	return b, ok && b.Kind == expr.Quotient
}

// reduceLeadingCoefficients divides the coefficients on both sides of
// a quotient with a sum by their greatest common divisor:
// (25*x+10*y)/(80*u-35*v) becomes (5*x+2*y)/(16*u-7*v). Rational
// coefficients are first scaled to integers, so (5*x/2+5*y)/(10*z)
// becomes (x+2*y)/(4*z). With
// approximate coefficients both sides are divided by the leading
// coefficient of the denominator instead.
func reduceLeadingCoefficients(p *Pass, e expr.Expr) (expr.Expr, error) {
	q, ok := asQuotient(e)
	if !ok || !(expr.IsSum(q.Left) || expr.IsSum(q.Right)) {
		return e, nil
	}
	num, err := splitSide(q.Left)
	if err != nil {
		return nil, err
	}
	den, err := splitSide(q.Right)
	if err != nil {
		return nil, err
	}
	all := append(append([]term(nil), num.ts...), den.ts...)
	approx := false
	for _, t := range all {
		if !t.coef.IsExact() {
			approx = true
		}
	}

	var by *expr.Constant
	if approx {
		by = den.ts[0].coef
		if by.IsOne() || by.IsZero() {
			return e, nil
		}
	} else {
		// Scale to integers by the lcm of the denominators first.
		var ds []*big.Int
		for _, t := range all {
			ds = append(ds, t.coef.Denom())
		}
		l := factor.LCM(ds...)
		var ns []*big.Int
		for _, t := range all {
			n := new(big.Int).Mul(t.coef.Num(), l)
			ns = append(ns, n.Quo(n, t.coef.Denom()))
		}
		g := factor.GCD(ns...)
		if g.Sign() == 0 {
			return e, nil
		}
		by = expr.Rat(new(big.Rat).SetFrac(g, l))
		if by.IsOne() {
			return e, nil
		}
	}
	for _, s := range []side{num, den} {
		for i := range s.ts {
			c, err := s.ts[i].coef.Over(by)
			if err != nil {
				return nil, err
			}
			s.ts[i].coef = c
		}
	}
	n, d := num.build(), den.build()
	if c, ok := d.(*expr.Constant); ok && c.IsOne() {
		return n, nil
	}
	return expr.Div(n, d), nil
}

// factorCoefficients pulls the greatest common divisor of the integer
// coefficients out of a sum: 6*x-4*y becomes 2*(3*x-2*y). It undoes
// distribute and therefore yields to the Expand group.
func factorCoefficients(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsSum(e) || p.Enabled(Expand) {
		return e, nil
	}
	ts, err := splitSum(e)
	if err != nil {
		return nil, err
	}
	if len(ts) < 2 {
		return e, nil
	}
	var ns []*big.Int
	for _, t := range ts {
		if !t.coef.IsExact() || !t.coef.IsInteger() {
			return e, nil
		}
		ns = append(ns, t.coef.Num())
	}
	g := factor.GCD(ns...)
	if g.Cmp(big.NewInt(1)) <= 0 {
		return e, nil
	}
	by := expr.BigInt(g)
	for i := range ts {
		c, err := ts[i].coef.Over(by)
		if err != nil {
			return nil, err
		}
		ts[i].coef = c
	}
	return expr.Mul(by, assembleSum(ts)), nil
}

// reduceToConstant replaces a quotient of two sums that are constant
// multiples of each other by their ratio.
func reduceToConstant(p *Pass, e expr.Expr) (expr.Expr, error) {
	q, ok := asQuotient(e)
	if !ok || !expr.IsSum(q.Left) || !expr.IsSum(q.Right) {
		return e, nil
	}
	num, err := splitSum(q.Left)
	if err != nil {
		return nil, err
	}
	den, err := splitSum(q.Right)
	if err != nil {
		return nil, err
	}
	if len(num) != len(den) {
		return e, nil
	}
	used := make([]bool, len(den))
	var r *expr.Constant
outer:
	for _, a := range num {
		k := a.key()
		for j, b := range den {
			if used[j] || !expr.Equivalent(k, b.key()) {
				continue
			}
			c, err := a.coef.Over(b.coef)
			if err != nil {
				return e, nil
			}
			if r != nil && r.Cmp(c) != 0 {
				return e, nil
			}
			r = c
			used[j] = true
			continue outer
		}
		return e, nil
	}
	if r == nil {
		return e, nil
	}
	return r, nil
}
