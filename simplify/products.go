package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// collectProducts brings a product or quotient into canonical form.
// Literal factors are multiplied into one coefficient and the other
// constant factors move to the front. Factors with equivalent bases and
// integer exponents are merged and cancel between numerator and
// denominator.
func collectProducts(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	if t.coef.IsZero() {
		return t.coef, nil
	}
	num := terms.CollectFactorsByPowers(terms.New(t.num...))
	den := terms.CollectFactorsByPowers(terms.New(t.den...))
	for i := 0; i < num.Bound(); i++ {
		bn, nn, ok := terms.IntegerPower(num.Get(i))
		if !ok {
			continue
		}
		for j := 0; j < den.Bound(); j++ {
			bd, nd, ok := terms.IntegerPower(den.Get(j))
			if !ok || !expr.Equivalent(bn, bd) {
				continue
			}
			d := new(big.Int).Sub(nn, nd)
			switch d.Sign() {
			case 1:
				num.Put(i, power(bn, d))
				den.Remove(j)
			case -1:
				num.Remove(i)
				den.Put(j, power(bd, d.Neg(d)))
			default:
				num.Remove(i)
				den.Remove(j)
			}
			break
		}
	}
	coef := t.coef
	ns := terms.CollectConstantsInProduct(num).Terms()
	if len(ns) != 0 {
		if c, ok := ns[0].(*expr.Constant); ok {
			coef, ns = coef.Times(c), ns[1:]
		}
	}
	ds := terms.CollectConstantsInProduct(den).Terms()
	if len(ds) != 0 {
		if c, ok := ds[0].(*expr.Constant); ok {
			if coef, err = coef.Over(c); err != nil {
				return nil, err
			}
			ds = ds[1:]
		}
	}
	return buildProduct(coef, ns, ds), nil
}

// distributeInteger multiplies an integer coefficient into a lone sum:
// 2*(x-y) becomes 2*x-2*y. It is the inverse of factorCoefficients and
// is skipped when the Factorize group is enabled.
func distributeInteger(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) || p.Enabled(Factorize) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	if len(t.den) != 0 || len(t.num) != 1 || !expr.IsSum(t.num[0]) || !t.coef.IsInteger() || t.coef.IsOne() {
		return e, nil
	}
	ts, err := splitSum(t.num[0])
	if err != nil {
		return nil, err
	}
	for i := range ts {
		ts[i].coef = ts[i].coef.Times(t.coef)
	}
	return assembleSum(ts), nil
}

// distribute multiplies out the sums in the numerator of a product.
func distribute(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	sums := 0
	for _, f := range t.num {
		if expr.IsSum(f) {
			sums++
		}
	}
	if sums == 0 || (len(t.num) == 1 && t.coef.IsOne()) {
		return e, nil
	}
	acc := []term{{coef: t.coef}}
	for _, f := range t.num {
		var fs []term
		if expr.IsSum(f) {
			if fs, err = splitSum(f); err != nil {
				return nil, err
			}
		} else {
			fs = []term{{coef: expr.One, num: []expr.Expr{f}}}
		}
		if int64(len(acc)*len(fs)) > p.cfg.MaxBinomialTerms {
			return e, nil
		}
		var next []term
		for _, a := range acc {
			if err := p.checkAborted(); err != nil {
				return nil, err
			}
			for _, b := range fs {
				next = append(next, term{
					coef: a.coef.Times(b.coef),
					num:  append(append([]expr.Expr(nil), a.num...), b.num...),
					den:  append(append([]expr.Expr(nil), a.den...), b.den...),
				})
			}
		}
		acc = next
	}
	return terms.ProduceQuotient(terms.New(assembleSum(acc)), terms.New(t.den...)), nil
}
