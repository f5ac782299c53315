package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// rangeOf returns the integer bounds of an operator.
func rangeOf(o *expr.Operator) (lo, hi int64, ok bool) {
	l, ok1 := o.Lower.(*expr.Constant)
	h, ok2 := o.Upper.(*expr.Constant)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	lo, ok1 = l.Int64()
	hi, ok2 = h.Int64()
	return lo, hi, ok1 && ok2
}

// operatorCount is the number of indices from o.Lower to o.Upper.
func operatorCount(o *expr.Operator) expr.Expr {
	if lo, hi, ok := rangeOf(o); ok {
		n := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
		return expr.BigInt(n.Add(n, big.NewInt(1)))
	}
	return expr.Add(expr.Sub(o.Upper, o.Lower), expr.One)
}

func withBody(o *expr.Operator, body expr.Expr) expr.Expr {
	r := *o
	r.Body = body
	return &r
}

// operators simplifies symbolic sums and products. Empty ranges give
// the neutral element, bodies independent of the index give a multiple
// or a power, short integer ranges are written out, sums are split
// over the summands of their body and constant factors are pulled out.
func operators(p *Pass, e expr.Expr) (expr.Expr, error) {
	o, ok := e.(*expr.Operator)
	if !ok {
		return e, nil
	}
	sum := o.Kind == expr.SumOperator
	lo, hi, bounded := rangeOf(o)
	if bounded && hi < lo {
		if sum {
			return expr.Zero, nil
		}
		return expr.One, nil
	}
	if !o.Body.Contains(o.Var) {
		if sum {
			return expr.Mul(operatorCount(o), o.Body), nil
		}
		return expr.Pow(o.Body, operatorCount(o)), nil
	}
	// hi-lo may not fit in an int64, but it does as an unsigned value.
	if bounded && uint64(hi)-uint64(lo) < uint64(p.cfg.MaxOperatorTerms) {
		c := terms.New()
		for j := int64(0); j <= hi-lo; j++ {
			if err := p.checkAborted(); err != nil {
				return nil, err
			}
			c.Add(expr.Replace(o.Body, o.Var, expr.Int(lo+j)))
		}
		if sum {
			return terms.ProduceSum(c), nil
		}
		return terms.ProduceProduct(c), nil
	}

	if sum {
		if b, ok := o.Body.(*expr.Binary); ok && b.Kind == expr.Difference {
			return expr.Sub(withBody(o, b.Left), withBody(o, b.Right)), nil
		}
		if expr.Is(o.Body, expr.Sum) {
			parts := terms.New()
			for _, t := range terms.ConstantSummands(o.Body, o.Var).Terms() {
				if c, ok := t.(*expr.Constant); !ok || !c.IsZero() {
					parts.Add(withBody(o, t))
				}
			}
			for _, t := range terms.NonConstantSummands(o.Body, o.Var).Terms() {
				parts.Add(withBody(o, t))
			}
			return terms.ProduceSum(parts), nil
		}
	}

	if expr.IsProduct(o.Body) {
		num := terms.ProduceProduct(terms.FactorsOfNumeratorInExpression(o.Body))
		den := terms.ProduceProduct(terms.FactorsOfDenominatorInExpression(o.Body))
		cn, cd := terms.ConstantFactors(num, o.Var), terms.ConstantFactors(den, o.Var)
		k := terms.ProduceQuotient(cn, cd)
		if c, ok := k.(*expr.Constant); !ok || !c.IsOne() {
			rest := terms.ProduceQuotient(terms.NonConstantFactors(num, o.Var), terms.NonConstantFactors(den, o.Var))
			if sum {
				return expr.Mul(k, withBody(o, rest)), nil
			}
			return expr.Mul(expr.Pow(k, operatorCount(o)), withBody(o, rest)), nil
		}
	}

	if !sum {
		if b, ok := asPower(o.Body); ok && !b.Right.Contains(o.Var) {
			return expr.Pow(withBody(o, b.Left), b.Right), nil
		}
	}
	return e, nil
}
