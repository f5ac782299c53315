package simplify

import (
	"context"
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/factor"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// integerPowerOfSum splits e into a sum and an exponent n with
// 2 <= n <= Config.MaxBinomialExponent.
func (p *Pass) integerPowerOfSum(e expr.Expr) (expr.Expr, int, bool) {
	b, ok := asPower(e)
	if !ok || !expr.IsSum(b.Left) {
		return nil, 0, false
	}
	c, ok := b.Right.(*expr.Constant)
	if !ok {
		return nil, 0, false
	}
	n, ok := c.Int64()
	if !ok || n < 2 || n > p.cfg.MaxBinomialExponent {
		return nil, 0, false
	}
	return b.Left, int(n), true
}

// radicalDegree returns the root degree of a summand that is a literal
// (degree 1) or a literal times a single radical.
func radicalDegree(t term) (*big.Int, bool) {
	if !t.coef.IsExact() {
		return nil, false
	}
	if t.isLiteral() {
		return big.NewInt(1), true
	}
	if len(t.num) != 1 || len(t.den) != 0 || !isRadical(t.num[0]) {
		return nil, false
	}
	_, q, _ := rationalPower(t.num[0])
	return q.Denom(), true
}

// expandByBinomial expands an integer power of a sum of literals and
// radicals of one common degree, so that the result collapses into a
// short sum: (1+2^(1/2))^3 becomes 7+5*2^(1/2).
func expandByBinomial(p *Pass, e expr.Expr) (expr.Expr, error) {
	s, n, ok := p.integerPowerOfSum(e)
	if !ok {
		return e, nil
	}
	ts, err := splitSum(s)
	if err != nil {
		return nil, err
	}
	var deg *big.Int
	for _, t := range ts {
		m, ok := radicalDegree(t)
		if !ok {
			return e, nil
		}
		if factor.IsOne(m) {
			continue
		}
		if deg == nil {
			deg = m
		} else if deg.Cmp(m) != 0 {
			return e, nil
		}
	}
	if deg == nil || !deg.IsInt64() || deg.Int64() > p.cfg.MaxRootDegree {
		return e, nil
	}
	return p.binomialExpansion(s, n)
}

// expandPowers expands every small integer power of a sum.
func expandPowers(p *Pass, e expr.Expr) (expr.Expr, error) {
	s, n, ok := p.integerPowerOfSum(e)
	if !ok {
		return e, nil
	}
	return p.binomialExpansion(s, n)
}

// nextExponents advances ks to the next tuple with the same sum. It
// returns false after the last tuple (0, ..., 0, n).
func nextExponents(ks []int) bool {
	i := 0
	for i < len(ks) && ks[i] == 0 {
		i++
	}
	if i >= len(ks)-1 {
		return false
	}
	v := ks[i]
	ks[i] = 0
	ks[i+1]++
	ks[0] = v - 1
	return true
}

// binomialExpansion writes s^n as the full multinomial sum. Summands
// subtracted in s contribute a negative sign for every odd exponent.
// The input is returned unchanged when the number of produced terms
// exceeds Config.MaxBinomialTerms.
func (p *Pass) binomialExpansion(s expr.Expr, n int) (expr.Expr, error) {
	left, right := terms.New(), terms.New()
	terms.OrderDifference(s, left, right)
	items := append(left.Terms(), right.Terms()...)
	k, split := len(items), left.Size()
	if k < 2 || n < 1 {
		return expr.Pow(s, expr.Int(int64(n))), nil
	}
	if factor.Binomial(int64(n+k-1), int64(k-1)).Cmp(big.NewInt(p.cfg.MaxBinomialTerms)) > 0 {
		return expr.Pow(s, expr.Int(int64(n))), nil
	}
	pos, neg := terms.New(), terms.New()
	ks := make([]int, k)
	ks[0] = n
	for {
		if err := p.checkAborted(); err != nil {
			return nil, err
		}
		fs := terms.New(expr.BigInt(factor.Multinomial(ks)))
		odd := 0
		for i, m := range ks {
			if m == 0 {
				continue
			}
			if i >= split {
				odd += m
			}
			fs.Add(power(items[i], big.NewInt(int64(m))))
		}
		if odd%2 == 0 {
			pos.Add(terms.ProduceProduct(fs))
		} else {
			neg.Add(terms.ProduceProduct(fs))
		}
		if !nextExponents(ks) {
			break
		}
	}
	if err := pos.Simplify(p.simplify); err != nil {
		return nil, err
	}
	if err := neg.Simplify(p.simplify); err != nil {
		return nil, err
	}
	return terms.ProduceDifference(pos, neg), nil
}

// BinomialExpansion expands the n-th power of the sum or difference e
// into its multinomial sum and simplifies every produced term.
func (s *Simplifier) BinomialExpansion(ctx context.Context, e expr.Expr, n int) (expr.Expr, error) {
	p := &Pass{ctx: ctx, cfg: &s.cfg, groups: Default, log: s.log}
	return p.binomialExpansion(e, n)
}
