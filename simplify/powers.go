package simplify

import (
	"math"
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

func asPower(e expr.Expr) (*expr.Binary, bool) {
	b, ok := e.(*expr.Binary)
	return b, ok && b.Kind == expr.Power
}

// identities handles a^0, a^1, 0^a and 1^a, and writes a power with a
// negative literal exponent as a reciprocal. The reciprocal of a
// quotient is taken by swapping numerator and denominator.
func identities(p *Pass, e expr.Expr) (expr.Expr, error) {
	b, ok := asPower(e)
	if !ok {
		return e, nil
	}
	base, exp := b.Left, b.Right
	if c, ok := exp.(*expr.Constant); ok {
		switch {
		case c.IsZero():
			return expr.One, nil
		case c.IsOne():
			return base, nil
		}
	}
	if c, ok := base.(*expr.Constant); ok {
		switch {
		case c.IsZero() && expr.IsNonPositive(exp):
			return nil, undefined("power", expr.ErrNegativePowerOfZero)
		case c.IsZero() && expr.IsPositive(exp):
			return expr.Zero, nil
		case c.IsOne():
			return expr.One, nil
		}
		return e, nil
	}
	c, ok := exp.(*expr.Constant)
	if !ok || c.Sign() >= 0 {
		return e, nil
	}
	if q, ok := base.(*expr.Binary); ok && q.Kind == expr.Quotient {
		return expr.Pow(expr.Div(q.Right, q.Left), c.Neg()), nil
	}
	if c.IsMinusOne() {
		return expr.Div(expr.One, base), nil
	}
	return expr.Div(expr.One, expr.Pow(base, c.Neg())), nil
}

// powersOfConstants evaluates powers of constant literals. Integer
// exponents up to Config.MaxExponent are evaluated exactly. A negative
// base under an odd root gives a negative value; under an even root it
// is an error.
func powersOfConstants(p *Pass, e expr.Expr) (expr.Expr, error) {
	b, ok := asPower(e)
	if !ok {
		return e, nil
	}
	base, ok := b.Left.(*expr.Constant)
	if !ok {
		return e, nil
	}
	exp, ok := b.Right.(*expr.Constant)
	if !ok {
		return e, nil
	}
	if base.IsZero() {
		// Handled by identities.
		return e, nil
	}
	if !base.IsExact() || !exp.IsExact() {
		if base.Sign() < 0 && !exp.IsInteger() {
			if f := exp.Float(); f != math.Trunc(f) {
				return e, nil
			}
		}
		v := math.Pow(base.Float(), exp.Float())
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return e, nil
		}
		return expr.Approx(v), nil
	}
	if n, ok := exp.Int64(); ok {
		if n > p.cfg.MaxExponent || -n > p.cfg.MaxExponent {
			return e, nil
		}
		return base.PowInt(n)
	}
	if exp.IsInteger() {
		return e, nil
	}
	q := exp.Rat()
	if base.Sign() < 0 {
		if q.Denom().Bit(0) == 0 {
			return nil, undefined("power", expr.ErrEvenRootOfNegative)
		}
		abs := expr.Pow(base.Neg(), exp)
		if q.Num().Bit(0) == 1 {
			return expr.Neg(abs), nil
		}
		return abs, nil
	}
	if q.Sign() < 0 {
		if !base.IsInteger() {
			inv, err := expr.One.Over(base)
			if err != nil {
				return nil, err
			}
			return expr.Pow(inv, exp.Neg()), nil
		}
		return expr.Div(expr.One, expr.Pow(base, exp.Neg())), nil
	}
	return e, nil
}

// powerOfPower rewrites (a^b)^n as a^(b*n) for an integer n.
func powerOfPower(p *Pass, e expr.Expr) (expr.Expr, error) {
	b, ok := asPower(e)
	if !ok || !expr.IsIntegerConstant(b.Right) {
		return e, nil
	}
	inner, ok := asPower(b.Left)
	if !ok {
		return e, nil
	}
	return expr.Pow(inner.Left, expr.Mul(inner.Right, b.Right)), nil
}

// powerOfProduct distributes an integer exponent over the factors of a
// product or quotient.
func powerOfProduct(p *Pass, e expr.Expr) (expr.Expr, error) {
	b, ok := asPower(e)
	if !ok || !expr.IsProduct(b.Left) {
		return e, nil
	}
	c, ok := b.Right.(*expr.Constant)
	if !ok {
		return e, nil
	}
	n, ok := c.Int64()
	if !ok || n > p.cfg.MaxExponent || -n > p.cfg.MaxExponent {
		return e, nil
	}
	t, err := splitProduct(b.Left)
	if err != nil {
		return nil, err
	}
	coef, err := t.coef.PowInt(n)
	if err != nil {
		return nil, err
	}
	num := make([]expr.Expr, len(t.num))
	for i, f := range t.num {
		num[i] = expr.Pow(f, c)
	}
	den := make([]expr.Expr, len(t.den))
	for i, f := range t.den {
		den[i] = expr.Pow(f, c)
	}
	return buildProduct(coef, num, den), nil
}

// separateIntegerPowers splits a^(p/q) with p/q > 1 into the exact
// integer power of a times a^r with 0 < r < 1.
func separateIntegerPowers(p *Pass, e expr.Expr) (expr.Expr, error) {
	base, q, ok := rationalPower(e)
	if !ok || q.IsInt() || q.Cmp(big.NewRat(1, 1)) <= 0 {
		return e, nil
	}
	n := new(big.Int).Quo(q.Num(), q.Denom())
	if !n.IsInt64() || n.Int64() > p.cfg.MaxExponent {
		return e, nil
	}
	whole, err := expr.Rat(base).PowInt(n.Int64())
	if err != nil {
		return nil, err
	}
	rest := new(big.Rat).Sub(q, new(big.Rat).SetInt(n))
	return expr.Mul(whole, expr.Pow(expr.Rat(base), expr.Rat(rest))), nil
}
