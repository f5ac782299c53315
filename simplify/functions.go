package simplify

import (
	"math"
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/factor"
)

const domainTolerance = 1e-12

// outsideDomain reports whether kind is undefined at a.
func outsideDomain(kind expr.FuncKind, a float64) bool {
	zero := math.Abs(a) < domainTolerance
	switch kind {
	case expr.Ln, expr.Lg:
		return a <= 0 || zero
	case expr.Arcsin, expr.Arccos:
		return math.Abs(a) > 1+domainTolerance
	case expr.Arcsec, expr.Arccosec:
		return math.Abs(a) < 1-domainTolerance
	case expr.Arcosh:
		return a < 1-domainTolerance
	case expr.Artanh:
		return math.Abs(a) >= 1
	case expr.Arcoth:
		return math.Abs(a) <= 1
	case expr.Arsech:
		return a <= 0 || a > 1+domainTolerance
	case expr.Arcosech, expr.Cot, expr.Cosec, expr.Coth, expr.Cosech:
		return zero
	}
	return false
}

// functionDomain rejects functions applied to a constant outside their
// domain, such as ln(-2) or arcsin(3). When the argument cannot be
// evaluated the sign of the argument is judged from its structure.
func functionDomain(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := e.(*expr.Function)
	if !ok || !expr.IsConstant(f.Arg) {
		return e, nil
	}
	a, err := expr.Evaluate(f.Arg, nil)
	if err != nil {
		p.debugf("domain of %v: %v", e, err)
		if (f.Kind == expr.Ln || f.Kind == expr.Lg) && expr.IsAlwaysNonPositive(f.Arg) {
			return nil, undefined(f.Kind.String(), expr.ErrUndefinedValue)
		}
		return e, nil
	}
	if outsideDomain(f.Kind, a) {
		return nil, undefined(f.Kind.String(), expr.ErrUndefinedValue)
	}
	return e, nil
}

// exponentOfTen returns k when c is 10^k or 10^-k.
func exponentOfTen(c *expr.Constant) (int64, bool) {
	if !c.IsExact() || c.Sign() <= 0 {
		return 0, false
	}
	if j, ok := powerOfTen(expr.BigInt(c.Num())); ok && factor.IsOne(c.Denom()) {
		return j, true
	}
	if j, ok := powerOfTen(expr.BigInt(c.Denom())); ok && factor.IsOne(c.Num()) {
		return -j, true
	}
	return 0, false
}

// functionValues evaluates functions at their special points:
// exp(0), ln(1), ln(e), lg(10^k), abs and sgn of known signs, and the
// hyperbolic functions at zero.
func functionValues(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := e.(*expr.Function)
	if !ok {
		return e, nil
	}
	c, lit := f.Arg.(*expr.Constant)
	isZero := lit && c.IsZero()
	isOne := lit && c.IsOne()
	switch f.Kind {
	case expr.Exp:
		if isZero {
			return expr.One, nil
		}
	case expr.Ln:
		switch {
		case isOne:
			return expr.Zero, nil
		case expr.IsVariable(f.Arg, expr.EName):
			return expr.One, nil
		}
		if b, ok := asPower(f.Arg); ok && expr.IsVariable(b.Left, expr.EName) {
			return b.Right, nil
		}
	case expr.Lg:
		if lit {
			if isOne {
				return expr.Zero, nil
			}
			if k, ok := exponentOfTen(c); ok {
				return expr.Int(k), nil
			}
		}
		if b, ok := asPower(f.Arg); ok {
			if base, ok := b.Left.(*expr.Constant); ok && base.IsInteger() && base.Num().Cmp(big.NewInt(10)) == 0 {
				return b.Right, nil
			}
		}
	case expr.Abs:
		switch {
		case lit:
			return c.Abs(), nil
		case expr.IsAlwaysNonNegative(f.Arg):
			return f.Arg, nil
		}
	case expr.Sgn:
		switch {
		case lit:
			return expr.Int(int64(c.Sign())), nil
		case expr.IsPositive(f.Arg):
			return expr.One, nil
		case expr.IsNegative(f.Arg):
			return expr.MinusOne, nil
		}
	case expr.Id:
		return f.Arg, nil
	case expr.Sinh, expr.Tanh, expr.Arsinh, expr.Artanh:
		if isZero {
			return expr.Zero, nil
		}
	case expr.Cosh, expr.Sech:
		if isZero {
			return expr.One, nil
		}
	case expr.Arcosh, expr.Arsech:
		if isOne {
			return expr.Zero, nil
		}
	}
	return e, nil
}

// inverseFunctions cancels a function applied to its inverse, such as
// sin(arcsin(x)), exp(ln(x)) and ln(exp(x)). Of the inverse functions
// applied to their originals only the bijective hyperbolic ones cancel.
func inverseFunctions(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := e.(*expr.Function)
	if !ok {
		return e, nil
	}
	g, ok := f.Arg.(*expr.Function)
	if !ok {
		return e, nil
	}
	inv, ok := f.Kind.Inverse()
	if !ok || g.Kind != inv {
		return e, nil
	}
	switch f.Kind {
	case expr.Exp, expr.Ln, expr.Arsinh, expr.Artanh, expr.Arcoth, expr.Arcosech:
		return g.Arg, nil
	}
	if f.Kind >= expr.Sin && f.Kind <= expr.Cosech {
		return g.Arg, nil
	}
	return e, nil
}

// symmetry pulls the sign out of the argument of odd and even
// functions: sin(-x) becomes -sin(x) and cos(-x) becomes cos(x).
func symmetry(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := e.(*expr.Function)
	if !ok {
		return e, nil
	}
	odd := false
	switch f.Kind {
	case expr.Sin, expr.Tan, expr.Cot, expr.Cosec, expr.Sinh, expr.Tanh, expr.Coth, expr.Cosech,
		expr.Arcsin, expr.Arctan, expr.Arsinh, expr.Artanh, expr.Arcoth, expr.Arcosech, expr.Arccosec,
		expr.Sgn, expr.Id:
		odd = true
	case expr.Cos, expr.Sec, expr.Cosh, expr.Sech, expr.Abs:
	default:
		return e, nil
	}
	a, ok := negated(f.Arg)
	if !ok {
		return e, nil
	}
	if odd {
		return expr.Neg(expr.Fn(f.Kind, a)), nil
	}
	return expr.Fn(f.Kind, a), nil
}
