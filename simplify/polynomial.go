package simplify

import "github.com/Horazon1985/ExpressionBuilder-sub006/expr"

// IsPolynomial reports whether e is a polynomial in the variable v.
func IsPolynomial(e expr.Expr, v string) bool {
	return DegreeOfPolynomial(e, v) >= 0
}

// polynomialExponent returns the non-negative integer exponent n of a
// power, or -1.
func polynomialExponent(e expr.Expr) int64 {
	c, ok := e.(*expr.Constant)
	if !ok {
		return -1
	}
	n, ok := c.Int64()
	if !ok || n < 0 {
		return -1
	}
	return n
}

// DegreeOfPolynomial returns an upper bound for the degree of e in v,
// or -1 when e is not a polynomial in v.
func DegreeOfPolynomial(e expr.Expr, v string) int64 {
	return polynomialBound(e, v, true)
}

// OrderOfPolynomial returns a lower bound for the smallest power of v
// occurring in e, or -1 when e is not a polynomial in v.
func OrderOfPolynomial(e expr.Expr, v string) int64 {
	return polynomialBound(e, v, false)
}

func polynomialBound(e expr.Expr, v string, upper bool) int64 {
	if !e.Contains(v) {
		return 0
	}
	switch x := e.(type) {
	case *expr.Variable:
		return 1
	case *expr.Binary:
		if x.Kind == expr.Power || x.Kind == expr.Quotient {
			if x.Right.Contains(v) {
				return -1
			}
		}
		l := polynomialBound(x.Left, v, upper)
		if l < 0 {
			return -1
		}
		switch x.Kind {
		case expr.Quotient:
			return l
		case expr.Power:
			n := polynomialExponent(x.Right)
			if n < 0 {
				return -1
			}
			return l * n
		}
		r := polynomialBound(x.Right, v, upper)
		if r < 0 {
			return -1
		}
		if x.Kind == expr.Product {
			return l + r
		}
		// Sum or difference.
		if upper == (l > r) {
			return l
		}
		return r
	}
	return -1
}
