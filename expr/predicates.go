package expr

import (
	"math"
	"math/big"
)

// RationalValue returns the exact value of e when e is an exact
// constant or a quotient of exact constants.
func RationalValue(e Expr) (*big.Rat, bool) {
	switch x := e.(type) {
	case *Constant:
		if x.exact {
			return x.Rat(), true
		}
	case *Binary:
		if x.Kind != Quotient {
			return nil, false
		}
		p, ok := RationalValue(x.Left)
		if !ok {
			return nil, false
		}
		q, ok := RationalValue(x.Right)
		if !ok || q.Sign() == 0 {
			return nil, false
		}
		return p.Quo(p, q), true
	}
	return nil, false
}

// IsRationalConstant reports whether e is an exact constant or a
// quotient of exact constants.
func IsRationalConstant(e Expr) bool {
	_, ok := RationalValue(e)
	return ok
}

// IsIntegerConstant reports whether e is an exact integer literal.
func IsIntegerConstant(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && c.IsInteger()
}

// IsLiteral reports whether e is a constant literal, exact or
// approximate, or a quotient of such literals.
func IsLiteral(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return true
	case *Binary:
		return x.Kind == Quotient && IsLiteral(x.Left) && IsLiteral(x.Right)
	}
	return false
}

// IsApproximate reports whether any constant in e is approximate.
func IsApproximate(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return !x.exact
	case *Binary:
		return IsApproximate(x.Left) || IsApproximate(x.Right)
	case *Function:
		return IsApproximate(x.Arg)
	case *Operator:
		return !x.Exact || IsApproximate(x.Body) || IsApproximate(x.Lower) || IsApproximate(x.Upper)
	}
	return false
}

// IsOddConstant reports whether e is an odd integer literal.
func IsOddConstant(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && c.IsInteger() && c.rat.Num().Bit(0) == 1
}

// IsEvenConstant reports whether e is an even integer literal.
func IsEvenConstant(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && c.IsInteger() && c.rat.Num().Bit(0) == 0
}

// constantSign evaluates a constant expression and reports its sign.
func constantSign(e Expr) (int, bool) {
	if !IsConstant(e) {
		return 0, false
	}
	f, err := Evaluate(e, nil)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	switch {
	case f > 0:
		return 1, true
	case f < 0:
		return -1, true
	}
	return 0, true
}

// IsNonNegative reports whether e is constant and not negative.
func IsNonNegative(e Expr) bool {
	s, ok := constantSign(e)
	return ok && s >= 0
}

// IsNonPositive reports whether e is constant and not positive.
func IsNonPositive(e Expr) bool {
	s, ok := constantSign(e)
	return ok && s <= 0
}

// IsPositive reports whether e is constant and positive.
func IsPositive(e Expr) bool {
	s, ok := constantSign(e)
	return ok && s > 0
}

// IsNegative reports whether e is constant and negative.
func IsNegative(e Expr) bool {
	s, ok := constantSign(e)
	return ok && s < 0
}

// IsAlwaysNonNegative reports whether e is non-negative for every
// assignment of its variables, judged from its structure.
func IsAlwaysNonNegative(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return x.Sign() >= 0
	case *Variable:
		return x.Name == PiName || x.Name == EName
	case *Binary:
		switch x.Kind {
		case Sum:
			return IsAlwaysNonNegative(x.Left) && IsAlwaysNonNegative(x.Right)
		case Difference:
			return IsAlwaysNonNegative(x.Left) && IsAlwaysNonPositive(x.Right)
		case Product, Quotient:
			return (IsAlwaysNonNegative(x.Left) && IsAlwaysNonNegative(x.Right)) ||
				(IsAlwaysNonPositive(x.Left) && IsAlwaysNonPositive(x.Right))
		case Power:
			if IsEvenConstant(x.Right) || IsAlwaysNonNegative(x.Left) {
				return true
			}
			if r, ok := RationalValue(x.Right); ok && r.Num().Bit(0) == 0 {
				return true
			}
		}
	case *Function:
		switch x.Kind {
		case Abs, Exp, Cosh, Sech, Arccos, Arcosh:
			return true
		case Sgn, Id, Sinh, Tanh, Arsinh, Artanh, Arctan:
			return IsAlwaysNonNegative(x.Arg)
		}
	case *Operator:
		return IsAlwaysNonNegative(x.Body)
	}
	return false
}

// IsAlwaysNonPositive reports whether e is not positive for every
// assignment of its variables, judged from its structure. It does not
// evaluate e, so it also holds for constants too large to evaluate,
// such as -exp(1000).
func IsAlwaysNonPositive(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return x.Sign() <= 0
	case *Binary:
		switch x.Kind {
		case Sum:
			return IsAlwaysNonPositive(x.Left) && IsAlwaysNonPositive(x.Right)
		case Difference:
			return IsAlwaysNonPositive(x.Left) && IsAlwaysNonNegative(x.Right)
		case Product, Quotient:
			return (IsAlwaysNonPositive(x.Left) && IsAlwaysNonNegative(x.Right)) ||
				(IsAlwaysNonNegative(x.Left) && IsAlwaysNonPositive(x.Right))
		}
	case *Function:
		switch x.Kind {
		case Sgn, Id, Sinh, Tanh, Arsinh, Artanh, Arctan:
			return IsAlwaysNonPositive(x.Arg)
		}
	}
	return false
}

// IsAlwaysPositive reports whether e is positive for every assignment
// of its variables, judged from its structure.
func IsAlwaysPositive(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return x.Sign() > 0
	case *Variable:
		return x.Name == PiName || x.Name == EName
	case *Binary:
		switch x.Kind {
		case Sum:
			return (IsAlwaysPositive(x.Left) && IsAlwaysNonNegative(x.Right)) ||
				(IsAlwaysNonNegative(x.Left) && IsAlwaysPositive(x.Right))
		case Product, Quotient:
			return IsAlwaysPositive(x.Left) && IsAlwaysPositive(x.Right)
		case Power:
			return IsAlwaysPositive(x.Left)
		}
	case *Function:
		switch x.Kind {
		case Exp, Cosh, Sech:
			return true
		}
	}
	return false
}
