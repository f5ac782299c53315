package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// term is a product split into its literal coefficient and the other
// factors of its numerator and denominator.
type term struct {
	coef     *expr.Constant
	num, den []expr.Expr
}

// splitProduct splits e into coefficient and factors. Anything that is
// not a product or a quotient is a single numerator factor.
func splitProduct(e expr.Expr) (term, error) {
	t := term{coef: expr.One}
	if c, ok := e.(*expr.Constant); ok {
		t.coef = c
		return t, nil
	}
	if !expr.IsProduct(e) {
		t.num = []expr.Expr{e}
		return t, nil
	}
	num, den := terms.New(), terms.New()
	terms.OrderQuotient(e, num, den)
	for _, f := range num.Terms() {
		if c, ok := f.(*expr.Constant); ok {
			t.coef = t.coef.Times(c)
			continue
		}
		t.num = append(t.num, f)
	}
	for _, f := range den.Terms() {
		if c, ok := f.(*expr.Constant); ok {
			q, err := t.coef.Over(c)
			if err != nil {
				return term{}, err
			}
			t.coef = q
			continue
		}
		t.den = append(t.den, f)
	}
	return t, nil
}

// isLiteral reports whether t has no factors besides its coefficient.
func (t term) isLiteral() bool { return len(t.num) == 0 && len(t.den) == 0 }

// key is t without its coefficient. Terms with equivalent keys are
// like terms.
func (t term) key() expr.Expr { return buildProduct(expr.One, t.num, t.den) }

func (t term) build() expr.Expr { return buildProduct(t.coef, t.num, t.den) }

// buildProduct assembles the canonical product coef*num/den. The
// numerator of an exact coefficient leads the numerator and its
// denominator leads the denominator. A coefficient of -1 becomes a
// leading negation.
func buildProduct(coef *expr.Constant, num, den []expr.Expr) expr.Expr {
	if coef.IsZero() || (len(num) == 0 && len(den) == 0) {
		return coef
	}
	var lead, below *expr.Constant
	neg := false
	if coef.IsExact() {
		p, q := expr.BigInt(coef.Num()), expr.BigInt(coef.Denom())
		if !q.IsOne() {
			below = q
		}
		switch {
		case p.IsMinusOne():
			neg = true
		case !p.IsOne():
			lead = p
		}
	} else {
		switch {
		case coef.IsMinusOne():
			neg = true
		case !coef.IsOne():
			lead = coef
		}
	}
	var n expr.Expr
	if lead != nil {
		n = lead
	}
	for _, f := range num {
		if n == nil {
			n = f
		} else {
			n = expr.Mul(n, f)
		}
	}
	switch {
	case neg && n == nil:
		n = expr.MinusOne
	case neg:
		n = expr.Mul(expr.MinusOne, n)
	case n == nil:
		n = expr.One
	}
	var d expr.Expr
	if below != nil {
		d = below
	}
	for _, f := range den {
		if d == nil {
			d = f
		} else {
			d = expr.Mul(d, f)
		}
	}
	if d == nil {
		return n
	}
	return expr.Div(n, d)
}

// splitSum returns the summands of e with the sign of a subtracted
// summand folded into its coefficient.
func splitSum(e expr.Expr) ([]term, error) {
	left, right := terms.New(), terms.New()
	terms.OrderDifference(e, left, right)
	var ts []term
	for _, s := range left.Terms() {
		t, err := splitProduct(s)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	for _, s := range right.Terms() {
		t, err := splitProduct(s)
		if err != nil {
			return nil, err
		}
		t.coef = t.coef.Neg()
		ts = append(ts, t)
	}
	return ts, nil
}

// assembleSum adds the positive terms in order and then subtracts the
// negative ones. When no term is positive the first negative term
// keeps its sign and leads.
func assembleSum(ts []term) expr.Expr {
	var pos, neg []term
	for _, t := range ts {
		switch t.coef.Sign() {
		case 1:
			pos = append(pos, t)
		case -1:
			neg = append(neg, t)
		}
	}
	var r expr.Expr
	if len(pos) == 0 {
		if len(neg) == 0 {
			return expr.Zero
		}
		r = neg[0].build()
		neg = neg[1:]
	}
	for _, t := range pos {
		if r == nil {
			r = t.build()
		} else {
			r = expr.Add(r, t.build())
		}
	}
	for _, t := range neg {
		a := t
		a.coef = t.coef.Neg()
		r = expr.Sub(r, a.build())
	}
	return r
}

// sameTerm reports whether a and b are like terms with the same
// coefficient.
func sameTerm(a, b term) bool {
	return a.coef.Cmp(b.coef) == 0 && expr.Equivalent(a.key(), b.key())
}

// oppositeTerm reports whether a and b are like terms with opposite
// coefficients.
func oppositeTerm(a, b term) bool {
	return a.coef.Cmp(b.coef.Neg()) == 0 && expr.Equivalent(a.key(), b.key())
}

// rationalPower splits e into a positive exact rational base and an
// exact rational exponent.
func rationalPower(e expr.Expr) (*big.Rat, *big.Rat, bool) {
	b, ok := e.(*expr.Binary)
	if !ok || b.Kind != expr.Power {
		return nil, nil, false
	}
	base, ok := b.Left.(*expr.Constant)
	if !ok || !base.IsExact() || base.Sign() <= 0 {
		return nil, nil, false
	}
	exp, ok := b.Right.(*expr.Constant)
	if !ok || !exp.IsExact() {
		return nil, nil, false
	}
	return base.Rat(), exp.Rat(), true
}

// isRadical reports whether e is a positive rational constant raised to
// a non-integer rational power.
func isRadical(e expr.Expr) bool {
	_, q, ok := rationalPower(e)
	return ok && !q.IsInt()
}

// isSquareRoot reports whether e is some base raised to the power 1/2.
func isSquareRoot(e expr.Expr) bool {
	b, ok := e.(*expr.Binary)
	if !ok || b.Kind != expr.Power {
		return false
	}
	c, ok := b.Right.(*expr.Constant)
	return ok && c.Equals(expr.Frac(1, 2))
}

// power builds b^n, leaving out trivial exponents. It returns nil for
// n == 0.
func power(b expr.Expr, n *big.Int) expr.Expr {
	switch {
	case n.Sign() == 0:
		return nil
	case n.IsInt64() && n.Int64() == 1:
		return b
	}
	return expr.Pow(b, expr.BigInt(n))
}

func without(es []expr.Expr, i int) []expr.Expr {
	r := make([]expr.Expr, 0, len(es)-1)
	r = append(r, es[:i]...)
	return append(r, es[i+1:]...)
}

func undefined(op string, err error) error {
	return &expr.EvaluationError{Op: op, Err: err}
}
