package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/factor"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

// piMultiple returns r when e is the exact multiple r*pi.
func piMultiple(e expr.Expr) (*big.Rat, bool) {
	if c, ok := e.(*expr.Constant); ok {
		return new(big.Rat), c.IsExact() && c.IsZero()
	}
	if expr.IsVariable(e, expr.PiName) {
		return big.NewRat(1, 1), true
	}
	if !expr.IsProduct(e) {
		return nil, false
	}
	t, err := splitProduct(e)
	if err != nil || !t.coef.IsExact() || len(t.num) != 1 || len(t.den) != 0 {
		return nil, false
	}
	if !expr.IsVariable(t.num[0], expr.PiName) {
		return nil, false
	}
	return t.coef.Rat(), true
}

// trigRow holds sin, cos, tan, cot, sec and cosec at one multiple of
// pi. A nil entry is a pole.
type trigRow struct {
	r      *big.Rat
	values [6]expr.Expr
}

var trigTable []trigRow

func init() {
	s := func(n int64) expr.Expr { return expr.Sqrt(expr.Int(n)) }
	i := expr.Int
	div := expr.Div
	s5 := s(5)
	trigTable = []trigRow{
		{big.NewRat(0, 1), [6]expr.Expr{i(0), i(1), i(0), nil, i(1), nil}},
		{big.NewRat(1, 6), [6]expr.Expr{
			expr.Frac(1, 2), div(s(3), i(2)), div(s(3), i(3)),
			s(3), div(expr.Mul(i(2), s(3)), i(3)), i(2),
		}},
		{big.NewRat(1, 5), [6]expr.Expr{
			div(expr.Sqrt(expr.Sub(i(10), expr.Mul(i(2), s5))), i(4)),
			div(expr.Add(i(1), s5), i(4)),
			expr.Sqrt(expr.Sub(i(5), expr.Mul(i(2), s5))),
			div(expr.Sqrt(expr.Add(i(25), expr.Mul(i(10), s5))), i(5)),
			expr.Sub(s5, i(1)),
			div(expr.Sqrt(expr.Add(i(50), expr.Mul(i(10), s5))), i(5)),
		}},
		{big.NewRat(1, 4), [6]expr.Expr{
			div(s(2), i(2)), div(s(2), i(2)), i(1), i(1), s(2), s(2),
		}},
		{big.NewRat(1, 3), [6]expr.Expr{
			div(s(3), i(2)), expr.Frac(1, 2), s(3),
			div(s(3), i(3)), i(2), div(expr.Mul(i(2), s(3)), i(3)),
		}},
		{big.NewRat(2, 5), [6]expr.Expr{
			div(expr.Sqrt(expr.Add(i(10), expr.Mul(i(2), s5))), i(4)),
			div(expr.Sub(s5, i(1)), i(4)),
			expr.Sqrt(expr.Add(i(5), expr.Mul(i(2), s5))),
			div(expr.Sqrt(expr.Sub(i(25), expr.Mul(i(10), s5))), i(5)),
			expr.Add(s5, i(1)),
			div(expr.Sqrt(expr.Sub(i(50), expr.Mul(i(10), s5))), i(5)),
		}},
		{big.NewRat(1, 2), [6]expr.Expr{i(1), i(0), nil, i(0), nil, i(1)}},
	}
}

// floorRat returns the largest integer not above r.
func floorRat(r *big.Rat) *big.Int {
	q := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), new(big.Int))
	return q
}

// reduceModulo returns r - k*period for the integer k that brings the
// result into [0, period).
func reduceModulo(r *big.Rat, period int64) *big.Rat {
	p := big.NewRat(period, 1)
	k := floorRat(new(big.Rat).Quo(r, p))
	return new(big.Rat).Sub(r, new(big.Rat).Mul(new(big.Rat).SetInt(k), p))
}

// trigValues evaluates sin, cos, tan, cot, sec and cosec at rational
// multiples of pi. The argument is reduced into [0, pi/2] using the
// period and the symmetries of the function; values at multiples of
// pi/6, pi/5 and pi/4 are replaced by their closed forms.
func trigValues(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := e.(*expr.Function)
	if !ok || !f.Kind.IsTrigonometric() {
		return e, nil
	}
	orig, ok := piMultiple(f.Arg)
	if !ok {
		return e, nil
	}
	neg := false
	var r *big.Rat
	switch f.Kind {
	case expr.Tan, expr.Cot:
		r = reduceModulo(orig, 1)
	default:
		r = reduceModulo(orig, 2)
		if r.Cmp(big.NewRat(1, 1)) >= 0 {
			r.Sub(r, big.NewRat(1, 1))
			neg = true
		}
	}
	if r.Cmp(big.NewRat(1, 2)) > 0 {
		r.Sub(big.NewRat(1, 1), r)
		switch f.Kind {
		case expr.Cos, expr.Sec, expr.Tan, expr.Cot:
			neg = !neg
		}
	}
	for _, row := range trigTable {
		if row.r.Cmp(r) != 0 {
			continue
		}
		v := row.values[f.Kind-expr.Sin]
		if v == nil {
			return nil, undefined(f.Kind.String(), expr.ErrUndefinedValue)
		}
		if neg {
			return expr.Neg(v), nil
		}
		return v, nil
	}
	if r.Cmp(orig) == 0 && !neg {
		return e, nil
	}
	v := expr.Fn(f.Kind, buildProduct(expr.Rat(r), []expr.Expr{expr.Pi}, nil))
	if neg {
		return expr.Neg(v), nil
	}
	return v, nil
}

type inverseEntry struct {
	arg, value expr.Expr
}

var inverseTables map[expr.FuncKind][]inverseEntry

func init() {
	s := func(n int64) expr.Expr { return expr.Sqrt(expr.Int(n)) }
	piOver := func(n int64) expr.Expr {
		if n == 1 {
			return expr.Pi
		}
		return expr.Div(expr.Pi, expr.Int(n))
	}
	half := expr.Frac(1, 2)
	r2 := expr.Div(s(2), expr.Int(2))
	r3 := expr.Div(s(3), expr.Int(2))
	t3 := expr.Div(s(3), expr.Int(3))
	d3 := expr.Div(expr.Mul(expr.Two, s(3)), expr.Int(3))
	inverseTables = map[expr.FuncKind][]inverseEntry{
		expr.Arcsin: {
			{expr.Zero, expr.Zero}, {half, piOver(6)}, {r2, piOver(4)},
			{r3, piOver(3)}, {expr.One, piOver(2)},
		},
		expr.Arccos: {
			{expr.One, expr.Zero}, {r3, piOver(6)}, {r2, piOver(4)},
			{half, piOver(3)}, {expr.Zero, piOver(2)},
		},
		expr.Arctan: {
			{expr.Zero, expr.Zero}, {t3, piOver(6)}, {expr.One, piOver(4)},
			{s(3), piOver(3)},
		},
		expr.Arccot: {
			{expr.Zero, piOver(2)}, {s(3), piOver(6)}, {expr.One, piOver(4)},
			{t3, piOver(3)},
		},
		expr.Arcsec: {
			{expr.One, expr.Zero}, {d3, piOver(6)}, {s(2), piOver(4)},
			{expr.Two, piOver(3)},
		},
		expr.Arccosec: {
			{expr.Two, piOver(6)}, {s(2), piOver(4)}, {d3, piOver(3)},
			{expr.One, piOver(2)},
		},
	}
}

// negated returns -e when e is a negative constant or a product with a
// negative coefficient.
func negated(e expr.Expr) (expr.Expr, bool) {
	if c, ok := e.(*expr.Constant); ok {
		return c.Neg(), c.Sign() < 0
	}
	if !expr.IsProduct(e) {
		return nil, false
	}
	t, err := splitProduct(e)
	if err != nil || t.coef.Sign() >= 0 {
		return nil, false
	}
	return buildProduct(t.coef.Neg(), t.num, t.den), true
}

// inverseTrigValues evaluates the inverse trigonometric functions at
// the closed-form values of their counterparts. Arc cosine, arc
// cotangent and arc secant of a negative argument become pi minus the
// value at its negation.
func inverseTrigValues(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := asFunction(e, expr.Arcsin, expr.Arccos, expr.Arctan, expr.Arccot, expr.Arcsec, expr.Arccosec)
	if !ok {
		return e, nil
	}
	if f.Kind == expr.Arccos || f.Kind == expr.Arccot || f.Kind == expr.Arcsec {
		if a, ok := negated(f.Arg); ok {
			return expr.Sub(expr.Pi, expr.Fn(f.Kind, a)), nil
		}
	}
	for _, x := range inverseTables[f.Kind] {
		if x.arg.Equals(f.Arg) || expr.Equivalent(x.arg, f.Arg) {
			return x.value, nil
		}
	}
	return e, nil
}

// expandTrig applies the addition theorems to sin and cos of a sum and
// the multiple angle formulas to sin(n*x) and cos(n*x).
func expandTrig(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := asFunction(e, expr.Sin, expr.Cos)
	if !ok {
		return e, nil
	}
	if expr.IsSum(f.Arg) {
		ts, err := splitSum(f.Arg)
		if err != nil {
			return nil, err
		}
		if len(ts) < 2 {
			return e, nil
		}
		a, b := ts[0].build(), assembleSum(ts[1:])
		sa, ca := expr.Fn(expr.Sin, a), expr.Fn(expr.Cos, a)
		sb, cb := expr.Fn(expr.Sin, b), expr.Fn(expr.Cos, b)
		if f.Kind == expr.Sin {
			return expr.Add(expr.Mul(sa, cb), expr.Mul(ca, sb)), nil
		}
		return expr.Sub(expr.Mul(ca, cb), expr.Mul(sa, sb)), nil
	}
	if !expr.IsProduct(f.Arg) {
		return e, nil
	}
	t, err := splitProduct(f.Arg)
	if err != nil {
		return nil, err
	}
	n, ok := t.coef.Int64()
	if !ok || n < 2 || n > p.cfg.MaxMultipleAngle {
		return e, nil
	}
	x := buildProduct(expr.One, t.num, t.den)
	if f.Kind == expr.Sin {
		return multipleAngle(x, n, 1), nil
	}
	return multipleAngle(x, n, 0), nil
}

// multipleAngle builds sin(n*x) from the odd terms (first = 1) or
// cos(n*x) from the even terms (first = 0) of the binomial expansion
// of (cos(x) + i*sin(x))^n.
func multipleAngle(x expr.Expr, n, first int64) expr.Expr {
	s, c := expr.Fn(expr.Sin, x), expr.Fn(expr.Cos, x)
	pos, neg := terms.New(), terms.New()
	for k := first; k <= n; k += 2 {
		fs := terms.New(expr.BigInt(factor.Binomial(n, k)))
		if m := power(c, big.NewInt(n-k)); m != nil {
			fs.Add(m)
		}
		if m := power(s, big.NewInt(k)); m != nil {
			fs.Add(m)
		}
		if (k/2)%2 == 0 {
			pos.Add(terms.ProduceProduct(fs))
		} else {
			neg.Add(terms.ProduceProduct(fs))
		}
	}
	return terms.ProduceDifference(pos, neg)
}
