package simplify

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
	"github.com/Horazon1985/ExpressionBuilder-sub006/terms"
)

func asFunction(e expr.Expr, kinds ...expr.FuncKind) (*expr.Function, bool) {
	f, ok := e.(*expr.Function)
	if !ok {
		return nil, false
	}
	for _, k := range kinds {
		if f.Kind == k {
			return f, true
		}
	}
	return nil, false
}

// collectExponentials merges the exponential factors of a product into
// one exponential in the numerator: exp(a)*exp(b)/exp(c) becomes
// exp(a+b-c).
func collectExponentials(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	plus, minus := terms.New(), terms.New()
	var num, den []expr.Expr
	for _, f := range t.num {
		if x, ok := asFunction(f, expr.Exp); ok {
			plus.Add(x.Arg)
			continue
		}
		num = append(num, f)
	}
	for _, f := range t.den {
		if x, ok := asFunction(f, expr.Exp); ok {
			minus.Add(x.Arg)
			continue
		}
		den = append(den, f)
	}
	if minus.IsEmpty() && plus.Size() < 2 {
		return e, nil
	}
	num = append(num, expr.Fn(expr.Exp, terms.ProduceDifference(plus, minus)))
	return buildProduct(t.coef, num, den), nil
}

// exponentialsToNumerator moves a power with a non-constant exponent
// from the denominator into the numerator: a/b^x becomes a*b^(-x).
func exponentialsToNumerator(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsProduct(e) {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	for i, f := range t.den {
		b, ok := asPower(f)
		if !ok || expr.IsConstant(b.Right) {
			continue
		}
		num := append(append([]expr.Expr(nil), t.num...), expr.Pow(b.Left, expr.Neg(b.Right)))
		return buildProduct(t.coef, num, without(t.den, i)), nil
	}
	return e, nil
}

// IsQuotientOfLogarithmsRational reports whether log(a)/log(b) is
// rational for integers a, b > 1 and returns the ratio. Powers of the
// smaller number are divided out of the larger one, as in the
// Euclidean algorithm, and the quotients form the continued fraction
// of the ratio.
func IsQuotientOfLogarithmsRational(a, b *big.Int) (*big.Rat, bool) {
	one := big.NewInt(1)
	if a.Cmp(one) <= 0 || b.Cmp(one) <= 0 {
		return nil, false
	}
	x, y := new(big.Int).Set(a), new(big.Int).Set(b)
	swapped := x.Cmp(y) < 0
	if swapped {
		x, y = y, x
	}
	var cf []int64
	for {
		k := int64(0)
		q, m := new(big.Int), new(big.Int)
		for {
			q.QuoRem(x, y, m)
			if m.Sign() != 0 {
				break
			}
			x.Set(q)
			k++
		}
		if x.Cmp(one) == 0 {
			cf = append(cf, k)
			break
		}
		if k == 0 || x.Cmp(y) > 0 {
			return nil, false
		}
		cf = append(cf, k)
		x, y = y, x
	}
	r := new(big.Rat).SetInt64(cf[len(cf)-1])
	for i := len(cf) - 2; i >= 0; i-- {
		r.Inv(r)
		r.Add(r, new(big.Rat).SetInt64(cf[i]))
	}
	if swapped {
		r.Inv(r)
	}
	return r, true
}

// logPower matches log(A)^m or log(A) for an integer A > 1.
func logPower(e expr.Expr) (expr.FuncKind, *big.Int, *big.Int, bool) {
	m := big.NewInt(1)
	if b, ok := asPower(e); ok {
		c, ok := b.Right.(*expr.Constant)
		if !ok || !c.IsInteger() || c.Sign() <= 0 {
			return 0, nil, nil, false
		}
		e, m = b.Left, c.Num()
	}
	f, ok := asFunction(e, expr.Ln, expr.Lg)
	if !ok {
		return 0, nil, nil, false
	}
	a, ok := f.Arg.(*expr.Constant)
	if !ok || !a.IsInteger() || a.Sign() <= 0 {
		return 0, nil, nil, false
	}
	return f.Kind, a.Num(), m, true
}

// logarithmRatios replaces ln(a)^m/ln(b)^n by r^k*ln(a)^(m-k)/ln(b)^(n-k)
// with k = min(m, n) when ln(a)/ln(b) is the rational number r.
func logarithmRatios(p *Pass, e expr.Expr) (expr.Expr, error) {
	if _, ok := asQuotient(e); !ok {
		return e, nil
	}
	t, err := splitProduct(e)
	if err != nil {
		return nil, err
	}
	if len(t.num) != 1 || len(t.den) != 1 {
		return e, nil
	}
	k1, a, m1, ok := logPower(t.num[0])
	if !ok {
		return e, nil
	}
	k2, b, m2, ok := logPower(t.den[0])
	if !ok || k1 != k2 || !m1.IsInt64() || !m2.IsInt64() {
		return e, nil
	}
	n := m1.Int64()
	if m2.Int64() < n {
		n = m2.Int64()
	}
	if n > p.cfg.MaxExponent {
		return e, nil
	}
	r, ok := IsQuotientOfLogarithmsRational(a, b)
	if !ok {
		return e, nil
	}
	v, err := expr.Rat(r).PowInt(n)
	if err != nil {
		return nil, err
	}
	var num, den []expr.Expr
	if f := power(expr.Fn(k1, expr.BigInt(a)), big.NewInt(m1.Int64()-n)); f != nil {
		num = append(num, f)
	}
	if f := power(expr.Fn(k2, expr.BigInt(b)), big.NewInt(m2.Int64()-n)); f != nil {
		den = append(den, f)
	}
	return buildProduct(t.coef.Times(v), num, den), nil
}

// logTerm matches c*log(A) with an integer c.
func logTerm(t term) (*expr.Function, bool) {
	if !t.coef.IsInteger() || len(t.num) != 1 || len(t.den) != 0 {
		return nil, false
	}
	return asFunction(t.num[0], expr.Ln, expr.Lg)
}

// collectLogarithms merges the logarithms of one kind in a sum:
// ln(a)+2*ln(b)-ln(c) becomes ln(a*b^2/c). The merged logarithm takes
// the place of the first one.
func collectLogarithms(p *Pass, e expr.Expr) (expr.Expr, error) {
	if !expr.IsSum(e) || p.Enabled(ExpandLogarithms) {
		return e, nil
	}
	ts, err := splitSum(e)
	if err != nil {
		return nil, err
	}
	changed := false
	for _, kind := range []expr.FuncKind{expr.Ln, expr.Lg} {
		var idx []int
		for i, t := range ts {
			if f, ok := logTerm(t); ok && f.Kind == kind {
				idx = append(idx, i)
			}
		}
		if len(idx) < 2 {
			continue
		}
		num, den := terms.New(), terms.New()
		for _, i := range idx {
			f, _ := logTerm(ts[i])
			c := ts[i].coef.Num()
			if c.Sign() > 0 {
				num.Add(power(f.Arg, c))
			} else {
				den.Add(power(f.Arg, c.Neg(c)))
			}
		}
		merged := term{coef: expr.One, num: []expr.Expr{expr.Fn(kind, terms.ProduceQuotient(num, den))}}
		next := make([]term, 0, len(ts))
		for i, t := range ts {
			switch {
			case i == idx[0]:
				next = append(next, merged)
			case contains(idx, i):
			default:
				next = append(next, t)
			}
		}
		ts = next
		changed = true
	}
	if !changed {
		return e, nil
	}
	return assembleSum(ts), nil
}

func contains(is []int, i int) bool {
	for _, j := range is {
		if i == j {
			return true
		}
	}
	return false
}

// expandLogarithms splits the logarithm of a product into a sum of
// logarithms and pulls exponents out: ln(a*b/c) becomes
// ln(a)+ln(b)-ln(c) and ln(a^b) becomes b*ln(a).
func expandLogarithms(p *Pass, e expr.Expr) (expr.Expr, error) {
	f, ok := asFunction(e, expr.Ln, expr.Lg)
	if !ok {
		return e, nil
	}
	if b, ok := asPower(f.Arg); ok {
		return expr.Mul(b.Right, expr.Fn(f.Kind, b.Left)), nil
	}
	if !expr.IsProduct(f.Arg) {
		return e, nil
	}
	t, err := splitProduct(f.Arg)
	if err != nil {
		return nil, err
	}
	if t.coef.Sign() <= 0 {
		return e, nil
	}
	plus, minus := terms.New(), terms.New()
	if !t.coef.IsOne() {
		plus.Add(expr.Fn(f.Kind, t.coef))
	}
	for _, x := range t.num {
		plus.Add(expr.Fn(f.Kind, x))
	}
	for _, x := range t.den {
		minus.Add(expr.Fn(f.Kind, x))
	}
	return terms.ProduceDifference(plus, minus), nil
}

// powerOfTen returns j when c is 10^j for an integer j >= 1.
func powerOfTen(c *expr.Constant) (int64, bool) {
	if !c.IsInteger() || c.Sign() <= 0 {
		return 0, false
	}
	n, ten := c.Num(), big.NewInt(10)
	j := int64(0)
	m := new(big.Int)
	for n.Cmp(big.NewInt(1)) > 0 {
		q, r := new(big.Int).QuoRem(n, ten, m)
		if r.Sign() != 0 {
			return 0, false
		}
		n = q
		j++
	}
	return j, j > 0
}

// powerOfTenAndLogarithms pulls logarithms out of an exponent:
// 10^(x+2*lg(a)) becomes a^2*10^x and exp(x+ln(a)) becomes a*exp(x).
func powerOfTenAndLogarithms(p *Pass, e expr.Expr) (expr.Expr, error) {
	var kind expr.FuncKind
	var exp expr.Expr
	scale := expr.One
	rebuild := func(x expr.Expr) expr.Expr { return expr.Fn(expr.Exp, x) }
	if f, ok := asFunction(e, expr.Exp); ok {
		kind, exp = expr.Ln, f.Arg
	} else if b, ok := asPower(e); ok {
		switch base := b.Left.(type) {
		case *expr.Variable:
			if base.Name != expr.EName {
				return e, nil
			}
			kind = expr.Ln
		case *expr.Constant:
			j, ok := powerOfTen(base)
			if !ok {
				return e, nil
			}
			kind, scale = expr.Lg, expr.Int(j)
		default:
			return e, nil
		}
		exp = b.Right
		rebuild = func(x expr.Expr) expr.Expr { return expr.Pow(b.Left, x) }
	} else {
		return e, nil
	}

	var items []term
	if expr.IsSum(exp) {
		ts, err := splitSum(exp)
		if err != nil {
			return nil, err
		}
		items = ts
	} else {
		t, err := splitProduct(exp)
		if err != nil {
			return nil, err
		}
		items = []term{t}
	}
	var pulled []expr.Expr
	var rest []term
	for _, t := range items {
		if f, ok := asFunction(single(t), kind); ok && t.coef.IsExact() {
			c := t.coef.Times(scale)
			if c.IsOne() {
				pulled = append(pulled, f.Arg)
			} else {
				pulled = append(pulled, expr.Pow(f.Arg, c))
			}
			continue
		}
		rest = append(rest, t)
	}
	if len(pulled) == 0 {
		return e, nil
	}
	if len(rest) != 0 {
		pulled = append(pulled, rebuild(assembleSum(rest)))
	}
	return buildProduct(expr.One, pulled, nil), nil
}

// single returns the only factor of t, or nil.
func single(t term) expr.Expr {
	if len(t.num) != 1 || len(t.den) != 0 {
		return nil
	}
	return t.num[0]
}
