package terms

import (
	"math/big"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

// Summands flattens nested sums of e. Zero summands are dropped
// unless nothing else is left, in which case a single zero is kept.
func Summands(e expr.Expr) *Collection {
	c := New()
	var walk func(e expr.Expr)
	walk = func(e expr.Expr) {
		if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Sum {
			walk(b.Left)
			walk(b.Right)
			return
		}
		if !isZero(e) {
			c.Add(e)
		}
	}
	walk(e)
	if c.IsEmpty() {
		c.Add(expr.Zero)
	}
	return c
}

// SummandsLeftInExpression flattens the minuend of a difference, or e
// itself when e is not a difference.
func SummandsLeftInExpression(e expr.Expr) *Collection {
	if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Difference {
		return Summands(b.Left)
	}
	return Summands(e)
}

// SummandsRightInExpression flattens the subtrahend of a difference.
// The result is empty when e is not a difference.
func SummandsRightInExpression(e expr.Expr) *Collection {
	if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Difference {
		return Summands(b.Right)
	}
	return New()
}

// Factors flattens nested products of e. Factors equal to one are
// dropped unless nothing else is left.
func Factors(e expr.Expr) *Collection {
	c := New()
	var walk func(e expr.Expr)
	walk = func(e expr.Expr) {
		if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Product {
			walk(b.Left)
			walk(b.Right)
			return
		}
		if !isOne(e) {
			c.Add(e)
		}
	}
	walk(e)
	if c.IsEmpty() {
		c.Add(expr.One)
	}
	return c
}

// FactorsOfNumeratorInExpression flattens the numerator of a quotient,
// or e itself when e is not a quotient.
func FactorsOfNumeratorInExpression(e expr.Expr) *Collection {
	if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Quotient {
		return Factors(b.Left)
	}
	return Factors(e)
}

// FactorsOfDenominatorInExpression flattens the denominator of a
// quotient. The result is empty when e is not a quotient.
func FactorsOfDenominatorInExpression(e expr.Expr) *Collection {
	if b, ok := e.(*expr.Binary); ok && b.Kind == expr.Quotient {
		return Factors(b.Right)
	}
	return New()
}

// partition splits c by whether an element contains name. An empty
// side holds the single element neutral.
func partition(c *Collection, name string, constant bool, neutral expr.Expr) *Collection {
	d := New()
	for _, t := range c.Terms() {
		if t.Contains(name) != constant {
			d.Add(t)
		}
	}
	if d.IsEmpty() {
		d.Add(neutral)
	}
	return d
}

// ConstantSummands returns the summands of e that do not contain the
// named variable, or a single zero when there are none.
func ConstantSummands(e expr.Expr, name string) *Collection {
	return partition(Summands(e), name, true, expr.Zero)
}

// NonConstantSummands returns the summands of e that contain the named
// variable, or a single zero when there are none.
func NonConstantSummands(e expr.Expr, name string) *Collection {
	return partition(Summands(e), name, false, expr.Zero)
}

// ConstantFactors returns the factors of e that do not contain the
// named variable, or a single one when there are none.
func ConstantFactors(e expr.Expr, name string) *Collection {
	return partition(Factors(e), name, true, expr.One)
}

// NonConstantFactors returns the factors of e that contain the named
// variable, or a single one when there are none.
func NonConstantFactors(e expr.Expr, name string) *Collection {
	return partition(Factors(e), name, false, expr.One)
}

// ProduceSum folds the summands of c into a left-leaning sum.
func ProduceSum(c *Collection) expr.Expr {
	var r expr.Expr
	for _, t := range c.Terms() {
		if isZero(t) {
			continue
		}
		if r == nil {
			r = t
		} else {
			r = expr.Add(r, t)
		}
	}
	if r == nil {
		return expr.Zero
	}
	return r
}

// ProduceDifference builds sum(left) - sum(right). An empty right side
// yields the sum of left alone; an empty left side yields the negated
// sum of right.
func ProduceDifference(left, right *Collection) expr.Expr {
	l, r := ProduceSum(left), ProduceSum(right)
	switch {
	case isZero(r):
		return l
	case isZero(l):
		return expr.Neg(r)
	}
	return expr.Sub(l, r)
}

// ProduceProduct folds the factors of c into a left-leaning product.
func ProduceProduct(c *Collection) expr.Expr {
	var r expr.Expr
	for _, t := range c.Terms() {
		if isOne(t) {
			continue
		}
		if r == nil {
			r = t
		} else {
			r = expr.Mul(r, t)
		}
	}
	if r == nil {
		return expr.One
	}
	return r
}

// ProduceQuotient builds product(num) / product(den). An empty
// denominator yields the numerator product alone.
func ProduceQuotient(num, den *Collection) expr.Expr {
	n, d := ProduceProduct(num), ProduceProduct(den)
	if isOne(d) {
		return n
	}
	return expr.Div(n, d)
}

// OrderDifference walks nested sums and differences of e and adds
// every other node to left or right, depending on whether it is added
// or subtracted.
func OrderDifference(e expr.Expr, left, right *Collection) {
	order(e, expr.Sum, expr.Difference, left, right, false)
}

// OrderQuotient walks nested products and quotients of e and adds
// every other node to num or den.
func OrderQuotient(e expr.Expr, num, den *Collection) {
	order(e, expr.Product, expr.Quotient, num, den, false)
}

func order(e expr.Expr, plus, minus expr.BinaryKind, pos, neg *Collection, flip bool) {
	b, ok := e.(*expr.Binary)
	if !ok || (b.Kind != plus && b.Kind != minus) {
		if flip {
			neg.Add(e)
		} else {
			pos.Add(e)
		}
		return
	}
	order(b.Left, plus, minus, pos, neg, flip)
	order(b.Right, plus, minus, pos, neg, flip != (b.Kind == minus))
}

// CollectFactorsByPowers merges factors with equivalent bases whose
// exponents are non-negative integer literals, adding the exponents.
// A bare factor counts as its own first power. Factors with any other
// exponent are left alone.
func CollectFactorsByPowers(c *Collection) *Collection {
	d := c.Copy()
	for i := 0; i < d.Bound(); i++ {
		bi, ni, ok := IntegerPower(d.Get(i))
		if !ok {
			continue
		}
		merged := false
		for j := i + 1; j < d.Bound(); j++ {
			bj, nj, ok := IntegerPower(d.Get(j))
			if !ok || !expr.Equivalent(bi, bj) {
				continue
			}
			ni = new(big.Int).Add(ni, nj)
			d.Remove(j)
			merged = true
		}
		if !merged {
			continue
		}
		switch {
		case ni.Sign() == 0:
			d.Put(i, expr.One)
		case ni.IsInt64() && ni.Int64() == 1:
			d.Put(i, bi)
		default:
			d.Put(i, expr.Pow(bi, expr.BigInt(ni)))
		}
	}
	return d
}

// IntegerPower splits e into base and exponent when the exponent is a
// non-negative integer literal. Anything that is not a power is its
// own first power.
func IntegerPower(e expr.Expr) (expr.Expr, *big.Int, bool) {
	if e == nil {
		return nil, nil, false
	}
	b, ok := e.(*expr.Binary)
	if !ok || b.Kind != expr.Power {
		return e, big.NewInt(1), true
	}
	c, ok := b.Right.(*expr.Constant)
	if !ok || !c.IsInteger() || c.Sign() < 0 {
		return nil, nil, false
	}
	return b.Left, c.Num(), true
}

// LiteralValue returns the value of a constant literal or a quotient of
// literals.
func LiteralValue(e expr.Expr) (*expr.Constant, bool) {
	switch x := e.(type) {
	case *expr.Constant:
		return x, true
	case *expr.Binary:
		if x.Kind != expr.Quotient {
			return nil, false
		}
		p, ok := LiteralValue(x.Left)
		if !ok {
			return nil, false
		}
		q, ok := LiteralValue(x.Right)
		if !ok {
			return nil, false
		}
		r, err := p.Over(q)
		if err != nil {
			return nil, false
		}
		return r, true
	}
	return nil, false
}

// collectConstants orders c into the merged literal, then the other
// constant terms, then the remaining terms. Relative order inside each
// group is kept.
func collectConstants(c *Collection, neutral *expr.Constant, merge func(a, b *expr.Constant) *expr.Constant) *Collection {
	acc := neutral
	seen := false
	var consts, rest []expr.Expr
	for _, t := range c.Terms() {
		if v, ok := LiteralValue(t); ok {
			acc = merge(acc, v)
			seen = true
			continue
		}
		if expr.IsConstant(t) {
			consts = append(consts, t)
		} else {
			rest = append(rest, t)
		}
	}
	d := New()
	if seen && (!acc.Equals(neutral) || (len(consts) == 0 && len(rest) == 0)) {
		d.Add(acc)
	}
	for _, t := range consts {
		d.Add(t)
	}
	for _, t := range rest {
		d.Add(t)
	}
	return d
}

// CollectConstantsInSum adds up the literal summands of c into a single
// literal at index 0, followed by the other constant summands and then
// the rest. Exact literals add exactly; any approximate literal makes
// the sum approximate.
func CollectConstantsInSum(c *Collection) *Collection {
	return collectConstants(c, expr.Zero, (*expr.Constant).Plus)
}

// CollectConstantsInProduct multiplies the literal factors of c into a
// single literal at index 0, followed by the other constant factors
// and then the rest. A zero literal absorbs every other factor.
func CollectConstantsInProduct(c *Collection) *Collection {
	d := collectConstants(c, expr.One, (*expr.Constant).Times)
	if v, ok := d.Get(0).(*expr.Constant); ok && v.IsZero() {
		return New(v)
	}
	return d
}

func isZero(e expr.Expr) bool {
	c, ok := e.(*expr.Constant)
	return ok && c.IsZero()
}

func isOne(e expr.Expr) bool {
	c, ok := e.(*expr.Constant)
	return ok && c.IsOne()
}
