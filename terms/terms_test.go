package terms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x "github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

var (
	a = x.Var("a")
	b = x.Var("b")
	c = x.Var("c")
	d = x.Var("d")
	e = x.Var("e")
	u = x.Var("x")
	v = x.Var("y")
	w = x.Var("z")
)

func TestCollection(t *testing.T) {
	col := New(a, b, c)
	col.Remove(1)
	if s := col.String(); s != "[a, _, c]" {
		t.Errorf("remove middle: got=%q", s)
	}
	if col.Bound() != 3 || col.Size() != 2 {
		t.Errorf("bound=%d size=%d", col.Bound(), col.Size())
	}
	col.Remove(2)
	if s := col.String(); s != "[a]" || col.Bound() != 1 {
		t.Errorf("remove last: got=%q bound=%d", s, col.Bound())
	}
	col.Put(4, d)
	if s := col.String(); s != "[a, _, _, _, d]" || col.Bound() != 5 {
		t.Errorf("put beyond bound: got=%q bound=%d", s, col.Bound())
	}
	col.Put(4, nil)
	if col.Bound() != 1 {
		t.Errorf("put nil should remove: bound=%d", col.Bound())
	}
	col.Remove(0)
	if !col.IsEmpty() || col.Bound() != 0 {
		t.Errorf("expected empty collection, got %v", col)
	}
	if col.Get(0) != nil || col.Get(-1) != nil {
		t.Error("empty slots must read as nil")
	}
}

func TestCopy(t *testing.T) {
	col := New(a, b, c, d)
	cp := col.Copy()
	cp.Remove(0)
	assert.Equal(t, "[a, b, c, d]", col.String())
	assert.Equal(t, "[_, b, c, d]", cp.String())

	col.Remove(2)
	assert.Equal(t, "[b]", col.CopyRange(1, 3).String())
	assert.Equal(t, "[b, _, d]", col.CopyRange(1, 4).String())
	assert.Equal(t, "[a, b]", col.CopyRange(-1, 2).String())
	assert.Equal(t, "[d]", col.CopyRange(3, 10).String())
}

func TestRemoveMultipleTerms(t *testing.T) {
	col := New(x.Add(u, v), w, x.Add(v, u), w, x.Mul(u, v))
	col.RemoveMultipleTerms()
	if s := col.String(); s != "[x+y, z, _, _, x*y]" {
		t.Errorf("got=%q", s)
	}
}

func TestSimplify(t *testing.T) {
	col := New(a, b, c)
	err := col.Simplify(func(e x.Expr) (x.Expr, error) {
		return x.Pow(e, x.Two), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "[a^2, b^2, c^2]", col.String())

	bad := errors.New("bad term")
	err = New(a, b, c).Simplify(func(e x.Expr) (x.Expr, error) {
		if e.Equals(b) {
			return nil, bad
		}
		return e, nil
	})
	assert.True(t, errors.Is(err, bad), "%v", err)
}

func TestSummands(t *testing.T) {
	vs := []struct {
		e           x.Expr
		left, right string
	}{
		{e: x.Add(x.Add(a, x.Zero), b), left: "[a, b]", right: "[]"},
		{e: x.Add(x.Zero, x.Zero), left: "[0]", right: "[]"},
		{e: x.Sub(x.Add(a, b), x.Add(c, d)), left: "[a, b]", right: "[c, d]"},
		{e: x.Mul(a, b), left: "[a*b]", right: "[]"},
	}
	for i, v := range vs {
		if s := SummandsLeftInExpression(v.e).String(); s != v.left {
			t.Errorf("[%d] left got=%q want=%q", i, s, v.left)
		}
		if s := SummandsRightInExpression(v.e).String(); s != v.right {
			t.Errorf("[%d] right got=%q want=%q", i, s, v.right)
		}
	}
}

func TestFactors(t *testing.T) {
	vs := []struct {
		e        x.Expr
		num, den string
	}{
		{e: x.Mul(x.Mul(x.Two, a), x.One), num: "[2, a]", den: "[]"},
		{e: x.Div(x.Mul(a, b), x.Mul(c, d)), num: "[a, b]", den: "[c, d]"},
		{e: x.Div(x.One, a), num: "[1]", den: "[a]"},
		{e: x.Add(a, b), num: "[a+b]", den: "[]"},
	}
	for i, v := range vs {
		if s := FactorsOfNumeratorInExpression(v.e).String(); s != v.num {
			t.Errorf("[%d] numerator got=%q want=%q", i, s, v.num)
		}
		if s := FactorsOfDenominatorInExpression(v.e).String(); s != v.den {
			t.Errorf("[%d] denominator got=%q want=%q", i, s, v.den)
		}
	}
}

func TestPartition(t *testing.T) {
	sum := x.Add(x.Add(u, x.Int(2)), x.Mul(x.Int(3), v))
	prod := x.Mul(u, v)
	vs := []struct {
		got  *Collection
		want string
	}{
		{got: ConstantSummands(sum, "x"), want: "[2, 3*y]"},
		{got: NonConstantSummands(sum, "x"), want: "[x]"},
		{got: NonConstantSummands(sum, "w"), want: "[0]"},
		{got: ConstantFactors(prod, "x"), want: "[y]"},
		{got: NonConstantFactors(prod, "z"), want: "[1]"},
	}
	for i, v := range vs {
		if s := v.got.String(); s != v.want {
			t.Errorf("[%d] got=%q want=%q", i, s, v.want)
		}
	}
}

func TestProduce(t *testing.T) {
	vs := []struct {
		e x.Expr
		s string
	}{
		{e: ProduceSum(New()), s: "0"},
		{e: ProduceSum(New(x.Zero, a, x.Zero, b)), s: "a+b"},
		{e: ProduceDifference(New(a), New()), s: "a"},
		{e: ProduceDifference(New(), New(b)), s: "-b"},
		{e: ProduceDifference(New(a, b), New(c)), s: "a+b-c"},
		{e: ProduceDifference(New(a), New(b, c)), s: "a-(b+c)"},
		{e: ProduceProduct(New(x.One, x.One)), s: "1"},
		{e: ProduceQuotient(New(a), New()), s: "a"},
		{e: ProduceQuotient(New(a), New(b, x.Two)), s: "a/(b*2)"},
		{e: ProduceQuotient(New(), New(b)), s: "1/b"},
	}
	for i, v := range vs {
		if s := v.e.String(); s != v.s {
			t.Errorf("[%d] got=%q want=%q", i, s, v.s)
		}
	}
}

func TestOrder(t *testing.T) {
	left, right := New(), New()
	OrderDifference(x.Sub(x.Add(a, b), x.Add(c, x.Sub(d, e))), left, right)
	assert.Equal(t, "[a, b, e]", left.String())
	assert.Equal(t, "[c, d]", right.String())

	num, den := New(), New()
	OrderQuotient(x.Div(x.Mul(a, b), x.Div(c, d)), num, den)
	assert.Equal(t, "[a, b, d]", num.String())
	assert.Equal(t, "[c]", den.String())
}

func TestCollectFactorsByPowers(t *testing.T) {
	vs := []struct {
		c *Collection
		s string
	}{
		{
			c: New(u, v, x.Pow(u, x.Two), x.Sqrt(u), u),
			s: "[x^4, y, _, x^(1/2)]",
		},
		{
			c: New(x.Pow(x.Add(u, v), x.Two), x.Add(v, u)),
			s: "[(x+y)^3]",
		},
		{
			c: New(u, x.Pow(u, x.Int(-1))),
			s: "[x, x^(-1)]",
		},
	}
	for i, v := range vs {
		if s := CollectFactorsByPowers(v.c).String(); s != v.s {
			t.Errorf("[%d] got=%q want=%q", i, s, v.s)
		}
	}
}

func TestCollectConstants(t *testing.T) {
	sin1 := x.Fn(x.Sin, x.One)
	vs := []struct {
		got  *Collection
		want string
	}{
		{got: CollectConstantsInSum(New(u, x.Two, sin1, x.Frac(1, 2), v)), want: "[5/2, sin(1), x, y]"},
		{got: CollectConstantsInSum(New(x.Approx(0.5), x.One)), want: "[1.5]"},
		{got: CollectConstantsInSum(New(x.One, u, x.MinusOne)), want: "[x]"},
		{got: CollectConstantsInSum(New(x.One, x.MinusOne)), want: "[0]"},
		{got: CollectConstantsInProduct(New(x.Two, u, x.Frac(3, 4))), want: "[3/2, x]"},
		{got: CollectConstantsInProduct(New(u, x.Zero, v)), want: "[0]"},
		{got: CollectConstantsInProduct(New(u, x.Div(x.Int(6), x.Int(4)))), want: "[3/2, x]"},
	}
	for i, v := range vs {
		if s := v.got.String(); s != v.want {
			t.Errorf("[%d] got=%q want=%q", i, s, v.want)
		}
	}
}
