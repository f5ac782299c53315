package simplify

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

var (
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
	u = expr.Var("u")
	v = expr.Var("v")
	k = expr.Var("k")
	n = expr.Var("n")

	i    = expr.Int
	frac = expr.Frac
)

func simplified(t *testing.T, e expr.Expr, groups ...Group) expr.Expr {
	t.Helper()
	r, err := New(DefaultConfig()).Simplify(context.Background(), e, groups...)
	require.NoError(t, err, "simplify %v", e)
	return r
}

func TestSimplify(t *testing.T) {
	vs := []struct {
		e    expr.Expr
		want string
	}{
		{e: expr.Div(i(6), i(8)), want: "3/4"},
		{
			e: expr.Div(
				expr.Add(expr.Mul(i(25), x), expr.Mul(i(10), y)),
				expr.Sub(expr.Mul(i(80), u), expr.Mul(i(35), v))),
			want: "(5*x+2*y)/(16*u-7*v)",
		},
		{e: expr.Sqrt(i(8)), want: "2*2^(1/2)"},
		{e: expr.Pow(i(108), frac(2, 3)), want: "9*4^(2/3)"},
		{e: expr.Pow(i(-8), frac(1, 3)), want: "-2"},
		{e: expr.Pow(i(2), i(10)), want: "1024"},
		{e: expr.Pow(frac(2, 3), i(-2)), want: "9/4"},
		{e: expr.Pow(i(4), frac(-1, 2)), want: "1/2"},
		{e: expr.Pow(expr.Add(i(1), expr.Sqrt(i(2))), i(3)), want: "7+5*2^(1/2)"},
		{e: expr.Div(i(1), expr.Add(i(1), expr.Sqrt(i(2)))), want: "2^(1/2)-1"},
		{e: expr.Mul(expr.Sqrt(i(2)), expr.Sqrt(i(2))), want: "2"},
		{e: expr.Add(x, expr.Zero), want: "x"},
		{e: expr.Mul(x, expr.One), want: "x"},
		{e: expr.Div(x, expr.One), want: "x"},
		{e: expr.Pow(x, expr.Zero), want: "1"},
		{e: expr.Pow(x, expr.One), want: "x"},
		{e: expr.Pow(expr.One, x), want: "1"},
		{e: expr.Pow(expr.Zero, i(3)), want: "0"},
		{e: expr.Sub(x, x), want: "0"},
		{e: expr.Add(x, x), want: "2*x"},
		{e: expr.Add(expr.Add(x, i(2)), expr.Sub(y, i(5))), want: "x+y-3"},
		{e: expr.Mul(i(2), expr.Sub(x, y)), want: "2*x-2*y"},
		{e: expr.Div(x, i(-2)), want: "-x/2"},
		{e: expr.Mul(x, x), want: "x^2"},
		{e: expr.Div(expr.Pow(x, i(3)), x), want: "x^2"},
		{e: expr.Div(x, expr.Div(y, z)), want: "x*z/y"},
		{e: expr.Pow(x, i(-1)), want: "1/x"},
		{e: expr.Div(expr.Add(expr.Mul(i(2), x), expr.Mul(i(4), y)), expr.Add(x, expr.Mul(i(2), y))), want: "2"},
		{e: expr.Fn(expr.Sin, expr.Div(expr.Mul(i(5), expr.Pi), i(6))), want: "1/2"},
		{e: expr.Fn(expr.Sin, expr.Div(expr.Neg(expr.Pi), i(6))), want: "-1/2"},
		{e: expr.Fn(expr.Cos, expr.Div(expr.Mul(i(2), expr.Pi), i(3))), want: "-1/2"},
		{e: expr.Fn(expr.Sin, expr.Div(expr.Pi, i(4))), want: "2^(1/2)/2"},
		{e: expr.Fn(expr.Tan, expr.Div(expr.Pi, i(4))), want: "1"},
		{e: expr.Fn(expr.Sin, expr.Pi), want: "0"},
		{e: expr.Fn(expr.Cos, expr.Mul(i(7), expr.Pi)), want: "-1"},
		{e: expr.Fn(expr.Arcsin, frac(1, 2)), want: "pi/6"},
		{e: expr.Fn(expr.Arccos, frac(-1, 2)), want: "2*pi/3"},
		{e: expr.Fn(expr.Sin, expr.Neg(x)), want: "-sin(x)"},
		{e: expr.Fn(expr.Cos, expr.Neg(x)), want: "cos(x)"},
		{e: expr.Fn(expr.Sin, expr.Fn(expr.Arcsin, x)), want: "x"},
		{e: expr.Fn(expr.Exp, expr.Fn(expr.Ln, x)), want: "x"},
		{e: expr.Fn(expr.Ln, expr.Fn(expr.Exp, x)), want: "x"},
		{e: expr.Fn(expr.Exp, expr.Zero), want: "1"},
		{e: expr.Fn(expr.Ln, expr.One), want: "0"},
		{e: expr.Fn(expr.Ln, expr.E), want: "1"},
		{e: expr.Fn(expr.Lg, i(1000)), want: "3"},
		{e: expr.Fn(expr.Lg, frac(1, 100)), want: "-2"},
		{e: expr.Fn(expr.Abs, i(-3)), want: "3"},
		{e: expr.Fn(expr.Abs, expr.Pow(x, i(2))), want: "x^2"},
		{e: expr.Fn(expr.Sgn, expr.Pi), want: "1"},
		{e: expr.Fn(expr.Cosh, expr.Zero), want: "1"},
		{e: expr.Mul(expr.Fn(expr.Exp, x), expr.Fn(expr.Exp, y)), want: "exp(x+y)"},
		{e: expr.Div(expr.Fn(expr.Exp, x), expr.Fn(expr.Exp, y)), want: "exp(x-y)"},
		{e: expr.Add(expr.Fn(expr.Ln, x), expr.Fn(expr.Ln, y)), want: "ln(x*y)"},
		{e: expr.Sub(expr.Fn(expr.Ln, x), expr.Fn(expr.Ln, y)), want: "ln(x/y)"},
		{e: expr.Div(expr.Fn(expr.Ln, i(8)), expr.Fn(expr.Ln, i(4))), want: "3/2"},
		{e: expr.Fn(expr.Exp, expr.Mul(i(2), expr.Fn(expr.Ln, x))), want: "x^2"},
		{e: expr.Pow(i(10), expr.Fn(expr.Lg, x)), want: "x"},
		{e: expr.SumOf(k, "k", i(1), i(3)), want: "6"},
		{e: expr.ProdOf(k, "k", i(1), i(4)), want: "24"},
		{e: expr.SumOf(k, "k", i(3), i(1)), want: "0"},
		{e: expr.ProdOf(x, "k", i(1), n), want: "x^n"},
		{e: expr.SumOf(i(2), "k", i(1), n), want: "2*n"},
		{e: expr.SumOf(expr.Mul(i(3), expr.Pow(k, i(2))), "k", i(1), n), want: "3*sum(k^2, k, 1, n)"},
		{e: expr.SumOf(x, "k", i(-9000000000000000000), i(9000000000000000000)), want: "18000000000000000001*x"},
		{e: expr.SumOf(k, "k", i(-9000000000000000000), i(9000000000000000000)), want: "sum(k, k, -9000000000000000000, 9000000000000000000)"},
		{e: expr.Div(expr.Pow(expr.Fn(expr.Ln, i(8)), i(2)), expr.Fn(expr.Ln, i(2))), want: "3*ln(8)"},
		{e: expr.Div(expr.Fn(expr.Ln, i(4)), expr.Pow(expr.Fn(expr.Ln, i(8)), i(2))), want: "2/(3*ln(8))"},
		{e: expr.Div(expr.Add(expr.Div(expr.Mul(i(5), x), i(2)), expr.Mul(i(5), y)), expr.Mul(i(10), z)), want: "(x+2*y)/(4*z)"},
		{e: expr.Fn(expr.Arcsec, i(2)), want: "pi/3"},
		{e: expr.Fn(expr.Arcsec, expr.Sqrt(i(2))), want: "pi/4"},
		{e: expr.Fn(expr.Arcsec, i(-2)), want: "2*pi/3"},
		{e: expr.Fn(expr.Arccosec, i(2)), want: "pi/6"},
		{e: expr.Fn(expr.Arccosec, i(-2)), want: "-pi/6"},
	}
	for j, c := range vs {
		got := simplified(t, c.e)
		assert.Equal(t, c.want, got.String(), "[%d] simplify %v", j, c.e)
	}
}

func TestFactorize(t *testing.T) {
	s := New(DefaultConfig())
	vs := []struct {
		e    expr.Expr
		want string
	}{
		{e: expr.Sub(expr.Mul(i(6), x), expr.Mul(i(4), y)), want: "2*(3*x-2*y)"},
		{e: expr.Mul(i(2), expr.Sub(x, y)), want: "2*(x-y)"},
		{e: expr.Add(expr.Mul(i(3), x), expr.Mul(i(5), y)), want: "3*x+5*y"},
	}
	for j, c := range vs {
		got, err := s.with(c.e, Default|Factorize)
		require.NoError(t, err, "[%d] simplify %v", j, c.e)
		if got.String() != c.want {
			t.Errorf("[%d] got=%q want=%q", j, got, c.want)
		}
	}

	// Without the group the integer is multiplied back in.
	got, err := s.with(expr.Mul(i(2), expr.Sub(x, y)), Default)
	require.NoError(t, err)
	assert.Equal(t, "2*x-2*y", got.String())
}

func TestSimplifyErrors(t *testing.T) {
	vs := []struct {
		e    expr.Expr
		want error
	}{
		{e: expr.Div(i(1), i(0)), want: expr.ErrDivisionByZero},
		{e: expr.Div(x, expr.Sub(y, y)), want: expr.ErrDivisionByZero},
		{e: expr.Pow(i(-8), frac(1, 2)), want: expr.ErrEvenRootOfNegative},
		{e: expr.Pow(i(0), i(-1)), want: expr.ErrNegativePowerOfZero},
		{e: expr.Fn(expr.Tan, expr.Div(expr.Pi, i(2))), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Cot, expr.Zero), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Ln, expr.Zero), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Lg, i(-5)), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Arcsin, i(2)), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Arcosh, frac(1, 2)), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Ln, expr.Neg(expr.Fn(expr.Exp, i(1000)))), want: expr.ErrUndefinedValue},
		{e: expr.Fn(expr.Lg, expr.Sub(expr.Zero, expr.Fn(expr.Cosh, i(1000)))), want: expr.ErrUndefinedValue},
	}
	for j, c := range vs {
		_, err := Simplify(context.Background(), c.e)
		require.Error(t, err, "[%d] simplify %v", j, c.e)
		assert.True(t, errors.Is(err, c.want), "[%d] got=%v want=%v", j, err, c.want)
		assert.True(t, expr.IsEvaluationError(err), "[%d] %v", j, err)
	}
}

func TestAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simplify(ctx, expr.Add(x, x))
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrAborted))
}

// samples lists expressions together with the groups they are
// simplified with. All of them are defined for positive x, y and z.
var samples = []struct {
	e      expr.Expr
	groups Group
}{
	{e: expr.Add(expr.Mul(i(2), x), expr.Mul(i(3), x))},
	{e: expr.Div(expr.Mul(i(6), x), expr.Mul(i(4), y))},
	{e: expr.Div(x, expr.Div(y, z))},
	{e: expr.Sub(expr.Pow(x, i(2)), expr.Mul(x, x))},
	{e: expr.Mul(expr.Fn(expr.Exp, x), expr.Fn(expr.Exp, expr.Neg(y)))},
	{e: expr.Add(expr.Fn(expr.Ln, x), expr.Mul(i(2), expr.Fn(expr.Ln, y)))},
	{e: expr.Add(expr.Div(i(1), x), expr.Div(i(1), y))},
	{e: expr.Sub(expr.Div(x, expr.Mul(y, z)), expr.Div(i(3), expr.Pow(z, i(2))))},
	{e: expr.Div(expr.Add(expr.Mul(i(25), x), expr.Mul(i(10), y)), expr.Sub(expr.Mul(i(80), z), expr.Mul(i(35), y)))},
	{e: expr.Mul(expr.Sqrt(i(12)), expr.Pow(i(3), frac(1, 3)))},
	{e: expr.Div(x, expr.Sub(expr.Sqrt(i(3)), i(1)))},
	{e: expr.Mul(expr.Sub(i(3), expr.Sqrt(i(2))), expr.Add(i(3), expr.Sqrt(i(2))))},
	{e: expr.Pow(expr.Sub(x, y), i(3)), groups: Default | Expand},
	{e: expr.Mul(expr.Add(x, i(2)), expr.Sub(y, i(1))), groups: Default | Expand},
	{e: expr.Fn(expr.Sin, expr.Add(x, expr.Mul(i(2), y))), groups: Default | ExpandTrig},
	{e: expr.Fn(expr.Cos, expr.Mul(i(3), x)), groups: Default | ExpandTrig},
	{e: expr.Fn(expr.Ln, expr.Div(expr.Mul(i(2), x), expr.Pow(y, i(3)))), groups: Default | ExpandLogarithms},
	{e: expr.Add(expr.Fn(expr.Sin, expr.Neg(x)), expr.Fn(expr.Cos, expr.Neg(y)))},
	{e: expr.Pow(i(10), expr.Add(x, expr.Mul(i(2), expr.Fn(expr.Lg, y))))},
	{e: expr.SumOf(expr.Add(k, x), "k", i(1), i(30))},
	{e: expr.Sub(expr.Mul(i(6), x), expr.Mul(i(4), y)), groups: Default | Factorize},
}

func (s *Simplifier) with(e expr.Expr, g Group) (expr.Expr, error) {
	if g == 0 {
		return s.Simplify(context.Background(), e)
	}
	return s.Simplify(context.Background(), e, g)
}

func evalAt(t *testing.T, e expr.Expr, vals map[string]float64) float64 {
	t.Helper()
	env := expr.NewEnv()
	for name, val := range vals {
		env.Bind(name, expr.Approx(val))
	}
	f, err := expr.Evaluate(e, env)
	require.NoError(t, err, "evaluate %v", e)
	return f
}

func TestSemanticPreservation(t *testing.T) {
	s := New(DefaultConfig())
	points := []map[string]float64{
		{"x": 0.7, "y": 1.3, "z": 2.1},
		{"x": 3.5, "y": 0.25, "z": 1.75},
		{"x": 11, "y": 7, "z": 0.5},
	}
	for j, c := range samples {
		r, err := s.with(c.e, c.groups)
		require.NoError(t, err, "[%d] simplify %v", j, c.e)
		for _, pt := range points {
			want, got := evalAt(t, c.e, pt), evalAt(t, r, pt)
			assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "[%d] %v -> %v at %v", j, c.e, r, pt)
		}
	}
}

func TestIdempotence(t *testing.T) {
	s := New(DefaultConfig())
	for j, c := range samples {
		once, err := s.with(c.e, c.groups)
		require.NoError(t, err)
		twice, err := s.with(once, c.groups)
		require.NoError(t, err)
		assert.True(t, once.Equals(twice), "[%d] %v then %v", j, once, twice)
	}
}

func TestNeutralElements(t *testing.T) {
	for j, c := range samples {
		if c.groups != 0 {
			continue
		}
		base := simplified(t, c.e)
		assert.Equal(t, base.String(), simplified(t, expr.Add(c.e, expr.Zero)).String(), "[%d] e+0", j)
		assert.Equal(t, base.String(), simplified(t, expr.Mul(c.e, expr.One)).String(), "[%d] e*1", j)
		assert.Equal(t, base.String(), simplified(t, expr.Pow(c.e, expr.One)).String(), "[%d] e^1", j)
		assert.Equal(t, "1", simplified(t, expr.Pow(c.e, expr.Zero)).String(), "[%d] e^0", j)
	}
}

func TestBinomialExpansion(t *testing.T) {
	s := New(DefaultConfig())
	ctx := context.Background()
	sum := expr.Add(i(1), expr.Sqrt(i(2)))

	expanded, err := s.BinomialExpansion(ctx, sum, 3)
	require.NoError(t, err)
	collected, err := s.Simplify(ctx, expanded)
	require.NoError(t, err)

	product, err := s.Simplify(ctx, expr.Mul(expr.Mul(sum, sum), sum), Default|Expand)
	require.NoError(t, err)
	assert.True(t, expr.Equivalent(collected, product), "%v vs %v", collected, product)
	assert.Equal(t, "7+5*2^(1/2)", collected.String())

	diff, err := s.BinomialExpansion(ctx, expr.Sub(x, y), 2)
	require.NoError(t, err)
	for _, pt := range []map[string]float64{{"x": 2, "y": 5}, {"x": -1.5, "y": 0.5}} {
		want := math.Pow(pt["x"]-pt["y"], 2)
		assert.InDelta(t, want, evalAt(t, diff, pt), 1e-9)
	}

	small := DefaultConfig()
	small.MaxBinomialTerms = 3
	same, err := New(small).BinomialExpansion(ctx, expr.Add(expr.Add(x, y), z), 2)
	require.NoError(t, err)
	assert.Equal(t, "(x+y+z)^2", same.String())
}

func TestNextExponents(t *testing.T) {
	ks := []int{4, 0, 0}
	seen := map[[3]int]bool{}
	for {
		assert.Equal(t, 4, ks[0]+ks[1]+ks[2])
		seen[[3]int{ks[0], ks[1], ks[2]}] = true
		if !nextExponents(ks) {
			break
		}
	}
	assert.Equal(t, 15, len(seen))
	assert.Equal(t, []int{0, 0, 4}, ks)
}

func TestQuotientOfLogarithms(t *testing.T) {
	vs := []struct {
		a, b int64
		want string
		ok   bool
	}{
		{a: 8, b: 4, want: "3/2", ok: true},
		{a: 2, b: 8, want: "1/3", ok: true},
		{a: 9, b: 27, want: "2/3", ok: true},
		{a: 1000, b: 100, want: "3/2", ok: true},
		{a: 5, b: 5, want: "1", ok: true},
		{a: 6, b: 4},
		{a: 12, b: 2},
		{a: 1, b: 4},
	}
	for _, c := range vs {
		r, ok := IsQuotientOfLogarithmsRational(big.NewInt(c.a), big.NewInt(c.b))
		if assert.Equal(t, c.ok, ok, "log(%d)/log(%d)", c.a, c.b) && ok {
			assert.Equal(t, c.want, r.RatString())
		}
	}
}

func TestPolynomial(t *testing.T) {
	vs := []struct {
		e            expr.Expr
		degree, ord  int64
		isPolynomial bool
	}{
		{e: expr.Add(expr.Pow(x, i(3)), expr.Mul(i(2), x)), degree: 3, ord: 1, isPolynomial: true},
		{e: expr.Mul(expr.Pow(x, i(2)), expr.Add(x, i(1))), degree: 3, ord: 2, isPolynomial: true},
		{e: expr.Div(expr.Pow(x, i(2)), y), degree: 2, ord: 2, isPolynomial: true},
		{e: expr.Pow(y, i(2)), degree: 0, ord: 0, isPolynomial: true},
		{e: expr.Sub(expr.Pow(x, i(4)), i(7)), degree: 4, ord: 0, isPolynomial: true},
		{e: expr.Div(i(1), x), degree: -1, ord: -1},
		{e: expr.Sqrt(x), degree: -1, ord: -1},
		{e: expr.Pow(i(2), x), degree: -1, ord: -1},
		{e: expr.Fn(expr.Sin, x), degree: -1, ord: -1},
	}
	for _, c := range vs {
		assert.Equal(t, c.degree, DegreeOfPolynomial(c.e, "x"), "degree of %v", c.e)
		assert.Equal(t, c.ord, OrderOfPolynomial(c.e, "x"), "order of %v", c.e)
		assert.Equal(t, c.isPolynomial, IsPolynomial(c.e, "x"), "%v", c.e)
	}
}

func TestApproximate(t *testing.T) {
	r := simplified(t, expr.Sqrt(i(2)), Basic|Approximate)
	c, ok := r.(*expr.Constant)
	require.True(t, ok, "got %v", r)
	assert.False(t, c.IsExact())
	assert.InDelta(t, math.Sqrt2, c.Float(), 1e-12)

	r = simplified(t, expr.Mul(expr.Pi, frac(1, 4)), Default|Approximate)
	c, ok = r.(*expr.Constant)
	require.True(t, ok, "got %v", r)
	assert.InDelta(t, math.Pi/4, c.Float(), 1e-12)
}

func TestMaxExponent(t *testing.T) {
	cfg, err := ReadConfigString("[Simplify]\nmaxexponent = 10\n")
	require.NoError(t, err)
	r, err := New(cfg).Simplify(context.Background(), expr.Pow(i(2), i(20)))
	require.NoError(t, err)
	assert.Equal(t, "2^20", r.String())
	assert.Equal(t, "1048576", simplified(t, expr.Pow(i(2), i(20))).String())
}

func TestDebugLog(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Debug = true
	s := New(cfg)
	s.SetLogger(log.New(&buf, "", 0))
	_, err := s.Simplify(context.Background(), expr.Add(x, x))
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "collect_sums: x+x -> 2*x"), buf.String())

	buf.Reset()
	s = New(DefaultConfig())
	s.SetLogger(log.New(&buf, "", 0))
	_, err = s.Simplify(context.Background(), expr.Add(x, x))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRules(t *testing.T) {
	names := Rules()
	assert.Len(t, names, len(registry))
	assert.Contains(t, names, "collect_sums")
	assert.Contains(t, names, "factorize_roots")

	g, ok := LookupGroup("trig")
	assert.True(t, ok)
	assert.Equal(t, Trig, g)
	_, ok = LookupGroup("nope")
	assert.False(t, ok)
	assert.Equal(t, "basic|trig", (Basic | Trig).String())
	assert.Equal(t, "none", Group(0).String())
}

func TestBuildProduct(t *testing.T) {
	vs := []struct {
		coef     *expr.Constant
		num, den []expr.Expr
		want     string
	}{
		{coef: frac(3, 4), want: "3/4"},
		{coef: i(1), num: []expr.Expr{x}, want: "x"},
		{coef: i(-1), num: []expr.Expr{x, y}, want: "-x*y"},
		{coef: i(-1), den: []expr.Expr{x}, want: "-1/x"},
		{coef: frac(2, 3), num: []expr.Expr{x}, den: []expr.Expr{y}, want: "2*x/(3*y)"},
		{coef: frac(-1, 2), num: []expr.Expr{x}, want: "-x/2"},
		{coef: i(0), num: []expr.Expr{x}, want: "0"},
	}
	for _, c := range vs {
		assert.Equal(t, c.want, buildProduct(c.coef, c.num, c.den).String())
	}
}
