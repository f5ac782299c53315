package expr

import (
	"math"
	"math/big"
)

// Env binds variable names to values used while evaluating. Bindings
// are checkpointed: Bind returns a function restoring the previous
// state, which callers defer.
//
// A nil *Env has no bindings.
type Env struct {
	values map[string]Expr
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[string]Expr)}
}

// Bind sets name to value and returns a function that restores the
// previous binding, or its absence.
func (v *Env) Bind(name string, value Expr) (restore func()) {
	if v.values == nil {
		v.values = make(map[string]Expr)
	}
	old, had := v.values[name]
	v.values[name] = value
	return func() {
		if had {
			v.values[name] = old
		} else {
			delete(v.values, name)
		}
	}
}

// Lookup returns the value bound to name.
func (v *Env) Lookup(name string) (Expr, bool) {
	if v == nil {
		return nil, false
	}
	x, ok := v.values[name]
	return x, ok
}

// maxOperatorRange bounds the number of terms an operator is summed
// over numerically.
const maxOperatorRange = 1 << 20

// Evaluate computes the numerical value of e. Variables other than pi
// and e must be bound in env.
func Evaluate(e Expr, env *Env) (float64, error) {
	switch x := e.(type) {
	case *Constant:
		return x.Float(), nil
	case *Variable:
		switch x.Name {
		case PiName:
			return math.Pi, nil
		case EName:
			return math.E, nil
		}
		if b, ok := env.Lookup(x.Name); ok {
			return Evaluate(b, env)
		}
		return 0, fail(x.Name, ErrNotEvaluable)
	case *Binary:
		return evalBinary(x, env)
	case *Function:
		a, err := Evaluate(x.Arg, env)
		if err != nil {
			return 0, err
		}
		return evalFunction(x.Kind, a)
	case *Operator:
		return evalOperator(x, env)
	}
	return 0, fail("evaluate", ErrNotEvaluable)
}

func finite(op string, f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fail(op, ErrUndefinedValue)
	}
	return f, nil
}

func evalBinary(b *Binary, env *Env) (float64, error) {
	l, err := Evaluate(b.Left, env)
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(b.Right, env)
	if err != nil {
		return 0, err
	}
	switch b.Kind {
	case Sum:
		return finite("sum", l+r)
	case Difference:
		return finite("difference", l-r)
	case Product:
		return finite("product", l*r)
	case Quotient:
		if r == 0 {
			return 0, fail("quotient", ErrDivisionByZero)
		}
		return finite("quotient", l/r)
	}
	if l == 0 && r < 0 {
		return 0, fail("power", ErrNegativePowerOfZero)
	}
	if l < 0 && r != math.Trunc(r) {
		// Odd roots of negative numbers are real.
		q, ok := RationalValue(b.Right)
		if !ok || q.Denom().Bit(0) == 0 {
			return 0, fail("power", ErrEvenRootOfNegative)
		}
		v := math.Pow(-l, r)
		if q.Num().Bit(0) == 1 {
			v = -v
		}
		return finite("power", v)
	}
	return finite("power", math.Pow(l, r))
}

func evalFunction(kind FuncKind, a float64) (float64, error) {
	op := kind.String()
	undefined := func() (float64, error) { return 0, fail(op, ErrUndefinedValue) }
	switch kind {
	case Sin:
		return math.Sin(a), nil
	case Cos:
		return math.Cos(a), nil
	case Tan:
		return finite(op, math.Tan(a))
	case Cot:
		t := math.Tan(a)
		if t == 0 {
			return undefined()
		}
		return finite(op, 1/t)
	case Sec:
		c := math.Cos(a)
		if c == 0 {
			return undefined()
		}
		return finite(op, 1/c)
	case Cosec:
		s := math.Sin(a)
		if s == 0 {
			return undefined()
		}
		return finite(op, 1/s)
	case Sinh:
		return finite(op, math.Sinh(a))
	case Cosh:
		return finite(op, math.Cosh(a))
	case Tanh:
		return math.Tanh(a), nil
	case Coth:
		if a == 0 {
			return undefined()
		}
		return finite(op, 1/math.Tanh(a))
	case Sech:
		return finite(op, 1/math.Cosh(a))
	case Cosech:
		if a == 0 {
			return undefined()
		}
		return finite(op, 1/math.Sinh(a))
	case Arcsin:
		if math.Abs(a) > 1 {
			return undefined()
		}
		return math.Asin(a), nil
	case Arccos:
		if math.Abs(a) > 1 {
			return undefined()
		}
		return math.Acos(a), nil
	case Arctan:
		return math.Atan(a), nil
	case Arccot:
		return math.Pi/2 - math.Atan(a), nil
	case Arcsec:
		if math.Abs(a) < 1 {
			return undefined()
		}
		return math.Acos(1 / a), nil
	case Arccosec:
		if math.Abs(a) < 1 {
			return undefined()
		}
		return math.Asin(1 / a), nil
	case Arsinh:
		return math.Asinh(a), nil
	case Arcosh:
		if a < 1 {
			return undefined()
		}
		return math.Acosh(a), nil
	case Artanh:
		if math.Abs(a) >= 1 {
			return undefined()
		}
		return math.Atanh(a), nil
	case Arcoth:
		if math.Abs(a) <= 1 {
			return undefined()
		}
		return math.Atanh(1 / a), nil
	case Arsech:
		if a <= 0 || a > 1 {
			return undefined()
		}
		return math.Acosh(1 / a), nil
	case Arcosech:
		if a == 0 {
			return undefined()
		}
		return math.Asinh(1 / a), nil
	case Exp:
		return finite(op, math.Exp(a))
	case Ln:
		if a <= 0 {
			return undefined()
		}
		return math.Log(a), nil
	case Lg:
		if a <= 0 {
			return undefined()
		}
		return math.Log10(a), nil
	case Abs:
		return math.Abs(a), nil
	case Sgn:
		switch {
		case a > 0:
			return 1, nil
		case a < 0:
			return -1, nil
		}
		return 0, nil
	case Id:
		return a, nil
	}
	return undefined()
}

// integerBound evaluates an operator bound that must be an integer.
func integerBound(e Expr, env *Env) (int64, error) {
	f, err := Evaluate(e, env)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fail("bound", ErrNotEvaluable)
	}
	return int64(f), nil
}

func evalOperator(o *Operator, env *Env) (float64, error) {
	lo, err := integerBound(o.Lower, env)
	if err != nil {
		return 0, err
	}
	hi, err := integerBound(o.Upper, env)
	if err != nil {
		return 0, err
	}
	if hi-lo >= maxOperatorRange {
		return 0, fail("operator", ErrNotEvaluable)
	}
	if env == nil {
		env = NewEnv()
	}
	acc := 0.0
	if o.Kind == ProductOperator {
		acc = 1
	}
	for k := lo; k <= hi; k++ {
		restore := env.Bind(o.Var, BigInt(big.NewInt(k)))
		v, err := Evaluate(o.Body, env)
		restore()
		if err != nil {
			return 0, err
		}
		if o.Kind == SumOperator {
			acc += v
		} else {
			acc *= v
		}
	}
	return finite("operator", acc)
}
