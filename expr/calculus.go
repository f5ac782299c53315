package expr

// Replace substitutes value for every free occurrence of the named
// variable in e.
func Replace(e Expr, name string, value Expr) Expr {
	switch x := e.(type) {
	case *Variable:
		if x.Name == name {
			return value
		}
	case *Binary:
		return binary(x.Kind, Replace(x.Left, name, value), Replace(x.Right, name, value))
	case *Function:
		return Fn(x.Kind, Replace(x.Arg, name, value))
	case *Operator:
		o := *x
		o.Lower = Replace(x.Lower, name, value)
		o.Upper = Replace(x.Upper, name, value)
		if x.Var != name {
			o.Body = Replace(x.Body, name, value)
		}
		return &o
	}
	return e
}

// Differentiate returns the derivative of e with respect to the named
// variable. The result is not simplified.
func Differentiate(e Expr, name string) (Expr, error) {
	if !e.Contains(name) {
		return Zero, nil
	}
	switch x := e.(type) {
	case *Variable:
		return One, nil
	case *Binary:
		return diffBinary(x, name)
	case *Function:
		inner, err := Differentiate(x.Arg, name)
		if err != nil {
			return nil, err
		}
		outer, err := diffFunction(x.Kind, x.Arg)
		if err != nil {
			return nil, err
		}
		return Mul(outer, inner), nil
	case *Operator:
		if x.Lower.Contains(name) || x.Upper.Contains(name) {
			return nil, fail("differentiate", ErrNotDifferentiable)
		}
		if x.Kind == SumOperator {
			body, err := Differentiate(x.Body, name)
			if err != nil {
				return nil, err
			}
			o := *x
			o.Body = body
			return &o, nil
		}
		// (prod f)' = prod f * sum f'/f
		body, err := Differentiate(x.Body, name)
		if err != nil {
			return nil, err
		}
		return Mul(x, SumOf(Div(body, x.Body), x.Var, x.Lower, x.Upper)), nil
	}
	return nil, fail("differentiate", ErrNotDifferentiable)
}

func diffBinary(b *Binary, name string) (Expr, error) {
	dl, err := Differentiate(b.Left, name)
	if err != nil {
		return nil, err
	}
	dr, err := Differentiate(b.Right, name)
	if err != nil {
		return nil, err
	}
	l, r := b.Left, b.Right
	switch b.Kind {
	case Sum:
		return Add(dl, dr), nil
	case Difference:
		return Sub(dl, dr), nil
	case Product:
		return Add(Mul(dl, r), Mul(l, dr)), nil
	case Quotient:
		return Div(Sub(Mul(dl, r), Mul(l, dr)), Pow(r, Two)), nil
	}
	if !r.Contains(name) {
		// (f^c)' = c*f^(c-1)*f'
		return Mul(Mul(r, Pow(l, Sub(r, One))), dl), nil
	}
	// (f^g)' = f^g*(g'*ln(f)+g*f'/f)
	return Mul(b, Add(Mul(dr, Fn(Ln, l)), Div(Mul(r, dl), l))), nil
}

// diffFunction returns the outer derivative f'(a).
func diffFunction(kind FuncKind, a Expr) (Expr, error) {
	sq := Pow(a, Two)
	switch kind {
	case Sin:
		return Fn(Cos, a), nil
	case Cos:
		return Neg(Fn(Sin, a)), nil
	case Tan:
		return Add(One, Pow(Fn(Tan, a), Two)), nil
	case Cot:
		return Neg(Add(One, Pow(Fn(Cot, a), Two))), nil
	case Sec:
		return Mul(Fn(Sec, a), Fn(Tan, a)), nil
	case Cosec:
		return Neg(Mul(Fn(Cosec, a), Fn(Cot, a))), nil
	case Sinh:
		return Fn(Cosh, a), nil
	case Cosh:
		return Fn(Sinh, a), nil
	case Tanh:
		return Sub(One, Pow(Fn(Tanh, a), Two)), nil
	case Coth:
		return Sub(One, Pow(Fn(Coth, a), Two)), nil
	case Sech:
		return Neg(Mul(Fn(Sech, a), Fn(Tanh, a))), nil
	case Cosech:
		return Neg(Mul(Fn(Cosech, a), Fn(Coth, a))), nil
	case Arcsin:
		return Div(One, Sqrt(Sub(One, sq))), nil
	case Arccos:
		return Neg(Div(One, Sqrt(Sub(One, sq)))), nil
	case Arctan:
		return Div(One, Add(One, sq)), nil
	case Arccot:
		return Neg(Div(One, Add(One, sq))), nil
	case Arcsec:
		return Div(One, Mul(Fn(Abs, a), Sqrt(Sub(sq, One)))), nil
	case Arccosec:
		return Neg(Div(One, Mul(Fn(Abs, a), Sqrt(Sub(sq, One))))), nil
	case Arsinh:
		return Div(One, Sqrt(Add(sq, One))), nil
	case Arcosh:
		return Div(One, Sqrt(Sub(sq, One))), nil
	case Artanh, Arcoth:
		return Div(One, Sub(One, sq)), nil
	case Arsech:
		return Neg(Div(One, Mul(a, Sqrt(Sub(One, sq))))), nil
	case Arcosech:
		return Neg(Div(One, Mul(Fn(Abs, a), Sqrt(Add(One, sq))))), nil
	case Exp:
		return Fn(Exp, a), nil
	case Ln:
		return Div(One, a), nil
	case Lg:
		return Div(One, Mul(a, Fn(Ln, Int(10)))), nil
	case Abs:
		return Fn(Sgn, a), nil
	case Sgn:
		return Zero, nil
	case Id:
		return One, nil
	}
	return nil, fail(kind.String(), ErrNotDifferentiable)
}
