package expr

import (
	"fmt"
	"strings"
)

// Binding strength used to decide where parentheses are needed.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

func precedence(e Expr) int {
	switch x := e.(type) {
	case *Constant:
		if x.Sign() < 0 {
			return precSum
		}
		if x.exact && !x.rat.IsInt() {
			return precProduct
		}
		return precAtom
	case *Binary:
		switch x.Kind {
		case Sum, Difference:
			return precSum
		case Product, Quotient:
			if isNegation(x) {
				return precSum
			}
			return precProduct
		}
		return precPower
	}
	return precAtom
}

// isNegation reports whether b is the product -1*a.
func isNegation(b *Binary) bool {
	if b.Kind != Product {
		return false
	}
	c, ok := b.Left.(*Constant)
	return ok && c.IsMinusOne()
}

// leadsWithMinus reports whether the rendering of e starts with "-".
func leadsWithMinus(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		return x.Sign() < 0
	case *Binary:
		switch x.Kind {
		case Sum, Difference, Product, Quotient:
			return leadsWithMinus(x.Left)
		}
	}
	return false
}

func wrap(e Expr, paren bool) string {
	if paren {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (v *Variable) String() string { return v.Name }

func (b *Binary) String() string {
	l, r := b.Left, b.Right
	switch b.Kind {
	case Sum:
		return wrap(l, false) + "+" + wrap(r, leadsWithMinus(r))
	case Difference:
		return wrap(l, false) + "-" + wrap(r, precedence(r) <= precSum || leadsWithMinus(r))
	case Product:
		if isNegation(b) {
			return "-" + wrap(r, precedence(r) <= precSum)
		}
		return wrap(l, IsSum(l)) + "*" + wrap(r, precedence(r) <= precProduct || leadsWithMinus(r))
	case Quotient:
		return wrap(l, IsSum(l)) + "/" + wrap(r, precedence(r) <= precProduct || leadsWithMinus(r))
	case Power:
		return wrap(l, precedence(l) < precAtom) + "^" + wrap(r, precedence(r) < precAtom)
	}
	return fmt.Sprintf("<bad kind %d>", b.Kind)
}

func (f *Function) String() string {
	return f.Kind.String() + "(" + f.Arg.String() + ")"
}

func (o *Operator) String() string {
	name := "sum"
	if o.Kind == ProductOperator {
		name = "prod"
	}
	args := []string{o.Body.String(), o.Var, o.Lower.String(), o.Upper.String()}
	return name + "(" + strings.Join(args, ", ") + ")"
}
