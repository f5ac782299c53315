// Package expr defines the immutable expression trees rewritten by
// the simplifier: constants, variables, binary operations, named
// functions and symbolic sum/product operators.
//
// Nodes are never modified after construction. Every transformation
// builds fresh nodes, so sub-trees may be shared freely.
package expr

import (
	"math/big"
)

// Expr is one node of an expression tree. The concrete types are
// *Constant, *Variable, *Binary, *Function and *Operator.
type Expr interface {
	// String renders the expression in infix notation.
	String() string
	// Equals reports structural equality.
	Equals(x Expr) bool
	// Contains reports whether the named variable occurs free.
	Contains(name string) bool
	isExpr()
}

// Constant is a numerical literal. Exact constants hold a rational
// value; approximate constants hold a floating point value.
type Constant struct {
	rat   *big.Rat
	f     float64
	exact bool
}

// Variable is a named symbol. The names "pi" and "e" denote the
// mathematical constants.
type Variable struct {
	Name string
}

// BinaryKind selects the operation of a Binary node.
type BinaryKind int

const (
	Sum BinaryKind = iota
	Difference
	Product
	Quotient
	Power
)

// Binary is an operation with two operands.
type Binary struct {
	Left, Right Expr
	Kind        BinaryKind
}

// Function is a named unary function applied to an argument.
type Function struct {
	Arg  Expr
	Kind FuncKind
}

// OperatorKind selects between a symbolic sum and product.
type OperatorKind int

const (
	SumOperator OperatorKind = iota
	ProductOperator
)

// Operator is a symbolic sum or product of Body over the integer
// index Var running from Lower to Upper.
type Operator struct {
	Body         Expr
	Lower, Upper Expr
	Var          string
	Kind         OperatorKind
	Exact        bool
}

func (*Constant) isExpr() {}
func (*Variable) isExpr() {}
func (*Binary) isExpr()   {}
func (*Function) isExpr() {}
func (*Operator) isExpr() {}

// Names of the variables that denote mathematical constants.
const (
	PiName = "pi"
	EName  = "e"
)

var (
	Zero     = Int(0)
	One      = Int(1)
	Two      = Int(2)
	MinusOne = Int(-1)
	Pi       = Var(PiName)
	E        = Var(EName)
)

// Int creates an exact integer constant.
func Int(n int64) *Constant {
	return &Constant{rat: new(big.Rat).SetInt64(n), exact: true}
}

// BigInt creates an exact integer constant from a copy of n.
func BigInt(n *big.Int) *Constant {
	return &Constant{rat: new(big.Rat).SetInt(n), exact: true}
}

// Rat creates an exact rational constant from a copy of r.
func Rat(r *big.Rat) *Constant {
	return &Constant{rat: new(big.Rat).Set(r), exact: true}
}

// Frac creates the exact rational constant p/q. It panics when q is
// zero, like big.NewRat.
func Frac(p, q int64) *Constant {
	return &Constant{rat: big.NewRat(p, q), exact: true}
}

// Approx creates an approximate constant.
func Approx(f float64) *Constant {
	return &Constant{f: f}
}

// Var creates a variable.
func Var(name string) *Variable {
	return &Variable{Name: name}
}

func binary(kind BinaryKind, a, b Expr) *Binary {
	return &Binary{Left: a, Right: b, Kind: kind}
}

// Add builds a+b.
func Add(a, b Expr) Expr { return binary(Sum, a, b) }

// Sub builds a-b.
func Sub(a, b Expr) Expr { return binary(Difference, a, b) }

// Mul builds a*b.
func Mul(a, b Expr) Expr { return binary(Product, a, b) }

// Div builds a/b.
func Div(a, b Expr) Expr { return binary(Quotient, a, b) }

// Pow builds a^b.
func Pow(a, b Expr) Expr { return binary(Power, a, b) }

// Neg builds -a. Constants are negated directly.
func Neg(a Expr) Expr {
	if c, ok := a.(*Constant); ok {
		return c.Neg()
	}
	return Mul(MinusOne, a)
}

// Sqrt builds a^(1/2).
func Sqrt(a Expr) Expr { return Pow(a, Frac(1, 2)) }

// Fn applies the function kind to arg.
func Fn(kind FuncKind, arg Expr) Expr {
	return &Function{Arg: arg, Kind: kind}
}

// SumOf builds the symbolic sum of body for v from lower to upper.
func SumOf(body Expr, v string, lower, upper Expr) Expr {
	return &Operator{Kind: SumOperator, Body: body, Var: v, Lower: lower, Upper: upper, Exact: true}
}

// ProdOf builds the symbolic product of body for v from lower to upper.
func ProdOf(body Expr, v string, lower, upper Expr) Expr {
	return &Operator{Kind: ProductOperator, Body: body, Var: v, Lower: lower, Upper: upper, Exact: true}
}

// Is reports whether e is a Binary node of the given kind.
func Is(e Expr, kind BinaryKind) bool {
	b, ok := e.(*Binary)
	return ok && b.Kind == kind
}

// IsSum reports whether e is a Sum or a Difference.
func IsSum(e Expr) bool {
	return Is(e, Sum) || Is(e, Difference)
}

// IsProduct reports whether e is a Product or a Quotient.
func IsProduct(e Expr) bool {
	return Is(e, Product) || Is(e, Quotient)
}

// IsFunction reports whether e applies the function kind.
func IsFunction(e Expr, kind FuncKind) bool {
	f, ok := e.(*Function)
	return ok && f.Kind == kind
}

// IsVariable reports whether e is the named variable.
func IsVariable(e Expr, name string) bool {
	v, ok := e.(*Variable)
	return ok && v.Name == name
}

// Equals reports structural equality.
func (c *Constant) Equals(x Expr) bool {
	d, ok := x.(*Constant)
	if !ok || c.exact != d.exact {
		return false
	}
	if c.exact {
		return c.rat.Cmp(d.rat) == 0
	}
	return c.f == d.f
}

func (v *Variable) Equals(x Expr) bool {
	w, ok := x.(*Variable)
	return ok && v.Name == w.Name
}

func (b *Binary) Equals(x Expr) bool {
	c, ok := x.(*Binary)
	return ok && b.Kind == c.Kind && b.Left.Equals(c.Left) && b.Right.Equals(c.Right)
}

func (f *Function) Equals(x Expr) bool {
	g, ok := x.(*Function)
	return ok && f.Kind == g.Kind && f.Arg.Equals(g.Arg)
}

func (o *Operator) Equals(x Expr) bool {
	p, ok := x.(*Operator)
	return ok && o.Kind == p.Kind && o.Var == p.Var && o.Exact == p.Exact &&
		o.Lower.Equals(p.Lower) && o.Upper.Equals(p.Upper) && o.Body.Equals(p.Body)
}

func (*Constant) Contains(string) bool { return false }

func (v *Variable) Contains(name string) bool { return v.Name == name }

func (b *Binary) Contains(name string) bool {
	return b.Left.Contains(name) || b.Right.Contains(name)
}

func (f *Function) Contains(name string) bool { return f.Arg.Contains(name) }

func (o *Operator) Contains(name string) bool {
	if o.Lower.Contains(name) || o.Upper.Contains(name) {
		return true
	}
	return o.Var != name && o.Body.Contains(name)
}

// Variables returns the free variable names in e, excluding the
// names of mathematical constants, in order of first occurrence.
func Variables(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(e Expr, bound map[string]bool)
	walk = func(e Expr, bound map[string]bool) {
		switch x := e.(type) {
		case *Variable:
			if x.Name == PiName || x.Name == EName || bound[x.Name] || seen[x.Name] {
				return
			}
			seen[x.Name] = true
			names = append(names, x.Name)
		case *Binary:
			walk(x.Left, bound)
			walk(x.Right, bound)
		case *Function:
			walk(x.Arg, bound)
		case *Operator:
			walk(x.Lower, bound)
			walk(x.Upper, bound)
			inner := make(map[string]bool, len(bound)+1)
			for k := range bound {
				inner[k] = true
			}
			inner[x.Var] = true
			walk(x.Body, inner)
		}
	}
	walk(e, nil)
	return names
}

// IsConstant reports whether e contains no free variables. The
// mathematical constants pi and e count as constant.
func IsConstant(e Expr) bool {
	return len(Variables(e)) == 0
}
