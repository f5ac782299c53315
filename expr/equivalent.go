package expr

// Equivalent reports whether a and b agree up to commutativity and
// associativity of sums and products. It is weaker than Equals and is
// used to find terms that cancel or combine.
func Equivalent(a, b Expr) bool {
	if a.Equals(b) {
		return true
	}
	switch x := a.(type) {
	case *Binary:
		y, ok := b.(*Binary)
		if !ok {
			return false
		}
		switch {
		case IsSum(x) && IsSum(y):
			xp, xn := splitSigned(x, Sum, Difference)
			yp, yn := splitSigned(y, Sum, Difference)
			return sameMultiset(xp, yp) && sameMultiset(xn, yn)
		case IsProduct(x) && IsProduct(y):
			xp, xn := splitSigned(x, Product, Quotient)
			yp, yn := splitSigned(y, Product, Quotient)
			return sameMultiset(xp, yp) && sameMultiset(xn, yn)
		case x.Kind == Power && y.Kind == Power:
			return Equivalent(x.Left, y.Left) && Equivalent(x.Right, y.Right)
		}
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Kind == y.Kind && Equivalent(x.Arg, y.Arg)
	case *Operator:
		y, ok := b.(*Operator)
		return ok && x.Kind == y.Kind && x.Var == y.Var &&
			Equivalent(x.Lower, y.Lower) && Equivalent(x.Upper, y.Upper) && Equivalent(x.Body, y.Body)
	}
	return false
}

// splitSigned flattens nested plus/minus (or times/divide) nodes into
// the operands on the positive and on the negative side.
func splitSigned(e Expr, plus, minus BinaryKind) (pos, neg []Expr) {
	var walk func(e Expr, flip bool)
	walk = func(e Expr, flip bool) {
		b, ok := e.(*Binary)
		if !ok || (b.Kind != plus && b.Kind != minus) {
			if flip {
				neg = append(neg, e)
			} else {
				pos = append(pos, e)
			}
			return
		}
		walk(b.Left, flip)
		walk(b.Right, flip != (b.Kind == minus))
	}
	walk(e, false)
	return
}

func sameMultiset(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && Equivalent(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
