package expr

// FuncKind names one of the supported unary functions.
type FuncKind int

const (
	Sin FuncKind = iota
	Cos
	Tan
	Cot
	Sec
	Cosec
	Sinh
	Cosh
	Tanh
	Coth
	Sech
	Cosech
	Arcsin
	Arccos
	Arctan
	Arccot
	Arcsec
	Arccosec
	Arsinh
	Arcosh
	Artanh
	Arcoth
	Arsech
	Arcosech
	Exp
	Ln
	Lg
	Abs
	Sgn
	Id
)

var funcNames = [...]string{
	Sin:      "sin",
	Cos:      "cos",
	Tan:      "tan",
	Cot:      "cot",
	Sec:      "sec",
	Cosec:    "cosec",
	Sinh:     "sinh",
	Cosh:     "cosh",
	Tanh:     "tanh",
	Coth:     "coth",
	Sech:     "sech",
	Cosech:   "cosech",
	Arcsin:   "arcsin",
	Arccos:   "arccos",
	Arctan:   "arctan",
	Arccot:   "arccot",
	Arcsec:   "arcsec",
	Arccosec: "arccosec",
	Arsinh:   "arsinh",
	Arcosh:   "arcosh",
	Artanh:   "artanh",
	Arcoth:   "arcoth",
	Arsech:   "arsech",
	Arcosech: "arcosech",
	Exp:      "exp",
	Ln:       "ln",
	Lg:       "lg",
	Abs:      "abs",
	Sgn:      "sgn",
	Id:       "id",
}

func (k FuncKind) String() string {
	if k < 0 || int(k) >= len(funcNames) {
		return "?"
	}
	return funcNames[k]
}

// LookupFunc returns the function kind with the given name.
func LookupFunc(name string) (FuncKind, bool) {
	for k, n := range funcNames {
		if n == name {
			return FuncKind(k), true
		}
	}
	return 0, false
}

// Inverse returns the inverse function of k, if k has one in the
// supported set.
func (k FuncKind) Inverse() (FuncKind, bool) {
	switch {
	case k >= Sin && k <= Cosech:
		return k + (Arcsin - Sin), true
	case k >= Arcsin && k <= Arcosech:
		return k - (Arcsin - Sin), true
	case k == Exp:
		return Ln, true
	case k == Ln:
		return Exp, true
	}
	return 0, false
}

// IsTrigonometric reports whether k is one of sin, cos, tan, cot,
// sec or cosec.
func (k FuncKind) IsTrigonometric() bool {
	return k >= Sin && k <= Cosec
}
