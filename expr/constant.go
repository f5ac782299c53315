package expr

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v2"
)

// IsExact reports whether c holds an exact rational value.
func (c *Constant) IsExact() bool { return c.exact }

// Rat returns a copy of the exact value of c. For approximate
// constants it returns the nearest rational, or nil when c is not
// finite.
func (c *Constant) Rat() *big.Rat {
	if c.exact {
		return new(big.Rat).Set(c.rat)
	}
	if math.IsInf(c.f, 0) || math.IsNaN(c.f) {
		return nil
	}
	return new(big.Rat).SetFloat64(c.f)
}

// Float returns the value of c as a float64.
func (c *Constant) Float() float64 {
	if c.exact {
		f, _ := c.rat.Float64()
		return f
	}
	return c.f
}

// Sign returns -1, 0 or +1.
func (c *Constant) Sign() int {
	if c.exact {
		return c.rat.Sign()
	}
	switch {
	case c.f < 0:
		return -1
	case c.f > 0:
		return 1
	}
	return 0
}

// IsZero reports whether c is zero.
func (c *Constant) IsZero() bool { return c.Sign() == 0 }

// IsOne reports whether c equals one.
func (c *Constant) IsOne() bool {
	if c.exact {
		return c.rat.IsInt() && c.rat.Num().IsInt64() && c.rat.Num().Int64() == 1
	}
	return c.f == 1
}

// IsMinusOne reports whether c equals minus one.
func (c *Constant) IsMinusOne() bool {
	if c.exact {
		return c.rat.IsInt() && c.rat.Num().IsInt64() && c.rat.Num().Int64() == -1
	}
	return c.f == -1
}

// IsInteger reports whether c is an exact integer.
func (c *Constant) IsInteger() bool {
	return c.exact && c.rat.IsInt()
}

// Num returns a copy of the numerator of an exact constant.
func (c *Constant) Num() *big.Int {
	return new(big.Int).Set(c.rat.Num())
}

// Denom returns a copy of the denominator of an exact constant.
func (c *Constant) Denom() *big.Int {
	return new(big.Int).Set(c.rat.Denom())
}

// Int64 returns the value of an exact integer constant when it fits.
func (c *Constant) Int64() (int64, bool) {
	if !c.IsInteger() || !c.rat.Num().IsInt64() {
		return 0, false
	}
	return c.rat.Num().Int64(), true
}

// Neg returns -c.
func (c *Constant) Neg() *Constant {
	if c.exact {
		return &Constant{rat: new(big.Rat).Neg(c.rat), exact: true}
	}
	return Approx(-c.f)
}

// Abs returns |c|.
func (c *Constant) Abs() *Constant {
	if c.Sign() < 0 {
		return c.Neg()
	}
	return c
}

// Plus returns c+d, exact when both operands are exact.
func (c *Constant) Plus(d *Constant) *Constant {
	if c.exact && d.exact {
		return &Constant{rat: new(big.Rat).Add(c.rat, d.rat), exact: true}
	}
	return Approx(c.Float() + d.Float())
}

// Minus returns c-d.
func (c *Constant) Minus(d *Constant) *Constant {
	return c.Plus(d.Neg())
}

// Times returns c*d, exact when both operands are exact.
func (c *Constant) Times(d *Constant) *Constant {
	if c.exact && d.exact {
		return &Constant{rat: new(big.Rat).Mul(c.rat, d.rat), exact: true}
	}
	return Approx(c.Float() * d.Float())
}

// Over returns c/d. Dividing by zero fails.
func (c *Constant) Over(d *Constant) (*Constant, error) {
	if d.IsZero() {
		return nil, &EvaluationError{Op: "division", Err: ErrDivisionByZero}
	}
	if c.exact && d.exact {
		return &Constant{rat: new(big.Rat).Quo(c.rat, d.rat), exact: true}, nil
	}
	return Approx(c.Float() / d.Float()), nil
}

// Cmp compares c and d.
func (c *Constant) Cmp(d *Constant) int {
	if c.exact && d.exact {
		return c.rat.Cmp(d.rat)
	}
	return c.Minus(d).Sign()
}

// ToApprox returns c as an approximate constant.
func (c *Constant) ToApprox() *Constant {
	if !c.exact {
		return c
	}
	return Approx(c.Float())
}

// PowInt returns c^n computed exactly for exact constants. A negative
// power of zero fails.
func (c *Constant) PowInt(n int64) (*Constant, error) {
	if n < 0 && c.IsZero() {
		return nil, &EvaluationError{Op: "power", Err: ErrNegativePowerOfZero}
	}
	if !c.exact {
		return Approx(math.Pow(c.f, float64(n))), nil
	}
	m := n
	if m < 0 {
		m = -m
	}
	e := big.NewInt(m)
	num := new(big.Int).Exp(c.rat.Num(), e, nil)
	den := new(big.Int).Exp(c.rat.Denom(), e, nil)
	if n < 0 {
		num, den = den, num
	}
	return &Constant{rat: new(big.Rat).SetFrac(num, den), exact: true}, nil
}

// ParseDecimal converts a decimal literal such as "12.375" or "1e-3"
// into an exact constant.
func ParseDecimal(s string) (*Constant, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return decimalToConstant(d), nil
}

func decimalToConstant(d *apd.Decimal) *Constant {
	r := new(big.Rat).SetInt(&d.Coeff)
	if d.Exponent != 0 {
		e := int64(d.Exponent)
		if e < 0 {
			e = -e
		}
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil)
		if d.Exponent > 0 {
			r.Mul(r, new(big.Rat).SetInt(p))
		} else {
			r.Quo(r, new(big.Rat).SetInt(p))
		}
	}
	if d.Negative {
		r.Neg(r)
	}
	return &Constant{rat: r, exact: true}
}

func (c *Constant) String() string {
	if c.exact {
		if c.rat.IsInt() {
			return c.rat.Num().String()
		}
		return c.rat.RatString()
	}
	return strconv.FormatFloat(c.f, 'g', -1, 64)
}
