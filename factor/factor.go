// Package factor provides the exact integer arithmetic behind root
// extraction and factorization: divisors, greatest common divisors,
// least common multiples, integer roots and binomial coefficients.
package factor

import (
	"errors"
	"math/big"
)

// ErrBadDegree is returned for a root degree below one.
var ErrBadDegree = errors.New("root degree must be positive")

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
)

// Divisors returns the positive divisors of |n| in ascending order.
// When |n| exceeds bound the enumeration is skipped and nil is
// returned.
func Divisors(n *big.Int, bound int64) []*big.Int {
	m := new(big.Int).Abs(n)
	if m.Sign() == 0 || m.Cmp(big.NewInt(bound)) > 0 {
		return nil
	}
	v := m.Int64()
	var low, high []*big.Int
	for d := int64(1); d*d <= v; d++ {
		if v%d != 0 {
			continue
		}
		low = append(low, big.NewInt(d))
		if e := v / d; e != d {
			high = append(high, big.NewInt(e))
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g
}

// lcm returns the least common multiple of a and b.
func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := gcd(a, b)
	l := new(big.Int).Mul(a, b)
	l = l.Abs(l)
	return l.Quo(l, g)
}

// GCD returns the greatest common divisor of all ns, reduced pairwise.
// The result is non-negative; GCD of no arguments is zero.
func GCD(ns ...*big.Int) *big.Int {
	g := new(big.Int)
	for _, n := range ns {
		g = gcd(g, n)
	}
	return g
}

// LCM returns the least common multiple of all ns, reduced pairwise.
// LCM of no arguments is one.
func LCM(ns ...*big.Int) *big.Int {
	l := big.NewInt(1)
	for _, n := range ns {
		l = lcm(l, n)
	}
	return l
}

// decimalDigits returns the number of decimal digits of m > 0.
func decimalDigits(m *big.Int) int {
	// Estimate from the bit length, then correct.
	d := int(float64(m.BitLen())*0.30102999566398) + 1
	p := new(big.Int).Exp(ten, big.NewInt(int64(d-1)), nil)
	for p.Cmp(m) > 0 {
		d--
		p.Quo(p, ten)
	}
	for {
		p.Mul(p, ten)
		if p.Cmp(m) > 0 {
			return d
		}
		d++
	}
}

// Root returns the integer part of the k-th root of n and whether the
// root is exact. Odd roots of negative numbers are negative; an even
// root of a negative number is reported as inexact zero.
//
// The root is built digit by digit from the most significant decimal
// digit down; the number of digits is bounded by a scan of the
// decimal exponent of n.
func Root(n *big.Int, k int) (*big.Int, bool, error) {
	if k < 1 {
		return nil, false, ErrBadDegree
	}
	if n.Sign() < 0 {
		if k%2 == 0 {
			return new(big.Int), false, nil
		}
		r, exact, err := Root(new(big.Int).Neg(n), k)
		if err != nil {
			return nil, false, err
		}
		return r.Neg(r), exact, nil
	}
	if n.Sign() == 0 || k == 1 {
		return new(big.Int).Set(n), true, nil
	}
	digits := (decimalDigits(n) + k - 1) / k
	r := new(big.Int)
	kk := big.NewInt(int64(k))
	cand := new(big.Int)
	p := new(big.Int)
	for pos := digits - 1; pos >= 0; pos-- {
		step := new(big.Int).Exp(ten, big.NewInt(int64(pos)), nil)
		for d := int64(9); d >= 1; d-- {
			cand.Mul(step, big.NewInt(d))
			cand.Add(cand, r)
			if p.Exp(cand, kk, nil).Cmp(n) <= 0 {
				r.Set(cand)
				break
			}
		}
	}
	return r, p.Exp(r, kk, nil).Cmp(n) == 0, nil
}

// IsPower reports whether n is a perfect k-th power.
func IsPower(n *big.Int, k int) bool {
	_, exact, err := Root(n, k)
	return err == nil && exact
}

// Binomial returns n choose k.
func Binomial(n, k int64) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(n, k)
}

// Multinomial returns n!/(ks[0]!*ks[1]!*...) where n is the sum of ks.
func Multinomial(ks []int) *big.Int {
	r := big.NewInt(1)
	n := int64(0)
	for _, k := range ks {
		n += int64(k)
		r.Mul(r, Binomial(n, int64(k)))
	}
	return r
}

// IsOne reports whether n equals one.
func IsOne(n *big.Int) bool { return n.Cmp(one) == 0 }

// IsZero reports whether n equals zero.
func IsZero(n *big.Int) bool { return n.Cmp(zero) == 0 }
