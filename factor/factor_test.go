package factor

import (
	"fmt"
	"math/big"
	"testing"
)

func ints(vs ...int64) []*big.Int {
	var r []*big.Int
	for _, v := range vs {
		r = append(r, big.NewInt(v))
	}
	return r
}

func TestDivisors(t *testing.T) {
	vs := []struct {
		n     int64
		bound int64
		s     string
	}{
		{n: 1, bound: 100, s: "[1]"},
		{n: 12, bound: 100, s: "[1 2 3 4 6 12]"},
		{n: -36, bound: 100, s: "[1 2 3 4 6 9 12 18 36]"},
		{n: 108, bound: 100, s: "[]"},
		{n: 97, bound: 1000, s: "[1 97]"},
		{n: 0, bound: 1000, s: "[]"},
	}
	for i, v := range vs {
		if s := fmt.Sprint(Divisors(big.NewInt(v.n), v.bound)); s != v.s {
			t.Errorf("[%d] got=%q want=%q", i, s, v.s)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	vs := []struct {
		ns       []*big.Int
		gcd, lcm string
	}{
		{ns: ints(12, 18), gcd: "6", lcm: "36"},
		{ns: ints(25, 10, 80, 35), gcd: "5", lcm: "2800"},
		{ns: ints(-4, 6), gcd: "2", lcm: "12"},
		{ns: ints(7), gcd: "7", lcm: "7"},
		{ns: nil, gcd: "0", lcm: "1"},
	}
	for i, v := range vs {
		if s := GCD(v.ns...).String(); s != v.gcd {
			t.Errorf("[%d] gcd got=%q want=%q", i, s, v.gcd)
		}
		if s := LCM(v.ns...).String(); s != v.lcm {
			t.Errorf("[%d] lcm got=%q want=%q", i, s, v.lcm)
		}
	}
}

func TestRoot(t *testing.T) {
	vs := []struct {
		n     string
		k     int
		r     string
		exact bool
	}{
		{n: "0", k: 2, r: "0", exact: true},
		{n: "1", k: 5, r: "1", exact: true},
		{n: "8", k: 2, r: "2", exact: false},
		{n: "16", k: 2, r: "4", exact: true},
		{n: "108", k: 3, r: "4", exact: false},
		{n: "-27", k: 3, r: "-3", exact: true},
		{n: "-4", k: 2, r: "0", exact: false},
		{n: "99", k: 2, r: "9", exact: false},
		{n: "100", k: 2, r: "10", exact: true},
		{n: "1000000000000000000000000000000", k: 3, r: "10000000000", exact: true},
		{n: "1000000000000000000000000000001", k: 2, r: "1000000000000000", exact: false},
	}
	for i, v := range vs {
		n, _ := new(big.Int).SetString(v.n, 10)
		r, exact, err := Root(n, v.k)
		if err != nil {
			t.Fatalf("[%d] unexpected error: %v", i, err)
		}
		if r.String() != v.r || exact != v.exact {
			t.Errorf("[%d] got=%s,%v want=%s,%v", i, r, exact, v.r, v.exact)
		}
	}
	if _, _, err := Root(big.NewInt(4), 0); err != ErrBadDegree {
		t.Errorf("degree 0 accepted: %v", err)
	}
}

func TestIsPower(t *testing.T) {
	if !IsPower(big.NewInt(243), 5) {
		t.Error("243 is 3^5")
	}
	if IsPower(big.NewInt(242), 5) {
		t.Error("242 is not a fifth power")
	}
}

func TestMultinomial(t *testing.T) {
	vs := []struct {
		ks []int
		s  string
	}{
		{ks: []int{2, 1}, s: "3"},
		{ks: []int{1, 1, 1}, s: "6"},
		{ks: []int{3, 0}, s: "1"},
		{ks: []int{2, 2, 1}, s: "30"},
	}
	for i, v := range vs {
		if s := Multinomial(v.ks).String(); s != v.s {
			t.Errorf("[%d] got=%q want=%q", i, s, v.s)
		}
	}
	if s := Binomial(5, 2).String(); s != "10" {
		t.Errorf("binomial got=%q", s)
	}
	if s := Binomial(2, 5).String(); s != "0" {
		t.Errorf("binomial got=%q", s)
	}
}
