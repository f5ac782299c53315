package simplify

import (
	"strings"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

// Group selects a family of rules.
type Group uint

const (
	Basic Group = 1 << iota
	Fractions
	Roots
	ExpLog
	Trig
	Functions
	Operators
	Expand
	ExpandLogarithms
	ExpandTrig
	Approximate
	Factorize
)

// Default is the set of groups used when none are named.
const Default = Basic | Fractions | Roots | ExpLog | Trig | Functions | Operators

var groupNames = []struct {
	g    Group
	name string
}{
	{Basic, "basic"},
	{Fractions, "fractions"},
	{Roots, "roots"},
	{ExpLog, "explog"},
	{Trig, "trig"},
	{Functions, "functions"},
	{Operators, "operators"},
	{Expand, "expand"},
	{ExpandLogarithms, "expandlog"},
	{ExpandTrig, "expandtrig"},
	{Approximate, "approx"},
	{Factorize, "factorize"},
}

func (g Group) String() string {
	var s []string
	for _, n := range groupNames {
		if g&n.g != 0 {
			s = append(s, n.name)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// LookupGroup returns the group with the given name.
func LookupGroup(name string) (Group, bool) {
	for _, n := range groupNames {
		if n.name == name {
			return n.g, true
		}
	}
	return 0, false
}

// A Rule rewrites a single node. It returns its argument unchanged
// when its pattern does not match.
type Rule struct {
	Name  string
	Group Group
	Apply func(p *Pass, e expr.Expr) (expr.Expr, error)
}

// registry lists every rule in the order it is tried on a node.
var registry []Rule

func init() {
	registry = []Rule{
		{"identities", Basic, identities},
		{"powers_of_constants", Basic, powersOfConstants},
		{"power_of_power", Basic, powerOfPower},
		{"power_of_product", Basic, powerOfProduct},
		{"separate_integer_powers", Roots, separateIntegerPowers},
		{"factorize_roots", Roots, factorizeRoots},
		{"expand_by_binomial", Roots, expandByBinomial},
		{"expand_powers", Expand, expandPowers},
		{"power_of_ten_and_logarithms", ExpLog, powerOfTenAndLogarithms},
		{"collect_products", Basic, collectProducts},
		{"distribute_integer", Basic, distributeInteger},
		{"collect_exponentials", ExpLog, collectExponentials},
		{"exponentials_to_numerator", ExpLog, exponentialsToNumerator},
		{"logarithm_ratios", ExpLog, logarithmRatios},
		{"collect_roots", Roots, collectRoots},
		{"third_binomial_formula", Roots, thirdBinomialFormula},
		{"rationalize_denominator", Roots, rationalizeDenominator},
		{"reduce_leading_coefficients", Fractions, reduceLeadingCoefficients},
		{"reduce_to_constant", Fractions, reduceToConstant},
		{"distribute", Expand, distribute},
		{"collect_sums", Basic, collectSums},
		{"factor_coefficients", Factorize, factorCoefficients},
		{"collect_logarithms", ExpLog, collectLogarithms},
		{"common_denominator", Fractions, commonDenominator},
		{"expand_logarithms", ExpandLogarithms, expandLogarithms},
		{"function_domain", Functions, functionDomain},
		{"trig_values", Trig, trigValues},
		{"inverse_trig_values", Trig, inverseTrigValues},
		{"expand_trig", ExpandTrig, expandTrig},
		{"function_values", Functions, functionValues},
		{"inverse_functions", Functions, inverseFunctions},
		{"symmetry", Functions, symmetry},
		{"operators", Operators, operators},
		{"approximate", Approximate, approximate},
	}
}

// Rules returns the names of the rules in registry order.
func Rules() []string {
	var names []string
	for _, r := range registry {
		names = append(names, r.Name)
	}
	return names
}
