package simplify

import "github.com/Horazon1985/ExpressionBuilder-sub006/expr"

// approximate replaces constant sub-expressions by their floating
// point value. Exact integers are kept.
func approximate(p *Pass, e expr.Expr) (expr.Expr, error) {
	if c, ok := e.(*expr.Constant); ok {
		if c.IsExact() && !c.IsInteger() {
			return c.ToApprox(), nil
		}
		return e, nil
	}
	if !expr.IsConstant(e) {
		return e, nil
	}
	v, err := expr.Evaluate(e, nil)
	if err != nil {
		p.debugf("approximate %v: %v", e, err)
		return e, nil
	}
	return expr.Approx(v), nil
}
