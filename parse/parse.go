// Package parse reads infix expressions such as "2*sin(x)^2 - ln(y)/3"
// into expression trees.
package parse

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

// ErrSyntax is returned for all malformed input.
var ErrSyntax = errors.New("syntax problem")

var (
	tok    = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_]*|[0-9]+(\.[0-9]*)?([eE][-+]?[0-9]+)?|\.[0-9]+|[-+*/^(),])`)
	symbol = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	number = regexp.MustCompile(`^[0-9.]`)
)

// token is one lexical element and its byte offset in the input.
type token struct {
	text string
	pos  int
}

// split tokenizes the input.
func split(line string) ([]token, error) {
	var toks []token
	for i := 0; i < len(line); {
		if line[i] == ' ' || line[i] == '\t' {
			i++
			continue
		}
		loc := tok.FindStringIndex(line[i:])
		if loc == nil {
			return nil, errors.Wrapf(ErrSyntax, "unexpected %q at %d", line[i:i+1], i)
		}
		toks = append(toks, token{text: line[i : i+loc[1]], pos: i})
		i += loc[1]
	}
	return toks, nil
}

// IsSymbol reports whether s can name a variable.
func IsSymbol(s string) bool {
	return symbol.MatchString(s)
}

type parser struct {
	toks []token
	i    int
	end  int
}

func (p *parser) peek() string {
	if p.i < len(p.toks) {
		return p.toks[p.i].text
	}
	return ""
}

func (p *parser) pos() int {
	if p.i < len(p.toks) {
		return p.toks[p.i].pos
	}
	return p.end
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "at %d: "+format, append([]interface{}{p.pos()}, args...)...)
}

func (p *parser) expect(s string) error {
	if p.peek() != s {
		if p.i >= len(p.toks) {
			return p.errorf("expected %q, found end of input", s)
		}
		return p.errorf("expected %q, found %q", s, p.peek())
	}
	p.i++
	return nil
}

// Expr parses a single expression.
func Expr(s string) (expr.Expr, error) {
	toks, err := split(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, end: len(s)}
	e, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.toks) {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return e, nil
}

// List parses comma separated expressions.
func List(s string) ([]expr.Expr, error) {
	toks, err := split(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, end: len(s)}
	var es []expr.Expr
	for {
		e, err := p.sum()
		if err != nil {
			return nil, err
		}
		es = append(es, e)
		if p.peek() != "," {
			break
		}
		p.i++
	}
	if p.i != len(p.toks) {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return es, nil
}

func (p *parser) sum() (expr.Expr, error) {
	e, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != "+" && op != "-" {
			return e, nil
		}
		p.i++
		r, err := p.product()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			e = expr.Add(e, r)
		} else {
			e = expr.Sub(e, r)
		}
	}
}

func (p *parser) product() (expr.Expr, error) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != "*" && op != "/" {
			return e, nil
		}
		p.i++
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			e = expr.Mul(e, r)
		} else {
			e = expr.Div(e, r)
		}
	}
}

// unary binds looser than ^, so -x^2 is -(x^2).
func (p *parser) unary() (expr.Expr, error) {
	switch p.peek() {
	case "-":
		p.i++
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return expr.Neg(e), nil
	case "+":
		p.i++
		return p.unary()
	}
	return p.power()
}

// power is right associative: 2^3^2 is 2^(3^2).
func (p *parser) power() (expr.Expr, error) {
	b, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek() != "^" {
		return b, nil
	}
	p.i++
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	return expr.Pow(b, x), nil
}

func (p *parser) atom() (expr.Expr, error) {
	if p.i >= len(p.toks) {
		return nil, p.errorf("unexpected end of input")
	}
	t := p.toks[p.i].text
	switch {
	case t == "(":
		p.i++
		e, err := p.sum()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return e, nil
	case number.MatchString(t):
		c, err := expr.ParseDecimal(t)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "at %d: bad number %q: %v", p.pos(), t, err)
		}
		p.i++
		return c, nil
	case symbol.MatchString(t):
		p.i++
		if p.peek() != "(" {
			return expr.Var(t), nil
		}
		return p.call(t)
	}
	return nil, p.errorf("unexpected %q", t)
}

// call parses the argument list of a function or operator name.
func (p *parser) call(name string) (expr.Expr, error) {
	at := p.pos()
	p.i++
	var args []expr.Expr
	if p.peek() != ")" {
		for {
			a, err := p.sum()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek() != "," {
				break
			}
			p.i++
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	switch name {
	case "sqrt":
		if len(args) != 1 {
			return nil, errors.Wrapf(ErrSyntax, "at %d: sqrt takes 1 argument, got %d", at, len(args))
		}
		return expr.Sqrt(args[0]), nil
	case "sum", "prod":
		if len(args) != 4 {
			return nil, errors.Wrapf(ErrSyntax, "at %d: %s takes 4 arguments, got %d", at, name, len(args))
		}
		v, ok := args[1].(*expr.Variable)
		if !ok || v.Name == expr.PiName || v.Name == expr.EName {
			return nil, errors.Wrapf(ErrSyntax, "at %d: %s index must be a variable, got %v", at, name, args[1])
		}
		if name == "sum" {
			return expr.SumOf(args[0], v.Name, args[2], args[3]), nil
		}
		return expr.ProdOf(args[0], v.Name, args[2], args[3]), nil
	}
	kind, ok := expr.LookupFunc(name)
	if !ok {
		return nil, errors.Wrapf(ErrSyntax, "at %d: unknown function %q", at, name)
	}
	if len(args) != 1 {
		return nil, errors.Wrapf(ErrSyntax, "at %d: %s takes 1 argument, got %d", at, name, len(args))
	}
	return expr.Fn(kind, args[0]), nil
}
