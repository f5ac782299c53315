// Package simplify rewrites expressions into a smaller canonical form.
//
// Rewriting runs bottom-up: the children of a node are simplified
// first, then every enabled rule is applied to the node in registry
// order. Sweeps over the whole tree repeat until nothing changes.
// Exact rational arithmetic is used wherever possible.
package simplify

import (
	"context"
	"io"
	"log"

	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

// Simplifier applies the rule registry under a fixed configuration.
type Simplifier struct {
	cfg Config
	log *log.Logger
}

// New returns a simplifier with the given limits.
func New(cfg Config) *Simplifier {
	return &Simplifier{cfg: cfg, log: log.New(io.Discard, "", 0)}
}

// SetLogger routes rule tracing to l. Tracing is only written when
// Config.Debug is set.
func (s *Simplifier) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.log = l
}

// Config returns the limits of s.
func (s *Simplifier) Config() Config { return s.cfg }

// Simplify rewrites e with the rules of the given groups until a fixed
// point is reached. Without groups the Default set is used. The first
// evaluation error aborts the rewrite. Cancelling ctx aborts with
// expr.ErrAborted.
func (s *Simplifier) Simplify(ctx context.Context, e expr.Expr, groups ...Group) (expr.Expr, error) {
	g := Default
	if len(groups) != 0 {
		g = 0
		for _, x := range groups {
			g |= x
		}
	}
	p := &Pass{ctx: ctx, cfg: &s.cfg, groups: g, log: s.log}
	return p.fixpoint(e)
}

// Simplify rewrites e with DefaultConfig and the Default rules.
func Simplify(ctx context.Context, e expr.Expr) (expr.Expr, error) {
	return New(DefaultConfig()).Simplify(ctx, e)
}

// Pass carries the state shared by the rules during one
// simplification.
type Pass struct {
	ctx    context.Context
	cfg    *Config
	groups Group
	log    *log.Logger
}

// Enabled reports whether all of g is switched on.
func (p *Pass) Enabled(g Group) bool { return p.groups&g == g }

func (p *Pass) debugf(format string, args ...interface{}) {
	if p.cfg.Debug {
		p.log.Printf(format, args...)
	}
}

// checkAborted returns expr.ErrAborted once the context is done.
func (p *Pass) checkAborted() error {
	if p.ctx == nil {
		return nil
	}
	select {
	case <-p.ctx.Done():
		return &expr.EvaluationError{Op: "simplify", Err: expr.ErrAborted}
	default:
		return nil
	}
}

// fixpoint sweeps e until a sweep leaves it unchanged.
func (p *Pass) fixpoint(e expr.Expr) (expr.Expr, error) {
	for i := 0; i < p.cfg.MaxIterations; i++ {
		if err := p.checkAborted(); err != nil {
			return nil, err
		}
		next, err := p.sweep(e)
		if err != nil {
			return nil, err
		}
		if next.Equals(e) {
			return e, nil
		}
		e = next
	}
	p.debugf("no fixed point after %d passes: %v", p.cfg.MaxIterations, e)
	return e, nil
}

// sweep simplifies the children of e and then applies the rules to e.
func (p *Pass) sweep(e expr.Expr) (expr.Expr, error) {
	switch x := e.(type) {
	case *expr.Binary:
		l, err := p.sweep(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := p.sweep(x.Right)
		if err != nil {
			return nil, err
		}
		if l != x.Left || r != x.Right {
			e = &expr.Binary{Left: l, Right: r, Kind: x.Kind}
		}
	case *expr.Function:
		a, err := p.sweep(x.Arg)
		if err != nil {
			return nil, err
		}
		if a != x.Arg {
			e = expr.Fn(x.Kind, a)
		}
	case *expr.Operator:
		body, err := p.sweep(x.Body)
		if err != nil {
			return nil, err
		}
		lo, err := p.sweep(x.Lower)
		if err != nil {
			return nil, err
		}
		hi, err := p.sweep(x.Upper)
		if err != nil {
			return nil, err
		}
		if body != x.Body || lo != x.Lower || hi != x.Upper {
			o := *x
			o.Body, o.Lower, o.Upper = body, lo, hi
			e = &o
		}
	}
	return p.apply(e)
}

// apply runs the enabled rules over e in registry order.
func (p *Pass) apply(e expr.Expr) (expr.Expr, error) {
	for _, r := range registry {
		if p.groups&r.Group == 0 {
			continue
		}
		next, err := r.Apply(p, e)
		if err != nil {
			return nil, err
		}
		if next != e && !next.Equals(e) {
			p.debugf("%s: %v -> %v", r.Name, e, next)
			e = next
		}
	}
	return e, nil
}

// simplify runs a nested fixpoint on a sub-expression built by a rule.
func (p *Pass) simplify(e expr.Expr) (expr.Expr, error) {
	return p.fixpoint(e)
}
