// Package terms flattens expression trees into lists of additive or
// multiplicative terms and reassembles them.
package terms

import (
	"github.com/Horazon1985/ExpressionBuilder-sub006/expr"
)

// Collection is a sparse, order preserving list of expressions
// addressed by index. Removing an element leaves an empty slot, so
// indices stay valid as handles across removals.
//
// Bound is one past the highest occupied index. Iterations run over
// 0..Bound()-1 and skip empty slots.
type Collection struct {
	slots []expr.Expr
	bound int
}

// New creates an empty collection holding es in order.
func New(es ...expr.Expr) *Collection {
	c := &Collection{}
	for _, e := range es {
		c.Add(e)
	}
	return c
}

// Bound returns one past the highest occupied index, or 0.
func (c *Collection) Bound() int { return c.bound }

// Get returns the element at i, or nil for an empty slot.
func (c *Collection) Get(i int) expr.Expr {
	if i < 0 || i >= c.bound {
		return nil
	}
	return c.slots[i]
}

// Put stores e at index i. Storing nil is the same as Remove.
func (c *Collection) Put(i int, e expr.Expr) {
	if e == nil {
		c.Remove(i)
		return
	}
	for len(c.slots) <= i {
		c.slots = append(c.slots, nil)
	}
	c.slots[i] = e
	if i >= c.bound {
		c.bound = i + 1
	}
}

// Add appends e at index Bound().
func (c *Collection) Add(e expr.Expr) {
	c.Put(c.bound, e)
}

// Remove clears slot i. The remaining elements keep their indices.
func (c *Collection) Remove(i int) {
	if i < 0 || i >= c.bound {
		return
	}
	c.slots[i] = nil
	for c.bound > 0 && c.slots[c.bound-1] == nil {
		c.bound--
	}
}

// IsEmpty reports whether no slot is occupied.
func (c *Collection) IsEmpty() bool { return c.bound == 0 }

// Size returns the number of occupied slots.
func (c *Collection) Size() int {
	n := 0
	for i := 0; i < c.bound; i++ {
		if c.slots[i] != nil {
			n++
		}
	}
	return n
}

// Terms returns the occupied slots in index order.
func (c *Collection) Terms() []expr.Expr {
	var es []expr.Expr
	for i := 0; i < c.bound; i++ {
		if c.slots[i] != nil {
			es = append(es, c.slots[i])
		}
	}
	return es
}

// Copy returns an independent collection with the same slots.
// Expressions are immutable, so sharing them is a deep copy.
func (c *Collection) Copy() *Collection {
	d := &Collection{slots: make([]expr.Expr, c.bound), bound: c.bound}
	copy(d.slots, c.slots[:c.bound])
	return d
}

// CopyRange returns the slots m..n-1 of c moved down to start at 0.
func (c *Collection) CopyRange(m, n int) *Collection {
	d := &Collection{}
	if m < 0 {
		m = 0
	}
	if n > c.bound {
		n = c.bound
	}
	for i := m; i < n; i++ {
		if c.slots[i] != nil {
			d.Put(i-m, c.slots[i])
		}
	}
	return d
}

// RemoveMultipleTerms clears every element equivalent to an earlier
// element.
func (c *Collection) RemoveMultipleTerms() {
	for i := 0; i < c.bound; i++ {
		if c.slots[i] == nil {
			continue
		}
		for j := i + 1; j < c.bound; j++ {
			if c.slots[j] != nil && expr.Equivalent(c.slots[i], c.slots[j]) {
				c.Remove(j)
			}
		}
	}
}

// Simplify replaces every element e by fn(e). The first error stops
// the walk and is returned; c is then partially rewritten and should
// be discarded.
func (c *Collection) Simplify(fn func(expr.Expr) (expr.Expr, error)) error {
	for i := 0; i < c.bound; i++ {
		if c.slots[i] == nil {
			continue
		}
		e, err := fn(c.slots[i])
		if err != nil {
			return err
		}
		c.Put(i, e)
	}
	return nil
}

// String lists the collection as [a, b, _, c] with _ for empty slots.
func (c *Collection) String() string {
	s := "["
	for i := 0; i < c.bound; i++ {
		if i > 0 {
			s += ", "
		}
		if c.slots[i] == nil {
			s += "_"
		} else {
			s += c.slots[i].String()
		}
	}
	return s + "]"
}
