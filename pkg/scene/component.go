package scene

import "slices"

// Component is data attached to a node.
// Embed Base to implement it outside this package.
type Component interface {
	// Node returns the node the component is attached to, or nil.
	Node() *Node
	attach(n *Node)
}

// Base tracks the node a component is attached to.
type Base struct {
	node *Node
}

// Node returns the owning node.
func (b *Base) Node() *Node {
	return b.node
}

func (b *Base) attach(n *Node) {
	b.node = n
}

// AddComponent attaches c to n, detaching it from any previous node.
func (n *Node) AddComponent(c Component) {
	if prev := c.Node(); prev != nil {
		prev.RemoveComponent(c)
	}
	c.attach(n)
	n.components = append(n.components, c)
}

// RemoveComponent detaches c from n. It reports whether c was found.
func (n *Node) RemoveComponent(c Component) bool {
	i := slices.Index(n.components, c)
	if i < 0 {
		return false
	}
	n.components = slices.Delete(n.components, i, i+1)
	c.attach(nil)
	return true
}

// Components returns a copy of the components attached to n.
func (n *Node) Components() []Component {
	return slices.Clone(n.components)
}

// GetComponent returns the first component of n that is a T.
func GetComponent[T any](n *Node) (T, bool) {
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// AddAll attaches a new component of type *E to n and every descendant,
// returning the one attached to n.
func AddAll[E any, P interface {
	*E
	Component
}](n *Node) P {
	var first P
	n.Walk(func(node *Node) bool {
		c := P(new(E))
		node.AddComponent(c)
		if node == n {
			first = c
		}
		return true
	})
	return first
}

// RemoveAll detaches every component that is a T from n and its descendants.
// It returns the number removed.
func RemoveAll[T any](n *Node) int {
	removed := 0
	for _, c := range GetAll[T](n) {
		if comp, ok := any(c).(Component); ok && comp.Node().RemoveComponent(comp) {
			removed++
		}
	}
	return removed
}

// GetAll returns every component that is a T on n and its descendants,
// in walk order.
func GetAll[T any](n *Node) []T {
	var out []T
	n.Walk(func(node *Node) bool {
		for _, c := range node.components {
			if t, ok := c.(T); ok {
				out = append(out, t)
			}
		}
		return true
	})
	return out
}
