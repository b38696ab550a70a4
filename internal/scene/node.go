package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is one object in the scene hierarchy.
type Node struct {
	Name       string
	Transform  Transform
	Components []Component

	active   bool
	parent   *Node
	children []*Node
}

// NewNode creates an active, unparented node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: IdentityTransform(),
		active:    true,
	}
}

// AddChild creates a named child under n and returns it.
func (n *Node) AddChild(name string) *Node {
	c := NewNode(name)
	c.SetParent(n)
	return c
}

// SetParent moves n under p keeping its local transform. A nil parent
// detaches the node.
func (n *Node) SetParent(p *Node) {
	n.Detach()
	if p == nil {
		return
	}
	n.parent = p
	p.children = append(p.children, n)
}

// Detach removes n from its parent's children.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the direct children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Find returns the direct child with the given name.
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) SetActive(active bool) { n.active = active }

// ActiveSelf reports the node's own flag, ignoring ancestors.
func (n *Node) ActiveSelf() bool { return n.active }

// ActiveInHierarchy is true when the node and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.active {
			return false
		}
	}
	return true
}

// WorldMatrix composes the local transforms from the root down to n.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul4(m)
	}
	return m
}

// TransformPoint maps a point from n's local space into world space.
func (n *Node) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return n.WorldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// WorldPosition is the node's origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.TransformPoint(mgl32.Vec3{})
}

// SetWorldPosition moves n so that its origin lands on p in world space.
func (n *Node) SetWorldPosition(p mgl32.Vec3) {
	if n.parent == nil {
		n.Transform.Position = p
		return
	}
	inv := n.parent.WorldMatrix().Inv()
	n.Transform.Position = inv.Mul4x1(p.Vec4(1)).Vec3()
}

// Walk visits n and every descendant depth first, inactive ones included.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// ComponentsInChildren collects every component of category c in the subtree.
func (n *Node) ComponentsInChildren(c Category) []Component {
	var out []Component
	n.Walk(func(node *Node) {
		for _, comp := range node.Components {
			if comp.Category == c {
				out = append(out, comp)
			}
		}
	})
	return out
}

// RemoveComponentsInChildren deletes every component in the subtree for which
// drop returns true and reports how many were removed.
func (n *Node) RemoveComponentsInChildren(drop func(Category) bool) int {
	removed := 0
	n.Walk(func(node *Node) {
		kept := node.Components[:0]
		for _, comp := range node.Components {
			if drop(comp.Category) {
				removed++
				continue
			}
			kept = append(kept, comp)
		}
		node.Components = kept
	})
	return removed
}

// Clone deep-copies n and its subtree. The copy is unparented and its root is
// named "<name>(Clone)".
func (n *Node) Clone() *Node {
	c := n.cloneTree()
	c.Name = n.Name + "(Clone)"
	return c
}

func (n *Node) cloneTree() *Node {
	c := &Node{
		Name:      n.Name,
		Transform: n.Transform,
		active:    n.active,
	}
	if len(n.Components) > 0 {
		c.Components = make([]Component, len(n.Components))
		copy(c.Components, n.Components)
	}
	for _, child := range n.children {
		cc := child.cloneTree()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}
