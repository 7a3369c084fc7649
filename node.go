package bir

import (
	"github.com/google/uuid"
)

// Entity is the admission protocol every member of an IR tree satisfies. A
// concrete type embeds base (directly or transitively) to get the tree
// substrate for free, and overrides IsValidParent to restrict who may
// adopt it.
type Entity interface {
	// UUID returns this node's immutable identity.
	UUID() uuid.UUID

	// Parent returns the owning node, or nil if this node is currently an
	// orphan.
	Parent() Entity

	// IsValidParent reports whether this node would accept parent as its
	// owner. The base implementation accepts any parent; concrete kinds
	// narrow this.
	IsValidParent(parent Entity) bool

	// Size returns the number of owned children.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// ChildAt returns the i'th child in insertion order.
	ChildAt(i int) (Entity, error)

	// PushBack moves ownership of child into this node, provided
	// child.IsValidParent(this) holds.
	PushBack(child Entity) error

	// SetLocalProperty inserts or overwrites a key in the local property
	// map.
	SetLocalProperty(key, value string)

	// GetLocalProperty returns the value for key and whether it was
	// present.
	GetLocalProperty(key string) (string, bool)

	// RemoveLocalProperty deletes key, reporting whether it was present.
	RemoveLocalProperty(key string) bool

	// ClearLocalProperties empties the local property map.
	ClearLocalProperties()

	// LocalPropertySize returns the number of entries in the local
	// property map.
	LocalPropertySize() int

	// LocalPropertyEmpty reports whether LocalPropertySize() == 0.
	LocalPropertyEmpty() bool

	// setParent is called exclusively by the parent during admission. No
	// operation in this package removes a child or clears its parent.
	setParent(Entity)
}

// base is the shared substrate embedded by every concrete node kind (Node,
// CFG, CFGNode, CFGNodeInfo). It is never used on its own; concrete kinds
// call base.init(self) from their constructor so that promoted methods can
// dispatch back through self for type-specific behavior like
// IsValidParent.
type base struct {
	id       uuid.UUID
	parent   Entity
	children []Entity
	props    map[string]string
	self     Entity
}

func (b *base) init(self Entity) {
	b.id = uuid.New()
	b.self = self
}

func (b *base) UUID() uuid.UUID { return b.id }

func (b *base) Parent() Entity { return b.parent }

func (b *base) setParent(p Entity) { b.parent = p }

// IsValidParent is the default admission predicate: a plain Node accepts
// any parent. Concrete kinds with narrower rules define their own method,
// which shadows this one for calls made through the Entity interface.
func (b *base) IsValidParent(parent Entity) bool { return true }

func (b *base) Size() int { return len(b.children) }

func (b *base) Empty() bool { return len(b.children) == 0 }

func (b *base) ChildAt(i int) (Entity, error) {
	if i < 0 || i >= len(b.children) {
		return nil, newOutOfRangeError("ChildAt", i, len(b.children))
	}
	return b.children[i], nil
}

// PushBack admits child as the last entry of this node's child list,
// transferring ownership. On rejection nothing is mutated and the caller
// keeps the handle.
func (b *base) PushBack(child Entity) error {
	if child == nil {
		return newNodeStructureError("PushBack", "cannot admit a nil child")
	}
	if !child.IsValidParent(b.self) {
		debugf("PushBack: rejected %s as parent of %s", b.self.UUID(), child.UUID())
		return newNodeStructureError("PushBack", "child does not accept this node as a parent")
	}
	b.children = append(b.children, child)
	child.setParent(b.self)
	return nil
}

func (b *base) SetLocalProperty(key, value string) {
	if b.props == nil {
		b.props = make(map[string]string)
	}
	b.props[key] = value
}

func (b *base) GetLocalProperty(key string) (string, bool) {
	v, ok := b.props[key]
	return v, ok
}

func (b *base) RemoveLocalProperty(key string) bool {
	if _, ok := b.props[key]; !ok {
		return false
	}
	delete(b.props, key)
	return true
}

func (b *base) ClearLocalProperties() {
	b.props = nil
}

func (b *base) LocalPropertySize() int { return len(b.props) }

func (b *base) LocalPropertyEmpty() bool { return len(b.props) == 0 }

// Node is the base IR entity: identity, owned children, local properties.
// It accepts any node as a parent.
type Node struct {
	base
}

// NewNode constructs an orphan Node with a fresh UUID, no children, and an
// empty property map. It never fails.
func NewNode() *Node {
	n := &Node{}
	n.base.init(n)
	return n
}
