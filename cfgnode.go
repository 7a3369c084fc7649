package bir

// CFGNode is a Node that additionally participates in a directed graph via
// two ordered, non-owning edge lists: successors and predecessors. Edge
// targets must already be owned by some tree at the time the edge is
// created; CFGNode does not own what its edges point at.
type CFGNode struct {
	base
	successors   edgeList
	predecessors edgeList
}

// NewCFGNode constructs an orphan CFGNode with no children and no edges.
func NewCFGNode() *CFGNode {
	n := &CFGNode{}
	n.base.init(n)
	return n
}

// IsValidParent accepts a CFG or another CFGNode as a parent, and rejects
// a plain Node.
func (n *CFGNode) IsValidParent(parent Entity) bool {
	switch parent.(type) {
	case *CFG, *CFGNode:
		return true
	default:
		return false
	}
}

// PushBack admits child, additionally enforcing that at most one
// CFGNodeInfo may ever be attached to a CFGNode (spec invariant 5). A
// second CFGNodeInfo is rejected before any mutation occurs.
func (n *CFGNode) PushBack(child Entity) error {
	if _, ok := child.(*CFGNodeInfo); ok && n.CFGNodeInfo() != nil {
		return newNodeStructureError("PushBack", "CFGNode already has a CFGNodeInfo attached")
	}
	return n.base.PushBack(child)
}

// CFGNodeInfo returns the single attached CFGNodeInfo child, or nil if
// none has been admitted.
func (n *CFGNode) CFGNodeInfo() *CFGNodeInfo {
	for _, c := range n.children {
		if info, ok := c.(*CFGNodeInfo); ok {
			return info
		}
	}
	return nil
}

// SuccessorSize returns the number of successor edges.
func (n *CFGNode) SuccessorSize() int { return n.successors.size() }

// SuccessorsEmpty reports whether SuccessorSize() == 0.
func (n *CFGNode) SuccessorsEmpty() bool { return n.successors.empty() }

// GetSuccessor returns the edge at index.
func (n *CFGNode) GetSuccessor(index int) (Edge, error) {
	return n.successors.at("GetSuccessor", index)
}

// SetSuccessor replaces the edge at index, leaving all other positions
// untouched.
func (n *CFGNode) SetSuccessor(index int, target Entity, executable bool) error {
	if err := n.validateEdgeTarget("SetSuccessor", target); err != nil {
		return err
	}
	return n.successors.set("SetSuccessor", index, Edge{Target: target, Executable: executable})
}

// AddSuccessor appends (target, executable) to the successor list. target
// must already be owned by some tree, and must not be n itself.
func (n *CFGNode) AddSuccessor(target Entity, executable bool) error {
	if err := n.validateEdgeTarget("AddSuccessor", target); err != nil {
		return err
	}
	n.successors.add(Edge{Target: target, Executable: executable})
	return nil
}

// AddSuccessorChild admits child as a new child of n (transferring
// ownership via PushBack) and then records it as a non-executable
// successor. All of PushBack's admission rules apply.
func (n *CFGNode) AddSuccessorChild(child Entity) error {
	if err := n.PushBack(child); err != nil {
		return err
	}
	n.successors.add(Edge{Target: child, Executable: false})
	return nil
}

// RemoveSuccessorAt erases the successor edge at index, shifting later
// edges down by one. An out-of-range index is a no-op.
func (n *CFGNode) RemoveSuccessorAt(index int) {
	n.successors.removeAt(index)
}

// RemoveSuccessor erases every successor edge whose target and executable
// flag both match. A flag mismatch leaves that edge in place.
func (n *CFGNode) RemoveSuccessor(target Entity, executable bool) {
	n.successors.removeMatching(target, executable)
}

// PredecessorSize returns the number of predecessor edges.
func (n *CFGNode) PredecessorSize() int { return n.predecessors.size() }

// PredecessorsEmpty reports whether PredecessorSize() == 0.
func (n *CFGNode) PredecessorsEmpty() bool { return n.predecessors.empty() }

// GetPredecessor returns the edge at index.
func (n *CFGNode) GetPredecessor(index int) (Edge, error) {
	return n.predecessors.at("GetPredecessor", index)
}

// SetPredecessor replaces the edge at index, leaving all other positions
// untouched.
func (n *CFGNode) SetPredecessor(index int, target Entity, executable bool) error {
	if err := n.validateEdgeTarget("SetPredecessor", target); err != nil {
		return err
	}
	return n.predecessors.set("SetPredecessor", index, Edge{Target: target, Executable: executable})
}

// AddPredecessor appends (target, executable) to the predecessor list.
// target must already be owned by some tree, and must not be n itself.
func (n *CFGNode) AddPredecessor(target Entity, executable bool) error {
	if err := n.validateEdgeTarget("AddPredecessor", target); err != nil {
		return err
	}
	n.predecessors.add(Edge{Target: target, Executable: executable})
	return nil
}

// AddPredecessorChild admits child as a new child of n (transferring
// ownership via PushBack) and then records it as a non-executable
// predecessor.
func (n *CFGNode) AddPredecessorChild(child Entity) error {
	if err := n.PushBack(child); err != nil {
		return err
	}
	n.predecessors.add(Edge{Target: child, Executable: false})
	return nil
}

// RemovePredecessorAt erases the predecessor edge at index, shifting later
// edges down by one. An out-of-range index is a no-op.
func (n *CFGNode) RemovePredecessorAt(index int) {
	n.predecessors.removeAt(index)
}

// RemovePredecessor erases every predecessor edge whose target and
// executable flag both match.
func (n *CFGNode) RemovePredecessor(target Entity, executable bool) {
	n.predecessors.removeMatching(target, executable)
}

// validateEdgeTarget enforces the two preconditions shared by every
// edge-adding/replacing operation: the target must not be n itself (no
// self-loops), and it must currently be owned by some tree (a weak
// reference that still resolves), or the call fails with
// ExpiredReferenceError.
func (n *CFGNode) validateEdgeTarget(op string, target Entity) error {
	if target == nil {
		return newExpiredReferenceError(op, "edge target is nil")
	}
	if Entity(n) == target {
		return newNodeStructureError(op, "a CFGNode cannot be its own successor or predecessor")
	}
	if target.Parent() == nil {
		return newExpiredReferenceError(op, "edge target is not currently owned by any tree")
	}
	return nil
}
