package bir

// CFG is the top-level container Node for one procedure's control-flow
// graph. It performs no edge bookkeeping of its own; its only behavior
// beyond Node is on the admission side, viewed from its children:
// CFGNode.IsValidParent accepts a *CFG.
//
// CFG's own IsValidParent is unexercised by the source this package is
// modeled on; per that ambiguity this implementation treats CFG as
// top-level only and rejects every parent (see DESIGN.md).
type CFG struct {
	base
}

// NewCFG constructs an empty, orphan CFG.
func NewCFG() *CFG {
	c := &CFG{}
	c.base.init(c)
	return c
}

// IsValidParent always returns false: a CFG is a top-level container and
// is never itself nested inside another node.
func (c *CFG) IsValidParent(parent Entity) bool { return false }
