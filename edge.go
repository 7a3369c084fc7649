package bir

// Edge is one entry in a CFGNode's successor or predecessor sequence: a
// non-owning reference to another CFGNode, together with a flag recording
// whether the flow it represents is known to be executed (as opposed to a
// spurious or fall-through-only edge).
type Edge struct {
	Target     Entity
	Executable bool
}

// edgeList is the shared implementation behind CFGNode's successors and
// predecessors sequences. The two sequences are independent: nothing here
// ever touches the other list.
type edgeList struct {
	edges []Edge
}

func (l *edgeList) size() int { return len(l.edges) }

func (l *edgeList) empty() bool { return len(l.edges) == 0 }

func (l *edgeList) at(op string, index int) (Edge, error) {
	if index < 0 || index >= len(l.edges) {
		return Edge{}, newOutOfRangeError(op, index, len(l.edges))
	}
	return l.edges[index], nil
}

func (l *edgeList) set(op string, index int, e Edge) error {
	if index < 0 || index >= len(l.edges) {
		return newOutOfRangeError(op, index, len(l.edges))
	}
	l.edges[index] = e
	return nil
}

func (l *edgeList) add(e Edge) {
	l.edges = append(l.edges, e)
}

// removeAt erases the edge at index, shifting subsequent edges down by
// one. Out-of-range indices are a no-op, not an error.
func (l *edgeList) removeAt(index int) {
	if index < 0 || index >= len(l.edges) {
		return
	}
	l.edges = append(l.edges[:index], l.edges[index+1:]...)
}

// removeMatching erases every edge whose target and executable flag both
// match. A mismatched flag on an otherwise-matching target leaves that
// edge untouched.
func (l *edgeList) removeMatching(target Entity, executable bool) {
	kept := l.edges[:0]
	for _, e := range l.edges {
		if e.Target == target && e.Executable == executable {
			continue
		}
		kept = append(kept, e)
	}
	l.edges = kept
}
