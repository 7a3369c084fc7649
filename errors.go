package bir

import (
	"fmt"

	"github.com/pkg/errors"
)

// RuntimeError is the base category every error this package raises
// satisfies. Callers that don't care about the specific kind can match on
// this interface; callers that do can type-switch or use errors.As against
// the concrete types below.
type RuntimeError interface {
	error
	runtimeError()
}

// NodeStructureError reports a violated structural rule: an invalid parent
// type, a self-loop edge, or a second CFGNodeInfo attached to a CFGNode.
type NodeStructureError struct {
	Op  string
	msg string
}

func (e *NodeStructureError) Error() string {
	return fmt.Sprintf("bir: %s: %s", e.Op, e.msg)
}

func (e *NodeStructureError) runtimeError() {}

func newNodeStructureError(op, msg string) error {
	return errors.WithStack(&NodeStructureError{Op: op, msg: msg})
}

// IsNodeStructureError reports whether err is, or wraps, a *NodeStructureError.
func IsNodeStructureError(err error) bool {
	var target *NodeStructureError
	return errors.As(err, &target)
}

// ExpiredReferenceError reports that an edge target could not be resolved
// to a currently-owned node: it is nil, or it has no parent because it was
// never admitted into any tree.
type ExpiredReferenceError struct {
	Op  string
	msg string
}

func (e *ExpiredReferenceError) Error() string {
	return fmt.Sprintf("bir: %s: %s", e.Op, e.msg)
}

func (e *ExpiredReferenceError) runtimeError() {}

func newExpiredReferenceError(op, msg string) error {
	return errors.WithStack(&ExpiredReferenceError{Op: op, msg: msg})
}

// IsExpiredReferenceError reports whether err is, or wraps, an *ExpiredReferenceError.
func IsExpiredReferenceError(err error) bool {
	var target *ExpiredReferenceError
	return errors.As(err, &target)
}

// OutOfRangeError reports an index operand outside a sequence's bounds.
type OutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bir: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

func (e *OutOfRangeError) runtimeError() {}

func newOutOfRangeError(op string, index, size int) error {
	return errors.WithStack(&OutOfRangeError{Op: op, Index: index, Size: size})
}

// IsOutOfRangeError reports whether err is, or wraps, an *OutOfRangeError.
func IsOutOfRangeError(err error) bool {
	var target *OutOfRangeError
	return errors.As(err, &target)
}
