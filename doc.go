// Package bir implements the generic tree-node substrate and control-flow
// graph overlay at the core of an intermediate-representation library for
// binary program analysis.
//
// Every object in the IR — modules, procedures, basic blocks, instructions,
// symbols — is a Node: it has an immutable identity, an ordered list of
// owned children, and a string-keyed property bag. Nodes are admitted into
// a parent only if the child's IsValidParent predicate accepts that parent,
// so the tree's shape is enforced by the types themselves rather than by
// convention.
//
// CFGNode layers a directed, non-owning edge overlay (successors and
// predecessors) on top of the ownership tree, for describing a procedure's
// control flow without duplicating ownership. CFG is the top-level
// container for one procedure's graph, and CFGNodeInfo is an optional,
// single-slot attachment describing what kind of flow a CFGNode represents.
//
// This package does not perform I/O, does not serialize anything, and is
// not safe for concurrent mutation of the same tree from multiple
// goroutines; concurrent read-only traversal is fine (see ParallelWalk).
package bir
