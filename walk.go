package bir

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Walk visits root and every node in its owned subtree, depth-first,
// calling visit once per node in a stable pre-order. It stops and returns
// the first error visit produces.
func Walk(root Entity, visit func(Entity) error) error {
	if root == nil {
		return nil
	}
	if err := visit(root); err != nil {
		return err
	}
	for i := 0; i < root.Size(); i++ {
		child, err := root.ChildAt(i)
		if err != nil {
			return err
		}
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}

// ParallelWalk visits root and every node in its owned subtree,
// level-by-level, fanning the visit calls for all nodes at a given depth
// out across goroutines before descending to the next depth. It performs
// no mutation of the tree, so it is safe to use concurrently with other
// read-only traversals of the same tree (see package docs on the
// concurrency model); it must not be used alongside anything that mutates
// the tree it walks.
//
// It returns the first error any visit call produces, after all
// in-flight visits at that depth have completed.
func ParallelWalk(ctx context.Context, root Entity, visit func(Entity) error) error {
	if root == nil {
		return nil
	}

	level := []Entity{root}
	for len(level) > 0 {
		wg, gctx := errgroup.WithContext(ctx)
		for _, n := range level {
			n := n
			wg.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				return visit(n)
			})
		}
		if err := wg.Wait(); err != nil {
			return err
		}

		var next []Entity
		for _, n := range level {
			for i := 0; i < n.Size(); i++ {
				child, err := n.ChildAt(i)
				if err != nil {
					return err
				}
				next = append(next, child)
			}
		}
		level = next
	}
	return nil
}
