package traverse

import "context"

// Option configures optional behavior of DFS and BFS: predecessor-map
// collection, restricting the walk to a single source (in place of the
// whole-graph forest default), and context cancellation — exactly the
// tunables the teacher's bfs/dfs packages expose via their own Option
// types.
type Option func(*options)

// options holds the configurable parameters for a traversal.
type options struct {
	ctx        context.Context
	start      int
	hasStart   bool
	wantParent bool
}

// DefaultOptions returns the default traversal configuration: whole-graph
// forest traversal (every component, not just one vertex's), no
// parent-map collection, and context.Background().
func DefaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context checked once per vertex
// visited. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithStart restricts the traversal to the single component reachable
// from start, instead of walking the whole-graph forest.
func WithStart(start int) Option {
	return func(o *options) {
		o.start = start
		o.hasStart = true
	}
}

// WithParentMap requests that the traversal additionally record, for
// every visited vertex, the predecessor it was first discovered from; a
// tree root maps to itself.
func WithParentMap() Option {
	return func(o *options) {
		o.wantParent = true
	}
}
