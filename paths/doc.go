// Package paths answers point-to-point questions about a core.Graph:
// whether a path exists between two vertices, what that path is, which
// cycles a DFS closes (one per back-edge), and whether the graph is
// bipartite.
//
// SingleSourcePath and PathTo split path discovery from path
// reconstruction so callers can compute one parent map and reconstruct
// many destinations from it without repeating the traversal, grounded on
// the teacher library's BFSResult.Parent / DFSResult.Parent split.
package paths
