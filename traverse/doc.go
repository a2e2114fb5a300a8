// Package traverse provides the traversal kernels every higher-level
// algorithm in this module is built from: recursive post-order DFS,
// iterative pre-order DFS, level-order BFS, and dense component
// labeling.
//
// DFS and BFS take functional Options, exactly as the teacher's bfs/dfs
// packages do: WithStart restricts the walk to one component instead of
// the whole-graph forest default, WithParentMap additionally records
// each vertex's predecessor, and WithContext installs a cancellation
// context checked once per vertex visited. Both return ErrStartNotFound
// if WithStart names an unknown vertex, and ctx.Err() if the context is
// cancelled mid-walk; with no options, neither can fail.
//
// DFSIterative and Label take no options and no start vertex: they always
// cover every vertex of the graph, and neither can fail.
//
// Neighbor order within a vertex follows core.Graph.Adjacent, i.e.
// ascending neighbor id. This makes iterative and recursive DFS over the
// same graph produce different but each internally deterministic orders,
// matching spec's requirement that results need not coincide between the
// two DFS variants.
package traverse
