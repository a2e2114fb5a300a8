// Package walks finds Hamiltonian paths/loops and Eulerian circuits over
// core.Graphs: Hamiltonian search is backtracking DFS over vertex
// visitation; Eulerian search is a degree/connectivity precondition test
// followed by Hierholzer's algorithm on a scratch copy of the edge set.
package walks
