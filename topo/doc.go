// Package topo computes a topological ordering of a directed graph via
// Kahn's algorithm: seed a queue with every in-degree-0 vertex, then
// repeatedly dequeue, append to the result, and decrement each
// out-neighbor's in-degree counter, enqueuing it on reaching zero. A
// result shorter than the vertex count means a cycle exists.
package topo
