package circuitgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for circuitgraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("circuitgraph: node not found")
	// ErrDuplicateNode indicates AddNode was called twice with the same id.
	ErrDuplicateNode = errors.New("circuitgraph: duplicate node id")
	// ErrSelfLoop indicates an edge was added from a node to itself, which
	// spec §8 invariant 4 forbids.
	ErrSelfLoop = errors.New("circuitgraph: self-loop not allowed")
)

// NodeLabel is a node's device-kind tag.
type NodeLabel string

const (
	LabelN   NodeLabel = "N"
	LabelP   NodeLabel = "P"
	LabelBus NodeLabel = "bus"
)

// EdgeLabel is an edge's terminal-kind tag.
type EdgeLabel string

const (
	// EdgeTerminal labels a transistor's drain/source-side edge.
	EdgeTerminal EdgeLabel = "terminal"
	// EdgeGate labels a transistor's gate-side edge; spec §8 invariant 3
	// requires exactly one endpoint of a gate edge be a transistor.
	EdgeGate EdgeLabel = "gate"
)

// Node is a graph vertex: a transistor (Label N or P) or a net (Label bus).
type Node struct {
	ID    int
	Name  string
	Label NodeLabel
}

// Edge is an undirected connection between two nodes, labeled terminal or
// gate. Source/Target order is not semantically meaningful (spec §8
// invariant 4: undirected, no separate reverse edge).
type Edge struct {
	ID     int
	Source int
	Target int
	Label  EdgeLabel
}

// Graph is the undirected labeled multigraph of spec §3. It is built once
// (by extract or schematic) and is safe for concurrent read (node/edge
// iteration) once built, but not for concurrent mutation (spec §5).
type Graph struct {
	mu sync.RWMutex

	nodes    map[int]*Node
	nodeSeq  []int // insertion order, for deterministic iteration
	edges    map[int]*Edge
	nextEdge int
	nextNode int // one past the highest node id ever assigned

	// adjacency[nodeID][edgeID] = neighborID
	adjacency map[int]map[int]int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]int),
	}
}
