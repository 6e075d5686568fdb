package circuitgraph

import "sort"

// AddNode inserts a node with the given id, name and label. Returns
// ErrDuplicateNode if id is already present.
func (g *Graph) AddNode(id int, name string, label NodeLabel) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}
	g.nodes[id] = &Node{ID: id, Name: name, Label: label}
	g.nodeSeq = append(g.nodeSeq, id)
	g.adjacency[id] = make(map[int]int)
	if id >= g.nextNode {
		g.nextNode = id + 1
	}

	return nil
}

// NextNodeID returns an id one past the highest id ever assigned via
// AddNode, for callers (reduce, discrepancy) that synthesize new nodes
// representing a collapsed group.
func (g *Graph) NextNodeID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextNode
}

// RemoveNode deletes the node with the given id along with every edge
// incident to it. No-op if id doesn't exist.
func (g *Graph) RemoveNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return
	}

	for eid := range g.adjacency[id] {
		e := g.edges[eid]
		delete(g.adjacency[e.Source], eid)
		delete(g.adjacency[e.Target], eid)
		delete(g.edges, eid)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	for i, nid := range g.nodeSeq {
		if nid == id {
			g.nodeSeq = append(g.nodeSeq[:i], g.nodeSeq[i+1:]...)

			break
		}
	}
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.nodeSeq))
	for _, id := range g.nodeSeq {
		out = append(out, g.nodes[id])
	}

	return out
}

// AddEdge connects source and target with the given label and returns the
// new edge's id. Returns ErrNodeNotFound if either endpoint is missing,
// ErrSelfLoop if source == target.
//
// Multi-edges are permitted (the circuit graph is a multigraph, spec §3):
// repeated calls with the same endpoints each create a distinct edge.
func (g *Graph) AddEdge(source, target int, label EdgeLabel) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[source]; !ok {
		return 0, ErrNodeNotFound
	}
	if _, ok := g.nodes[target]; !ok {
		return 0, ErrNodeNotFound
	}
	if source == target {
		return 0, ErrSelfLoop
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge{ID: id, Source: source, Target: target, Label: label}
	g.adjacency[source][id] = target
	g.adjacency[target][id] = source

	return id, nil
}

// RemoveEdge deletes the edge with the given id. No-op if it doesn't exist.
func (g *Graph) RemoveEdge(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.adjacency[e.Source], id)
	delete(g.adjacency[e.Target], id)
	delete(g.edges, id)
}

// Edges returns all edges, sorted by id for deterministic iteration.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgesAt returns the edges incident to node id.
func (g *Graph) EdgesAt(id int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	out := make([]*Edge, 0, len(adj))
	for eid := range adj {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Degree returns the number of edges incident to id (a self-loop, were it
// permitted, would count twice; none exist per ErrSelfLoop).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Neighbors returns the distinct node ids adjacent to id (a multi-edge
// pair appears once).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]struct{})
	var out []int
	for _, nbr := range g.adjacency[id] {
		if _, ok := seen[nbr]; !ok {
			seen[nbr] = struct{}{}
			out = append(out, nbr)
		}
	}
	sort.Ints(out)

	return out
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of g, safe to mutate independently (used by
// the repeated-pattern search of spec §4.7, which removes matched edges
// between iterations without disturbing the caller's graph).
func (g *Graph) Clone() *Graph {
	out := New()
	for _, n := range g.Nodes() {
		_ = out.AddNode(n.ID, n.Name, n.Label)
	}
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(e.Source, e.Target, e.Label)
	}

	return out
}
