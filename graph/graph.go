package graph

// NoPriorWeight is the sentinel returned by SetWeight when the edge it
// wrote did not previously exist.
const NoPriorWeight = -1

// Add inserts the edge (from, to, weight). Returns (false, nil) without
// any side effect if the edge already exists. Returns OutOfRange if
// either vertex lies outside [0, N), or NegativeWeight if weight < 0.
func (g *Graph) Add(from, to int, weight float64) (bool, error) {
	if err := g.checkVertex(from); err != nil {
		return false, err
	}
	if err := g.checkVertex(to); err != nil {
		return false, err
	}
	if weight < 0 {
		return false, ErrNegativeWeight
	}

	if idx := g.findOut(from, to); idx >= 0 {
		return false, nil
	}

	g.outEdges[from] = append(g.outEdges[from], Edge{From: from, To: to, Weight: weight})
	g.inEdges[to] = append(g.inEdges[to], Edge{From: from, To: to, Weight: weight})
	g.edges++

	return true, nil
}

// Remove deletes the edge (from, to) if present. Returns false if no
// such edge exists. OutOfRange checks apply as in Add.
func (g *Graph) Remove(from, to int) (bool, error) {
	if err := g.checkVertex(from); err != nil {
		return false, err
	}
	if err := g.checkVertex(to); err != nil {
		return false, err
	}

	outIdx := g.findOut(from, to)
	if outIdx < 0 {
		return false, nil
	}
	g.outEdges[from] = removeAt(g.outEdges[from], outIdx)

	if inIdx := g.findIn(to, from); inIdx >= 0 {
		g.inEdges[to] = removeAt(g.inEdges[to], inIdx)
	}
	g.edges--

	return true, nil
}

// SetWeight replaces the weight of (from, to), inserting the edge if it
// is absent. Returns the prior weight, or NoPriorWeight if the edge was
// just inserted. OutOfRange and NegativeWeight checks apply as in Add.
func (g *Graph) SetWeight(from, to int, weight float64) (float64, error) {
	if err := g.checkVertex(from); err != nil {
		return 0, err
	}
	if err := g.checkVertex(to); err != nil {
		return 0, err
	}
	if weight < 0 {
		return 0, ErrNegativeWeight
	}

	if outIdx := g.findOut(from, to); outIdx >= 0 {
		prior := g.outEdges[from][outIdx].Weight
		g.outEdges[from][outIdx].Weight = weight
		if inIdx := g.findIn(to, from); inIdx >= 0 {
			g.inEdges[to][inIdx].Weight = weight
		}
		return prior, nil
	}

	g.outEdges[from] = append(g.outEdges[from], Edge{From: from, To: to, Weight: weight})
	g.inEdges[to] = append(g.inEdges[to], Edge{From: from, To: to, Weight: weight})
	g.edges++

	return NoPriorWeight, nil
}

// GetWeight returns the current weight of (from, to), or
// (NoPriorWeight, false) if no such edge exists.
func (g *Graph) GetWeight(from, to int) (float64, bool, error) {
	if err := g.checkVertex(from); err != nil {
		return 0, false, err
	}
	if err := g.checkVertex(to); err != nil {
		return 0, false, err
	}

	if idx := g.findOut(from, to); idx >= 0 {
		return g.outEdges[from][idx].Weight, true, nil
	}
	return NoPriorWeight, false, nil
}

// IterOut returns a read-only view of the outgoing edges at v, in
// insertion order. The slice is only valid until the next mutation of g;
// callers must not retain it across Add/Remove/SetWeight calls.
func (g *Graph) IterOut(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	return g.outEdges[v], nil
}

// IterIn returns a read-only view of the incoming edges at v, in
// insertion order. Same validity contract as IterOut.
func (g *Graph) IterIn(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	return g.inEdges[v], nil
}

func (g *Graph) findOut(from, to int) int {
	for i, e := range g.outEdges[from] {
		if e.To == to {
			return i
		}
	}
	return -1
}

func (g *Graph) findIn(to, from int) int {
	for i, e := range g.inEdges[to] {
		if e.From == from {
			return i
		}
	}
	return -1
}

// removeAt deletes the element at idx, preserving the order of the rest.
func removeAt(s []Edge, idx int) []Edge {
	copy(s[idx:], s[idx+1:])
	return s[:len(s)-1]
}
