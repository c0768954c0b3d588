package models

// Path is a single outbound hop from a principal: the edge traversed and
// the node reached by traversing it. CADRA only ever looks at direct
// (one-hop) paths; multi-hop traversal is out of scope.
type Path struct {
	Edge  Edge
	Start *Node
	End   *Node
}

// Valid reports whether the path is internally consistent: the edge's
// start/end ids must match the Start/End nodes actually attached to it.
func (p Path) Valid() bool {
	if p.Start == nil || p.End == nil {
		return false
	}
	return p.Edge.StartID == p.Start.ID && p.Edge.EndID == p.End.ID
}
