package models

import "fmt"

// PrincipalView is the full one-hop neighborhood CADRA assesses for a
// single run: the principal itself plus every outbound path leaving it.
// Paths whose Start does not match Principal indicate a query or mapping
// bug upstream and are rejected by NewPrincipalView rather than silently
// assessed.
type PrincipalView struct {
	Principal *Node
	Paths     []Path
}

// NewPrincipalView builds a PrincipalView, verifying the start-node-identity
// invariant: every path must originate at principal.
func NewPrincipalView(principal *Node, paths []Path) (*PrincipalView, error) {
	if principal == nil {
		return nil, fmt.Errorf("models: principal node is nil")
	}
	for i, p := range paths {
		if p.Start == nil || p.Start.ID != principal.ID {
			return nil, fmt.Errorf("models: path %d does not originate at principal %s", i, principal.ID)
		}
	}
	return &PrincipalView{Principal: principal, Paths: paths}, nil
}

// EdgeTypes returns the distinct set of edge types observed across Paths.
func (v *PrincipalView) EdgeTypes() []EdgeType {
	seen := make(map[EdgeType]struct{})
	var out []EdgeType
	for _, p := range v.Paths {
		if _, ok := seen[p.Edge.Type]; ok {
			continue
		}
		seen[p.Edge.Type] = struct{}{}
		out = append(out, p.Edge.Type)
	}
	return out
}
