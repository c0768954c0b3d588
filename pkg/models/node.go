// Package models holds the graph data model CADRA reasons over: nodes,
// edges, paths and rules, as read from a BloodHound-style property graph.
package models

import "strings"

// NodeType is the closed set of BloodHound node labels CADRA understands.
// Any label outside the set collapses to NodeTypeUnknown.
type NodeType string

const (
	NodeTypeCertTemplate NodeType = "CertTemplate"
	NodeTypeComputer     NodeType = "Computer"
	NodeTypeDomain       NodeType = "Domain"
	NodeTypeEnterpriseCA NodeType = "EnterpriseCA"
	NodeTypeGroup        NodeType = "Group"
	NodeTypeGPO          NodeType = "GPO"
	NodeTypeOU           NodeType = "OU"
	NodeTypeRootCA       NodeType = "RootCA"
	NodeTypeUser         NodeType = "User"
	NodeTypeUnknown      NodeType = "Unknown"
)

// knownNodeTypes lists every label that maps to something other than Unknown.
var knownNodeTypes = map[string]NodeType{
	string(NodeTypeCertTemplate): NodeTypeCertTemplate,
	string(NodeTypeComputer):     NodeTypeComputer,
	string(NodeTypeDomain):       NodeTypeDomain,
	string(NodeTypeEnterpriseCA): NodeTypeEnterpriseCA,
	string(NodeTypeGroup):        NodeTypeGroup,
	string(NodeTypeGPO):          NodeTypeGPO,
	string(NodeTypeOU):           NodeTypeOU,
	string(NodeTypeRootCA):       NodeTypeRootCA,
	string(NodeTypeUser):         NodeTypeUser,
}

// NodeTypeFromLabels picks the first graph label that matches a known
// BloodHound node type. Labels outside the closed set are ignored; a node
// carrying none of them is Unknown.
func NodeTypeFromLabels(labels []string) NodeType {
	for _, label := range labels {
		if nt, ok := knownNodeTypes[label]; ok {
			return nt
		}
	}
	return NodeTypeUnknown
}

// UserExtras carries the attributes that only make sense for a User-typed
// Node. Modeling it as an optional field on Node (rather than a User type
// that embeds Node) avoids a class hierarchy: any Node can be asked
// IsUser(), and the rule engine and comparison operators only ever deal in
// *Node.
type UserExtras struct {
	UACFlags map[UACFlag]bool
	MemberOf []string
	Edges    []EdgeType
}

// Node is a single vertex in the one-hop AD graph neighborhood: a stable
// id, a closed-vocabulary type, and a property bag. Property lookups that
// miss the raw bag are resolved elsewhere (see internal/adschema) via an
// ordered fallback chain; Node itself only stores what it was told.
type Node struct {
	ID         string
	Type       NodeType
	Name       string
	Properties map[string]interface{} // keys are lower-cased on insert
	UserExtras *UserExtras
}

// NewNode builds a Node from a raw (case-insensitive) property bag and
// infers Name from the conventional "name" property.
func NewNode(id string, nodeType NodeType, rawProperties map[string]interface{}) *Node {
	props := make(map[string]interface{}, len(rawProperties))
	for k, v := range rawProperties {
		props[strings.ToLower(k)] = v
	}
	name, _ := props["name"].(string)
	return &Node{
		ID:         id,
		Type:       nodeType,
		Name:       name,
		Properties: props,
	}
}

// NewUser builds a User-flavored Node: a User-typed Node plus derived
// UAC flags, an (initially empty) memberof list and observed-edge set.
func NewUser(id string, rawProperties map[string]interface{}, uacFlags map[UACFlag]bool) *Node {
	n := NewNode(id, NodeTypeUser, rawProperties)
	n.UserExtras = &UserExtras{
		UACFlags: uacFlags,
		MemberOf: []string{},
		Edges:    []EdgeType{},
	}
	return n
}

// IsUser reports whether this Node carries User-specific extras.
func (n *Node) IsUser() bool { return n != nil && n.UserExtras != nil }

// RawProperty looks up a property directly in the raw bag, case-insensitive.
func (n *Node) RawProperty(name string) (interface{}, bool) {
	if n == nil || n.Properties == nil {
		return nil, false
	}
	v, ok := n.Properties[strings.ToLower(name)]
	return v, ok
}

// AddObservedEdge records an outbound relationship type on a User node, if
// it has not already been observed. No-op on non-User nodes.
func (n *Node) AddObservedEdge(t EdgeType) {
	if !n.IsUser() {
		return
	}
	for _, e := range n.UserExtras.Edges {
		if e == t {
			return
		}
	}
	n.UserExtras.Edges = append(n.UserExtras.Edges, t)
}

// AddMemberOf appends a group sAMAccountName to a User's memberof list.
// No-op on non-User nodes.
func (n *Node) AddMemberOf(group string) {
	if !n.IsUser() {
		return
	}
	n.UserExtras.MemberOf = append(n.UserExtras.MemberOf, group)
}
