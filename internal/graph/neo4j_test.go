package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

// Neo4jStore itself talks to a live driver and is exercised by integration
// testing against a running Neo4j instance, not here. These tests cover the
// pure-function helpers it relies on, in isolation from any driver.

func TestElementID_PrefersElementId(t *testing.T) {
	raw := neo4j.Node{ElementId: "4:abc:123", Id: 99}
	assert.Equal(t, "4:abc:123", elementID(raw))
}

func TestElementID_FallsBackToLegacyId(t *testing.T) {
	raw := neo4j.Node{Id: 42}
	assert.Equal(t, "42", elementID(raw))
}

func TestLowerKeys(t *testing.T) {
	props := map[string]interface{}{
		"Enabled":        true,
		"SAMAccountName": "alice",
		"domain":         "CORP.LOCAL",
	}
	out := lowerKeys(props)
	assert.Equal(t, true, out["enabled"])
	assert.Equal(t, "alice", out["samaccountname"])
	assert.Equal(t, "CORP.LOCAL", out["domain"])
	assert.Len(t, out, 3)
}

func TestNodeFromRecord_NonUserLabelSkipsUACDerivation(t *testing.T) {
	raw := neo4j.Node{ElementId: "1", Labels: []string{"Computer"}, Props: map[string]interface{}{"name": "dc01"}}
	n := nodeFromRecord(raw)
	assert.False(t, n.IsUser())
	assert.Equal(t, "dc01", n.Name)
}

func TestNodeFromRecord_UserLabelDerivesExtras(t *testing.T) {
	raw := neo4j.Node{
		ElementId: "2",
		Labels:    []string{"User"},
		Props: map[string]interface{}{
			"name":    "alice",
			"enabled": true,
		},
	}
	n := nodeFromRecord(raw)
	assert.True(t, n.IsUser())
	assert.NotNil(t, n.UserExtras.UACFlags)
}
