package permission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cadra/cadra/internal/ruleengine"
	"github.com/cadra/cadra/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess_WorkedExample(t *testing.T) {
	dir := t.TempDir()
	rulePath := filepath.Join(dir, "tierzero.json")
	rule := `{
		"Name": "Tier Zero Object",
		"Metric": "PR",
		"Value": "H",
		"Criteria": { "name": { "Property": "name", "Operator": "==", "Value": "dc01" } }
	}`
	require.NoError(t, os.WriteFile(rulePath, []byte(rule), 0o644))

	engine := ruleengine.New()
	require.NoError(t, engine.LoadRulesFromDirectory(dir))

	endNode := models.NewNode("n2", models.NodeTypeComputer, map[string]interface{}{"name": "dc01"})
	startNode := models.NewUser("u1", map[string]interface{}{"name": "alice"}, nil)

	path := models.Path{
		Edge:  models.Edge{Type: models.EdgeGenericAll, StartID: "u1", EndID: "n2"},
		Start: startNode,
		End:   endNode,
	}

	rules := map[models.EdgeType]models.PermissionRule{
		models.EdgeGenericAll: {
			Name:                   models.EdgeGenericAll,
			Events:                 []int{4624},
			PredisposingConditions: 3,
			ThreatOccurrence:       2,
			Traversable:            true,
		},
	}

	result := Assess([]models.Path{path}, rules, engine, 8.8, map[int]bool{4624: true})
	assert.Equal(t, Medium, result.Risk)
	assert.Equal(t, VeryHigh, result.Impact)
	assert.Equal(t, float64(Low), result.Likelihood)
}

func TestAssess_NoMatchingRuleTableEntry(t *testing.T) {
	dir := t.TempDir()
	engine := ruleengine.New()
	require.NoError(t, engine.LoadRulesFromDirectory(dir))

	path := models.Path{
		Edge:  models.Edge{Type: models.EdgeOwns, StartID: "u1", EndID: "n2"},
		Start: models.NewUser("u1", nil, nil),
		End:   models.NewNode("n2", models.NodeTypeComputer, nil),
	}

	result := Assess([]models.Path{path}, map[models.EdgeType]models.PermissionRule{}, engine, 5, nil)
	assert.Equal(t, Bucket(0), result.Risk)
}

func TestLikelihood_OnlyFirstMonitoredEventFlipsSign(t *testing.T) {
	rule := models.PermissionRule{
		Events:                 []int{1, 2},
		PredisposingConditions: 4,
		ThreatOccurrence:       1,
	}
	monitoring := map[int]bool{1: true, 2: true}
	got := likelihood(rule, 9.5, monitoring)
	assert.Equal(t, float64(5*1-4), got)
}
