package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cadra/cadra/internal/ruleengine"
	"github.com/cadra/cadra/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	user  *models.Node
	paths []models.Path
	err   error
}

func (f *fakeStore) FindUser(ctx context.Context, name string) (*models.Node, error) {
	return f.user, f.err
}
func (f *fakeStore) OutboundPaths(ctx context.Context, name string) ([]models.Path, error) {
	return f.paths, nil
}
func (f *fakeStore) Ping(ctx context.Context) error        { return nil }
func (f *fakeStore) Close(ctx context.Context) error       { return nil }

func writeRule(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRun_MissingPrincipalIsError(t *testing.T) {
	dir := t.TempDir()
	engine := ruleengine.New()
	require.NoError(t, engine.LoadRulesFromDirectory(dir))

	d := New(&fakeStore{user: nil}, engine, nil, nil)
	_, err := d.Run(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestRun_NoOutboundPathsReportsADASSOnly(t *testing.T) {
	dir := t.TempDir()
	engine := ruleengine.New()
	require.NoError(t, engine.LoadRulesFromDirectory(dir))

	user := models.NewUser("u1", map[string]interface{}{"name": "alice"}, nil)
	d := New(&fakeStore{user: user}, engine, nil, nil)

	report, err := d.Run(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, report.HasPermission)
	assert.GreaterOrEqual(t, report.ADASSScore, 0.0)
}

func TestRun_WithOutboundPathsScoresPermission(t *testing.T) {
	dir := t.TempDir()
	writeRule(t, dir, "tierzero.json", `{
		"Name": "Tier Zero Object",
		"Metric": "PR",
		"Value": "H",
		"Criteria": { "name": { "Property": "name", "Operator": "==", "Value": "dc01" } }
	}`)
	engine := ruleengine.New()
	require.NoError(t, engine.LoadRulesFromDirectory(dir))

	user := models.NewUser("u1", map[string]interface{}{"name": "alice"}, nil)
	target := models.NewNode("n2", models.NodeTypeComputer, map[string]interface{}{"name": "dc01"})
	path := models.Path{
		Edge:  models.Edge{Type: models.EdgeGenericAll, StartID: "u1", EndID: "n2"},
		Start: user,
		End:   target,
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

	d := New(&fakeStore{user: user, paths: []models.Path{path}}, engine, rules, map[int]bool{4624: true})
	report, err := d.Run(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, report.HasPermission)
	assert.Greater(t, int(report.PermissionRisk.Risk), 0)
}
