package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExpandsEnvInPassword(t *testing.T) {
	t.Setenv("CADRA_NEO4J_PASSWORD", "s3cr3t")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"Neo4jConfig": {"uri": "bolt://localhost:7687", "user": "neo4j", "password": "${CADRA_NEO4J_PASSWORD}"},
		"attributes_rules_dir_path": "rules/attributes",
		"permissions_rules_dir_path": "rules/permissions",
		"event_monitoring": {"4624": true}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.Neo4jConfig.Password)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jConfig.URI)
}

func TestValidate_MissingRulesDirFails(t *testing.T) {
	cfg := &Config{
		Neo4jConfig:             Neo4jConfig{URI: "bolt://localhost:7687", User: "neo4j"},
		AttributesRulesDirPath:  "/does/not/exist",
		PermissionsRulesDirPath: "/also/missing",
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	attrDir := filepath.Join(dir, "attributes")
	permDir := filepath.Join(dir, "permissions")
	require.NoError(t, os.Mkdir(attrDir, 0o755))
	require.NoError(t, os.Mkdir(permDir, 0o755))

	cfg := &Config{
		Neo4jConfig:             Neo4jConfig{URI: "bolt://localhost:7687", User: "neo4j"},
		AttributesRulesDirPath:  attrDir,
		PermissionsRulesDirPath: permDir,
	}
	assert.NoError(t, cfg.Validate())
}

func TestEventMonitoringInts(t *testing.T) {
	cfg := &Config{EventMonitoring: map[string]bool{"4624": true, "bogus": false}}
	ints, invalid := cfg.EventMonitoringInts()
	assert.True(t, ints[4624])
	assert.Equal(t, []string{"bogus"}, invalid)
}
