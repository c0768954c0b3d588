package graph

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cadra/cadra/internal/adschema"
	"github.com/cadra/cadra/pkg/models"
)

// Neo4jStore implements GraphStore over a BloodHound-style Neo4j graph,
// grounded on the single direct-paths query the Python original issues:
// MATCH p=(n:User {name: $name})-[r]->() RETURN p.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
	config GraphConfig
}

// NewNeo4jStore opens a driver against config and verifies connectivity
// before returning. A failed connectivity probe is reported to the caller
// as a fatal graph-connectivity error.
func NewNeo4jStore(ctx context.Context, config GraphConfig) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(config.URI, neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("graph: failed to create neo4j driver: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, config.ConnTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(probeCtx); err != nil {
		return nil, fmt.Errorf("graph: failed to verify neo4j connectivity: %w", err)
	}

	return &Neo4jStore{driver: driver, config: config}, nil
}

func (s *Neo4jStore) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// FindUser runs `MATCH (n:User {name: $name}) RETURN n LIMIT 1`.
func (s *Neo4jStore) FindUser(ctx context.Context, name string) (*models.Node, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (n:User {name: $name}) RETURN n LIMIT 1", map[string]interface{}{"name": name})
	if err != nil {
		return nil, fmt.Errorf("graph: find user query failed: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		// No matching record is a data-anomaly, not a fatal error: the
		// caller logs and treats it as "principal not found".
		return nil, nil
	}

	raw, ok := record.Values[0].(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("graph: unexpected record shape for user %q", name)
	}
	return nodeFromRecord(raw), nil
}

// OutboundPaths runs `MATCH p=(n:User {name: $name})-[r]->() RETURN p`.
func (s *Neo4jStore) OutboundPaths(ctx context.Context, name string) ([]models.Path, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH p=(n:User {name: $name})-[r]->() RETURN p", map[string]interface{}{"name": name})
	if err != nil {
		return nil, fmt.Errorf("graph: outbound paths query failed: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("graph: failed to collect outbound paths: %w", err)
	}

	var principal *models.Node
	var paths []models.Path
	for _, record := range records {
		raw, ok := record.Values[0].(neo4j.Path)
		if !ok || len(raw.Relationships) == 0 {
			log.Printf("graph: skipping malformed path record for %q", name)
			continue
		}

		startNode := nodeFromRecord(raw.Nodes[0])
		endNode := nodeFromRecord(raw.Nodes[len(raw.Nodes)-1])
		rel := raw.Relationships[0]

		if !startNode.IsUser() {
			log.Printf("graph: path for %q does not start with a User node, skipping", name)
			continue
		}

		if principal == nil {
			principal = startNode
		} else if principal.ID != startNode.ID {
			log.Printf("graph: inconsistent start user across paths for %q, skipping record", name)
			continue
		}

		edge := models.Edge{
			ID:      fmt.Sprintf("%d", rel.Id),
			Type:    models.EdgeType(rel.Type),
			StartID: startNode.ID,
			EndID:   endNode.ID,
		}
		path := models.Path{Edge: edge, Start: principal, End: endNode}
		if !path.Valid() {
			log.Printf("graph: path validation failed for %q, relationship %s, skipping", name, rel.Type)
			continue
		}

		if edge.Type == models.EdgeMemberOf {
			if sam, ok := endNode.RawProperty("samaccountname"); ok {
				if samStr, ok := sam.(string); ok {
					principal.AddMemberOf(samStr)
				}
			}
		}
		principal.AddObservedEdge(edge.Type)

		paths = append(paths, path)
	}

	return paths, nil
}

// nodeFromRecord maps a raw Neo4j node into a models.Node, deriving UAC
// flags and User extras when the node carries the User label.
func nodeFromRecord(raw neo4j.Node) *models.Node {
	nodeType := models.NodeTypeFromLabels(raw.Labels)
	if nodeType != models.NodeTypeUser {
		return models.NewNode(elementID(raw), nodeType, raw.Props)
	}
	flags := adschema.DeriveUACFlags(lowerKeys(raw.Props))
	return models.NewUser(elementID(raw), raw.Props, flags)
}

func elementID(raw neo4j.Node) string {
	if raw.ElementId != "" {
		return raw.ElementId
	}
	return fmt.Sprintf("%d", raw.Id)
}

func lowerKeys(props map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(props))
	for k, v := range props {
		out[strings.ToLower(k)] = v
	}
	return out
}
