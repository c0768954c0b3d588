// Package graph is the one external collaborator CADRA's core reasons
// about only through an interface: a read-only adapter over a
// BloodHound-style property graph.
package graph

import (
	"context"
	"time"

	"github.com/cadra/cadra/pkg/models"
)

// GraphStore is the graph-reader contract the core depends on. Both
// read operations are single-shot: CADRA never writes back to the graph
// and never traverses beyond one hop.
type GraphStore interface {
	// FindUser returns the principal node for name, or nil if no such
	// user exists.
	FindUser(ctx context.Context, name string) (*models.Node, error)

	// OutboundPaths returns every one-hop outbound relationship from the
	// principal named name: each path's start node, relationship, and end
	// node, all with labels and property bags populated.
	OutboundPaths(ctx context.Context, name string) ([]models.Path, error)

	// Ping verifies connectivity to the backing store.
	Ping(ctx context.Context) error

	// Close releases the underlying driver resources.
	Close(ctx context.Context) error
}

// GraphConfig holds the connection parameters read from config.json.
type GraphConfig struct {
	URI         string
	Username    string
	Password    string
	ConnTimeout time.Duration
}

// DefaultGraphConfig returns a GraphConfig holding only the
// connectivity-probe timeout CADRA applies; config.json has no setting
// that changes it.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{
		ConnTimeout: 10 * time.Second,
	}
}
