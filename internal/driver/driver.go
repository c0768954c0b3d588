// Package driver orchestrates the single top-to-bottom CADRA pass over
// already-loaded rules: fetch a principal and its outbound paths, compute
// the ADASS score, and (if there are outbound paths) the permission risk.
package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/cadra/cadra/internal/attribute"
	"github.com/cadra/cadra/internal/graph"
	"github.com/cadra/cadra/internal/permission"
	"github.com/cadra/cadra/internal/ruleengine"
	"github.com/cadra/cadra/pkg/models"
)

// Report is the final output of one run: the ADASS score is always
// present; PermissionRisk is only populated when the principal has
// outbound paths with at least one matching permission rule.
type Report struct {
	RunID          string
	Principal      string
	ADASSScore     float64
	HasPermission  bool
	PermissionRisk permission.Assessment
}

// String renders a human-readable summary of the report.
func (r *Report) String() string {
	if !r.HasPermission {
		return fmt.Sprintf("principal=%s adass_score=%.1f permission_risk=none", r.Principal, r.ADASSScore)
	}
	return fmt.Sprintf("principal=%s adass_score=%.1f permission_risk=%d (likelihood=%d impact=%d)",
		r.Principal, r.ADASSScore, r.PermissionRisk.Risk, int(r.PermissionRisk.Likelihood), int(r.PermissionRisk.Impact))
}

// Driver wires the graph store and rule engines together for one run.
type Driver struct {
	Store                 graph.GraphStore
	AttributeEngine        *ruleengine.Engine
	PermissionRules        map[models.EdgeType]models.PermissionRule
	EventMonitoring        map[int]bool
}

// New constructs a Driver. Callers load rules via
// AttributeEngine.LoadRulesFromDirectory and permission.LoadRulesFromDirectory
// before calling Run.
func New(store graph.GraphStore, attributeEngine *ruleengine.Engine, permissionRules map[models.EdgeType]models.PermissionRule, eventMonitoring map[int]bool) *Driver {
	return &Driver{
		Store:           store,
		AttributeEngine: attributeEngine,
		PermissionRules: permissionRules,
		EventMonitoring: eventMonitoring,
	}
}

// Run fetches the named principal and its outbound paths, scores both, and
// returns the resulting report. A missing principal is reported as an
// error the caller should treat as a data anomaly: non-fatal if other
// principals remain to process, but in CADRA's single-principal CLI this
// is the only principal, so the caller exits non-zero with no score.
func (d *Driver) Run(ctx context.Context, principalName string) (*Report, error) {
	runID := uuid.New().String()
	log.Printf("[%s] starting assessment for principal %q", runID, principalName)

	principal, err := d.Store.FindUser(ctx, principalName)
	if err != nil {
		return nil, fmt.Errorf("driver: failed to fetch principal %q: %w", principalName, err)
	}
	if principal == nil {
		return nil, fmt.Errorf("driver: principal %q not found", principalName)
	}

	paths, err := d.Store.OutboundPaths(ctx, principalName)
	if err != nil {
		log.Printf("[%s] failed to fetch outbound paths for %q: %v", runID, principalName, err)
		paths = nil
	}

	// OutboundPaths fills memberof and the observed edge types on its own
	// copy of the principal; score that copy so those properties resolve.
	if len(paths) > 0 && paths[0].Start != nil && paths[0].Start.ID == principal.ID {
		principal = paths[0].Start
	}

	view, err := models.NewPrincipalView(principal, paths)
	if err != nil {
		log.Printf("[%s] inconsistent principal view for %q: %v", runID, principalName, err)
		view = &models.PrincipalView{Principal: principal}
	}

	adassScore := attribute.Assess(view.Principal, d.AttributeEngine)
	log.Printf("[%s] ADASS score for %q: %.1f", runID, principalName, adassScore)

	report := &Report{
		RunID:      runID,
		Principal:  principalName,
		ADASSScore: adassScore,
	}

	if len(view.Paths) > 0 {
		assessment := permission.Assess(view.Paths, d.PermissionRules, d.AttributeEngine, adassScore, d.EventMonitoring)
		report.HasPermission = assessment.Risk > 0
		report.PermissionRisk = assessment
		log.Printf("[%s] permission risk for %q: %v", runID, principalName, assessment.Risk)
	} else {
		log.Printf("[%s] %q has no outbound paths, reporting ADASS only", runID, principalName)
	}

	return report, nil
}
