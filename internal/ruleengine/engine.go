// Package ruleengine loads declarative attribute rules and evaluates them
// against graph nodes using the comparison operator algebra in
// internal/compare.
package ruleengine

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cadra/cadra/internal/adschema"
	"github.com/cadra/cadra/internal/compare"
	"github.com/cadra/cadra/pkg/models"
)

// EvaluationResult is the outcome of evaluating one rule against one node.
type EvaluationResult struct {
	RuleName          string
	Metric            models.MetricKey
	Value             string
	PrerequisitesMet  bool
	CriteriaMet       bool
	Matches           bool
}

// Engine holds the loaded rule set and a per-run, node-keyed evaluation
// cache. Structurally grounded on the teacher's PolicyEngine: a
// sync.RWMutex-guarded slice of compiled policies plus a cache keyed by
// subject id, generalized here from "one condition list per policy" to
// CADRA's two-tier prerequisite/criteria reduction.
type Engine struct {
	mu       sync.RWMutex
	rules    []models.Rule
	evalCache map[string][]EvaluationResult
}

// New returns an empty Engine; call LoadRulesFromDirectory before use.
func New() *Engine {
	return &Engine{
		evalCache: make(map[string][]EvaluationResult),
	}
}

// LoadRulesFromDirectory scans dir for *.json rule files. A missing
// directory is fatal (returned as an error the caller should treat as a
// configuration failure); a malformed individual file is logged and
// skipped.
func (e *Engine) LoadRulesFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("ruleengine: rules directory not found: %w", err)
	}

	var loaded []models.Rule
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("ruleengine: error reading rule file %s: %v", path, err)
			continue
		}
		var rule models.Rule
		if err := json.Unmarshal(data, &rule); err != nil {
			log.Printf("ruleengine: error loading rule from %s: %v", path, err)
			continue
		}
		loaded = append(loaded, rule)
	}

	e.mu.Lock()
	e.rules = loaded
	e.evalCache = make(map[string][]EvaluationResult)
	e.mu.Unlock()

	log.Printf("ruleengine: loaded %d rules from %s", len(loaded), dir)
	return nil
}

// checkClause evaluates a single CriterionClause against node, resolving
// Property through adschema's fallback chain. A missing property yields
// the criterion's "unknown" outcome, which both the ALL and ANY reductions
// treat as false.
func checkClause(clause models.CriterionClause, node *models.Node) bool {
	value, found := adschema.ResolveProperty(node, clause.Property)
	if !found {
		log.Printf("ruleengine: property %q missing on node %s, criterion unknown", clause.Property, node.ID)
		return false
	}
	outcome, err := compare.Compare(clause.Operator, value, clause.Value)
	if err != nil {
		log.Printf("ruleengine: error evaluating criterion %+v: %v", clause, err)
		return false
	}
	return outcome == compare.Matched
}

// anyClause reduces a CriterionGroup by disjunction.
func anyClause(group models.CriterionGroup, node *models.Node) bool {
	for _, clause := range group {
		if checkClause(clause, node) {
			return true
		}
	}
	return false
}

// EvaluateRule evaluates a single rule against node, per the spec's
// prerequisite/criteria reduction: prerequisites reduce by ALL, criteria
// reduce by ANY, and criteria are only checked once prerequisites hold.
func EvaluateRule(rule models.Rule, node *models.Node) EvaluationResult {
	result := EvaluationResult{
		RuleName: rule.Name,
		Metric:   rule.Metric,
		Value:    rule.Value,
	}

	if len(rule.PrerequisiteCriteria) == 0 {
		result.PrerequisitesMet = true
	} else {
		result.PrerequisitesMet = true
		for _, group := range rule.PrerequisiteCriteria {
			if !anyClause(group, node) {
				result.PrerequisitesMet = false
				break
			}
		}
	}

	if result.PrerequisitesMet {
		result.CriteriaMet = false
		for _, group := range rule.Criteria {
			if anyClause(group, node) {
				result.CriteriaMet = true
				break
			}
		}
	}

	result.Matches = result.PrerequisitesMet && result.CriteriaMet
	return result
}

// EvaluateAll runs every loaded rule against node. If force is false and a
// cache entry already exists for node.ID, the cached results are reused;
// force=true always rebuilds the entry. Permission impact assessment calls
// this with force=true per the cache-bypass the spec requires for
// re-evaluating an end-node.
func (e *Engine) EvaluateAll(node *models.Node, force bool) []EvaluationResult {
	e.mu.RLock()
	cached, ok := e.evalCache[node.ID]
	rules := e.rules
	e.mu.RUnlock()

	if ok && !force {
		return cached
	}

	results := make([]EvaluationResult, 0, len(rules))
	for _, rule := range rules {
		results = append(results, EvaluateRule(rule, node))
	}

	e.mu.Lock()
	e.evalCache[node.ID] = results
	e.mu.Unlock()

	return results
}

// GetMatchingRules returns the subset of EvaluateAll's results whose
// Matches is true, using the cache on a hit.
func (e *Engine) GetMatchingRules(node *models.Node) []EvaluationResult {
	all := e.EvaluateAll(node, false)
	var matching []EvaluationResult
	for _, r := range all {
		if r.Matches {
			matching = append(matching, r)
		}
	}
	return matching
}
