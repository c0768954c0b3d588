// Package permission scores an outbound AD edge by combining an ADASS
// attribute score (as threat initiation), per-relationship-type likelihood
// parameters, event monitoring coverage, and an impact tier derived from
// re-evaluating the rule engine on the edge's end node.
package permission

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cadra/cadra/internal/ruleengine"
	"github.com/cadra/cadra/pkg/models"
)

// Bucket is the shared qualitative risk scale used for both likelihood
// and the final likelihood x impact product.
type Bucket int

const (
	VeryLow  Bucket = 1
	Low      Bucket = 2
	Medium   Bucket = 3
	High     Bucket = 4
	VeryHigh Bucket = 5
)

var tierZeroRule = "Tier Zero Object"
var tierOneRule = "Tier One Object"
var privilegedOrServiceRules = map[string]bool{"Privileged Account": true, "Service Account": true}

// Assessment is the scored outcome for the worst path.
type Assessment struct {
	Path       models.Path
	Likelihood float64
	Impact     Bucket
	Risk       Bucket
}

// Assess scores every path in paths against rules keyed by edge type and
// returns the worst assessment: the path with the highest likelihood
// bucket, ties broken by the higher impact tier. A path whose edge type has
// no rule table entry is skipped with a warning. If no path is assessable,
// the zero value (Risk 0) is returned.
func Assess(
	paths []models.Path,
	rules map[models.EdgeType]models.PermissionRule,
	attributeEngine *ruleengine.Engine,
	adassScore float64,
	eventMonitoring map[int]bool,
) Assessment {
	var best Assessment
	var haveBest bool
	var bestRawLikelihood float64
	var bestRawImpact int

	for _, path := range paths {
		rule, ok := rules[path.Edge.Type]
		if !ok {
			log.Printf("permission: no matching permission assessment rule for relationship type %q", path.Edge.Type)
			continue
		}

		rawLikelihood := likelihood(rule, adassScore, eventMonitoring)
		rawImpact := impactTier(path.End, rule, attributeEngine)
		bucket := semiQualitativeToBucket(rawLikelihood)
		bestBucket := semiQualitativeToBucket(bestRawLikelihood)

		if !haveBest || bucket > bestBucket || (bucket == bestBucket && rawImpact > bestRawImpact) {
			best = Assessment{Path: path}
			bestRawLikelihood = rawLikelihood
			bestRawImpact = rawImpact
			haveBest = true
		}
	}

	if !haveBest {
		log.Printf("permission: no paths with assessable permissions found")
		return Assessment{}
	}

	likelihoodBucket := semiQualitativeToBucket(bestRawLikelihood)
	risk := int(likelihoodBucket) * bestRawImpact
	riskBucket := semiQualitativeToBucket(float64(risk))

	best.Likelihood = float64(likelihoodBucket)
	best.Impact = Bucket(bestRawImpact)
	best.Risk = riskBucket
	return best
}

func threatInitiation(adassScore float64) int {
	switch {
	case adassScore >= 9:
		return 5
	case adassScore >= 7:
		return 4
	case adassScore >= 4:
		return 3
	case adassScore > 0:
		return 2
	default:
		return 1
	}
}

// likelihood implements threat_initiation * threat_occurrence +
// predisposing, where predisposing is negated exactly once if any of the
// rule's monitored events appears in eventMonitoring with value true.
// Only the first matching monitored event flips the sign.
func likelihood(rule models.PermissionRule, adassScore float64, eventMonitoring map[int]bool) float64 {
	predisposing := rule.PredisposingConditions
	flipped := false
	for _, eventID := range rule.Events {
		if flipped {
			break
		}
		if monitored, ok := eventMonitoring[eventID]; ok && monitored {
			predisposing = -predisposing
			flipped = true
		}
	}

	init := threatInitiation(adassScore)
	return float64(init*rule.ThreatOccurrence + predisposing)
}

// impactTier re-evaluates every attribute rule against endNode (bypassing
// the rule engine's cache), then checks Tier Zero, Tier One, and
// Privileged/Service in order — each tier fully, regardless of
// Traversable — before falling back to Low (traversable) or Very Low
// (non-traversable).
func impactTier(endNode *models.Node, rule models.PermissionRule, engine *ruleengine.Engine) int {
	engine.EvaluateAll(endNode, true)
	matching := engine.GetMatchingRules(endNode)

	matchedNames := make(map[string]bool, len(matching))
	for _, r := range matching {
		matchedNames[r.RuleName] = true
	}

	tier := func(dez int) int {
		if rule.Traversable {
			return dez
		}
		return int(VeryLow)
	}

	if matchedNames[tierZeroRule] {
		return tier(int(VeryHigh))
	}
	if matchedNames[tierOneRule] {
		return tier(int(High))
	}
	for name := range privilegedOrServiceRules {
		if matchedNames[name] {
			return tier(int(Medium))
		}
	}
	if rule.Traversable {
		return int(Low)
	}
	return int(VeryLow)
}

func semiQualitativeToBucket(value float64) Bucket {
	switch {
	case value >= 20:
		return VeryHigh
	case value >= 15:
		return High
	case value >= 10:
		return Medium
	case value >= 5:
		return Low
	default:
		return VeryLow
	}
}

// LoadRulesFromDirectory scans dir for *.json permission rules, keyed by
// relationship type. A missing directory is fatal; a malformed file is
// logged and skipped.
func LoadRulesFromDirectory(dir string) (map[models.EdgeType]models.PermissionRule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("permission: rules directory not found: %w", err)
	}

	out := make(map[models.EdgeType]models.PermissionRule)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("permission: error reading rule file %s: %v", path, err)
			continue
		}
		var rule models.PermissionRule
		if err := json.Unmarshal(data, &rule); err != nil {
			log.Printf("permission: error loading rule from %s: %v", path, err)
			continue
		}
		out[rule.Name] = rule
	}
	log.Printf("permission: loaded %d permission rules from %s", len(out), dir)
	return out, nil
}
