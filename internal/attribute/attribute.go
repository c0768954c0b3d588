// Package attribute turns a node's matched rules into an ADASS metric
// vector and computes the resulting severity score.
package attribute

import (
	"fmt"
	"log"
	"strings"

	"github.com/cadra/cadra/internal/adass"
	"github.com/cadra/cadra/internal/ruleengine"
	"github.com/cadra/cadra/pkg/models"
)

var highCIARules = map[string]bool{"Tier Zero Object": true}
var lowCIARules = map[string]bool{"Service Account": true}

// Assess evaluates every loaded rule against node, folds the S/AC/PR
// matches into a metric map (last writer wins, warned on conflicting
// overwrite), appends the C/I/A bindings from the high/low rule-name
// lists, and feeds the joined vector to the ADASS calculator.
func Assess(node *models.Node, engine *ruleengine.Engine) float64 {
	matching := engine.GetMatchingRules(node)

	metrics := make(map[models.MetricKey]string)
	var names []string
	for _, rule := range matching {
		names = append(names, rule.RuleName)
		switch rule.Metric {
		case models.MetricS, models.MetricAC, models.MetricPR:
			if existing, ok := metrics[rule.Metric]; ok && existing != rule.Value {
				log.Printf("attribute: overwriting ADASS metric %s from %s to %s", rule.Metric, existing, rule.Value)
			}
			metrics[rule.Metric] = rule.Value
		}
	}

	parts := vectorParts(metrics)
	parts = append(parts, ciaBinding(names, "C", "L"))
	parts = append(parts, ciaBinding(names, "I", "L"))
	parts = append(parts, ciaBinding(names, "A", "N"))

	vector := strings.Join(parts, "/")
	return adass.Calculate(vector)
}

func vectorParts(metrics map[models.MetricKey]string) []string {
	order := []models.MetricKey{models.MetricS, models.MetricAC, models.MetricPR}
	var parts []string
	for _, k := range order {
		if v, ok := metrics[k]; ok {
			parts = append(parts, fmt.Sprintf("%s:%s", k, v))
		}
	}
	return parts
}

func ciaBinding(matchedNames []string, metric, defaultValue string) string {
	has := func(set map[string]bool) bool {
		for _, n := range matchedNames {
			if set[n] {
				return true
			}
		}
		return false
	}
	switch {
	case has(highCIARules):
		return fmt.Sprintf("%s:H", metric)
	case has(lowCIARules):
		return fmt.Sprintf("%s:L", metric)
	default:
		return fmt.Sprintf("%s:%s", metric, defaultValue)
	}
}
