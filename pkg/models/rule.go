package models

import (
	"encoding/json"
	"fmt"
)

// CriterionClause is a single {Property, Operator, Value} test evaluated
// against a node via internal/compare.
type CriterionClause struct {
	Property string      `json:"Property"`
	Operator string      `json:"Operator"`
	Value    interface{} `json:"Value"`
}

// CriterionGroup is one top-level entry of a Criteria or Prerequisite
// Criteria map. The JSON value is either a single clause object or an
// array of clause objects; either shape unmarshals into the same slice so
// callers never need to branch on shape.
type CriterionGroup []CriterionClause

// UnmarshalJSON accepts both `{...}` and `[{...}, {...}]`.
func (g *CriterionGroup) UnmarshalJSON(data []byte) error {
	var first byte
	for _, b := range data {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		first = b
		break
	}
	if first == '[' {
		var clauses []CriterionClause
		if err := json.Unmarshal(data, &clauses); err != nil {
			return fmt.Errorf("models: criterion group array: %w", err)
		}
		*g = clauses
		return nil
	}
	var single CriterionClause
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("models: criterion group object: %w", err)
	}
	*g = CriterionGroup{single}
	return nil
}

// CriteriaMap is a free-label map of criterion groups, the shape shared by
// both a rule's "Criteria" and "Prerequisite Criteria" fields.
type CriteriaMap map[string]CriterionGroup

// Rule is one attribute rule loaded from the attribute rules directory.
type Rule struct {
	Name                  string      `json:"Name"`
	Metric                MetricKey   `json:"Metric"`
	Value                 string      `json:"Value"`
	PrerequisiteCriteria  CriteriaMap `json:"Prerequisite Criteria"`
	Criteria              CriteriaMap `json:"Criteria"`
}

// PermissionRule is one per-relationship-type rule loaded from the
// permission rules directory.
type PermissionRule struct {
	Name                   EdgeType `json:"Name"`
	Events                 []int    `json:"Events"`
	PredisposingConditions int      `json:"Predisposing Conditions"`
	ThreatOccurrence       int      `json:"Threat Occurrence"`
	Traversable            bool     `json:"Traversable"`
}
