// Package adschema is the thin schema adapter between the raw BloodHound
// property bag pulled off the graph and the typed properties the rule
// engine compares against: UAC flag derivation, node-type labeling, and
// the generic/principal property fallback tables.
package adschema

import (
	"strings"

	"github.com/cadra/cadra/pkg/models"
)

// GenericProperties are the per-type defaults consulted when a property is
// absent from a node's raw bag and the node is not a User (or the property
// is not a User-extended one). Values mirror BloodHound's common
// collection schema; the retrieval pack's original "generic-properties"
// table was not available, so these are the conventional BloodHound
// defaults for an unset property of that name.
var GenericProperties = map[string]interface{}{
	"description":  "",
	"highvalue":    false,
	"admincount":   false,
	"distinguishedname": "",
	"domain":       "",
	"domainsid":    "",
	"isaclprotected": false,
	"whencreated":  0,
}

// PrincipalProperties are the User-extended defaults, consulted only for
// User nodes and only after GenericProperties misses.
var PrincipalProperties = map[string]interface{}{
	"enabled":                 true,
	"sensitive":               false,
	"passwordnotreqd":         false,
	"pwdneverexpires":         false,
	"unconstraineddelegation": false,
	"dontreqpreauth":          false,
	"trustedtoauth":           false,
	"lastlogon":               0,
	"pwdlastset":              0,
	"samaccountname":          "",
}

// uacDerivation is the closed boolean-property -> UAC-flag mapping.
var uacDerivation = []struct {
	property     string
	triggerValue bool
	flag         models.UACFlag
}{
	{"enabled", false, models.UACAccountDisable},
	{"passwordnotreqd", true, models.UACPasswdNotreqd},
	{"pwdneverexpires", true, models.UACDontExpirePasswd},
	{"unconstraineddelegation", true, models.UACTrustedForDelegation},
	{"sensitive", true, models.UACNotDelegated},
	{"dontreqpreauth", true, models.UACDontRequirePreauth},
	{"trustedtoauth", true, models.UACTrustedToAuthForDelegation},
}

// DeriveUACFlags applies the closed derivation mapping to a raw (already
// lower-cased key) property bag.
func DeriveUACFlags(props map[string]interface{}) map[models.UACFlag]bool {
	flags := make(map[models.UACFlag]bool)
	for _, d := range uacDerivation {
		v, ok := props[d.property]
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			continue
		}
		if b == d.triggerValue {
			flags[d.flag] = true
		}
	}
	return flags
}

// ResolveProperty implements the property lookup a CriterionClause's
// Property field goes through. For a User node, a UAC-flag name and the
// "memberof"/"edges" virtual properties are checked first, since they are
// derived state that never lives in the raw property bag. Everything else
// follows the three-tier fallback: raw bag, then GenericProperties, then
// (User only) PrincipalProperties. The second return value is false only
// when every tier misses — the caller treats that as the criterion's
// "missing property" signal and evaluates to Unknown rather than false.
func ResolveProperty(node *models.Node, property string) (interface{}, bool) {
	if node == nil {
		return nil, false
	}
	lower := strings.ToLower(property)
	upper := strings.ToUpper(property)

	if node.IsUser() {
		if models.IsKnownUACFlag(upper) {
			return node.UserExtras.UACFlags[models.UACFlag(upper)], true
		}
		switch lower {
		case "memberof":
			return node.UserExtras.MemberOf, true
		case "edges":
			return edgeTypesToStrings(node.UserExtras.Edges), true
		}
	}

	if v, ok := node.RawProperty(lower); ok {
		return v, true
	}
	if v, ok := GenericProperties[lower]; ok {
		return v, true
	}
	if node.IsUser() {
		if v, ok := PrincipalProperties[lower]; ok {
			return v, true
		}
	}
	return nil, false
}

func edgeTypesToStrings(edges []models.EdgeType) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = string(e)
	}
	return out
}
