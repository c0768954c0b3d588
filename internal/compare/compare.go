// Package compare implements the typed comparison operator algebra rules
// are built from: value coercion, the missing/unknown tri-state, and the
// full operator table.
package compare

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Outcome is the tri-state result of a comparison. Compare itself returns
// only Matched or Unmatched; Unknown is not produced in this package. A
// criterion whose property is absent from the node is handled by
// internal/ruleengine, which logs it as unknown and counts it as false in
// both the ALL and ANY reductions.
type Outcome int

const (
	Unmatched Outcome = iota
	Matched
	Unknown
)

var operators = map[string]struct{}{
	"==": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"in": {}, "not in": {}, "any": {}, "older_than": {}, "newer_than": {},
	"set": {}, "notset": {}, "startswith": {}, "endswith": {},
}

var durationPattern = regexp.MustCompile(`(\d+)\s*(year|years|month|months|day|days)`)

// Compare evaluates lhs <op> rhs. lhs is the node property value (nil if
// the property was missing); rhs is the rule's configured Value. A
// genuinely missing property is the caller's responsibility to detect
// before calling Compare — Compare itself only ever returns Matched or
// Unmatched, mirroring the Python original's boolean compare().
func Compare(op string, lhs, rhs interface{}) (Outcome, error) {
	if _, ok := operators[op]; !ok {
		return Unmatched, fmt.Errorf("compare: invalid operator %q", op)
	}

	if (lhs == nil || rhs == nil) && op != "==" && op != "!=" && op != "notset" {
		log.Printf("compare: nil operand for operator %q, treating as unmatched", op)
		return Unmatched, nil
	}

	result, err := evaluate(op, lhs, rhs)
	if err != nil {
		log.Printf("compare: comparison failed: %v %s %v: %v", lhs, op, rhs, err)
		return Unmatched, nil
	}
	if result {
		return Matched, nil
	}
	return Unmatched, nil
}

func evaluate(op string, lhs, rhs interface{}) (bool, error) {
	switch op {
	case "==", "!=":
		eq, err := equal(lhs, rhs)
		if err != nil {
			return false, err
		}
		if op == "==" {
			return eq, nil
		}
		return !eq, nil
	case "<", ">", "<=", ">=":
		l, err := toInt(lhs)
		if err != nil {
			return false, err
		}
		r, err := toInt(rhs)
		if err != nil {
			return false, err
		}
		switch op {
		case "<":
			return l < r, nil
		case ">":
			return l > r, nil
		case "<=":
			return l <= r, nil
		default:
			return l >= r, nil
		}
	case "in":
		return inAll(lhs, rhs)
	case "not in":
		matched, err := inAny(lhs, rhs)
		if err != nil {
			return false, err
		}
		return !matched, nil
	case "any":
		return inAny(lhs, rhs)
	case "older_than":
		ts, err := toEpoch(lhs)
		if err != nil {
			return false, err
		}
		dur, err := durationSeconds(rhs)
		if err != nil {
			return false, err
		}
		return ts < time.Now().Unix()-dur, nil
	case "newer_than":
		ts, err := toEpoch(lhs)
		if err != nil {
			return false, err
		}
		dur, err := durationSeconds(rhs)
		if err != nil {
			return false, err
		}
		return ts > time.Now().Unix()-dur, nil
	case "set":
		return isSet(lhs), nil
	case "notset":
		return isUnset(lhs) || isUnset(rhs), nil
	case "startswith":
		return strings.HasPrefix(toStr(lhs), toStr(rhs)), nil
	case "endswith":
		return strings.HasSuffix(toStr(lhs), toStr(rhs)), nil
	}
	return false, fmt.Errorf("unreachable operator %q", op)
}

func equal(lhs, rhs interface{}) (bool, error) {
	switch v := lhs.(type) {
	case bool:
		r, err := toBool(rhs)
		if err != nil {
			return false, err
		}
		return v == r, nil
	case int:
		r, err := toInt(rhs)
		if err != nil {
			return false, err
		}
		return v == r, nil
	case int64:
		r, err := toInt(rhs)
		if err != nil {
			return false, err
		}
		return int64(r) == int64(v), nil
	default:
		return toStr(lhs) == toStr(rhs), nil
	}
}

func toStr(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			i, err := strconv.ParseInt(s[2:], 16, 64)
			if err != nil {
				return 0, fmt.Errorf("cannot convert %q to integer: %w", v, err)
			}
			return i, nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer: %w", v, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot convert %v (%T) to integer", v, v)
	}
}

func toEpoch(v interface{}) (int64, error) {
	return toInt(v)
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		lower := strings.ToLower(strings.TrimSpace(b))
		switch lower {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		default:
			return false, fmt.Errorf("cannot convert string %q to boolean", b)
		}
	default:
		return false, fmt.Errorf("cannot convert %v (%T) to boolean", v, v)
	}
}

func durationSeconds(v interface{}) (int64, error) {
	s := toStr(v)
	matches := durationPattern.FindAllStringSubmatch(s, -1)
	var total int64
	for _, m := range matches {
		amount, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(m[2], "year"):
			total += amount * 365 * 86400
		case strings.HasPrefix(m[2], "month"):
			total += amount * 30 * 86400
		case strings.HasPrefix(m[2], "day"):
			total += amount * 86400
		}
	}
	return total, nil
}

func asList(v interface{}) ([]interface{}, bool) {
	switch l := v.(type) {
	case []interface{}:
		return l, true
	case []string:
		out := make([]interface{}, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func listContains(list []interface{}, item interface{}) bool {
	for _, v := range list {
		eq, err := equal(v, item)
		if err == nil && eq {
			return true
		}
		if toStr(v) == toStr(item) {
			return true
		}
	}
	return false
}

// inAny implements the `any` operator: non-empty intersection for two
// lists, membership for a list against a string, and symmetric substring
// containment for two strings.
func inAny(lhs, rhs interface{}) (bool, error) {
	lList, lIsList := asList(lhs)
	rList, rIsList := asList(rhs)
	lStr, lIsStr := lhs.(string)
	rStr, rIsStr := rhs.(string)

	switch {
	case lIsList && rIsList:
		for _, item := range rList {
			if listContains(lList, item) {
				return true, nil
			}
		}
		return false, nil
	case lIsStr && rIsList:
		return listContains(rList, lStr), nil
	case lIsList && rIsStr:
		return listContains(lList, rStr), nil
	case lIsStr && rIsStr:
		return strings.Contains(rStr, lStr) || strings.Contains(lStr, rStr), nil
	default:
		return false, fmt.Errorf("invalid types for 'any' operator: %T, %T", lhs, rhs)
	}
}

// inAll implements the `in` operator: every element of rhs must appear in
// lhs's list. Against a list rhs with a string lhs, or a string rhs with a
// list lhs, it degrades to plain membership.
func inAll(lhs, rhs interface{}) (bool, error) {
	lList, lIsList := asList(lhs)
	rList, rIsList := asList(rhs)
	lStr, lIsStr := lhs.(string)
	rStr, rIsStr := rhs.(string)

	switch {
	case lIsList && rIsList:
		for _, item := range rList {
			if !listContains(lList, item) {
				return false, nil
			}
		}
		return true, nil
	case lIsStr && rIsList:
		return listContains(rList, lStr), nil
	case lIsList && rIsStr:
		return listContains(lList, rStr), nil
	default:
		return false, fmt.Errorf("invalid types for 'in' operator: %T, %T", lhs, rhs)
	}
}

func isSet(v interface{}) bool {
	if list, ok := asList(v); ok {
		return len(list) != 0
	}
	s := toStr(v)
	return s != "" && s != "null" && s != "None"
}

func isUnset(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	switch s {
	case "", "null", "None":
		return true
	default:
		return false
	}
}
