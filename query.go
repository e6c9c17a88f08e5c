package gpath

import (
	"strconv"
	"strings"

	"github.com/tidwall/match"
)

// parsePredicate parses the body of a "#(...)" segment: a sub-path,
// optionally followed by one of the comparison/like operators and a
// literal. A predicate with no operator is an existence/truthiness check.
func parsePredicate(body string) predicate {
	op, opStart, opLen := findTopLevelOp(body)
	if op == "" {
		return predicate{subPath: strings.TrimSpace(body)}
	}
	sub := body[:opStart]
	lit := body[opStart+opLen:]
	p := predicate{subPath: sub, hasOp: true, op: op}
	p.literal, p.litKind, p.litFloat = parseLiteral(lit)
	return p
}

// findTopLevelOp locates the first comparison operator outside any nested
// parens, matching operators longest-first.
func findTopLevelOp(body string) (op string, start, length int) {
	depth := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '(' {
			depth++
			continue
		}
		if c == ')' {
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth != 0 {
			continue
		}
		if i+1 < len(body) {
			two := body[i : i+2]
			switch two {
			case "<=", ">=", "!=", "==", "!%":
				return two, i, 2
			}
		}
		switch c {
		case '=':
			return "=", i, 1
		case '<':
			return "<", i, 1
		case '>':
			return ">", i, 1
		case '%':
			return "%", i, 1
		}
	}
	return "", 0, 0
}

// parseLiteral strips the outer quotes from a string literal and classifies
// the literal's kind for comparison. Bare words (not quoted, not a number,
// not true/false/null) are treated as strings.
func parseLiteral(lit string) (text string, kind ValueType, f float64) {
	lit = strings.TrimSpace(lit)
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		return unescapeString([]byte(lit)), TypeString, 0
	}
	switch lit {
	case "true":
		return "true", TypeBoolean, 1
	case "false":
		return "false", TypeBoolean, 0
	case "null":
		return "null", TypeNull, 0
	}
	if n, err := strconv.ParseFloat(lit, 64); err == nil {
		return lit, TypeNumber, n
	}
	return lit, TypeString, 0
}

// queryMatches returns every element of cur (an array) whose predicate
// evaluation passes, in source order.
func queryMatches(cur Result, s segment) []Result {
	if cur.Type != TypeArray {
		return nil
	}
	var out []Result
	walkArray(cur.Raw, func(_ int, v Result) bool {
		if evalPredicate(v, s.query) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// evalQuery implements the terminal (non-broadcast) Query segment: the
// first match when queryAll is false, or the full matched array when true.
func evalQuery(cur Result, s segment) Result {
	matches := queryMatches(cur, s)
	if !s.queryAll {
		if len(matches) == 0 {
			return Result{}
		}
		return matches[0]
	}
	return collectArray(matches)
}

// collectArray concatenates a list of already-extracted values into a new
// owned JSON array, built from a pooled scratch buffer.
func collectArray(vals []Result) Result {
	buf := getScratch()
	buf = append(buf, '[')
	for i, v := range vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, v.Raw...)
	}
	buf = append(buf, ']')
	return ownResultAndRelease(buf)
}

// evalPredicate evaluates pred against a candidate array element.
func evalPredicate(elem Result, pred predicate) bool {
	candidate := elem
	if pred.subPath != "" {
		candidate = Get(elem.Raw, pred.subPath)
	}
	if !pred.hasOp {
		return candidate.Exists() && truthy(candidate)
	}
	switch pred.op {
	case "%":
		return match.Match(candidate.String(), pred.literal)
	case "!%":
		return !match.Match(candidate.String(), pred.literal)
	case "==", "=":
		return compareEqual(candidate, pred)
	case "!=":
		return !compareEqual(candidate, pred)
	case "<":
		return compareOrder(candidate, pred) < 0
	case "<=":
		return compareOrder(candidate, pred) <= 0
	case ">":
		return compareOrder(candidate, pred) > 0
	case ">=":
		return compareOrder(candidate, pred) >= 0
	default:
		return false
	}
}

func truthy(r Result) bool {
	switch r.Type {
	case TypeNull, TypeUndefined:
		return false
	case TypeBoolean:
		return r.Num != 0
	case TypeString:
		return r.Str != ""
	case TypeArray, TypeObject:
		return len(r.Raw) > 2 // not "[]"/"{}"
	default:
		return true
	}
}

// compareEqual implements JSON-scalar equality between a candidate and the
// predicate's parsed literal.
func compareEqual(c Result, pred predicate) bool {
	switch pred.litKind {
	case TypeNumber:
		return c.Type == TypeNumber && c.Num == pred.litFloat
	case TypeBoolean:
		return c.Type == TypeBoolean && c.Bool() == (pred.litFloat != 0)
	case TypeNull:
		return c.Type == TypeNull
	default:
		return c.String() == pred.literal
	}
}

// kindOrder implements the fixed ordering Null < False < True < Number <
// String < Array < Object used for mixed-kind ordered comparisons.
func kindOrder(r Result) int {
	switch r.Type {
	case TypeNull:
		return 0
	case TypeBoolean:
		if !r.Bool() {
			return 1
		}
		return 2
	case TypeNumber:
		return 3
	case TypeString:
		return 4
	case TypeArray:
		return 5
	case TypeObject:
		return 6
	default:
		return -1
	}
}

// compareOrder returns <0, 0, or >0 comparing the candidate against the
// predicate's literal: numerically for numbers, lexicographically (by
// decoded bytes) for strings, by kindOrder across kinds.
func compareOrder(c Result, pred predicate) int {
	litKind := pred.litKind
	if c.Type != litKind {
		return kindOrder(c) - kindOrderOf(litKind, pred)
	}
	switch litKind {
	case TypeNumber:
		switch {
		case c.Num < pred.litFloat:
			return -1
		case c.Num > pred.litFloat:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(c.String(), pred.literal)
	}
}

func kindOrderOf(k ValueType, pred predicate) int {
	switch k {
	case TypeNull:
		return 0
	case TypeBoolean:
		if pred.litFloat == 0 {
			return 1
		}
		return 2
	case TypeNumber:
		return 3
	case TypeString:
		return 4
	default:
		return 4
	}
}
