package gpath

import "strconv"

// segmentKind classifies a compiled path segment.
type segmentKind byte

const (
	segKey segmentKind = iota
	segIndex
	segCount
	segProjection
	segQuery
	segModifier
	segJSONLinesRoot
)

// segment is one compiled component of a path.
type segment struct {
	kind       segmentKind
	key        string // Key text or Modifier name
	hasWild    bool   // Key contains an unescaped '*' or '?'
	index      int    // Index(n)
	modArg     string // Modifier argument, raw text
	query      predicate
	queryAll   bool // Query matched with trailing '#'
	projection string
}

// predicate is the parsed form of a #(...) body.
type predicate struct {
	subPath  string
	hasOp    bool
	op       string
	literal  string // literal text, quotes already stripped for strings
	litKind  ValueType
	litFloat float64
}

// compiledPath is the parsed form of a path string, plus a flag marking
// whether it is simple enough for the GetCached fast path.
type compiledPath struct {
	original  string
	jsonLines bool
	segments  []segment
	simple    bool
}

// compilePath parses path into its segment list.
func compilePath(path string) *compiledPath {
	cp := &compiledPath{original: path}

	if len(path) >= 2 && path[0] == '.' && path[1] == '.' {
		cp.jsonLines = true
		path = path[2:]
	}

	cp.segments = parseSegments(path)
	cp.simple = isSimplePath(cp.segments)
	return cp
}

// parseSegments is a left-to-right scan producing the segment list. Most
// segment kinds end at the next unescaped top-level '.' or '|', but two
// shapes need bespoke handling because their bodies may themselves contain
// dots or pipes: a "#.subpath" Projection swallows the rest of the path (up
// to a top-level '|'), and a "@mod:arg" Modifier argument swallows bytes up
// to the next unescaped '|', parsing a full JSON value when the argument
// looks like one.
func parseSegments(path string) []segment {
	n := len(path)
	if n == 0 {
		return nil
	}
	var segs []segment
	i := 0
	for {
		var seg segment
		var next int
		switch {
		case path[i] == '@':
			seg, next = scanModifier(path, i)
		case path[i] == '#' && i+1 < n && path[i+1] == '.':
			var sub string
			sub, next = scanProjectionBody(path, i+2)
			seg = segment{kind: segProjection, projection: sub}
		case path[i] == '#' && i+1 < n && path[i+1] == '(':
			seg, next = scanQuery(path, i)
		default:
			seg, next = scanKeyOrIndex(path, i)
		}
		segs = append(segs, seg)
		i = next
		if i >= n {
			break
		}
		if path[i] == '.' || path[i] == '|' {
			i++
			if i == n {
				segs = append(segs, segment{kind: segKey, key: ""})
				break
			}
			continue
		}
		break
	}
	return segs
}

// scanKeyOrIndex reads a plain key or decimal index ending at the next
// top-level unescaped '.' or '|'.
func scanKeyOrIndex(path string, i int) (segment, int) {
	n := len(path)
	start := i
	for i < n {
		c := path[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '.' || c == '|' {
			break
		}
		i++
	}
	raw := path[start:i]
	if raw == "#" {
		return segment{kind: segCount}, i
	}
	if isDecimal(raw) {
		if v, err := strconv.Atoi(raw); err == nil {
			return segment{kind: segIndex, index: v}, i
		}
	}
	key, wild := unescapeKey(raw)
	return segment{kind: segKey, key: key, hasWild: wild}, i
}

// scanProjectionBody finds the end of a Projection's sub-path: a top-level
// (paren-depth 0) unescaped '|', or the end of the string. The sub-path
// itself is left unparsed here; it is recursively compiled when the
// Projection segment executes.
func scanProjectionBody(path string, i int) (string, int) {
	n := len(path)
	start := i
	depth := 0
	for i < n {
		c := path[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			if depth > 0 {
				depth--
			}
		} else if depth == 0 && c == '|' {
			break
		}
		i++
	}
	return path[start:i], i
}

// scanQuery parses a "#(...)" or "#(...)#" segment, respecting nested
// parens inside the predicate (e.g. a nested query as the sub-path).
func scanQuery(path string, i int) (segment, int) {
	n := len(path)
	i += 2 // skip "#("
	start := i
	depth := 1
	for i < n && depth > 0 {
		c := path[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
			if depth == 0 {
				break
			}
		}
		i++
	}
	body := path[start:i]
	if i < n {
		i++ // skip ')'
	}
	all := i < n && path[i] == '#'
	if all {
		i++
	}
	return segment{kind: segQuery, query: parsePredicate(body), queryAll: all}, i
}

// scanModifier parses a "@name" or "@name:arg" segment. The argument, when
// present, consumes bytes up to the next unescaped top-level '|'; if it
// begins with '{', '[', or '"' it is read as one complete JSON value so
// embedded pipes/dots inside the value don't terminate it early.
func scanModifier(path string, i int) (segment, int) {
	n := len(path)
	i++ // skip '@'
	nameStart := i
	for i < n {
		c := path[i]
		if c == '.' || c == '|' || c == ':' {
			break
		}
		i++
	}
	name := path[nameStart:i]
	if i >= n || path[i] != ':' {
		return segment{kind: segModifier, key: name}, i
	}
	i++ // skip ':'
	argStart := i
	if i < n && (path[i] == '{' || path[i] == '[' || path[i] == '"') {
		end := skipValue([]byte(path), i)
		return segment{kind: segModifier, key: name, modArg: path[argStart:end]}, end
	}
	for i < n {
		c := path[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '|' {
			break
		}
		i++
	}
	return segment{kind: segModifier, key: name, modArg: path[argStart:i]}, i
}

// unescapeKey resolves backslash escapes in a key segment and reports
// whether an unescaped wildcard ('*' or '?') is present.
func unescapeKey(raw string) (string, bool) {
	if indexByteStr(raw, '\\') < 0 {
		return raw, hasUnescapedWild(raw)
	}
	var b []byte
	wild := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			i++
			b = append(b, raw[i])
			continue
		}
		if c == '*' || c == '?' {
			wild = true
		}
		b = append(b, c)
	}
	return string(b), wild
}

func hasUnescapedWild(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '*' || s[i] == '?' {
			return true
		}
	}
	return false
}

func indexByteStr(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isSimplePath reports whether every segment is a plain, non-wildcard key or
// a numeric index — the only shape GetCached memoizes.
func isSimplePath(segs []segment) bool {
	for _, s := range segs {
		switch s.kind {
		case segKey:
			if s.hasWild {
				return false
			}
		case segIndex:
		default:
			return false
		}
	}
	return true
}
