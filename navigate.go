package gpath

import (
	"github.com/tidwall/match"
)

// getWithOptions is the entry point behind Get: parse the path, then walk the
// document segment by segment.
func getWithOptions(json []byte, path string) Result {
	cp := compilePath(path)
	return evaluate(json, cp.segments, cp.jsonLines)
}

// evaluate walks json against segs in order. Each segment either narrows the
// current slice (navigation) or replaces it with a newly produced buffer
// (modifier). The walk stops the instant any segment produces TypeUndefined.
//
// A Query matched with the trailing "#" form is special: when segments
// remain after it, those segments are not applied once to the collected
// array — they are broadcast over each matched element individually, the
// same way a Projection's embedded sub-path is, and the results are
// collected into a new array.
func evaluate(json []byte, segs []segment, jsonLines bool) Result {
	cur := Parse(json)
	if jsonLines {
		cur = jsonLinesRootResult(json)
	}
	for i := 0; i < len(segs); i++ {
		if !cur.Exists() {
			return Result{}
		}
		s := segs[i]
		if s.kind == segQuery && s.queryAll && i+1 < len(segs) {
			return broadcastQuery(cur, s, segs[i+1:])
		}
		cur = evalSegment(cur, s)
	}
	return cur
}

// broadcastQuery applies restSegs independently to each element matched by
// a "#(...)#" query and collects the non-undefined results into an array.
func broadcastQuery(cur Result, s segment, restSegs []segment) Result {
	matches := queryMatches(cur, s)
	var out []Result
	for _, m := range matches {
		r := evalSegChain(m, restSegs)
		if r.Exists() {
			out = append(out, r)
		}
	}
	return collectArray(out)
}

// evalSegChain applies a segment list to a single starting value, reusing
// the same broadcast rule recursively for nested "#(...)#.sub" chains.
func evalSegChain(start Result, segs []segment) Result {
	cur := start
	for i := 0; i < len(segs); i++ {
		if !cur.Exists() {
			return Result{}
		}
		s := segs[i]
		if s.kind == segQuery && s.queryAll && i+1 < len(segs) {
			return broadcastQuery(cur, s, segs[i+1:])
		}
		cur = evalSegment(cur, s)
	}
	return cur
}

// evalSegment applies one segment to the current value.
func evalSegment(cur Result, s segment) Result {
	switch s.kind {
	case segKey:
		return evalKey(cur, s)
	case segIndex:
		return evalIndex(cur, s.index)
	case segCount:
		return evalCount(cur)
	case segProjection:
		return evalProjection(cur, s.projection)
	case segQuery:
		return evalQuery(cur, s)
	case segModifier:
		return evalModifier(cur, s)
	default:
		return Result{}
	}
}

func evalKey(cur Result, s segment) Result {
	if cur.Type != TypeObject {
		return Result{}
	}
	return lookupMember(cur.Raw, s.key, s.hasWild)
}

func evalIndex(cur Result, n int) Result {
	if cur.Type != TypeArray {
		return Result{}
	}
	var found Result
	i := 0
	walkArray(cur.Raw, func(idx int, v Result) bool {
		if idx == n {
			found = v
			return false
		}
		i++
		return true
	})
	return found
}

func evalCount(cur Result) Result {
	switch cur.Type {
	case TypeArray:
		n := 0
		walkArray(cur.Raw, func(_ int, _ Result) bool { n++; return true })
		return countResult(n)
	case TypeObject:
		n := 0
		walkObject(cur.Raw, func(_ string, _ Result) bool { n++; return true })
		return countResult(n)
	default:
		return Result{}
	}
}

func countResult(n int) Result {
	s := itoa(n)
	return Result{Type: TypeNumber, Raw: []byte(s), Str: s, Num: float64(n)}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// lookupMember finds the first object member matching key, honoring glob
// wildcards via github.com/tidwall/match when wild is set.
func lookupMember(obj []byte, key string, wild bool) Result {
	var found Result
	walkObjectRaw(obj, func(k string, valStart, valEnd int, data []byte) bool {
		matched := false
		if wild {
			matched = match.Match(k, key)
		} else {
			matched = k == key
		}
		if matched {
			found = resultFromSlice(data, valStart, valEnd)
			return false
		}
		return true
	})
	return found
}

// walkObject invokes cb(key, value) for each member of the object value obj
// (which must include the surrounding braces), in source order.
func walkObject(obj []byte, cb func(key string, value Result) bool) {
	walkObjectRaw(obj, func(k string, valStart, valEnd int, data []byte) bool {
		return cb(k, resultFromSlice(data, valStart, valEnd))
	})
}

// walkObjectRaw is the shared low-level object iterator: it decodes each key
// and reports the byte range of its value within data.
func walkObjectRaw(obj []byte, cb func(key string, valStart, valEnd int, data []byte) bool) {
	if len(obj) == 0 || obj[0] != '{' {
		return
	}
	i := 1
	for {
		kind, start := nextToken(obj, i)
		if kind == tokNone {
			return
		}
		if obj[start] == '}' {
			return
		}
		if kind != tokString {
			return
		}
		keyEnd := skipString(obj, start)
		key := unescapeString(obj[start:keyEnd])
		i = skipWhitespace(obj, keyEnd)
		if i >= len(obj) || obj[i] != ':' {
			return
		}
		i++
		valStart := skipWhitespace(obj, i)
		valEnd := skipValue(obj, valStart)
		if !cb(key, valStart, valEnd, obj) {
			return
		}
		i = skipWhitespace(obj, valEnd)
		if i >= len(obj) {
			return
		}
		if obj[i] == ',' {
			i++
			continue
		}
		return
	}
}

// walkArray invokes cb(index, value) for each element of the array value arr
// (which must include the surrounding brackets), in source order.
func walkArray(arr []byte, cb func(index int, value Result) bool) {
	if len(arr) == 0 || arr[0] != '[' {
		return
	}
	i := 1
	idx := 0
	for {
		kind, start := nextToken(arr, i)
		if kind == tokNone {
			return
		}
		if arr[start] == ']' {
			return
		}
		end := skipValue(arr, start)
		if !cb(idx, resultFromSlice(arr, start, end)) {
			return
		}
		idx++
		i = skipWhitespace(arr, end)
		if i >= len(arr) {
			return
		}
		if arr[i] == ',' {
			i++
			continue
		}
		return
	}
}

// evalProjection applies subPath to every element/value of cur and collects
// the results into an owned JSON array, built from a pooled scratch buffer.
func evalProjection(cur Result, subPath string) Result {
	buf := getScratch()
	buf = append(buf, '[')
	first := true
	appendOne := func(v Result) {
		r := Get(v.Raw, subPath)
		if !r.Exists() {
			return
		}
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = append(buf, r.Raw...)
	}
	switch cur.Type {
	case TypeArray:
		walkArray(cur.Raw, func(_ int, v Result) bool { appendOne(v); return true })
	case TypeObject:
		walkObject(cur.Raw, func(_ string, v Result) bool { appendOne(v); return true })
	default:
		putScratch(buf)
		return Result{}
	}
	buf = append(buf, ']')
	return ownResultAndRelease(buf)
}

// getScratch takes a zeroed-length scratch buffer from bufPool.
func getScratch() []byte {
	p := bufPool.Get().(*[]byte)
	return (*p)[:0]
}

// putScratch returns buf to bufPool for reuse, discarding it if it grew
// unreasonably large so the pool doesn't pin down oversized allocations.
func putScratch(buf []byte) {
	if cap(buf) > 1<<20 {
		return
	}
	bufPool.Put(&buf)
}

// ownResultAndRelease copies buf's contents into a right-sized owned
// buffer, builds a Result over it, and returns buf to the pool.
func ownResultAndRelease(buf []byte) Result {
	owned := make([]byte, len(buf))
	copy(owned, buf)
	putScratch(buf)
	return resultFromOwned(owned)
}

// resultFromOwned builds a Result over a freshly produced buffer (output of
// a modifier, projection, or query-all).
func resultFromOwned(buf []byte) Result {
	return resultFromSlice(buf, 0, len(buf))
}
