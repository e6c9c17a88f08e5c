package gpath

import "sync"

// pathCache memoizes compiledPath values for repeat GetCached callers. Only
// "simple" paths (plain dotted keys and numeric indices, no query or
// modifier) are ever stored — see isSimplePath — so a cache hit is always
// equivalent to re-running compilePath, never a stale shortcut.
var pathCache sync.Map // path string -> *compiledPath

// bufPool recycles the scratch []byte buffers used for Projection, Query-all
// and @flatten array construction, cutting allocation churn on repeated
// hot-path calls.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// GetCached is a cache-assisted variant of Get for callers that repeatedly
// evaluate the same simple path (a dotted-key/index chain, no query or
// modifier segments) against different documents. It is safe for concurrent
// use from multiple goroutines.
func GetCached(json []byte, path string) Result {
	if cached, ok := pathCache.Load(path); ok {
		cp := cached.(*compiledPath)
		return evaluate(json, cp.segments, cp.jsonLines)
	}
	cp := compilePath(path)
	if cp.simple {
		pathCache.Store(path, cp)
	}
	return evaluate(json, cp.segments, cp.jsonLines)
}
