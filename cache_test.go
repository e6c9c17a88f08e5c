package gpath

import "testing"

func TestGetCached_MatchesGet(t *testing.T) {
	doc := []byte(`{"a":{"b":[1,2,3]}}`)
	path := "a.b.1"
	want := Get(doc, path)
	got := GetCached(doc, path)
	if got.Json() != want.Json() {
		t.Errorf("GetCached(%q) = %q, want %q", path, got.Json(), want.Json())
	}
}

func TestGetCached_ReusesCompiledEntry(t *testing.T) {
	path := "x.y.3"
	doc1 := []byte(`{"x":{"y":[10,20,30,40]}}`)
	_ = GetCached(doc1, path)
	if _, ok := pathCache.Load(path); !ok {
		t.Fatal("expected simple path to be memoized")
	}
	doc2 := []byte(`{"x":{"y":[1,2,3,4]}}`)
	got := GetCached(doc2, path)
	if got.Json() != "4" {
		t.Errorf("GetCached against a different document = %q, want 4", got.Json())
	}
}

func TestGetCached_NonSimplePathNotMemoized(t *testing.T) {
	path := "a.#(b>1)#"
	doc := []byte(`{"a":[{"b":1},{"b":2}]}`)
	_ = GetCached(doc, path)
	if _, ok := pathCache.Load(path); ok {
		t.Fatal("query path should never be memoized")
	}
}
