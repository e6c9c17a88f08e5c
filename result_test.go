package gpath

import "testing"

func TestResult_StringCoercions(t *testing.T) {
	doc := []byte(`{"s":"hi","n":42,"b":true,"nil":null}`)
	if got := Get(doc, "s").String(); got != "hi" {
		t.Errorf("s.String() = %q", got)
	}
	if got := Get(doc, "n").String(); got != "42" {
		t.Errorf("n.String() = %q", got)
	}
	if got := Get(doc, "b").String(); got != "true" {
		t.Errorf("b.String() = %q", got)
	}
	if got := Get(doc, "nil").String(); got != "null" {
		t.Errorf("nil.String() = %q", got)
	}
}

func TestResult_BoolCoercions(t *testing.T) {
	doc := []byte(`{"a":"TRUE","b":"1","c":"nope","d":0,"e":5}`)
	if !Get(doc, "a").Bool() {
		t.Error("case-insensitive TRUE should be true")
	}
	if !Get(doc, "b").Bool() {
		t.Error("string \"1\" should be true")
	}
	if Get(doc, "c").Bool() {
		t.Error("arbitrary string should be false")
	}
	if Get(doc, "d").Bool() {
		t.Error("0 should be false")
	}
	if !Get(doc, "e").Bool() {
		t.Error("nonzero number should be true")
	}
}

func TestResult_IntTruncatesFloat(t *testing.T) {
	got := Get([]byte(`{"a":3.9}`), "a").Int()
	if got != 3 {
		t.Errorf("Int() truncation = %d, want 3", got)
	}
}

func TestResult_UintSaturatesAtZero(t *testing.T) {
	got := Get([]byte(`{"a":-5}`), "a").Uint()
	if got != 0 {
		t.Errorf("Uint() of negative = %d, want 0", got)
	}
}

func TestResult_ArrayOnObjectReturnsValues(t *testing.T) {
	vals := Get([]byte(`{"a":1,"b":2}`), "").Array()
	if len(vals) != 2 {
		t.Fatalf("len = %d, want 2", len(vals))
	}
}

func TestResult_ArrayOnScalarWrapsSelf(t *testing.T) {
	vals := Get([]byte(`5`), "").Array()
	if len(vals) != 1 || vals[0].Json() != "5" {
		t.Errorf("scalar Array() = %+v", vals)
	}
}

func TestResult_ChainedGet(t *testing.T) {
	outer := Get([]byte(`{"a":{"b":{"c":3}}}`), "a")
	inner := outer.Get("b.c")
	if inner.Json() != "3" {
		t.Errorf("chained Get = %q", inner.Json())
	}
}

func TestUnescapeString_SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE encoded as a surrogate pair.
	got := unescapeString([]byte("\"\\ud83d\\ude00\""))
	want := "😀"
	if got != want {
		t.Errorf("unescapeString surrogate pair = %q, want %q", got, want)
	}
}

func TestUnescapeString_Simple(t *testing.T) {
	got := unescapeString([]byte(`"line1\nline2\ttab"`))
	want := "line1\nline2\ttab"
	if got != want {
		t.Errorf("unescapeString = %q, want %q", got, want)
	}
}
