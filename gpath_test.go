package gpath

import "testing"

// exampleDoc is the canonical example document used across the scenario
// tests below.
const exampleDoc = `{
  "name": {"first": "Tom", "last": "Anderson"},
  "age": 37,
  "children": ["Sara", "Alex", "Jack"],
  "fav\.movie": "Deer Hunter",
  "friends": [
    {"first": "Dale", "last": "Murphy", "age": 44, "nets": ["ig", "fb", "tw"]},
    {"first": "Roger", "last": "Craig", "age": 68, "nets": ["fb", "tw"]},
    {"first": "Jane", "last": "Murphy", "age": 47, "nets": ["ig", "tw"]}
  ]
}`

const exampleDocLiteralDot = `{
  "name": {"first": "Tom", "last": "Anderson"},
  "age": 37,
  "children": ["Sara", "Alex", "Jack"],
  "fav.movie": "Deer Hunter",
  "friends": [
    {"first": "Dale", "last": "Murphy", "age": 44, "nets": ["ig", "fb", "tw"]},
    {"first": "Roger", "last": "Craig", "age": 68, "nets": ["fb", "tw"]},
    {"first": "Jane", "last": "Murphy", "age": 47, "nets": ["ig", "tw"]}
  ]
}`

func TestGet_ScenarioTable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		want string
	}{
		{"name.last", exampleDoc, "name.last", `"Anderson"`},
		{"age", exampleDoc, "age", `37`},
		{"children count", exampleDoc, "children.#", `3`},
		{"wildcard key + index", exampleDoc, "child*.2", `"Jack"`},
		{"escaped dot key", exampleDocLiteralDot, `fav\.movie`, `"Deer Hunter"`},
		{"query all + broadcast", exampleDoc, `friends.#(last=="Murphy")#.first`, `["Dale","Jane"]`},
		{"query all numeric + broadcast", exampleDoc, `friends.#(age>45)#.last`, `["Craig","Murphy"]`},
		{"nested existence query", exampleDoc, `friends.#(nets.#(=="fb"))#.first`, `["Dale","Roger"]`},
		{"modifier chain + index", exampleDoc, `children|@reverse|0`, `"Jack"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get([]byte(tt.doc), tt.path)
			if got.Json() != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.path, got.Json(), tt.want)
			}
		})
	}
}

func TestGet_JSONLines(t *testing.T) {
	doc := `{"name":"Chase","age":34}
{"name":"May","age":57}
{"name":"Jeff","age":23}`
	got := Get([]byte(doc), `..#(name="May").age`)
	if got.Json() != "57" {
		t.Fatalf("got %q, want 57", got.Json())
	}
}

func TestGet_EmptyPathReturnsWholeDocument(t *testing.T) {
	got := Get([]byte(exampleDoc), "")
	if got.Type != TypeObject {
		t.Fatalf("expected TypeObject, got %v", got.Type)
	}
}

func TestGet_OutOfRangeIndex(t *testing.T) {
	got := Get([]byte(`{"a":[1,2,3]}`), "a.9")
	if got.Exists() {
		t.Fatalf("expected NotExist for out-of-range index, got %q", got.Json())
	}
}

func TestGet_CountOnScalarIsNotExist(t *testing.T) {
	got := Get([]byte(`{"a":1}`), "a.#")
	if got.Exists() {
		t.Fatalf("expected NotExist for # on a scalar, got %q", got.Json())
	}
}

func TestInvariant_ThisIsIdentityPrefix(t *testing.T) {
	paths := []string{"name.last", "children.#", "friends.0.first", `children|@reverse|0`}
	for _, p := range paths {
		a := Get([]byte(exampleDoc), p)
		b := Get([]byte(exampleDoc), "@this|"+p)
		if a.Exists() != b.Exists() || a.Json() != b.Json() {
			t.Errorf("@this|%s diverged: %q vs %q", p, a.Json(), b.Json())
		}
	}
}

func TestInvariant_ExistsMatchesKind(t *testing.T) {
	got := Get([]byte(exampleDoc), "does.not.exist")
	if got.Exists() {
		t.Fatalf("expected NotExist")
	}
	if got.Type != TypeUndefined {
		t.Fatalf("expected TypeUndefined, got %v", got.Type)
	}
	// typed accessors never panic on a NotExist handle.
	_ = got.String()
	_ = got.Int()
	_ = got.Float()
	_ = got.Bool()
	_ = got.Array()
}

func TestProjectionLaw(t *testing.T) {
	got := Get([]byte(exampleDoc), "friends.#.first")
	want := `["Dale","Roger","Jane"]`
	if got.Json() != want {
		t.Fatalf("got %q, want %q", got.Json(), want)
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		json string
		want bool
	}{
		{`{"a":1}`, true},
		{`[1,2,3]`, true},
		{`"just a string"`, true},
		{`37`, true},
		{`{"a":1,}`, false},
		{`{"a":}`, false},
		{`[1,2,`, false},
		{``, false},
		{`{"a":"unterminated`, false},
	}
	for _, c := range cases {
		if got := ValidString(c.json); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.json, got, c.want)
		}
	}
}

func TestValidImpliesAtValidExists(t *testing.T) {
	docs := []string{`{"a":1}`, `[1,2,3]`, exampleDoc}
	for _, d := range docs {
		if Valid([]byte(d)) && !Get([]byte(d), "@valid").Exists() {
			t.Errorf("Valid(%q)==true but @valid did not exist", d)
		}
	}
}

func TestPrettyUglyRoundTrip(t *testing.T) {
	pretty := Get([]byte(exampleDoc), "@pretty")
	again := Get(pretty.Raw, "@ugly|@pretty")
	if pretty.Json() != again.Json() {
		t.Fatalf("pretty|ugly|pretty not idempotent:\n%s\nvs\n%s", pretty.Json(), again.Json())
	}
}

func TestResult_TypedAccessors(t *testing.T) {
	doc := []byte(`{"s":"42","n":3.5,"b":true,"nil":null,"arr":[1,2,3]}`)
	if got := Get(doc, "s").Int(); got != 42 {
		t.Errorf("s.Int() = %d, want 42", got)
	}
	if got := Get(doc, "n").Float(); got != 3.5 {
		t.Errorf("n.Float() = %v, want 3.5", got)
	}
	if got := Get(doc, "b").Bool(); !got {
		t.Errorf("b.Bool() = false, want true")
	}
	if got := Get(doc, "nil").Type; got != TypeNull {
		t.Errorf("nil.Type() = %v, want TypeNull", got)
	}
	if got := Get(doc, "arr").Array(); len(got) != 3 {
		t.Errorf("len(arr.Array()) = %d, want 3", len(got))
	}
}

func TestResult_Each(t *testing.T) {
	doc := []byte(`{"a":1,"b":2,"c":3}`)
	var keys []string
	Get(doc, "@this").Each(func(k string, v Result) bool {
		keys = append(keys, k)
		return true
	})
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d: %v", len(keys), keys)
	}
}

func TestFlattenAndJoin(t *testing.T) {
	flat := Get([]byte(`[[1,2],[3,4],5]`), "@flatten")
	if flat.Json() != "[1,2,3,4,5]" {
		t.Errorf("flatten = %q", flat.Json())
	}

	deep := Get([]byte(`[[1,[2,3]],4]`), `@flatten:{"deep":true}`)
	if deep.Json() != "[1,2,3,4]" {
		t.Errorf("deep flatten = %q", deep.Json())
	}

	joined := Get([]byte(`[{"a":1},{"b":2},{"a":3}]`), "@join")
	if joined.Json() != `{"a":3,"b":2}` {
		t.Errorf("join = %q", joined.Json())
	}

	preserved := Get([]byte(`[{"a":1},{"b":2},{"a":3}]`), `@join:{"preserve":true}`)
	if preserved.Json() != `{"a":1,"b":2}` {
		t.Errorf("join preserve = %q", preserved.Json())
	}
}

func TestEscapePathSegment(t *testing.T) {
	seg := EscapePathSegment("fav.movie")
	if seg != `fav\.movie` {
		t.Errorf("EscapePathSegment = %q", seg)
	}
	doc := []byte(`{"fav.movie":"Deer Hunter"}`)
	got := Get(doc, seg)
	if got.Json() != `"Deer Hunter"` {
		t.Errorf("round-trip escaped path failed: %q", got.Json())
	}
}
