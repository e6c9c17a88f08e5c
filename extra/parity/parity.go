// Package parity cross-checks gpath's extraction against independent JSON
// libraries on the subset of the path language they all understand: dotted
// keys and numeric array indices (no queries, projections, or modifiers).
// It is external tooling, not part of the gpath library surface, repurposing
// a benchmark-style cross-library comparison from performance to
// correctness.
package parity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/dhawalhost/gpath"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

// Divergence describes one path whose extracted value differed between
// gpath and a reference library.
type Divergence struct {
	Path      string
	Reference string
	GotGPath  string
	GotRef    string
}

// Case is one (document, path) pair to check.
type Case struct {
	JSON string
	Path string
}

// IsComparable reports whether path stays within the dotted-key/numeric-
// index subset shared by gjson, gabs, and fastjson — queries, projections,
// and modifiers are skipped rather than guessed at.
func IsComparable(path string) bool {
	if path == "" {
		return true
	}
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if strings.ContainsAny(seg, "@#|*?()") {
			return false
		}
	}
	return true
}

// CheckAgainstGJSON runs Case.Path through both gpath and gjson and reports
// a Divergence if the raw JSON text differs.
func CheckAgainstGJSON(c Case) (*Divergence, error) {
	if !IsComparable(c.Path) {
		return nil, fmt.Errorf("path %q is outside the comparable subset", c.Path)
	}
	got := gpath.Get([]byte(c.JSON), c.Path)
	want := gjson.Get(c.JSON, c.Path)
	if got.Exists() != want.Exists() {
		return &Divergence{Path: c.Path, Reference: "gjson", GotGPath: got.Json(), GotRef: want.Raw}, nil
	}
	if got.Exists() && got.Json() != want.Raw {
		return &Divergence{Path: c.Path, Reference: "gjson", GotGPath: got.Json(), GotRef: want.Raw}, nil
	}
	return nil, nil
}

// CheckAgainstGabs walks path (dotted keys only — gabs has no native
// integer-index accessor for arbitrary depth, so an Index(n) segment is
// rejected as non-comparable) via github.com/Jeffail/gabs/v2 and compares
// its rendering against gpath's.
func CheckAgainstGabs(c Case) (*Divergence, error) {
	if !IsComparable(c.Path) {
		return nil, fmt.Errorf("path %q is outside the comparable subset", c.Path)
	}
	for _, seg := range strings.Split(c.Path, ".") {
		if _, err := strconv.Atoi(seg); err == nil {
			return nil, fmt.Errorf("path %q contains an index segment, not comparable via gabs", c.Path)
		}
	}
	container, err := gabs.ParseJSON([]byte(c.JSON))
	if err != nil {
		return nil, err
	}
	want := container.Path(c.Path)
	got := gpath.Get([]byte(c.JSON), c.Path)
	wantExists := want.Data() != nil
	if got.Exists() != wantExists {
		return &Divergence{Path: c.Path, Reference: "gabs", GotGPath: got.Json(), GotRef: want.String()}, nil
	}
	if got.Exists() && got.Json() != want.String() {
		return &Divergence{Path: c.Path, Reference: "gabs", GotGPath: got.Json(), GotRef: want.String()}, nil
	}
	return nil, nil
}

// CheckAgainstFastjson walks path via github.com/valyala/fastjson, which
// natively supports both keys and integer index path components.
func CheckAgainstFastjson(c Case) (*Divergence, error) {
	if !IsComparable(c.Path) {
		return nil, fmt.Errorf("path %q is outside the comparable subset", c.Path)
	}
	var parser fastjson.Parser
	v, err := parser.Parse(c.JSON)
	if err != nil {
		return nil, err
	}
	parts := splitPath(c.Path)
	sub := v.Get(parts...)
	got := gpath.Get([]byte(c.JSON), c.Path)
	if got.Exists() != (sub != nil) {
		ref := ""
		if sub != nil {
			ref = sub.String()
		}
		return &Divergence{Path: c.Path, Reference: "fastjson", GotGPath: got.Json(), GotRef: ref}, nil
	}
	if got.Exists() && got.Json() != sub.String() {
		return &Divergence{Path: c.Path, Reference: "fastjson", GotGPath: got.Json(), GotRef: sub.String()}, nil
	}
	return nil, nil
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
