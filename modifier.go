package gpath

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/pretty"
)

// evalModifier applies a named transform to cur's raw JSON and returns a
// Result over the (possibly newly owned) output. Unknown modifiers produce
// TypeUndefined.
func evalModifier(cur Result, s segment) Result {
	switch s.key {
	case "this":
		return cur
	case "valid":
		if Valid(cur.Raw) {
			return cur
		}
		return Result{}
	case "reverse":
		return modReverse(cur)
	case "ugly":
		return resultFromOwned(pretty.Ugly(cur.Raw))
	case "pretty":
		return modPretty(cur, s.modArg)
	case "flatten":
		return modFlatten(cur, s.modArg)
	case "join":
		return modJoin(cur, s.modArg)
	default:
		return Result{}
	}
}

// modReverse reverses the source-order members of an object, or the
// elements of an array. Any other kind passes through unchanged.
func modReverse(cur Result) Result {
	switch cur.Type {
	case TypeArray:
		elems := cur.Array()
		var b strings.Builder
		b.WriteByte('[')
		for i := len(elems) - 1; i >= 0; i-- {
			b.Write(elems[i].Raw)
			if i > 0 {
				b.WriteByte(',')
			}
		}
		b.WriteByte(']')
		return resultFromOwned([]byte(b.String()))
	case TypeObject:
		var keys []string
		var vals []Result
		walkObject(cur.Raw, func(k string, v Result) bool {
			keys = append(keys, k)
			vals = append(vals, v)
			return true
		})
		var b strings.Builder
		b.WriteByte('{')
		for i := len(keys) - 1; i >= 0; i-- {
			writeJSONKey(&b, keys[i])
			b.WriteByte(':')
			b.Write(vals[i].Raw)
			if i > 0 {
				b.WriteByte(',')
			}
		}
		b.WriteByte('}')
		return resultFromOwned([]byte(b.String()))
	default:
		return cur
	}
}

// prettyOptions mirrors github.com/tidwall/pretty's Options, decoded from a
// modifier argument that is a JSON object.
type prettyOptions struct {
	SortKeys bool   `json:"sortKeys"`
	Indent   string `json:"indent"`
	Prefix   string `json:"prefix"`
	Width    int    `json:"width"`
}

// modPretty re-indents cur's raw JSON using github.com/tidwall/pretty,
// optionally sorting object keys first when {sortKeys:true} is given.
func modPretty(cur Result, arg string) Result {
	opts := prettyOptions{Indent: "  ", Width: 80}
	if arg != "" {
		_ = json.Unmarshal([]byte(arg), &opts)
	}
	raw := cur.Raw
	if opts.SortKeys {
		raw = sortObjectKeysDeep(raw)
	}
	po := &pretty.Options{
		Width:    opts.Width,
		Prefix:   opts.Prefix,
		Indent:   opts.Indent,
		SortKeys: false, // keys already sorted above when requested
	}
	return resultFromOwned(pretty.PrettyOptions(raw, po))
}

// sortObjectKeysDeep rebuilds raw with every nested object's members sorted
// by key, recursively. Arrays are walked but not reordered.
func sortObjectKeysDeep(raw []byte) []byte {
	r := resultFromSlice(raw, 0, len(raw))
	switch r.Type {
	case TypeObject:
		type kv struct {
			key string
			val Result
		}
		var items []kv
		walkObject(raw, func(k string, v Result) bool {
			items = append(items, kv{k, v})
			return true
		})
		sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })
		var b strings.Builder
		b.WriteByte('{')
		for i, it := range items {
			writeJSONKey(&b, it.key)
			b.WriteByte(':')
			b.Write(sortObjectKeysDeep(it.val.Raw))
			if i < len(items)-1 {
				b.WriteByte(',')
			}
		}
		b.WriteByte('}')
		return []byte(b.String())
	case TypeArray:
		var b strings.Builder
		b.WriteByte('[')
		elems := r.Array()
		for i, e := range elems {
			b.Write(sortObjectKeysDeep(e.Raw))
			if i < len(elems)-1 {
				b.WriteByte(',')
			}
		}
		b.WriteByte(']')
		return []byte(b.String())
	default:
		return raw
	}
}

func writeJSONKey(b *strings.Builder, key string) {
	enc, _ := json.Marshal(key)
	b.Write(enc)
}

// flattenOptions is the {deep:true} argument accepted by @flatten.
type flattenOptions struct {
	Deep bool `json:"deep"`
}

// modFlatten concatenates one level of nested-array elements into a single
// array; non-array elements pass through unchanged. With {deep:true} it
// recurses into nested arrays as well.
func modFlatten(cur Result, arg string) Result {
	if cur.Type != TypeArray {
		return cur
	}
	var opts flattenOptions
	if arg != "" {
		_ = json.Unmarshal([]byte(arg), &opts)
	}
	var out []Result
	flattenInto(&out, cur.Array(), opts.Deep)
	return collectArray(out)
}

func flattenInto(out *[]Result, elems []Result, deep bool) {
	for _, e := range elems {
		if e.Type == TypeArray && deep {
			flattenInto(out, e.Array(), deep)
			continue
		}
		if e.Type == TypeArray && !deep {
			*out = append(*out, e.Array()...)
			continue
		}
		*out = append(*out, e)
	}
}

// joinOptions is the {preserve:true} argument accepted by @join.
type joinOptions struct {
	Preserve bool `json:"preserve"`
}

// modJoin merges an array of objects left-to-right into one object; later
// members overwrite earlier ones of the same name unless {preserve:true}.
func modJoin(cur Result, arg string) Result {
	if cur.Type != TypeArray {
		return cur
	}
	var opts joinOptions
	if arg != "" {
		_ = json.Unmarshal([]byte(arg), &opts)
	}
	order := []string{}
	members := map[string]Result{}
	for _, elem := range cur.Array() {
		if elem.Type != TypeObject {
			continue
		}
		walkObject(elem.Raw, func(k string, v Result) bool {
			if _, seen := members[k]; !seen {
				order = append(order, k)
				members[k] = v
			} else if !opts.Preserve {
				members[k] = v
			}
			return true
		})
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range order {
		kb, _ := json.Marshal(k)
		b.Write(kb)
		b.WriteByte(':')
		b.Write(members[k].Raw)
		if i < len(order)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteByte('}')
	return resultFromOwned(b.Bytes())
}
