// Package gpath extracts a single value out of a JSON document using a
// compact path expression, without building a parse tree of the document.
//
// Created by dhawalhost.
package gpath

// ValueType is the kind tag carried by a Result.
type ValueType uint8

const (
	// TypeUndefined marks a Result that did not resolve.
	TypeUndefined ValueType = iota
	TypeNull
	TypeString
	TypeNumber
	TypeBoolean
	TypeObject
	TypeArray
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "undefined"
	}
}

// Result is a handle onto a sub-slice of a JSON document: a byte range plus
// its kind. Raw holds the borrowed (or modifier-owned) bytes for the value;
// Str holds the decoded string content for TypeString and the raw literal
// for TypeNumber/TypeBoolean/TypeNull. Result is immutable once returned.
type Result struct {
	Type  ValueType
	Raw   []byte
	Str   string
	Num   float64
	Index int // byte offset of Raw within the slice it was taken from (the enclosing object or array, not necessarily the whole document); 0 for owned buffers and unresolved Results
}

// Exists reports whether the path resolved to a value.
func (r Result) Exists() bool {
	return r.Type != TypeUndefined
}

// Get parses json and returns the value addressed by path.
//
//go:inline
func Get(json []byte, path string) Result {
	return getWithOptions(json, path)
}

// GetString is a convenience wrapper for string-typed JSON documents.
func GetString(json string, path string) Result {
	return Get([]byte(json), path)
}

// Parse wraps the full input as a Result, with its kind inferred from the
// first non-whitespace byte.
func Parse(json []byte) Result {
	i := skipWhitespace(json, 0)
	if i >= len(json) {
		return Result{}
	}
	end := skipValue(json, i)
	return resultFromSlice(json, i, end)
}

// Valid runs the strict well-formedness check over json.
func Valid(json []byte) bool {
	return validate(json)
}

// ValidString is a convenience wrapper over Valid for string input.
func ValidString(json string) bool {
	return Valid([]byte(json))
}
