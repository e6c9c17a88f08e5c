// Package fixtures builds a small library of JSON documents for the fuzz
// corpus, by mutating a minimal seed document with
// github.com/tidwall/sjson. It is external tooling, not part of the gpath
// library surface.
package fixtures

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Build returns a named set of generated JSON documents, progressively
// mutated from a minimal seed via sjson.SetBytes.
func Build() (map[string]string, error) {
	out := map[string]string{}

	seed := []byte(`{}`)
	doc, err := sjson.SetBytes(seed, "name.first", "Tom")
	if err != nil {
		return nil, fmt.Errorf("seed name: %w", err)
	}
	doc, err = sjson.SetBytes(doc, "name.last", "Anderson")
	if err != nil {
		return nil, fmt.Errorf("seed last name: %w", err)
	}
	doc, err = sjson.SetBytes(doc, "age", 37)
	if err != nil {
		return nil, fmt.Errorf("seed age: %w", err)
	}
	out["scalar"] = string(doc)

	arr, err := sjson.SetBytes(doc, "children.-1", "Sara")
	if err != nil {
		return nil, fmt.Errorf("append child: %w", err)
	}
	arr, err = sjson.SetBytes(arr, "children.-1", "Alex")
	if err != nil {
		return nil, fmt.Errorf("append child: %w", err)
	}
	arr, err = sjson.SetBytes(arr, "children.-1", "Jack")
	if err != nil {
		return nil, fmt.Errorf("append child: %w", err)
	}
	out["array"] = string(arr)

	nested, err := sjson.SetBytes(arr, "friends.0.first", "Dale")
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	nested, err = sjson.SetBytes(nested, "friends.0.last", "Murphy")
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	nested, err = sjson.SetBytes(nested, "friends.0.age", 44)
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	nested, err = sjson.SetBytes(nested, "friends.1.first", "Roger")
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	nested, err = sjson.SetBytes(nested, "friends.1.last", "Craig")
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	nested, err = sjson.SetBytes(nested, "friends.1.age", 68)
	if err != nil {
		return nil, fmt.Errorf("nest friend: %w", err)
	}
	out["nested"] = string(nested)

	return out, nil
}
