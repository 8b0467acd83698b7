// Package xmltree decodes arbitrary XML documents into a loosely typed
// tree and provides total accessors over it. Bureau report layouts vary
// wildly between providers, so the tree deliberately carries no schema:
// every value is a scalar string, a nested map, or a list of repeated
// elements, and every accessor returns a zero value instead of failing.
package xmltree

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

func init() {
	// Merge element attributes as plain sibling keys of the element
	// they belong to, instead of prefixing them with a hyphen.
	mxj.PrependAttrWithHyphen(false)
}

// Tree is a decoded XML document: tag name -> scalar string, nested
// Tree (as map[string]any), or []any for repeated elements.
type Tree map[string]any

// Decode parses an XML document into a Tree. The root wrapper element
// is unwrapped so that the root's immediate children become the
// top-level keys.
func Decode(data []byte) (Tree, error) {
	mv, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	m := map[string]any(mv)
	if len(m) == 1 {
		for _, v := range m {
			if inner, ok := v.(map[string]any); ok {
				return Tree(inner), nil
			}
		}
	}
	return Tree(m), nil
}

// Lookup returns the raw value under key, or nil. Safe on a nil Tree.
func (t Tree) Lookup(key string) any {
	if t == nil {
		return nil
	}
	return t[key]
}

// Map walks a chain of nested maps and returns the Tree at the end of
// the path. Any missing or non-map step yields a nil Tree, which all
// accessors treat as empty.
func (t Tree) Map(path ...string) Tree {
	cur := t
	for _, key := range path {
		next, ok := cur.Lookup(key).(map[string]any)
		if !ok {
			return nil
		}
		cur = Tree(next)
	}
	return cur
}

// Text returns the scalar string under key, or "".
func (t Tree) Text(key string) string {
	return Scalar(t.Lookup(key))
}

// First returns the value of the first key that is present and truthy,
// or nil when none match. Candidate order encodes priority.
func (t Tree) First(keys ...string) any {
	for _, key := range keys {
		if v := t.Lookup(key); Truthy(v) {
			return v
		}
	}
	return nil
}

// Scalar renders a decoded value as a string. Elements that carry both
// attributes and character data keep their text under "#text".
func Scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case map[string]any:
		if txt, ok := x["#text"].(string); ok {
			return txt
		}
		return ""
	case []any:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// AsTree converts a decoded value into a Tree, or nil when it is not a
// map.
func AsTree(v any) Tree {
	if m, ok := v.(map[string]any); ok {
		return Tree(m)
	}
	return nil
}

// AsList normalizes a decoded value into a list: an element that
// appears once decodes as a single map and is wrapped into a
// one-element list, repeated elements are returned as-is, and anything
// else yields nil.
func AsList(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case map[string]any:
		return []any{x}
	default:
		return nil
	}
}

// Truthy reports whether a decoded value counts as present: a
// non-empty string, non-empty map or list, or any other non-nil value.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	default:
		return true
	}
}
