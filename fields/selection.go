// Package fields derives GraphQL selection text from a struct's own shape
// and verifies, before anything ships, that a lean projection struct is a
// valid narrowing of the exhaustive schema-derived type it claims to
// mirror.
//
// A projection is an ordinary struct. Each field maps to a wire name
// (derived from the field name, or overridden with a `graphql` tag) and is
// either plain or nested:
//
//	type IssueRef struct {
//		Id    *string       `json:"id"`
//		Title *string       `json:"title"`
//		State *WorkflowState `json:"state" graphql:"state,nested"`
//	}
//
// Selection[IssueRef]() returns "id title state { <WorkflowState's
// selection> }". The struct shape is the query shape; there is no query
// string to keep in sync.
package fields

import (
	"reflect"
	"strings"
	"sync"
)

// selections memoizes computed selection text per struct type. The walk is
// pure, so the first result is the only result.
var selections sync.Map // reflect.Type -> string

// Selection returns the GraphQL selection text for the projection type T,
// fields in declaration order.
func Selection[T any]() string {
	return SelectionOf(reflect.TypeOf((*T)(nil)).Elem())
}

// SelectionOf is Selection for a reflect.Type already in hand.
func SelectionOf(t reflect.Type) string {
	t = derefStruct(t)
	if cached, ok := selections.Load(t); ok {
		return cached.(string)
	}
	sel := buildSelection(t)
	selections.Store(t, sel)
	return sel
}

func buildSelection(t reflect.Type) string {
	if t.Kind() != reflect.Struct {
		panic("fields: selection requires a struct type, got " + t.String())
	}

	var parts []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name, nested, skip := parseTag(f)
		if skip {
			continue
		}
		if nested {
			inner := SelectionOf(f.Type)
			parts = append(parts, name+" { "+inner+" }")
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}

// parseTag resolves a field's wire name and nested marker from its
// `graphql` tag, falling back to WireName for the name.
func parseTag(f reflect.StructField) (name string, nested, skip bool) {
	tag := f.Tag.Get("graphql")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = WireName(f.Name)
	}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "nested" {
			nested = true
		}
	}
	return name, nested, false
}

// derefStruct unwraps pointer, slice, and array layers down to the
// element type, so a nested field declared *T, []T, or *[]T all resolve
// to T's selection.
func derefStruct(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
}
