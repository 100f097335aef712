package fields

import (
	"fmt"
	"reflect"
	"strings"
)

// FullTyped is implemented by a projection that claims to be a subset of a
// generated exhaustive type. GraphQLFullType returns the zero value of
// that type:
//
//	func (IssueRef) GraphQLFullType() any { return Issue{} }
//
// Generated exhaustive types do not implement it; they are their own full
// view and carry no obligations.
type FullTyped interface {
	GraphQLFullType() any
}

// Violation is one failed obligation: a projection field that does not
// exist on the full type, or whose declared type is not a legal narrowing
// of the full type's field.
type Violation struct {
	Field    string // wire name
	FullType string // declared type on the full type, empty when missing
	ProjType string // declared type on the projection
	Missing  bool
}

func (v *Violation) Message() string {
	if v.Missing {
		return fmt.Sprintf("field %q not found on full type", v.Field)
	}
	return fmt.Sprintf("field %q: full type declares %s, projection declares %s (incompatible)",
		v.Field, v.FullType, v.ProjType)
}

// ValidationError collects every violation for a projection; obligations
// are independent, so all of them are reported at once.
type ValidationError []*Violation

func (e ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("projection violations found:\n")
	for _, v := range e {
		b.WriteString("- ")
		b.WriteString(v.Message())
		b.WriteString("\n")
	}
	return b.String()
}

// Validate discharges a projection's proof obligations against its
// declared full type. It is the generation-time check pass: run it from
// the generator or the consumer's test suite, before any artifact ships —
// a violation here is a build failure, not a request-time surprise.
//
// A projection without a FullTyped declaration is self-referential and has
// zero obligations; Validate returns nil.
func Validate(proj any) error {
	ft, ok := proj.(FullTyped)
	if !ok {
		return nil
	}
	return Check(reflect.TypeOf(proj), reflect.TypeOf(ft.GraphQLFullType()))
}

// MustValidate is Validate that panics on violation.
func MustValidate(proj any) {
	if err := Validate(proj); err != nil {
		panic(err)
	}
}

// Check verifies that projType's fields are a valid subset of fullType's.
//
// Every projection field must exist (by wire name) on the full type. For
// plain fields the declared types must additionally satisfy Compatible;
// nested fields are checked for existence only — their inner shape
// validates itself against its own full type, not against this one.
func Check(projType, fullType reflect.Type) error {
	projType = derefStruct(projType)
	fullType = derefStruct(fullType)
	if projType.Kind() != reflect.Struct || fullType.Kind() != reflect.Struct {
		return fmt.Errorf("fields: check requires struct types, got %s against %s", projType, fullType)
	}

	fullFields := make(map[string]reflect.StructField, fullType.NumField())
	for i := 0; i < fullType.NumField(); i++ {
		f := fullType.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name, _, skip := parseTag(f)
		if skip {
			continue
		}
		fullFields[name] = f
	}

	var violations ValidationError
	for i := 0; i < projType.NumField(); i++ {
		f := projType.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name, nested, skip := parseTag(f)
		if skip {
			continue
		}
		full, ok := fullFields[name]
		if !ok {
			violations = append(violations, &Violation{
				Field:    name,
				ProjType: f.Type.String(),
				Missing:  true,
			})
			continue
		}
		if nested {
			continue
		}
		if !Compatible(full.Type, f.Type) {
			violations = append(violations, &Violation{
				Field:    name,
				FullType: full.Type.String(),
				ProjType: f.Type.String(),
			})
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}
