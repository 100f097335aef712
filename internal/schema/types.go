// Package schema parses SDL text into the intermediate representation
// that drives code generation. Parsing is best-effort: structural
// surprises in a third-party schema are collected as warnings instead of
// aborting the whole parse.
package schema

// TypeKind classifies what a schema type name refers to.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindEnum        TypeKind = "ENUM"
	KindObject      TypeKind = "OBJECT"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
)

// TypeRef is a declared type reference: a named type, arbitrarily wrapped
// in list and non-null layers.
type TypeRef struct {
	Kind   TypeRefKind
	Named  string   // for named references
	OfType *TypeRef // for List and NonNull
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }

// BaseName strips all list/non-null wrapping and returns the leaf type name.
func (t *TypeRef) BaseName() string {
	current := t
	for current != nil {
		if current.Kind == TypeRefKindNamed {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

// IsNonNull reports whether the outermost wrapper is Non-Null.
func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

// IsList reports whether the reference is a list, looking through one
// non-null wrapper.
func (t *TypeRef) IsList() bool {
	if t == nil {
		return false
	}
	if t.Kind == TypeRefKindList {
		return true
	}
	return t.Kind == TypeRefKindNonNull && t.OfType != nil && t.OfType.Kind == TypeRefKindList
}

// String renders the reference in SDL notation.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeRefKindList:
		return "[" + t.OfType.String() + "]"
	case TypeRefKindNonNull:
		return t.OfType.String() + "!"
	default:
		return t.Named
	}
}

// FieldDef is a field on an object, root, or input type.
type FieldDef struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []ArgumentDef
}

type ArgumentDef struct {
	Name        string
	Description string
	Type        *TypeRef
}

type EnumValueDef struct {
	Name        string
	Description string
}

type EnumDef struct {
	Name        string
	Description string
	Values      []EnumValueDef
}

type ObjectDef struct {
	Name        string
	Description string
	Fields      []FieldDef
}

type InputDef struct {
	Name        string
	Description string
	Fields      []FieldDef
}

type ScalarDef struct {
	Name        string
	Description string
}

// Warning is a non-fatal parse diagnostic.
type Warning struct {
	Message string
}

// Schema is the parsed, categorized IR. Built once by Parse and immutable
// afterwards; nothing downstream mutates it.
//
// The fields of the two distinguished root objects are routed into
// QueryFields/MutationFields and never appear in Objects. Interface and
// union names are registered in Kinds only; their bodies are not retained
// because downstream consumers only need to know what the name denotes.
type Schema struct {
	Scalars        []ScalarDef
	Enums          []EnumDef
	Objects        []ObjectDef
	Inputs         []InputDef
	QueryFields    []FieldDef
	MutationFields []FieldDef
	Kinds          map[string]TypeKind
	Warnings       []Warning
}
