package schema

import (
	"fmt"
	"strings"

	language "github.com/lineark/lineark-go/internal/language"
)

// Root object names whose field lists are routed into the dedicated
// query/mutation collections.
const (
	queryRootName    = "Query"
	mutationRootName = "Mutation"
)

// Parse reconstructs a Schema from SDL text. It never fails: when the
// document as a whole does not parse, it falls back to parsing each
// recognizable top-level definition independently, recording a warning
// for every fragment it had to skip.
func Parse(sdl string) *Schema {
	s := &Schema{Kinds: make(map[string]TypeKind)}
	for _, name := range builtinScalars {
		s.Kinds[name] = KindScalar
	}

	doc, err := language.ParseSchema("schema.graphql", sdl)
	if err == nil {
		for _, def := range doc.Definitions {
			s.addDefinition(def)
		}
		return s
	}

	// Whole-document parse failed. Recover definition by definition.
	s.warnf("document parse failed, recovering per definition: %v", err)
	for i, block := range splitDefinitions(sdl) {
		doc, err := language.ParseSchema(fmt.Sprintf("definition %d", i+1), block)
		if err != nil {
			s.warnf("skipping malformed definition: %v", err)
			continue
		}
		for _, def := range doc.Definitions {
			s.addDefinition(def)
		}
	}
	return s
}

func (s *Schema) warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, Warning{Message: fmt.Sprintf(format, args...)})
}

func (s *Schema) addDefinition(def *language.Definition) {
	switch def.Kind {
	case language.Scalar:
		s.Kinds[def.Name] = KindScalar
		s.Scalars = append(s.Scalars, ScalarDef{Name: def.Name, Description: def.Description})
	case language.Enum:
		s.Kinds[def.Name] = KindEnum
		s.Enums = append(s.Enums, convertEnum(def))
	case language.Object:
		s.Kinds[def.Name] = KindObject
		fields := convertFields(def.Fields)
		switch def.Name {
		case queryRootName:
			s.QueryFields = fields
		case mutationRootName:
			s.MutationFields = fields
		default:
			s.Objects = append(s.Objects, ObjectDef{Name: def.Name, Description: def.Description, Fields: fields})
		}
	case language.InputObject:
		s.Kinds[def.Name] = KindInputObject
		s.Inputs = append(s.Inputs, InputDef{Name: def.Name, Description: def.Description, Fields: convertFields(def.Fields)})
	case language.Interface:
		s.Kinds[def.Name] = KindInterface
	case language.Union:
		s.Kinds[def.Name] = KindUnion
	}
}

func convertEnum(def *language.Definition) EnumDef {
	e := EnumDef{Name: def.Name, Description: def.Description}
	for _, v := range def.EnumValues {
		e.Values = append(e.Values, EnumValueDef{Name: v.Name, Description: v.Description})
	}
	return e
}

func convertFields(defs []*language.FieldDefinition) []FieldDef {
	var fields []FieldDef
	for _, f := range defs {
		fd := FieldDef{
			Name:        f.Name,
			Description: f.Description,
			Type:        convertType(f.Type),
		}
		for _, a := range f.Arguments {
			fd.Arguments = append(fd.Arguments, ArgumentDef{
				Name:        a.Name,
				Description: a.Description,
				Type:        convertType(a.Type),
			})
		}
		fields = append(fields, fd)
	}
	return fields
}

// convertType resolves a declared type into a TypeRef. A syntactically
// absent annotation defaults to a string-typed named reference rather than
// failing the parse for one malformed field.
func convertType(t *language.Type) *TypeRef {
	if t == nil {
		return NamedType("String")
	}
	var ref *TypeRef
	if t.Elem != nil {
		ref = ListType(convertType(t.Elem))
	} else {
		name := t.NamedType
		if name == "" {
			name = "String"
		}
		ref = NamedType(name)
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// Top-level keywords that begin an SDL definition.
var definitionKeywords = []string{
	"scalar", "enum", "input", "interface", "union", "type",
	"schema", "directive", "extend",
}

// splitDefinitions cuts SDL source into chunks that each start at a
// top-level definition (or at the description string attached to one).
// It only needs to be right often enough for recovery: a chunk that still
// fails to parse is skipped with a warning.
func splitDefinitions(src string) []string {
	var (
		chunks []string
		starts []int
		depth  int
	)

	lineStart := true
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\n':
			lineStart = true
			continue
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			lineStart = true
			continue
		}

		if lineStart && depth == 0 {
			if c == '"' || startsWithKeyword(src[i:]) {
				starts = append(starts, i)
			}
		}
		if c != ' ' && c != '\t' && c != '\r' {
			lineStart = false
		}
	}

	for i, start := range starts {
		end := len(src)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if chunk := strings.TrimSpace(src[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

func startsWithKeyword(s string) bool {
	for _, kw := range definitionKeywords {
		if strings.HasPrefix(s, kw) {
			rest := s[len(kw):]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' {
				return true
			}
		}
	}
	return false
}
