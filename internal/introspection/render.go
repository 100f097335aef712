package introspection

import (
	"sort"
	"strings"
)

// builtinScalars are never emitted; every SDL consumer pre-registers them.
var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

// RenderSDL converts an introspection document into canonical SDL.
//
// Deterministic: types are sorted by (kind rank, name), so rendering the
// same document twice yields byte-identical text. Introspection meta types
// (names starting with "__") and built-in scalars are skipped.
func RenderSDL(doc *Document) string {
	if doc == nil {
		return ""
	}

	types := make([]*Type, 0, len(doc.Types))
	for i := range doc.Types {
		t := &doc.Types[i]
		if strings.HasPrefix(t.Name, "__") {
			continue
		}
		if t.Kind == "SCALAR" && builtinScalars[t.Name] {
			continue
		}
		types = append(types, t)
	}
	sort.SliceStable(types, func(i, j int) bool {
		ri, rj := kindRank(types[i].Kind), kindRank(types[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return types[i].Name < types[j].Name
	})

	var b strings.Builder
	for _, t := range types {
		switch t.Kind {
		case "SCALAR":
			renderScalar(&b, t)
		case "ENUM":
			renderEnum(&b, t)
		case "INPUT_OBJECT":
			renderInputObject(&b, t)
		case "INTERFACE":
			renderComposite(&b, t, "interface")
		case "OBJECT":
			renderComposite(&b, t, "type")
		case "UNION":
			renderUnion(&b, t)
		}
	}
	return b.String()
}

func kindRank(kind string) int {
	switch kind {
	case "SCALAR":
		return 0
	case "ENUM":
		return 1
	case "INPUT_OBJECT":
		return 2
	case "INTERFACE":
		return 3
	case "OBJECT":
		return 4
	case "UNION":
		return 5
	default:
		return 6
	}
}

// ----- render helpers -----

// renderDescription emits a description immediately before its element.
// Single-line descriptions become a quoted string on the same line;
// descriptions containing a newline become a triple-quoted block.
func renderDescription(b *strings.Builder, desc, indent string) {
	if desc == "" {
		return
	}
	if strings.Contains(desc, "\n") {
		b.WriteString(indent)
		b.WriteString(`"""`)
		b.WriteString(desc)
		b.WriteString("\"\"\"\n")
		return
	}
	b.WriteString(indent)
	b.WriteString(`"`)
	b.WriteString(strings.ReplaceAll(desc, `"`, `\"`))
	b.WriteString(`" `)
}

func renderDeprecated(b *strings.Builder, isDeprecated bool, reason *string) {
	if !isDeprecated {
		return
	}
	if reason != nil {
		b.WriteString(` @deprecated(reason: "`)
		b.WriteString(strings.ReplaceAll(*reason, `"`, `\"`))
		b.WriteString(`")`)
		return
	}
	b.WriteString(" @deprecated")
}

func renderDefault(b *strings.Builder, dv *string) {
	if dv == nil || *dv == "" {
		return
	}
	b.WriteString(" = ")
	b.WriteString(*dv)
}

func renderScalar(b *strings.Builder, t *Type) {
	renderDescription(b, t.Description, "")
	b.WriteString("scalar ")
	b.WriteString(t.Name)
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, t *Type) {
	renderDescription(b, t.Description, "")
	b.WriteString("enum ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, v := range t.EnumValues {
		renderDescription(b, v.Description, "  ")
		if v.Description == "" || strings.Contains(v.Description, "\n") {
			b.WriteString("  ")
		}
		b.WriteString(v.Name)
		renderDeprecated(b, v.IsDeprecated, v.DeprecationReason)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, t *Type) {
	renderDescription(b, t.Description, "")
	b.WriteString("input ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, f := range t.InputFields {
		renderDescription(b, f.Description, "  ")
		if f.Description == "" || strings.Contains(f.Description, "\n") {
			b.WriteString("  ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(renderTypeRef(f.Type))
		renderDefault(b, f.DefaultValue)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderComposite(b *strings.Builder, t *Type, keyword string) {
	renderDescription(b, t.Description, "")
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(t.Name)
	if names := interfaceNames(t.Interfaces); len(names) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(names, " & "))
	}
	b.WriteString(" {\n")
	for _, f := range t.Fields {
		renderField(b, &f)
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, t *Type) {
	renderDescription(b, t.Description, "")
	members := make([]string, 0, len(t.PossibleTypes))
	for _, pt := range t.PossibleTypes {
		if pt.Name != "" {
			members = append(members, pt.Name)
		}
	}
	b.WriteString("union ")
	b.WriteString(t.Name)
	b.WriteString(" = ")
	b.WriteString(strings.Join(members, " | "))
	b.WriteString("\n\n")
}

func renderField(b *strings.Builder, f *Field) {
	renderDescription(b, f.Description, "  ")
	if f.Description == "" || strings.Contains(f.Description, "\n") {
		b.WriteString("  ")
	}
	b.WriteString(f.Name)
	if len(f.Args) > 0 {
		b.WriteString("(")
		for i, arg := range f.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(renderTypeRef(arg.Type))
			renderDefault(b, arg.DefaultValue)
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(renderTypeRef(f.Type))
	renderDeprecated(b, f.IsDeprecated, f.DeprecationReason)
	b.WriteString("\n")
}

func interfaceNames(refs []TypeRef) []string {
	var names []string
	for _, r := range refs {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}

// renderTypeRef renders a type reference recursively. Unresolved kinds or
// missing names render as "Unknown" so that rendering stays total over
// partial introspection data.
func renderTypeRef(t *TypeRef) string {
	if t == nil {
		return "Unknown"
	}
	switch t.Kind {
	case "NON_NULL":
		return renderTypeRef(t.OfType) + "!"
	case "LIST":
		return "[" + renderTypeRef(t.OfType) + "]"
	default:
		if t.Name == "" {
			return "Unknown"
		}
		return t.Name
	}
}
