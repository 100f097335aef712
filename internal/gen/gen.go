// Package gen emits Go source from a parsed schema: enum string types,
// object structs for query results, and input structs for mutation
// variables. Output order follows the schema order, so a canonical SDL
// yields byte-identical output on every run.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/lineark/lineark-go/internal/schema"
)

const header = "// Code generated by lineark-gen. DO NOT EDIT.\n\n"

// scalarGoTypes maps schema scalar names to Go types. Scalars not listed
// here decode as raw JSON.
var scalarGoTypes = map[string]string{
	"String":       "string",
	"ID":           "string",
	"Int":          "int",
	"Float":        "float64",
	"Boolean":      "bool",
	"DateTime":     "time.Time",
	"TimelessDate": "time.Time",
}

// Generate renders the schema as one Go source file in package pkg.
func Generate(s *schema.Schema, pkg string) ([]byte, error) {
	g := &generator{schema: s}
	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	body := g.render()
	b.WriteString(g.renderImports())
	b.Write(body)

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

type generator struct {
	schema   *schema.Schema
	needTime bool
	needJSON bool
}

func (g *generator) render() []byte {
	var b bytes.Buffer
	for _, e := range g.schema.Enums {
		g.renderEnum(&b, e)
	}
	for _, o := range g.schema.Objects {
		g.renderStruct(&b, o.Name, o.Description, o.Fields, false)
	}
	for _, in := range g.schema.Inputs {
		g.renderStruct(&b, in.Name, in.Description, in.Fields, true)
	}
	return b.Bytes()
}

func (g *generator) renderImports() string {
	var imports []string
	if g.needTime {
		imports = append(imports, `"time"`)
	}
	if g.needJSON {
		imports = append(imports, `json "github.com/goccy/go-json"`)
	}
	switch len(imports) {
	case 0:
		return ""
	case 1:
		return "import " + imports[0] + "\n\n"
	default:
		return "import (\n\t" + strings.Join(imports, "\n\t") + "\n)\n\n"
	}
}

func (g *generator) renderEnum(b *bytes.Buffer, e schema.EnumDef) {
	writeDoc(b, e.Description, e.Name)
	fmt.Fprintf(b, "type %s string\n\n", e.Name)
	if len(e.Values) == 0 {
		return
	}
	b.WriteString("const (\n")
	for _, v := range e.Values {
		if v.Description != "" {
			fmt.Fprintf(b, "\t// %s\n", firstLine(v.Description))
		}
		fmt.Fprintf(b, "\t%s%s %s = %q\n", e.Name, exportName(v.Name), e.Name, v.Name)
	}
	b.WriteString(")\n\n")
}

func (g *generator) renderStruct(b *bytes.Buffer, name, desc string, defs []schema.FieldDef, input bool) {
	writeDoc(b, desc, name)
	fmt.Fprintf(b, "type %s struct {\n", name)
	seen := map[string]bool{}
	for _, f := range defs {
		goName := exportName(f.Name)
		for seen[goName] {
			goName += "_"
		}
		seen[goName] = true

		goType, nested := g.goType(f.Type, input)
		if f.Description != "" {
			fmt.Fprintf(b, "\t// %s\n", firstLine(f.Description))
		}
		tag := fmt.Sprintf("json:%q", jsonTag(f.Name, input))
		if nested {
			tag += fmt.Sprintf(" graphql:%q", f.Name+",nested")
		} else if strings.HasSuffix(goName, "_") {
			tag += fmt.Sprintf(" graphql:%q", f.Name)
		}
		fmt.Fprintf(b, "\t%s %s `%s`\n", goName, goType, tag)
	}
	b.WriteString("}\n\n")
}

func jsonTag(wire string, input bool) string {
	if input {
		return wire + ",omitempty"
	}
	return wire
}

// goType maps a type reference onto a Go type. The second result reports
// whether the leaf is a composite type, which needs a nested selection.
func (g *generator) goType(t *schema.TypeRef, input bool) (string, bool) {
	nonNull := t.IsNonNull()
	if nonNull {
		t = t.OfType
	}
	switch t.Kind {
	case schema.TypeRefKindList:
		elem, nested := g.goType(t.OfType, input)
		return "[]" + elem, nested
	case schema.TypeRefKindNamed:
		goType, nested, nilable := g.namedGoType(t.Named)
		if !nonNull && !nilable {
			goType = "*" + goType
		}
		return goType, nested
	default:
		// NON_NULL cannot wrap NON_NULL; treat a malformed ref as opaque.
		g.needJSON = true
		return "json.RawMessage", false
	}
}

func (g *generator) namedGoType(name string) (goType string, nested, nilable bool) {
	switch g.schema.Kinds[name] {
	case schema.KindEnum:
		return name, false, false
	case schema.KindObject:
		return name, true, false
	case schema.KindInputObject:
		return name, false, false
	case schema.KindScalar:
		if mapped, ok := scalarGoTypes[name]; ok {
			if mapped == "time.Time" {
				g.needTime = true
			}
			return mapped, false, false
		}
		g.needJSON = true
		return "json.RawMessage", false, true
	default:
		// Interfaces, unions, and names the schema never defines stay
		// opaque so callers can decode them however they need.
		g.needJSON = true
		return "json.RawMessage", false, true
	}
}

func writeDoc(b *bytes.Buffer, desc, name string) {
	if desc == "" {
		return
	}
	line := firstLine(desc)
	if !strings.HasPrefix(line, name+" ") {
		line = name + " is " + lowerFirst(line)
	}
	fmt.Fprintf(b, "// %s\n", line)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// exportName converts a wire name or enum value to an exported Go
// identifier: "createdAt" -> "CreatedAt", "IN_PROGRESS" -> "InProgress".
func exportName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if p == strings.ToUpper(p) && len(p) > 1 {
			p = strings.ToLower(p)
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}
