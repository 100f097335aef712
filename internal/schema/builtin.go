package schema

// Built-in scalar names, pre-seeded into every kind map before any user
// definition is processed so the map always resolves known primitives.
var builtinScalars = []string{"String", "Int", "Float", "Boolean", "ID"}

// IsBuiltinScalar reports whether name is one of the five GraphQL
// built-in scalars.
func IsBuiltinScalar(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID":
		return true
	}
	return false
}
