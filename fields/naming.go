package fields

import "unicode"

// WireName converts a Go field name to its GraphQL wire name.
//
// The conversion is lowerCamel: the leading uppercase run is lowered,
// keeping the run's last letter as the start of the next word when it is
// followed by a lowercase letter ("StartsAt" -> "startsAt", "ID" -> "id",
// "URLValue" -> "urlValue"). A trailing underscore — the generated-code
// convention for identifiers that would otherwise collide with a reserved
// or pre-existing name — is stripped first, so the wire name is always the
// clean name. Pure and idempotent: applying it to its own output is a
// no-op.
func WireName(name string) string {
	for len(name) > 0 && name[len(name)-1] == '_' {
		name = name[:len(name)-1]
	}
	if name == "" {
		return ""
	}

	runes := []rune(name)
	run := 0
	for run < len(runes) && unicode.IsUpper(runes[run]) {
		run++
	}
	if run == 0 {
		return string(runes)
	}
	// "URLValue": lower "URL", keep "Value" as the next word.
	if run < len(runes) && run > 1 {
		run--
	}
	for i := 0; i < run; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
