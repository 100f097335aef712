package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireName(t *testing.T) {
	cases := map[string]string{
		"Id":          "id",
		"ID":          "id",
		"Title":       "title",
		"StartsAt":    "startsAt",
		"HasNextPage": "hasNextPage",
		"URLValue":    "urlValue",
		"URL":         "url",
		"Type_":       "type",
		"Default_":    "default",
		"x":           "x",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, WireName(in), "WireName(%q)", in)
	}
}

// The conversion must be a pure function, idempotent under re-application
// to its own output.
func TestWireNameIdempotent(t *testing.T) {
	inputs := []string{"Id", "ID", "StartsAt", "URLValue", "Type_", "hasNextPage", "endCursor"}
	for _, in := range inputs {
		once := WireName(in)
		assert.Equal(t, once, WireName(once), "WireName not idempotent for %q", in)
	}
}
