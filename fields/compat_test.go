package fields

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// The full totality grid over {T, *T, **T, T'} with T = string, T' = int.
// Compatible must hold exactly for the enumerated narrowings and be false
// everywhere else — narrowing only, never widening.
func TestCompatibleGrid(t *testing.T) {
	cases := []struct {
		name string
		full reflect.Type
		proj reflect.Type
		want bool
	}{
		{"identical", typeOf[string](), typeOf[string](), true},
		{"optional stripped", typeOf[*string](), typeOf[string](), true},
		{"optional boxed stripped", typeOf[**string](), typeOf[string](), true},
		{"box stripped optional kept", typeOf[**string](), typeOf[*string](), true},

		{"widening forbidden", typeOf[string](), typeOf[*string](), false},
		{"boxing forbidden", typeOf[string](), typeOf[**string](), false},
		{"optional widening forbidden", typeOf[*string](), typeOf[**string](), false},
		{"different base type", typeOf[*string](), typeOf[int](), false},
		{"different base identical shape", typeOf[string](), typeOf[int](), false},
		{"optional different base", typeOf[*string](), typeOf[*int](), false},
		{"boxed different base", typeOf[**string](), typeOf[int](), false},

		{"timestamp as string", typeOf[time.Time](), typeOf[string](), true},
		{"optional timestamp as optional string", typeOf[*time.Time](), typeOf[*string](), true},
		{"optional timestamp as string", typeOf[*time.Time](), typeOf[string](), true},
		{"string as timestamp forbidden", typeOf[string](), typeOf[time.Time](), false},
		{"optional string as timestamp forbidden", typeOf[*string](), typeOf[*time.Time](), false},
		{"boxed timestamp as string not enumerated", typeOf[**time.Time](), typeOf[string](), false},
		{"timestamp as optional string forbidden", typeOf[time.Time](), typeOf[*string](), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compatible(tc.full, tc.proj),
				"Compatible(%s, %s)", tc.full, tc.proj)
		})
	}
}

// Optional timestamps still satisfy the plain optional-stripping rules.
func TestCompatibleTimestampIdentityRules(t *testing.T) {
	assert.True(t, Compatible(typeOf[*time.Time](), typeOf[time.Time]()))
	assert.True(t, Compatible(typeOf[time.Time](), typeOf[time.Time]()))
}
