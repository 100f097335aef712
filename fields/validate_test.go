package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullCycle stands in for a generated exhaustive type.
type fullCycle struct {
	Id        string     `json:"id"`
	Name      *string    `json:"name"`
	Number    *float64   `json:"number"`
	StartsAt  *time.Time `json:"startsAt"`
	CreatedAt time.Time  `json:"createdAt"`
	Note      **string   `json:"note"`
	Team      *fullTeam  `json:"team" graphql:"team,nested"`
}

type fullTeam struct {
	Id  string `json:"id"`
	Key string `json:"key"`
}

type cycleRef struct {
	Id       string  `json:"id"`
	Name     *string `json:"name"`
	StartsAt *string `json:"startsAt"`
	Note     *string `json:"note"`
}

func (cycleRef) GraphQLFullType() any { return fullCycle{} }

func TestValidateOK(t *testing.T) {
	require.NoError(t, Validate(cycleRef{}))
}

// No FullType declared: self-referential mode, zero obligations.
func TestValidateWithoutFullType(t *testing.T) {
	type lean struct {
		Anything  *string `json:"anything"`
		NotReal   *int    `json:"notReal"`
		Imaginary *bool   `json:"imaginary"`
	}
	assert.NoError(t, Validate(lean{}))
}

func TestValidateMissingField(t *testing.T) {
	type withTypo struct {
		Id        string  `json:"id"`
		StartedAt *string `json:"startedAt"` // schema says startsAt
	}
	err := Check(typeOf[withTypo](), typeOf[fullCycle]())
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr, 1)
	assert.Equal(t, "startedAt", verr[0].Field)
	assert.True(t, verr[0].Missing)
	assert.Contains(t, err.Error(), `"startedAt" not found`)
}

func TestValidateIncompatibleType(t *testing.T) {
	type mistyped struct {
		StartsAt *int `json:"startsAt"`
	}
	err := Check(typeOf[mistyped](), typeOf[fullCycle]())
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr, 1)
	v := verr[0]
	assert.Equal(t, "startsAt", v.Field)
	assert.False(t, v.Missing)
	// The diagnostic names the field and both type descriptions.
	assert.Contains(t, v.Message(), "startsAt")
	assert.Contains(t, v.Message(), "*time.Time")
	assert.Contains(t, v.Message(), "*int")
}

// Nested fields are checked for existence only; their inner shape is not
// unified with the full type's inner type.
func TestValidateNestedExistenceOnly(t *testing.T) {
	type unrelatedTeam struct {
		Completely *bool `json:"completely"`
	}
	type withNested struct {
		Id   string         `json:"id"`
		Team *unrelatedTeam `json:"team" graphql:"team,nested"`
	}
	assert.NoError(t, Check(typeOf[withNested](), typeOf[fullCycle]()))

	type withMissingNested struct {
		Owner *unrelatedTeam `json:"owner" graphql:"owner,nested"`
	}
	err := Check(typeOf[withMissingNested](), typeOf[fullCycle]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"owner" not found`)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	type doublyWrong struct {
		Id       *int    `json:"id"`       // schema says string; *int is a widening AND a retype
		Unknown  *string `json:"unknown"`  // not on the full type
		StartsAt *string `json:"startsAt"` // fine
	}
	err := Check(typeOf[doublyWrong](), typeOf[fullCycle]())
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr, 2)
}

func TestMustValidatePanics(t *testing.T) {
	assert.Panics(t, func() { MustValidate(badRef{}) })
}

type badRef struct {
	Nope *string `json:"nope"`
}

func (badRef) GraphQLFullType() any { return fullCycle{} }

func TestValidateBoxedNarrowings(t *testing.T) {
	// note is declared **string on the full type.
	type keepOptional struct {
		Note *string `json:"note"`
	}
	type stripAll struct {
		Note string `json:"note"`
	}
	assert.NoError(t, Check(typeOf[keepOptional](), typeOf[fullCycle]()))
	assert.NoError(t, Check(typeOf[stripAll](), typeOf[fullCycle]()))
}
