package fields

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stateRef struct {
	Id   *string `json:"id"`
	Name *string `json:"name"`
}

type issueRef struct {
	Id    *string   `json:"id"`
	Title *string   `json:"title"`
	State *stateRef `json:"state" graphql:"state,nested"`
}

type teamRef struct {
	Key    *string    `json:"key"`
	Issues []issueRef `json:"issues" graphql:",nested"`
}

func TestSelectionPlainFields(t *testing.T) {
	assert.Equal(t, "id name", Selection[stateRef]())
}

func TestSelectionNestedComposition(t *testing.T) {
	// Exactly one space before the brace, one inside each side, no
	// trailing whitespace.
	assert.Equal(t, "id title state { id name }", Selection[issueRef]())
}

func TestSelectionNestedThroughSlice(t *testing.T) {
	assert.Equal(t, "key issues { id title state { id name } }", Selection[teamRef]())
}

func TestSelectionDeclarationOrder(t *testing.T) {
	type ordered struct {
		Zebra *string `json:"zebra"`
		Alpha *string `json:"alpha"`
		Mango *string `json:"mango"`
	}
	assert.Equal(t, "zebra alpha mango", Selection[ordered]())
}

func TestSelectionTagOverridesAndSkips(t *testing.T) {
	type custom struct {
		Renamed  *string `graphql:"wireName"`
		Ignored  *string `graphql:"-"`
		Derived  *string
		internal string
	}
	_ = custom{internal: ""}
	assert.Equal(t, "wireName derived", Selection[custom]())
}

func TestSelectionStableAcrossCalls(t *testing.T) {
	first := Selection[issueRef]()
	second := Selection[issueRef]()
	assert.Equal(t, first, second)
}

func TestSelectionOfPointerType(t *testing.T) {
	var p *issueRef
	assert.Equal(t, Selection[issueRef](), SelectionOf(reflect.TypeOf(p)))
}
