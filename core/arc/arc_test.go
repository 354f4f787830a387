package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
	"arc_hierarchy": {
		"2": {
			"code": "2",
			"description": "Energy Management",
			"children": {
				"2.1": {
					"code": "2.1",
					"description": "Combustion Systems",
					"children": {
						"2.11": {
							"code": "2.11",
							"description": "Furnaces, Ovens And Boilers",
							"children": {
								"2.111": {
									"code": "2.111",
									"description": null,
									"children": {}
								}
							}
						}
					}
				}
			}
		},
		"4": {
			"code": "4",
			"description": "Waste Minimization",
			"children": {}
		}
	},
	"arc_codes": {
		"2": "Energy Management",
		"2.1": "Combustion Systems",
		"2.11": "Furnaces, Ovens And Boilers",
		"4": "Waste Minimization"
	}
}`

func newTestResolver(t *testing.T) *Resolver {
	r, err := Parse([]byte(testDocument))
	require.NoError(t, err)
	return r
}

func TestParse(t *testing.T) {
	t.Run("Valid Document", func(t *testing.T) {
		r := newTestResolver(t)
		assert.NotNil(t, r)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		r, err := Parse([]byte(`{"arc_codes":`))
		assert.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("Empty Document", func(t *testing.T) {
		r, err := Parse([]byte(`{}`))
		assert.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestDescription(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, "Combustion Systems", r.Description("2.1"))
	assert.Equal(t, "Combustion Systems", r.Description(" 2.1 "))
	assert.Equal(t, DescriptionNotFound, r.Description("9.99"))
	assert.Equal(t, DescriptionUnknown, r.Description(""))
}

func TestSubtree(t *testing.T) {
	r := newTestResolver(t)

	t.Run("Category", func(t *testing.T) {
		node, ok := r.Subtree("2")
		require.True(t, ok)
		assert.Equal(t, "2", node.Code)
		assert.Len(t, node.Children, 1)
	})

	t.Run("Nested Code", func(t *testing.T) {
		node, ok := r.Subtree("2.11")
		require.True(t, ok)
		assert.Equal(t, "2.11", node.Code)
	})

	t.Run("Deep Code", func(t *testing.T) {
		node, ok := r.Subtree("2.111")
		require.True(t, ok)
		assert.Equal(t, "2.111", node.Code)
		assert.Nil(t, node.Description)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		_, ok := r.Subtree("7")
		assert.False(t, ok)
	})

	t.Run("Unknown Leaf", func(t *testing.T) {
		_, ok := r.Subtree("2.19")
		assert.False(t, ok)
	})

	t.Run("No Digits", func(t *testing.T) {
		_, ok := r.Subtree("abc")
		assert.False(t, ok)
	})
}

func TestFlatten(t *testing.T) {
	r := newTestResolver(t)

	t.Run("Subtree", func(t *testing.T) {
		node, ok := r.Subtree("2.1")
		require.True(t, ok)

		flat := Flatten(node)
		assert.Equal(t, map[string]string{
			"2.1":   "Combustion Systems",
			"2.11":  "Furnaces, Ovens And Boilers",
			"2.111": "",
		}, flat)
	})

	t.Run("All", func(t *testing.T) {
		flat := r.FlattenAll()
		assert.Len(t, flat, 5)
		assert.Equal(t, "Energy Management", flat["2"])
		assert.Equal(t, "Waste Minimization", flat["4"])
	})

	t.Run("Nil Node", func(t *testing.T) {
		assert.Empty(t, Flatten(nil))
	})
}
