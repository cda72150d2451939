package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestOrderedMapUnmarshalKeepsOrder(t *testing.T) {
	var m OrderedMap[int]
	require.NoError(t, yaml.Unmarshal([]byte("zeta: 1\nalpha: 2\nmid: 3\n"), &m))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	v, ok := m.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestOrderedMapDuplicateKeys(t *testing.T) {
	var m OrderedMap[int]
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m OrderedMap[string]
	assert.Empty(t, m.Keys())
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMapKeysIsACopy(t *testing.T) {
	var m OrderedMap[int]
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestOrderedMapNullAndErrors(t *testing.T) {
	var holder struct {
		M OrderedMap[int] `yaml:"m"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("m: ~\n"), &holder))
	assert.Equal(t, 0, holder.M.Len())

	err := yaml.Unmarshal([]byte("m: [1, 2]\n"), &holder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestSchemaTypeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		primary string
		null    bool
		wantErr bool
	}{
		{name: "scalar", input: "type: integer", primary: "integer"},
		{name: "array", input: "type: [\"null\", number]", primary: "number", null: true},
		{name: "missing", input: "format: uuid", primary: ""},
		{name: "mapping", input: "type: {a: b}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Schema
			err := yaml.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.primary, s.PrimaryType())
			assert.Equal(t, tt.null, s.Type.IncludesNull())
		})
	}
}

func TestSchemaNilHelpers(t *testing.T) {
	var s *Schema
	assert.Equal(t, "", s.PrimaryType())
	assert.False(t, s.IsRequired("id"))
}
