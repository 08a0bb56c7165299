package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_KeyedCollection(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("zeta: 1\nalpha: two\nmid: [3]\n"), "inline")
	require.NoError(t, err)

	var coll KeyedCollection = doc
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, coll.Keys())
	assert.Equal(t, 3, coll.Len())
	assert.True(t, coll.Contains("alpha"))
	assert.False(t, coll.Contains("beta"))

	v, err := coll.Get("mid")
	require.NoError(t, err)
	assert.Equal(t, []any{3}, v)

	_, err = coll.Get("beta")
	var notFound *KeyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "beta", notFound.Key)
	assert.Equal(t, `key "beta" not found`, err.Error())
}

func TestMapping_NilIsEmpty(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	assert.False(t, m.Contains("x"))

	_, err := m.Get("x")
	require.Error(t, err)
}

func TestMapping_MapIsACopy(t *testing.T) {
	doc, err := NewLoader().Parse([]byte("list: [a, {b: c}]\n"), "inline")
	require.NoError(t, err)

	plain := doc.Map()
	plain["list"].([]any)[0] = "changed"

	v, _ := doc.Get("list")
	assert.Equal(t, "a", v.([]any)[0])
	assert.IsType(t, &Mapping{}, v.([]any)[1])
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		val  any
		want string
	}{
		{nil, "null"},
		{newMapping(), "mapping"},
		{[]any{}, "sequence"},
		{"s", "string"},
		{true, "bool"},
		{1, "int"},
		{1.5, "float"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.val))
	}
}
