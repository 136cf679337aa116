package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapPreservesJSONKeyOrder(t *testing.T) {
	var m OrderedMap
	require.NoError(t, json.Unmarshal([]byte(`{"書名":"測試","ISBN":"9789571322"," 備註":"","頁數":320,"精裝":true,"作者":null}`), &m))

	assert.Equal(t, []string{"書名", "ISBN", " 備註", "頁數", "精裝", "作者"}, m.Keys())

	v, ok := m.Get("書名")
	assert.True(t, ok)
	assert.Equal(t, "測試", v)

	// Scalars are stringified, null becomes empty
	v, _ = m.Get("頁數")
	assert.Equal(t, "320", v)
	v, _ = m.Get("精裝")
	assert.Equal(t, "true", v)
	v, _ = m.Get("作者")
	assert.Equal(t, "", v)
}

func TestOrderedMapSet(t *testing.T) {
	var m OrderedMap
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys(), "replaced key keeps its position")
	v, _ := m.Get("a")
	assert.Equal(t, "3", v)
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMapMarshalRoundTrip(t *testing.T) {
	var m OrderedMap
	m.Set("z", "last?")
	m.Set("a", "first?")
	m.Set("m", "middle?")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last?","a":"first?","m":"middle?"}`, string(out))

	var back OrderedMap
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, m.Keys(), back.Keys())
}

func TestOrderedMapUnmarshalNull(t *testing.T) {
	m := OrderedMap{}
	m.Set("stale", "x")
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, 0, m.Len())
}

func TestOrderedMapRejectsNonObject(t *testing.T) {
	var m OrderedMap
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
}
