package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
	Count       Field[int]    `json:"count"`
}

func TestFieldOmitted(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.Present())
	assert.False(t, p.Name.IsNull())

	_, ok := p.Name.Value()
	assert.False(t, ok)
}

func TestFieldNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"description": null}`), &p))

	assert.True(t, p.Description.Present())
	assert.True(t, p.Description.IsNull())

	_, ok := p.Description.Value()
	assert.False(t, ok)

	// Other fields stay absent
	assert.False(t, p.Name.Present())
}

func TestFieldSet(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Math", "count": 3}`), &p))

	assert.True(t, p.Name.Present())
	assert.False(t, p.Name.IsNull())

	name, ok := p.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "Math", name)

	count, ok := p.Count.Value()
	require.True(t, ok)
	assert.Equal(t, 3, count)
}

func TestFieldEmptyStringIsNotNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": ""}`), &p))

	assert.True(t, p.Name.Present())
	assert.False(t, p.Name.IsNull())

	name, ok := p.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "", name)
}

func TestFieldTypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"count": "three"}`), &p)
	assert.Error(t, err)
}

func TestFieldMarshalRoundTrip(t *testing.T) {
	p := payload{Name: Set("Physics"), Description: Null[string]()}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Physics","description":null,"count":null}`, string(data))
}
