package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/pkg/types"
)

func TestNull(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var n types.Null[string]
		_, ok := n.Get()
		assert.False(t, ok)
		assert.Equal(t, "", n.String())
		assert.Equal(t, "fallback", n.Or("fallback"))
	})

	t.Run("present value", func(t *testing.T) {
		n := types.Some(3.0)
		v, ok := n.Get()
		assert.True(t, ok)
		assert.Equal(t, 3.0, v)
		assert.Equal(t, "3", n.String())
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, types.None[string]().Equal(types.None[string]()))
		assert.True(t, types.Some("Wall").Equal(types.Some("Wall")))
		assert.False(t, types.Some("Wall").Equal(types.Some("Door")))
		assert.False(t, types.Some("").Equal(types.None[string]()))
	})
}

func TestNullJSON(t *testing.T) {
	type row struct {
		Name types.Null[string]  `json:"name"`
		ID   types.Null[float64] `json:"id"`
	}

	data, err := json.Marshal(row{Name: types.Some("Wall")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Wall","id":null}`, string(data))

	var decoded row
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"id":7}`), &decoded))
	assert.False(t, decoded.Name.Valid)
	assert.Equal(t, types.Some(7.0), decoded.ID)
}

func TestTableNames(t *testing.T) {
	assert.Len(t, types.TableNames(), 5)
	assert.True(t, types.TableEntities.IsValid())
	assert.False(t, types.TableName("models").IsValid())
	assert.True(t, types.CentralDocID.IsValid())
	assert.False(t, types.SourceID("providers").IsValid())
}
