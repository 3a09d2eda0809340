package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, 1, store.Saves())
}

func TestNewConfigStoreWith(t *testing.T) {
	seed := map[string]any{
		"router.life_bucket":  "year",
		"router.tail_window":  int64(4000),
		"router.tag_denylist": []any{"journal", "daily"},
	}
	store := NewConfigStoreWith(seed)
	seed["router.life_bucket"] = "month"

	assert.Equal(t, "year", store.GetString("router.life_bucket"))
	assert.Equal(t, 4000, store.GetInt("router.tail_window"))
	assert.Equal(t, []string{"journal", "daily"}, store.GetStringSlice("router.tag_denylist"))
	assert.Nil(t, store.GetStringSlice("router.life_bucket"))
	assert.Zero(t, store.Saves())

	require.NoError(t, store.Set("router.use_index", false))
	assert.Equal(t, 1, store.Saves())
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var store driven.ConfigStore = NewConfigStore()
	require.NoError(t, store.Set("router.life_bucket", "year"))
	assert.Equal(t, "year", store.GetString("router.life_bucket"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("i", 7))
	require.NoError(t, store.Set("i64", int64(9)))
	require.NoError(t, store.Set("f", 0.25))
	require.NoError(t, store.Set("b", true))
	require.NoError(t, store.Set("list", []any{"a", 1, "b"}))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Empty(t, store.GetString("i"))
	assert.Equal(t, 7, store.GetInt("i"))
	assert.Equal(t, 9, store.GetInt("i64"))
	assert.Equal(t, 0, store.GetInt("f"))
	assert.InDelta(t, 0.25, store.GetFloat("f"), 1e-9)
	assert.InDelta(t, 7, store.GetFloat("i"), 1e-9)
	assert.Zero(t, store.GetFloat("s"))
	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))
	assert.Nil(t, store.GetStringSlice("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			_ = store.Set("k", id)
			_ = store.GetInt("k")
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
