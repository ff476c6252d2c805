package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func TestGoCache_Basic(t *testing.T) {
	c := NewGoCache(5*time.Minute, 10*time.Minute)

	c.Set("key1", []byte("value1"), 0)
	c.Set("key2", []byte("value2"), 0)

	value, found := c.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), value)

	_, found = c.Get("missing")
	assert.False(t, found)

	assert.Equal(t, 2, c.ItemCount())

	c.Delete("key1")
	_, found = c.Get("key1")
	assert.False(t, found)
	assert.Equal(t, 1, c.ItemCount())

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	c := NewGoCache(time.Minute, time.Minute)

	c.Set("short", []byte("gone soon"), 50*time.Millisecond)
	c.Set("long", []byte("stays"), 0)

	_, found := c.Get("short")
	require.True(t, found)

	time.Sleep(100 * time.Millisecond)

	_, found = c.Get("short")
	assert.False(t, found, "item should expire after its own TTL")
	_, found = c.Get("long")
	assert.True(t, found, "item should use the default expiration")
}

func TestJSONHelpers(t *testing.T) {
	c := NewGoCache(time.Minute, time.Minute)

	require.NoError(t, SetJSON(c, "coin:bitcoin", payload{ID: "bitcoin", Price: 50000}, 0))

	value, found := GetJSON[payload](c, "coin:bitcoin")
	require.True(t, found)
	assert.Equal(t, payload{ID: "bitcoin", Price: 50000}, value)

	_, found = GetJSON[payload](c, "coin:ethereum")
	assert.False(t, found)
}

func TestGetJSON_EvictsUndecodable(t *testing.T) {
	c := NewGoCache(time.Minute, time.Minute)
	c.Set("coin:broken", []byte("{not json"), 0)

	value, found := GetJSON[payload](c, "coin:broken")
	assert.False(t, found)
	assert.Equal(t, payload{}, value)
	assert.Equal(t, 0, c.ItemCount())
}
