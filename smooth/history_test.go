package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryFIFOOrder(t *testing.T) {
	var h history
	assert.True(t, h.empty())
	assert.Equal(t, 0, h.size())

	h.push(frameRecord{decision: singleAt(100), objectCount: 1})
	h.push(frameRecord{decision: singleAt(200), objectCount: 2})
	h.push(frameRecord{decision: singleAt(300), objectCount: 3})
	assert.False(t, h.empty())
	assert.Equal(t, 3, h.size())

	front, ok := h.front()
	require.True(t, ok)
	assert.Equal(t, singleAt(100), front.decision)

	back, ok := h.back()
	require.True(t, ok)
	assert.Equal(t, singleAt(300), back.decision)

	// Peeking removes nothing.
	assert.Equal(t, 3, h.size())

	for i, want := range []float64{100, 200, 300} {
		rec, ok := h.popFront()
		require.True(t, ok, "record %d", i)
		assert.Equal(t, singleAt(want), rec.decision)
	}
	assert.True(t, h.empty())
}

func TestHistoryEmptyAccessors(t *testing.T) {
	var h history

	_, ok := h.front()
	assert.False(t, ok)
	_, ok = h.back()
	assert.False(t, ok)
	_, ok = h.popFront()
	assert.False(t, ok)
}

func TestHistoryReusableAfterDrain(t *testing.T) {
	var h history
	h.push(frameRecord{decision: singleAt(100)})
	_, ok := h.popFront()
	require.True(t, ok)
	require.True(t, h.empty())

	h.push(frameRecord{decision: singleAt(400), objectCount: 4})
	rec, ok := h.front()
	require.True(t, ok)
	assert.Equal(t, singleAt(400), rec.decision)
	assert.Equal(t, 4, rec.objectCount)
}
