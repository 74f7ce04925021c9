package whatsapp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentSetSeenOrAdd(t *testing.T) {
	s := NewRecentSet(4)

	assert.False(t, s.SeenOrAdd("a"))
	assert.True(t, s.SeenOrAdd("a"))
	assert.False(t, s.SeenOrAdd("b"))
	assert.Equal(t, 2, s.Len())
}

func TestRecentSetEvictsOldest(t *testing.T) {
	s := NewRecentSet(3)

	for _, id := range []string{"a", "b", "c"} {
		assert.False(t, s.SeenOrAdd(id))
	}
	// "d" pushes out "a".
	assert.False(t, s.SeenOrAdd("d"))
	assert.Equal(t, 3, s.Len())

	assert.False(t, s.SeenOrAdd("a"))
	assert.True(t, s.SeenOrAdd("c"))
	assert.True(t, s.SeenOrAdd("d"))
}

func TestRecentSetDefaultCapacity(t *testing.T) {
	s := NewRecentSet(0)
	for i := 0; i < 256; i++ {
		assert.False(t, s.SeenOrAdd(fmt.Sprintf("id-%d", i)))
	}
	assert.Equal(t, 256, s.Len())
	assert.False(t, s.SeenOrAdd("one-more"))
	assert.Equal(t, 256, s.Len())
}
