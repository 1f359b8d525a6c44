package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[string]()
	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Empty(t, q.ReadAll())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Size())

	item, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	assert.Equal(t, []string{"b", "c"}, q.ReadAll())
	assert.Zero(t, q.Size())

	q.Enqueue("d")
	q.Clear()
	assert.Zero(t, q.Size())
}

func TestInMemoryQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				q.Enqueue(j)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.ReadAll(), 4000)
}
