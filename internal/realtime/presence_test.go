package realtime

import (
	"github.com/stretchr/testify/require"
	"strconv"
	"sync"
	"testing"
)

func TestPresence(t *testing.T) {
	p := NewPresence()

	require.True(t, p.Add("b"))
	require.False(t, p.Add("b"))
	require.True(t, p.Add("a"))
	require.Equal(t, []string{"a", "b"}, p.Online())

	require.False(t, p.Remove("b"))
	require.Equal(t, []string{"a", "b"}, p.Online())
	require.True(t, p.Remove("b"))
	require.Equal(t, []string{"a"}, p.Online())

	require.False(t, p.Remove("missing"))
}

func TestPresence_Concurrent(t *testing.T) {
	p := NewPresence()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := strconv.Itoa(i % 5)
			p.Add(id)
			p.Add(id)
			p.Remove(id)
		}(i)
	}
	wg.Wait()

	require.Equal(t, []string{"0", "1", "2", "3", "4"}, p.Online())

	for i := 0; i < 50; i++ {
		p.Remove(strconv.Itoa(i % 5))
	}
	require.Empty(t, p.Online())
}
