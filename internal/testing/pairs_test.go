package testing

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPairUserIDs(t *testing.T) {
	pairs := PairUserIDs([]string{"a", "b", "c", "d"})
	require.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}}, pairs)
}

func TestPairUserIDs_Single(t *testing.T) {
	require.Nil(t, PairUserIDs([]string{"a"}))
}

func TestReverseIDs(t *testing.T) {
	ids := []string{"1", "2", "3", "4", "5"}
	reversed := ReverseIDs(ids)
	require.Equal(t, []string{"5", "4", "3", "2", "1"}, reversed)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
}

func TestRandUsername(t *testing.T) {
	u := RandUsername()
	require.Len(t, u, len("user_")+10)
	require.NotEqual(t, u, RandUsername())
}
