package symtab

import (
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/symtab/utils/math"
)

func insertionOrders(n int) map[string][]int {
	ascending := make([]int, n)
	descending := make([]int, n)
	zigzag := make([]int, n)
	for i := 0; i < n; i++ {
		ascending[i] = i
		descending[i] = n - 1 - i
		if i%2 == 0 {
			zigzag[i] = i / 2
		} else {
			zigzag[i] = n - 1 - i/2
		}
	}
	return map[string][]int{
		"ascending":  ascending,
		"descending": descending,
		"zigzag":     zigzag,
		"random":     rand.New(rand.NewSource(3)).Perm(n),
	}
}

func TestRedBlackTreeInvariantsAfterEveryInsert(t *testing.T) {
	for name, keys := range insertionOrders(300) {
		m := NewRedBlackTreeMap[int, int]()
		for i, key := range keys {
			m.Add(key, i)
			require.Nil(t, m.Validate(), "%s: after inserting %d", name, key)
		}
		require.Equal(t, len(keys), m.Size())
	}
}

func TestRedBlackTreeHeightBound(t *testing.T) {
	for name, keys := range insertionOrders(5000) {
		m := NewRedBlackTreeMap[int, int]()
		for _, key := range keys {
			m.Add(key, key)
			n := m.Size()
			require.LessOrEqual(t, m.Height(), 2*math.Log2Floor(n+1), "%s: n=%d", name, n)
		}
	}
}

func TestRedBlackTreeRootStaysBlack(t *testing.T) {
	m := NewRedBlackTreeMap[int, int]()
	m.Add(1, 1)
	require.Equal(t, black, m.nodes[m.root].color)
	m.Add(2, 2)
	require.Equal(t, black, m.nodes[m.root].color)
	// three ascending keys force a rotation at the root
	m.Add(3, 3)
	require.Equal(t, 2, m.nodes[m.root].key)
	require.Equal(t, black, m.nodes[m.root].color)
	require.Equal(t, int32(-1), m.nodes[m.root].parent)
	require.Equal(t, 3, m.nodes[m.root].size)
}

func TestRedBlackTreeUpdateKeepsArena(t *testing.T) {
	m := NewRedBlackTreeMap[string, int]()
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("a", 3)
	require.Equal(t, 2, len(m.nodes))
	v, ok := m.Value("a")
	require.Equal(t, true, ok)
	require.Equal(t, 3, *v)
}

func TestRedBlackTreeValidateDetectsBrokenLinks(t *testing.T) {
	m := NewRedBlackTreeMap[int, int]()
	for _, key := range []int{2, 1, 3} {
		m.Add(key, key)
	}
	require.Nil(t, m.Validate())

	left := m.nodes[m.root].child[0]
	m.nodes[left].parent = left
	require.ErrorIs(t, m.Validate(), ErrParentLink)
	m.nodes[left].parent = m.root

	m.nodes[left].color = black
	require.ErrorIs(t, m.Validate(), ErrBlackHeight)
	m.nodes[left].color = red

	m.nodes[m.root].color = red
	require.ErrorIs(t, m.Validate(), ErrRootColor)
}

func TestRedBlackTreeTracesRootRotation(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.TraceLevel)
	m := NewRedBlackTreeMap[int, int](WithLogger(logger.WithField("symtab", "test")))
	for i := 0; i < 3; i++ {
		m.Add(i, i)
	}
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, "root rotated", hook.LastEntry().Message)
	require.Equal(t, 1, hook.LastEntry().Data["root"])
}
