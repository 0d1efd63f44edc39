package symtab

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMap[V any](t *testing.T, kind Kind) OrderedMap[int, V] {
	m, err := New[int, V](kind)
	require.Nil(t, err)
	return m
}

func forEachKind(t *testing.T, f func(t *testing.T, kind Kind)) {
	for _, kind := range Kinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			f(t, kind)
		})
	}
}

func TestScenario(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[int](t, kind)
		keys := []int{5, 3, 8, 1, 4}
		vals := []int{50, 30, 80, 10, 40}
		for i := range keys {
			m.Add(keys[i], vals[i])
		}
		require.Equal(t, 5, m.Size())
		require.Equal(t, 2, m.Rank(4))

		k, ok := m.Select(0)
		require.Equal(t, true, ok)
		require.Equal(t, 1, k)
		k, ok = m.Select(4)
		require.Equal(t, true, ok)
		require.Equal(t, 8, k)

		v, ok := m.Value(8)
		require.Equal(t, true, ok)
		require.Equal(t, 80, *v)
		v, ok = m.Value(9)
		require.Equal(t, false, ok)
		require.Nil(t, v)

		require.Equal(t, []int{1, 3, 4, 5, 8}, m.Keys())
		require.Nil(t, m.Validate())
	})
}

func TestUpdateExistingKey(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[int](t, kind)
		m.Add(7, 70)
		m.Add(5, 50)
		rank := m.Rank(5)
		size := m.Size()

		m.Add(5, 500)
		v, ok := m.Value(5)
		require.Equal(t, true, ok)
		require.Equal(t, 500, *v)
		require.Equal(t, rank, m.Rank(5))
		require.Equal(t, size, m.Size())
		require.Nil(t, m.Validate())
	})
}

func TestEmptyMap(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[string](t, kind)
		require.Equal(t, 0, m.Size())
		for _, key := range []int{-1, 0, 42} {
			require.Equal(t, 0, m.Rank(key))
			_, ok := m.Value(key)
			require.Equal(t, false, ok)
		}
		_, ok := m.Select(0)
		require.Equal(t, false, ok)
		require.Equal(t, 0, len(m.Keys()))
		require.Nil(t, m.Validate())
	})
}

func TestValueHandleIsMutable(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m, err := New[string, uint64](kind)
		require.Nil(t, err)
		for _, word := range []string{"to", "be", "or", "not", "to", "be"} {
			if count, ok := m.Value(word); ok {
				*count++
			} else {
				m.Add(word, 1)
			}
		}
		want := map[string]uint64{"be": 2, "not": 1, "or": 1, "to": 2}
		for word, count := range want {
			v, ok := m.Value(word)
			require.Equal(t, true, ok, word)
			require.Equal(t, count, *v, word)
		}
		require.Equal(t, []string{"be", "not", "or", "to"}, m.Keys())
	})
}

func TestSelectOutOfRange(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[int](t, kind)
		for i := 0; i < 10; i++ {
			m.Add(i*2, i)
		}
		for _, k := range []int{-1, 10, 11, 1000} {
			_, ok := m.Select(k)
			require.Equal(t, false, ok, "k=%d", k)
		}
	})
}

func TestRankSelectInverse(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[int](t, kind)
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			m.Add(r.Intn(2000), i)
		}
		for k := 0; k < m.Size(); k++ {
			key, ok := m.Select(k)
			require.Equal(t, true, ok)
			require.Equal(t, k, m.Rank(key))
		}
	})
}

func TestSizeGrowsByDistinctKeys(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m := newMap[int](t, kind)
		seen := make(map[int]bool)
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 1000; i++ {
			key := r.Intn(300)
			before := m.Size()
			m.Add(key, i)
			if seen[key] {
				require.Equal(t, before, m.Size())
			} else {
				require.Equal(t, before+1, m.Size())
				seen[key] = true
			}
		}
		require.Equal(t, len(seen), m.Size())
		require.Nil(t, m.Validate())
	})
}

// TestDifferential replays random operation sequences against every kind
// and compares each observable result with the sorted sequence.
func TestDifferential(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		oracle := NewSortedSequenceMap[int, int]()
		subjects := make([]OrderedMap[int, int], 0)
		for _, kind := range Kinds()[1:] {
			subjects = append(subjects, newMap[int](t, kind))
		}
		keyRange := 20 + r.Intn(400)
		for step := 0; step < 2000; step++ {
			key := r.Intn(keyRange+10) - 5
			switch op := r.Intn(10); {
			case op < 5:
				val := r.Int()
				oracle.Add(key, val)
				for _, m := range subjects {
					m.Add(key, val)
				}
			case op < 7:
				want, wantOK := oracle.Value(key)
				for _, m := range subjects {
					got, ok := m.Value(key)
					require.Equal(t, wantOK, ok)
					if ok {
						require.Equal(t, *want, *got)
					}
				}
			case op < 9:
				want := oracle.Rank(key)
				for _, m := range subjects {
					require.Equal(t, want, m.Rank(key), "seed %d step %d rank(%d)", seed, step, key)
				}
			default:
				k := r.Intn(oracle.Size()+4) - 2
				want, wantOK := oracle.Select(k)
				for _, m := range subjects {
					got, ok := m.Select(k)
					require.Equal(t, wantOK, ok)
					require.Equal(t, want, got, "seed %d step %d select(%d)", seed, step, k)
				}
			}
		}
		for _, m := range subjects {
			require.Nil(t, m.Validate())
			require.Equal(t, oracle.Keys(), m.Keys())
		}
	}
}

func TestStringKeys(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind Kind) {
		m, err := New[string, int](kind)
		require.Nil(t, err)
		words := []string{"pear", "apple", "fig", "kiwi", "banana", "cherry", "date", "grape"}
		for i, w := range words {
			m.Add(w, i)
		}
		require.Equal(t, 0, m.Rank("a"))
		require.Equal(t, 1, m.Rank("apricot"))
		require.Equal(t, 8, m.Rank("zucchini"))
		k, ok := m.Select(3)
		require.Equal(t, true, ok)
		require.Equal(t, "date", k)
		require.Nil(t, m.Validate())
	})
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"VO", KindSorted},
		{"sorted", KindSorted},
		{"ABB", KindUnbalanced},
		{"bst", KindUnbalanced},
		{"TR", KindPriority},
		{"Treap", KindPriority},
		{"ARN", KindRedBlack},
		{" redblack", KindRedBlack},
		{"A23", KindTwoThree},
		{"twothree\n", KindTwoThree},
	}
	for _, c := range cases {
		got, err := ParseKind(c.name)
		require.Nil(t, err, c.name)
		require.Equal(t, c.want, got, c.name)
	}
	_, err := ParseKind("avl")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindString(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.Nil(t, err)
		require.Equal(t, kind, parsed)
	}
	require.Equal(t, "Kind(9)", Kind(9).String())
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New[int, int](Kind(42))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestTreeKinds(t *testing.T) {
	for _, kind := range Kinds() {
		m := newMap[int](t, kind)
		_, isTree := m.(Tree[int, int])
		require.Equal(t, kind != KindSorted, isTree, fmt.Sprint(kind))
	}
}
