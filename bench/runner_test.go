package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/symtab/symtab"
)

const scenarioInput = `VO
6
to be, or not
to be!
8
1 4
2 to
1 10
2 be
3 or
4 0
4 3
4 4
`

const scenarioOutput = `1
2
2
be
to
no key with rank 4
`

func nullEntry() *log.Entry {
	logger, _ := test.NewNullLogger()
	return log.NewEntry(logger)
}

func TestRunnerScenario(t *testing.T) {
	for _, kind := range symtab.Kinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			in, err := ParseInput(strings.NewReader(scenarioInput))
			require.Nil(t, err)
			table, err := symtab.New[string, uint64](kind)
			require.Nil(t, err)
			metrics := NewMetrics(kind.String())
			var out bytes.Buffer
			runner := NewRunner(kind, table, &out, metrics, nullEntry())

			summary, err := runner.Run(context.Background(), in)
			require.Nil(t, err)
			require.Equal(t, scenarioOutput, out.String())
			require.Equal(t, int64(8), summary.Queries)
			require.Equal(t, int64(6), summary.Words)
			require.Equal(t, 4, summary.Size)
			require.Equal(t, kind.String(), summary.Kind)
			if kind == symtab.KindSorted {
				require.Equal(t, -1, summary.Height)
			} else {
				require.Less(t, 0, summary.Height)
				require.Equal(t, float64(summary.Height), testutil.ToFloat64(metrics.TreeHeight))
			}

			require.Equal(t, float64(8), testutil.ToFloat64(metrics.Ops.WithLabelValues("value")))
			require.Equal(t, float64(4), testutil.ToFloat64(metrics.Ops.WithLabelValues("add")))
			require.Equal(t, float64(1), testutil.ToFloat64(metrics.Ops.WithLabelValues("rank")))
			require.Equal(t, float64(3), testutil.ToFloat64(metrics.Ops.WithLabelValues("select")))
			require.Equal(t, float64(4), testutil.ToFloat64(metrics.TableSize))
			require.Equal(t, 0, in.Words.Size())
		})
	}
}

func TestRunnerWithoutMetrics(t *testing.T) {
	in, err := ParseInput(strings.NewReader(scenarioInput))
	require.Nil(t, err)
	table := symtab.NewTwoThreeTreeMap[string, uint64]()
	var out bytes.Buffer
	summary, err := NewRunner(symtab.KindTwoThree, table, &out, nil, nullEntry()).Run(context.Background(), in)
	require.Nil(t, err)
	require.Equal(t, scenarioOutput, out.String())
	require.Equal(t, 2, summary.Height)
}

func TestRunnerCancelled(t *testing.T) {
	in, err := ParseInput(strings.NewReader(scenarioInput))
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	table := symtab.NewSortedSequenceMap[string, uint64]()
	var out bytes.Buffer
	summary, err := NewRunner(symtab.KindSorted, table, &out, nil, nullEntry()).Run(ctx, in)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int64(0), summary.Queries)
	require.Equal(t, "", out.String())
}
