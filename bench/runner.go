package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/symtab"
)

// Table is the map type driven by the benchmark: word to occurrence count.
type Table = symtab.OrderedMap[string, uint64]

type Progress struct {
	Queries int64
	Words   int64
	// Elapsed only accounts for time spent inside table operations.
	Elapsed time.Duration
}

type Summary struct {
	Progress
	Kind string
	Size int
	// Height is -1 for tables that are not trees.
	Height int
}

// Runner executes queries against a table and prints their answers. Only
// table operations are timed; parsing and output are not.
type Runner struct {
	table   Table
	kind    string
	out     *bufio.Writer
	metrics *Metrics
	log     *log.Entry

	queries atomic.Int64
	words   atomic.Int64
	elapsed atomic.Int64
}

// NewRunner builds a runner; metrics may be nil.
func NewRunner(kind symtab.Kind, table Table, out io.Writer, metrics *Metrics, logger *log.Entry) *Runner {
	return &Runner{
		table:   table,
		kind:    kind.String(),
		out:     bufio.NewWriter(out),
		metrics: metrics,
		log:     logger,
	}
}

func (r *Runner) Progress() Progress {
	return Progress{
		Queries: r.queries.Load(),
		Words:   r.words.Load(),
		Elapsed: time.Duration(r.elapsed.Load()),
	}
}

func (r *Runner) Run(ctx context.Context, in *Input) (Summary, error) {
	r.log.WithFields(log.Fields{
		"words":   in.Words.Size(),
		"queries": len(in.Queries),
	}).Debug("running queries")
	for _, q := range in.Queries {
		if err := ctx.Err(); err != nil {
			return r.summary(), err
		}
		if err := r.execute(q, in); err != nil {
			return r.summary(), fmt.Errorf("line %d: %w", q.Line, err)
		}
		r.queries.Add(1)
	}
	if err := r.out.Flush(); err != nil {
		return r.summary(), err
	}
	return r.summary(), nil
}

func (r *Runner) execute(q Query, in *Input) error {
	switch q.Type {
	case QueryAdd:
		for i := 0; i < q.Count; i++ {
			word, ok := in.Words.Pop()
			if !ok {
				r.log.WithField("line", q.Line).Debug("word stream exhausted")
				break
			}
			r.words.Add(1)
			start := time.Now()
			count, found := r.table.Value(word)
			r.record("value", start)
			if found {
				*count++
				continue
			}
			start = time.Now()
			r.table.Add(word, 1)
			r.record("add", start)
		}
		return nil
	case QueryValue:
		start := time.Now()
		count, found := r.table.Value(q.Arg)
		r.record("value", start)
		if !found {
			_, err := fmt.Fprintln(r.out, 0)
			return err
		}
		_, err := fmt.Fprintln(r.out, *count)
		return err
	case QueryRank:
		start := time.Now()
		rank := r.table.Rank(q.Arg)
		r.record("rank", start)
		_, err := fmt.Fprintln(r.out, rank)
		return err
	case QuerySelect:
		start := time.Now()
		key, found := r.table.Select(q.Count)
		r.record("select", start)
		if !found {
			_, err := fmt.Fprintf(r.out, "no key with rank %d\n", q.Count)
			return err
		}
		_, err := fmt.Fprintln(r.out, key)
		return err
	}
	return fmt.Errorf("%w: query type %d", ErrMalformedInput, int(q.Type))
}

func (r *Runner) record(op string, start time.Time) {
	d := time.Since(start)
	r.elapsed.Add(int64(d))
	if r.metrics != nil {
		r.metrics.observe(op, d)
	}
}

func (r *Runner) summary() Summary {
	s := Summary{
		Progress: r.Progress(),
		Kind:     r.kind,
		Size:     r.table.Size(),
		Height:   -1,
	}
	if tree, ok := r.table.(symtab.Tree[string, uint64]); ok {
		s.Height = tree.Height()
	}
	if r.metrics != nil {
		r.metrics.TableSize.Set(float64(s.Size))
		if s.Height >= 0 {
			r.metrics.TreeHeight.Set(float64(s.Height))
		}
	}
	return s
}
