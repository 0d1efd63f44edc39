package bench

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/tuannh982/symtab/utils/collections"
	umath "github.com/tuannh982/symtab/utils/math"
)

// Generator writes a benchmark input: Words words drawn uniformly from a
// vocabulary of Vocabulary entries, one query adding all of them, then value,
// rank and select queries sweeping 0..Vocabulary.
type Generator struct {
	Words      int
	Vocabulary int
	Seed       int64
	Kind       string
	// WordsPerLine splits the word block; 0 keeps it on one line.
	WordsPerLine int
	// Alpha draws lowercase words instead of the numbers 1..Vocabulary.
	Alpha bool
}

func (g Generator) validate() error {
	if g.Words <= 0 {
		return fmt.Errorf("%w: words must be positive, got %d", ErrInvalidConfig, g.Words)
	}
	if g.Vocabulary <= 0 {
		return fmt.Errorf("%w: vocabulary must be positive, got %d", ErrInvalidConfig, g.Vocabulary)
	}
	if g.WordsPerLine < 0 {
		return fmt.Errorf("%w: words per line must not be negative, got %d", ErrInvalidConfig, g.WordsPerLine)
	}
	return nil
}

func (g Generator) Write(w io.Writer) error {
	if err := g.validate(); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(g.Seed))
	vocabulary := g.vocabulary(rng)
	word := func(i int) string {
		if vocabulary == nil {
			return strconv.Itoa(i)
		}
		return vocabulary[i%len(vocabulary)]
	}

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, g.Kind)
	fmt.Fprintln(out, g.Words)
	for i := 0; i < g.Words; i++ {
		if i > 0 {
			if g.WordsPerLine > 0 && i%g.WordsPerLine == 0 {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
		if vocabulary == nil {
			out.WriteString(word(1 + rng.Intn(g.Vocabulary)))
		} else {
			out.WriteString(word(rng.Intn(g.Vocabulary)))
		}
	}
	out.WriteByte('\n')

	fmt.Fprintln(out, 3*g.Vocabulary+4)
	fmt.Fprintln(out, int(QueryAdd), g.Words)
	for i := 0; i <= g.Vocabulary; i++ {
		fmt.Fprintln(out, int(QueryValue), word(i))
	}
	for i := 0; i <= g.Vocabulary; i++ {
		fmt.Fprintln(out, int(QueryRank), word(i))
	}
	for i := 0; i <= g.Vocabulary; i++ {
		fmt.Fprintln(out, int(QuerySelect), i)
	}
	return out.Flush()
}

// vocabulary returns nil for numeric words.
func (g Generator) vocabulary(rng *rand.Rand) []string {
	if !g.Alpha {
		return nil
	}
	// 16^length >= Vocabulary, so 26 letters always leave room for distinct words
	length := umath.Max(3, umath.DivCeil(umath.Log2Ceil(g.Vocabulary+1), 4))
	vocabulary := collections.NewHashSet[string, string](collections.Identity[string])
	buf := make([]byte, length)
	for vocabulary.Size() < g.Vocabulary {
		for i := range buf {
			buf[i] = byte('a' + rng.Intn(26))
		}
		// duplicates are redrawn
		_ = vocabulary.Add(string(buf))
	}
	return vocabulary.Entries()
}
