package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tuannh982/symtab/utils/collections"
)

type QueryType int

const (
	// QueryAdd counts the next Arg words into the table.
	QueryAdd QueryType = iota + 1
	// QueryValue prints the count of word Arg, 0 when absent.
	QueryValue
	// QueryRank prints the rank of word Arg.
	QueryRank
	// QuerySelect prints the word of rank Arg.
	QuerySelect
)

func (q QueryType) String() string {
	switch q {
	case QueryAdd:
		return "add"
	case QueryValue:
		return "value"
	case QueryRank:
		return "rank"
	case QuerySelect:
		return "select"
	}
	return fmt.Sprintf("QueryType(%d)", int(q))
}

type Query struct {
	Type QueryType
	Arg  string
	// Count is the numeric argument of add and select queries.
	Count int
	Line  int
}

// Input is a parsed benchmark stream.
//
//	<kind>
//	<n>
//	<n words over any number of lines>
//	<q>
//	<type> <arg>     (q lines)
type Input struct {
	Kind    string
	Words   collections.Queue[string]
	Queries []Query
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input after line %d", ErrMalformedInput, r.line)
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), nil
}

func (r *lineReader) nextInt(what string) (int, error) {
	text, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: invalid %s %q", ErrMalformedInput, r.line, what, text)
	}
	return n, nil
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// Tokenize splits a line into words, trimming ASCII punctuation off both
// ends of each word and dropping words that end up empty.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := strings.TrimFunc(f, isASCIIPunct); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func ParseInput(r io.Reader) (*Input, error) {
	reader := &lineReader{scanner: bufio.NewScanner(r)}
	reader.scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	kind, err := reader.next()
	if err != nil {
		return nil, err
	}
	in := &Input{
		Kind:  kind,
		Words: collections.NewQueue[string](),
	}

	n, err := reader.nextInt("word count")
	if err != nil {
		return nil, err
	}
	for in.Words.Size() < n {
		text, err := reader.next()
		if err != nil {
			return nil, err
		}
		for _, w := range Tokenize(text) {
			in.Words.Push(w)
		}
	}
	if in.Words.Size() != n {
		return nil, fmt.Errorf("%w: line %d: expected %d words, read %d", ErrMalformedInput, reader.line, n, in.Words.Size())
	}

	q, err := reader.nextInt("query count")
	if err != nil {
		return nil, err
	}
	in.Queries = make([]Query, 0, q)
	for i := 0; i < q; i++ {
		text, err := reader.next()
		if err != nil {
			return nil, err
		}
		query, err := parseQuery(text, reader.line)
		if err != nil {
			return nil, err
		}
		in.Queries = append(in.Queries, query)
	}
	return in, nil
}

func parseQuery(text string, line int) (Query, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Query{}, fmt.Errorf("%w: line %d: query needs 2 fields, got %q", ErrMalformedInput, line, text)
	}
	t, err := strconv.Atoi(fields[0])
	if err != nil || t < int(QueryAdd) || t > int(QuerySelect) {
		return Query{}, fmt.Errorf("%w: line %d: unknown query type %q", ErrMalformedInput, line, fields[0])
	}
	query := Query{Type: QueryType(t), Arg: fields[1], Line: line}
	if query.Type == QueryAdd || query.Type == QuerySelect {
		query.Count, err = strconv.Atoi(fields[1])
		if err != nil || query.Count < 0 {
			return Query{}, fmt.Errorf("%w: line %d: invalid %s argument %q", ErrMalformedInput, line, query.Type, fields[1])
		}
	}
	return query, nil
}
