package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"to be, or not", []string{"to", "be", "or", "not"}},
		{"  \"quoted\"  (paren) end.", []string{"quoted", "paren", "end"}},
		{"don't stop", []string{"don't", "stop"}},
		{"-- ... !!", []string{}},
		{"", []string{}},
		{"café!", []string{"café"}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Tokenize(c.line), c.line)
	}
}

func TestParseInput(t *testing.T) {
	in, err := ParseInput(strings.NewReader(scenarioInput))
	require.Nil(t, err)
	require.Equal(t, "VO", in.Kind)
	require.Equal(t, 6, in.Words.Size())
	first, _ := in.Words.Peek()
	require.Equal(t, "to", first)
	require.Equal(t, 8, len(in.Queries))
	require.Equal(t, Query{Type: QueryAdd, Arg: "4", Count: 4, Line: 6}, in.Queries[0])
	require.Equal(t, Query{Type: QueryValue, Arg: "to", Line: 7}, in.Queries[1])
	require.Equal(t, Query{Type: QuerySelect, Arg: "4", Count: 4, Line: 13}, in.Queries[7])
}

func TestParseInputMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"missing count":    "VO\n",
		"bad count":        "VO\nmany\n",
		"too many words":   "VO\n2\na b c\n0\n",
		"missing words":    "VO\n3\na b\n",
		"missing queries":  "VO\n1\na\n2\n1 1\n",
		"unknown query":    "VO\n1\na\n1\n5 a\n",
		"negative select":  "VO\n1\na\n1\n4 -1\n",
		"non-numeric add":  "VO\n1\na\n1\n1 a\n",
		"extra query args": "VO\n1\na\n1\n2 a b\n",
	}
	for name, text := range cases {
		_, err := ParseInput(strings.NewReader(text))
		require.ErrorIs(t, err, ErrMalformedInput, name)
	}
}

func TestQueryTypeString(t *testing.T) {
	require.Equal(t, "add", QueryAdd.String())
	require.Equal(t, "select", QuerySelect.String())
	require.Equal(t, "QueryType(0)", QueryType(0).String())
}
