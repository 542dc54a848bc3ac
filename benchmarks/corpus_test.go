package benchmarks

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// exponentialCorpus is an array in which nearly every value is a number in
// exponential notation.
func exponentialCorpus(b *testing.B, n int) string {
	r := rand.New(rand.NewSource(1))
	values := make([]jsoniter.RawMessage, n)
	for i := range values {
		values[i] = jsoniter.RawMessage(fmt.Sprintf("%d.%de%d", r.Intn(1000), r.Intn(1000), r.Intn(13)-6))
	}
	doc, err := jsoniter.Marshal(values)
	require.NoError(b, err)
	return string(doc)
}

// stringCorpus is an array of string values full of escapes and
// exponential-looking text, none of which may be rewritten.
func stringCorpus(b *testing.B, n int) string {
	r := rand.New(rand.NewSource(2))
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("sensor \"%d\" read %d.%de%d", r.Intn(100), r.Intn(10), r.Intn(100), r.Intn(10))
	}
	doc, err := jsoniter.Marshal(values)
	require.NoError(b, err)
	return string(doc)
}

// digitCorpus is a single enormous integer, the worst case for matchers that
// backtrack over digit runs.
func digitCorpus(n int) string {
	return "[" + strings.Repeat("9", n) + "]"
}
