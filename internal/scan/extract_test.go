package scan_test

import (
	"regexp"
	"testing"

	"bennypowers.dev/vss/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKey(t *testing.T) {
	keyStart := regexp.MustCompile(`\bKEY\s*:\s*\{`)

	tests := []struct {
		name         string
		value        string
		wantFragment string
	}{
		{name: "empty", value: "{}", wantFragment: "{}"},
		{name: "flat", value: "{ a: 1, b: 2 }", wantFragment: "{ a: 1, b: 2 }"},
		{name: "nested", value: "{ a: { b: { c: [] } } }", wantFragment: "{ a: { b: { c: [] } } }"},
		{name: "multi-line", value: "{\n  a: 1,\n}", wantFragment: "{\n  a: 1,\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := "prefix KEY: " + tt.value + " suffix"

			fragment, remainder, err := scan.ExtractKey(body, keyStart, '{', '}')
			require.NoError(t, err)
			assert.Equal(t, tt.wantFragment, fragment)
			assert.Equal(t, "prefix  suffix", remainder)
		})
	}
}

func TestExtractKeyAbsent(t *testing.T) {
	body := "export default { data() { return {} } }"

	fragment, remainder, err := scan.ExtractKey(body, regexp.MustCompile(`\bprops\s*:\s*\{`), '{', '}')
	assert.ErrorIs(t, err, scan.ErrNotFound)
	assert.Empty(t, fragment)
	assert.Equal(t, body, remainder, "body is unchanged")
}

func TestExtractKeyUnbalanced(t *testing.T) {
	body := "export default { props: { a: String, "

	_, remainder, err := scan.ExtractKey(body, regexp.MustCompile(`\bprops\s*:\s*\{`), '{', '}')
	assert.ErrorIs(t, err, scan.ErrUnterminated)
	assert.Equal(t, body, remainder)
}

func TestExtractKeyRemovesMatchedOccurrenceOnly(t *testing.T) {
	// The same text appears twice; only the located occurrence is removed.
	body := "a: [1], b: 'a: [1]'"
	fragment, remainder, err := scan.ExtractKey(body, regexp.MustCompile(`^a:\s*\[`), '[', ']')
	require.NoError(t, err)
	assert.Equal(t, "[1]", fragment)
	assert.Equal(t, ", b: 'a: [1]'", remainder)
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "simple", body: "a, b, c", want: []string{"a", " b", " c"}},
		{name: "nested", body: "a: f(1, 2), b: { c: 1, d: [3, 4] }", want: []string{"a: f(1, 2)", " b: { c: 1, d: [3, 4] }"}},
		{name: "quoted", body: "msg: 'a, b', n", want: []string{"msg: 'a, b'", " n"}},
		{name: "trailing separator", body: "a, b,\n", want: []string{"a", " b"}},
		{name: "empty", body: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scan.SplitTopLevel(tt.body, ','))
		})
	}
}
