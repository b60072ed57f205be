package scan_test

import (
	"regexp"
	"testing"

	"bennypowers.dev/vss/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`\bname\s*:\s*['"][^'"\n]*['"]`)

func TestAtRootDepth(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantHit bool
	}{
		{
			name:    "top level field",
			body:    "name: 'A', other: 1",
			want:    "name: 'A'",
			wantHit: true,
		},
		{
			name:    "inside exported object",
			body:    "export default {\n  name: 'A',\n  data() { return { name: 'B' } }\n}",
			want:    "name: 'A'",
			wantHit: true,
		},
		{
			name:    "nested only",
			body:    "export default {\n  data() { return { name: 'B' } }\n}",
			wantHit: false,
		},
		{
			name:    "depth one without export marker",
			body:    "{ name: 'A', nested: { name: 'B' } }",
			wantHit: false,
		},
		{
			name:    "last qualifying match wins",
			body:    "name: 'A'; name: 'B'",
			want:    "name: 'B'",
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := scan.AtRootDepth(namePattern, tt.body, 0, 0)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, span.Text)
			assert.Equal(t, tt.want, tt.body[span.Start:span.End()])
		})
	}
}

func TestAtRootDepthWindow(t *testing.T) {
	body := "{ name: 'outer' } { name: 'inner' }"
	start := len("{ name: 'outer' } {")

	span, ok := scan.AtRootDepth(namePattern, body, start, len(body)-1)
	require.True(t, ok, "depth is measured from the window start")
	assert.Equal(t, "name: 'inner'", span.Text)

	_, ok = scan.AtRootDepth(namePattern, body, 10, 5)
	assert.False(t, ok, "empty window")
}
