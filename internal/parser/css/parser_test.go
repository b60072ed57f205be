package css_test

import (
	"testing"

	"bennypowers.dev/vss/internal/parser/css"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantClean bool
	}{
		{name: "rules", source: ".button {\n  color: var(--color-primary, red);\n}\n", wantClean: true},
		{name: "empty", source: "", wantClean: true},
		{name: "unclosed rule", source: ".button {\n  color: red;\n", wantClean: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := css.AcquireParser()
			defer css.ReleaseParser(parser)

			problems := parser.Check(tt.source)
			if tt.wantClean {
				assert.Empty(t, problems)
			} else {
				assert.NotEmpty(t, problems)
			}
		})
	}
}
