package script_test

import (
	"flag"
	"os"
	"testing"

	"bennypowers.dev/vss/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestRunOptionsObject(t *testing.T) {
	b := script.NewBlock("Foo.vue",
		"export default { name: 'Foo', props: { a: String }, emits: ['go'], setup(props, { emit }) { return { x: 1 }; } }")

	report := b.Run()
	out := b.Content()

	assert.Contains(t, out, "defineProps({ a: String })")
	assert.Contains(t, out, "defineEmits(['go'])")
	assert.Contains(t, out, "const x = 1;")
	assert.NotContains(t, out, "name:")
	assert.NotContains(t, out, "export default")
	assert.NotContains(t, out, "setup(")
	assert.Equal(t, "defineEmits(['go']);\n\nconst props = defineProps({ a: String });\n const x = 1;\n", out)

	for _, step := range []string{
		script.StepExtractEmits,
		script.StepExtractProps,
		script.StepRemoveComponentName,
		script.StepApplyEmits,
		script.StepApplyProps,
		script.StepRemoveExport,
		script.StepRemoveSetup,
	} {
		assert.True(t, report.Touched(step), "step %s should have changed the content", step)
	}
	assert.False(t, report.Touched(script.StepExtractComponents))
	assert.False(t, report.Touched(script.StepRemoveDefineComponent))
}

func TestRunGolden(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		golden  string
	}{
		{
			name:    "defineComponent wrapper",
			fixture: "testdata/counter.js",
			golden:  "testdata/counter.golden.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := os.ReadFile(tt.fixture)
			require.NoError(t, err)

			b := script.NewBlock(tt.fixture, string(source))
			b.Run()

			if *update {
				require.NoError(t, os.WriteFile(tt.golden, []byte(b.Content()), 0o644))
				return
			}

			golden, err := os.ReadFile(tt.golden)
			require.NoError(t, err)
			assert.Equal(t, string(golden), b.Content())

			require.NotNil(t, b.Components)
			assert.Equal(t, "{ Child }", b.Components.Raw)
		})
	}
}

func TestRunWithoutFields(t *testing.T) {
	content := "import { ref } from 'vue';\n\nexport default {\n  setup() {\n    const a = ref(0);\n    return { a };\n  },\n};\n"
	b := script.NewBlock("Plain.vue", content)
	b.Run()

	assert.Equal(t, "import { ref } from 'vue';\n    const a = ref(0);\n", b.Content())
	assert.Nil(t, b.Props)
	assert.Nil(t, b.Emits)
	assert.Nil(t, b.Components)
}

func TestRunUnbalancedCompletes(t *testing.T) {
	content := "export default {\n  props: { a: String },\n  setup() {\n    run();\n"
	b := script.NewBlock("Broken.vue", content)

	assert.NotPanics(t, func() { b.Run() })
	require.NotNil(t, b.Props, "fields before the unbalanced region are still extracted")
	assert.Contains(t, b.Content(), "defineProps({ a: String })")
	assert.Contains(t, b.Content(), "export default", "the unterminated export is left in place")
}
