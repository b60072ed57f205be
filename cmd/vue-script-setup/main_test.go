package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/vss/internal/config"
	"bennypowers.dev/vss/internal/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const optionsComponent = `<template>
  <p>{{ msg }}</p>
</template>

<script>
export default {
  name: 'Hello',
  props: { msg: String },
};
</script>
`

func TestLinterFor(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, lint.Chain{lint.NewSyntaxLinter()}, linterFor(cfg))

	cfg.LintCommand = "npx eslint --fix"
	assert.Len(t, linterFor(cfg), 2)

	cfg.Lint = false
	cfg.LintCommand = ""
	assert.Nil(t, linterFor(cfg))
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("src", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("src", "Hello.vue"), []byte(optionsComponent), 0o644))
	require.NoError(t, os.WriteFile(".vuescriptsetuprc.yaml", []byte("destination: converted\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"convert", "--color", "off", "src/**/*.vue"})
	require.NoError(t, rootCmd.Execute())

	written, err := os.ReadFile(filepath.Join("converted", "src", "Hello.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "<script setup>")
	assert.Contains(t, string(written), "defineProps({ msg: String })")
	assert.NotContains(t, string(written), "export default")

	assert.Contains(t, out.String(), "converted: 1")
}

func TestConvertCommandRejectsBadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"convert", "--color", "off", "--config", "settings.ini", "x.vue"})
	assert.Error(t, rootCmd.Execute())
}
