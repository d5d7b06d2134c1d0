package hcl_adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
)

// writeFiles lays the given files out under a fresh temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoadMergesIncludesLastWriteWins(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"base.hcl": `
model "ae" {
  root = "@Autoencoder"
}

bind "MfccTimeDistributedRnnEncoder" {
  z_dims       = 32
  z_time_steps = 250
}
`,
		"variant.hcl": `
include "base.hcl" {}

bind "MfccTimeDistributedRnnEncoder" {
  z_time_steps = 125
}
`,
	})

	// Act
	model, conv, err := NewLoader().Load(testCtx(), filepath.Join(dir, "variant.hcl"))

	// Assert
	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, "ae", model.Name)
	assert.Equal(t, bindkey.Ref{Component: "Autoencoder"}, model.Root)

	steps, ok := model.Bindings.Get(bindkey.Key{Component: "MfccTimeDistributedRnnEncoder", Param: "z_time_steps"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(125), steps.Value)
	assert.Contains(t, steps.Range.Filename, "variant.hcl")

	dims, ok := model.Bindings.Get(bindkey.Key{Component: "MfccTimeDistributedRnnEncoder", Param: "z_dims"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(32), dims.Value)

	require.Len(t, model.Files, 2)
	assert.Contains(t, model.Files[0], "base.hcl")
	assert.Contains(t, model.Files[1], "variant.hcl")
}

func TestLoadIncludeOverridesRegardlessOfPosition(t *testing.T) {
	t.Parallel()

	// Arrange: the include block sits below the bind, but included files
	// always merge first, so the including file's value wins.
	dir := writeFiles(t, map[string]string{
		"base.hcl": `
model "ae" {
  root = "@Autoencoder"
}

bind "Reverb" {
  reverb_length = 48000
}
`,
		"variant.hcl": `
bind "Reverb" {
  reverb_length = 24000
}

include "base.hcl" {}
`,
	})

	// Act
	model, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "variant.hcl"))

	// Assert
	require.NoError(t, err)
	b, ok := model.Bindings.Get(bindkey.Key{Component: "Reverb", Param: "reverb_length"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(24000), b.Value)
}

func TestLoadFileIncludedTwiceMergesOnce(t *testing.T) {
	t.Parallel()

	// Arrange: a diamond, both mid files include the same base.
	dir := writeFiles(t, map[string]string{
		"base.hcl": `
model "ae" {
  root = "@Autoencoder"
}
`,
		"left.hcl": `
include "base.hcl" {}

bind "Additive" {
  n_samples = 64000
}
`,
		"right.hcl": `
include "base.hcl" {}

bind "Additive" {
  sample_rate = 16000
}
`,
		"top.hcl": `
include "left.hcl" {}
include "right.hcl" {}
`,
	})

	// Act
	model, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "top.hcl"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, model.Bindings.Len())
	require.Len(t, model.Files, 4)
	assert.Contains(t, model.Files[0], "base.hcl")
}

func TestLoadIncludeCycleFails(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"a.hcl": `include "b.hcl" {}`,
		"b.hcl": `include "a.hcl" {}`,
	})

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "a.hcl"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle detected")
}

func TestLoadMissingIncludeFails(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"root.hcl": `include "models/nope.hcl" {}`,
	})

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "root.hcl"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "models/nope.hcl")
}

func TestLoadWithoutModelBlockFails(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"root.hcl": `
bind "Additive" {
  n_samples = 64000
}
`,
	})

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "root.hcl"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model block")
}

func TestLoadScopedBindsKeepTheirOwnKeys(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"root.hcl": `
model "ae" {
  root = "@Autoencoder"
}

bind "compute_logmel" {
  bins = 64
}

scope "f0_spectral" {
  bind "compute_logmel" {
    bins = 229
  }
}
`,
	})

	// Act
	model, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "root.hcl"))

	// Assert
	require.NoError(t, err)

	plain, ok := model.Bindings.Get(bindkey.Key{Component: "compute_logmel", Param: "bins"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(64), plain.Value)

	scoped, ok := model.Bindings.Get(bindkey.Key{Scope: "f0_spectral", Component: "compute_logmel", Param: "bins"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(229), scoped.Value)
}

func TestLoadRejectsUnknownTopLevelBlock(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"root.hcl": `
model "ae" {
  root = "@Autoencoder"
}

widget "nope" {
  size = 1
}
`,
	})

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "root.hcl"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root.hcl")
}

func TestLoadRejectsBadRootReference(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := writeFiles(t, map[string]string{
		"root.hcl": `
model "ae" {
  root = "Autoencoder"
}
`,
	})

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "root.hcl"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid component reference")
}

func TestLoadMissingPathFails(t *testing.T) {
	t.Parallel()

	// Act
	_, _, err := NewLoader().Load(testCtx(), filepath.Join(t.TempDir(), "absent.hcl"))

	// Assert
	require.Error(t, err)
}

func TestLoadDirectoryMergesItsFiles(t *testing.T) {
	t.Parallel()

	// Arrange: lexical order puts ae.hcl before ae_abs.hcl, and the include
	// dedupe makes loading the directory equal to loading the variant.
	dir := writeFiles(t, map[string]string{
		"models/ae.hcl": `
model "ae" {
  root = "@Autoencoder"
}

bind "Reverb" {
  reverb_length = 48000
}
`,
		"models/ae_abs.hcl": `
include "ae.hcl" {}

bind "Reverb" {
  reverb_length = 24000
}
`,
	})

	// Act
	model, _, err := NewLoader().Load(testCtx(), filepath.Join(dir, "models"))

	// Assert
	require.NoError(t, err)
	b, ok := model.Bindings.Get(bindkey.Key{Component: "Reverb", Param: "reverb_length"})
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(24000), b.Value)
}
