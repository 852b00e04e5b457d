package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestDefaults(t *testing.T) {
	opts, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 800, *opts.Width)
	assert.Equal(t, 600, *opts.Height)
	assert.Equal(t, "Hello rust gl!", *opts.Title)
	assert.True(t, *opts.Debug)

	c, err := opts.Clear()
	require.NoError(t, err)
	assert.Equal(t, glm.Vec4{0.3, 0.3, 0.5, 1.0}, c)
}

func TestConfigFileFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "triangle.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
width = 1024
height = 768
title = "from file"
vertex = "a.vert"
fragment = "a.frag"
clear_color = "0,0,0,1"
`), 0o644))

	opts, err := Parse(newFlagSet(), []string{"-config", cfg, "-width", "640"})
	require.NoError(t, err)
	assert.Equal(t, 640, *opts.Width, "explicit flag wins")
	assert.Equal(t, 768, *opts.Height)
	assert.Equal(t, "from file", *opts.Title)
	assert.Equal(t, "a.vert", *opts.VertexFile)
	assert.Equal(t, "a.frag", *opts.FragmentFile)
	assert.False(t, *opts.Watch)
}

func TestConfigFileErrors(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = \"wide\""), 0o644))
	_, err = Parse(newFlagSet(), []string{"-config", bad})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-vertex", "a.vert"},
		{"-watch"},
		{"-clear", "1,1,1"},
		{"-clear", "1,x,1,1"},
	} {
		_, err := Parse(newFlagSet(), args)
		assert.Error(t, err, "%v", args)
	}

	_, err := Parse(newFlagSet(), []string{"-vertex", "a.vert", "-fragment", "a.frag", "-watch"})
	assert.NoError(t, err)
}
