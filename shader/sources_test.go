package shader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/gotriangle/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesBuiltin(t *testing.T) {
	s := NewSources("", "", false)
	assert.Empty(t, s.Paths())

	vs, fs, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, GetVertexShader(false), vs)
	assert.Equal(t, GetFragmentShader(false), fs)
}

func TestFileSourcesReadFresh(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "tri.vert")
	frag := filepath.Join(dir, "tri.frag")
	require.NoError(t, os.WriteFile(vert, []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("f1"), 0o644))

	s := NewSources(vert, frag, false)
	assert.Equal(t, []string{vert, frag}, s.Paths())

	vs, fs, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "v1", vs)
	assert.Equal(t, "f1", fs)

	require.NoError(t, os.WriteFile(frag, []byte("f2"), 0o644))
	_, fs, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "f2", fs)
}

func TestFileSourcesStageMismatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.frag")
	b := filepath.Join(dir, "b.frag")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	_, _, err := NewSources(a, b, false).Read()
	assert.ErrorContains(t, err, "expected vertex")
}

func TestWebGLSourcesAreTranslated(t *testing.T) {
	s := NewSources("", "", true)
	var stages []pipeline.Stage
	s.translate = func(source string, stage pipeline.Stage) (string, error) {
		stages = append(stages, stage)
		return "translated " + stage.String(), nil
	}

	vs, fs, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "translated vertex", vs)
	assert.Equal(t, "translated fragment", fs)
	assert.Equal(t, []pipeline.Stage{pipeline.Vertex, pipeline.Fragment}, stages)

	boom := errors.New("boom")
	s.translate = func(string, pipeline.Stage) (string, error) { return "", boom }
	_, _, err = s.Read()
	assert.ErrorIs(t, err, boom)
}
