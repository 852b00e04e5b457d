package pipeline_test

import (
	"errors"
	"testing"

	"github.com/richinsley/gotriangle/pipeline"
	"github.com/richinsley/gotriangle/pipeline/pipelinetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	triangleVertex   = "#version 450 core\nlayout (location=0) in vec3 p; void main(){gl_Position=vec4(p,1.0);}"
	triangleFragment = "#version 450 core\nout vec4 c; void main(){c=vec4(1.0,0.0,0.0,1.0);}"
	typoVertex       = "#version 450 core\nlayout (location=0) in vec3 p; vod main(){gl_Position=vec4(p,1.0);}"
)

func TestCompileShader(t *testing.T) {
	drv := pipelinetest.NewDriver()

	vs, err := pipeline.CompileShader(drv, triangleVertex, pipeline.Vertex)
	require.NoError(t, err)
	assert.NotZero(t, vs.Handle())
	assert.Equal(t, pipeline.Vertex, vs.Stage())

	fs, err := pipeline.CompileShader(drv, triangleFragment, pipeline.Fragment)
	require.NoError(t, err)
	assert.NotEqual(t, vs.Handle(), fs.Handle())
	assert.Equal(t, 2, drv.LiveShaders())
}

func TestCompileShaderSyntaxError(t *testing.T) {
	drv := pipelinetest.NewDriver()

	s, err := pipeline.CompileShader(drv, typoVertex, pipeline.Vertex)
	assert.Nil(t, s)

	var ce *pipeline.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, pipeline.Vertex, ce.Stage)
	assert.NotEmpty(t, ce.Log)
	assert.Contains(t, string(ce.Log), "syntax error")
	assert.Contains(t, err.Error(), "failed to compile vertex shader")
	assert.NotContains(t, err.Error(), "\x00")

	assert.Zero(t, drv.LiveShaders())
	assert.Equal(t, 1, drv.DeletedShaders)
}

func TestCompileShaderFailuresDoNotLeak(t *testing.T) {
	drv := pipelinetest.NewDriver()
	for i := 0; i < 25; i++ {
		_, err := pipeline.CompileShader(drv, "void main(){}", pipeline.Fragment)
		require.Error(t, err)
	}
	assert.Zero(t, drv.LiveShaders())
	assert.Equal(t, 25, drv.DeletedShaders)
}

func TestCompileShaderRejectsBadInput(t *testing.T) {
	drv := pipelinetest.NewDriver()

	_, err := pipeline.CompileShader(drv, triangleVertex, pipeline.Stage(0x91B9))
	assert.ErrorIs(t, err, pipeline.ErrUnknownStage)

	_, err = pipeline.CompileShader(drv, triangleVertex+"\x00// tail", pipeline.Vertex)
	assert.ErrorIs(t, err, pipeline.ErrEmbeddedNUL)

	assert.Empty(t, drv.Calls, "no driver object should be created for rejected input")
}

func TestCompileErrorKeepsRawLog(t *testing.T) {
	raw := []byte{0xff, 'e', 'r', 'r', '\n', 0}
	err := &pipeline.CompileError{Stage: pipeline.Fragment, Log: raw}
	assert.Equal(t, raw, err.Log)
	assert.Equal(t, "failed to compile fragment shader: \xfferr", err.Error())
}

func TestShaderDeleteOnce(t *testing.T) {
	drv := pipelinetest.NewDriver()
	s, err := pipeline.CompileShader(drv, triangleVertex, pipeline.Vertex)
	require.NoError(t, err)

	moved := s
	moved.Delete()
	s.Delete()
	moved.Delete()

	assert.Equal(t, 1, drv.DeletedShaders)
	assert.Zero(t, s.Handle())
	assert.Zero(t, drv.LiveShaders())

	var nilShader *pipeline.Shader
	assert.NotPanics(t, nilShader.Delete)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", pipeline.Vertex.String())
	assert.Equal(t, "fragment", pipeline.Fragment.String())
	assert.Equal(t, "unknown", pipeline.Stage(1).String())
	assert.True(t, pipeline.Vertex.Valid())
	assert.False(t, pipeline.Stage(0).Valid())
}
