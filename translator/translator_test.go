package translator

import (
	"testing"

	"github.com/richinsley/gotriangle/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestStageName(t *testing.T) {
	name, err := stageName(pipeline.Vertex)
	assert.NoError(t, err)
	assert.Equal(t, "vertex", name)

	name, err = stageName(pipeline.Fragment)
	assert.NoError(t, err)
	assert.Equal(t, "fragment", name)

	_, err = stageName(pipeline.Stage(7))
	assert.ErrorIs(t, err, pipeline.ErrUnknownStage)
}

func TestToDesktopRejectsUnknownStage(t *testing.T) {
	_, err := ToDesktop("#version 300 es\nvoid main(){}", pipeline.Stage(7))
	assert.ErrorIs(t, err, pipeline.ErrUnknownStage)
}
