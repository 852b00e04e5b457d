package pipeline

import (
	"strings"
)

// Stage identifies a programmable step of the pipeline.
type Stage uint32

const (
	Fragment Stage = 0x8B30
	Vertex   Stage = 0x8B31
)

// String returns "vertex", "fragment" or "unknown".
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the supported stages.
func (s Stage) Valid() bool {
	return s == Vertex || s == Fragment
}

// Shader is a successfully compiled shader object owned by the caller.
type Shader struct {
	drv    Driver
	handle uint32
	stage  Stage
}

// CompileShader creates a shader object for stage, compiles source into it and
// returns it. On failure the shader object is deleted and a *CompileError
// holding the compiler log is returned.
func CompileShader(drv Driver, source string, stage Stage) (*Shader, error) {
	if !stage.Valid() {
		return nil, ErrUnknownStage
	}
	if strings.IndexByte(source, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}

	handle := drv.CreateShader(uint32(stage))
	if handle == 0 {
		return nil, ErrCreate
	}
	drv.ShaderSource(handle, source)
	drv.CompileShader(handle)

	if drv.GetShaderiv(handle, CompileStatus) == 0 {
		logLength := drv.GetShaderiv(handle, InfoLogLength)
		var logText []byte
		if logLength > 0 {
			logText = drv.GetShaderInfoLog(handle, logLength)
		}
		drv.DeleteShader(handle)
		return nil, &CompileError{Stage: stage, Log: logText}
	}
	return &Shader{drv: drv, handle: handle, stage: stage}, nil
}

// Handle returns the driver's name for the shader object, or 0 once deleted.
func (s *Shader) Handle() uint32 { return s.handle }

// Stage returns the stage the shader was compiled for.
func (s *Shader) Stage() Stage { return s.stage }

// Delete returns the shader object to the driver. Calls after the first are no-ops.
func (s *Shader) Delete() {
	if s == nil || s.handle == 0 {
		return
	}
	s.drv.DeleteShader(s.handle)
	s.handle = 0
}
