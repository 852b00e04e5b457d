package pipeline

import (
	"fmt"
)

// Program is a linked pipeline program. It keeps no reference to the shaders
// it was linked from.
type Program struct {
	drv      Driver
	handle   uint32
	uniforms map[string]int32
}

// Link attaches shaders to a new program object in the given order, links it
// and detaches them again. On failure the program object is deleted and a
// *LinkError holding the linker log is returned.
//
// Link panics when called without shaders or with a deleted shader.
func Link(drv Driver, shaders ...*Shader) (*Program, error) {
	if len(shaders) == 0 {
		panic("pipeline: Link called with no shaders")
	}
	for i, s := range shaders {
		if s == nil || s.handle == 0 {
			panic(fmt.Sprintf("pipeline: shader %d passed to Link is nil or deleted", i))
		}
	}

	handle := drv.CreateProgram()
	if handle == 0 {
		return nil, ErrCreate
	}
	for _, s := range shaders {
		drv.AttachShader(handle, s.handle)
	}
	drv.LinkProgram(handle)
	for _, s := range shaders {
		drv.DetachShader(handle, s.handle)
	}

	if drv.GetProgramiv(handle, LinkStatus) == 0 {
		logLength := drv.GetProgramiv(handle, InfoLogLength)
		var logText []byte
		if logLength > 0 {
			logText = drv.GetProgramInfoLog(handle, logLength)
		}
		drv.DeleteProgram(handle)
		return nil, &LinkError{Log: logText}
	}
	return &Program{drv: drv, handle: handle, uniforms: make(map[string]int32)}, nil
}

// NewProgram compiles a vertex and fragment source pair and links them. The
// intermediate shaders are deleted whether or not linking succeeds.
func NewProgram(drv Driver, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := CompileShader(drv, vertexSource, Vertex)
	if err != nil {
		return nil, err
	}
	defer vs.Delete()

	fs, err := CompileShader(drv, fragmentSource, Fragment)
	if err != nil {
		return nil, err
	}
	defer fs.Delete()

	return Link(drv, vs, fs)
}

// Handle returns the driver's name for the program object, or 0 once deleted.
func (p *Program) Handle() uint32 { return p.handle }

// Use makes p the active program for subsequent draw calls. Calling it on an
// already active program issues the bind again and changes nothing else.
// A deleted program does nothing, leaving the current binding alone.
func (p *Program) Use() {
	if p.handle == 0 {
		return
	}
	p.drv.UseProgram(p.handle)
}

// UniformLocation looks up a uniform by name, caching the answer. Unknown
// names yield -1.
func (p *Program) UniformLocation(name string) int32 {
	if p.handle == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.drv.GetUniformLocation(p.handle, name)
	p.uniforms[name] = loc
	return loc
}

// Delete returns the program object to the driver. Calls after the first are no-ops.
func (p *Program) Delete() {
	if p == nil || p.handle == 0 {
		return
	}
	p.drv.DeleteProgram(p.handle)
	p.handle = 0
	p.uniforms = nil
}
