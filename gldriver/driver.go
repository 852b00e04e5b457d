// Package gldriver implements pipeline.Driver on top of the go-gl OpenGL
// bindings. gl.Init must have been called with a current context.
package gldriver

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/pipeline"
)

// Driver forwards every call to the current OpenGL context.
type Driver struct{}

var _ pipeline.Driver = Driver{}

func (Driver) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Driver) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Driver) GetShaderInfoLog(shader uint32, length int32) []byte {
	buf := make([]byte, length+1)
	var written int32
	gl.GetShaderInfoLog(shader, length, &written, &buf[0])
	return buf[:written]
}

func (Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Driver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Driver) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Driver) GetProgramInfoLog(program uint32, length int32) []byte {
	buf := make([]byte, length+1)
	var written int32
	gl.GetProgramInfoLog(program, length, &written, &buf[0])
	return buf[:written]
}

func (Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (Driver) GetError() uint32 { return gl.GetError() }

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func attachmentSize(attachment, pname uint32) int {
	var v int32
	gl.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, attachment, pname, &v)
	return int(v)
}

// QueryPixelFormat reads the bit depths of the default framebuffer. It binds
// framebuffer 0.
func QueryPixelFormat() graphics.PixelFormat {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return graphics.PixelFormat{
		Red:     attachmentSize(gl.BACK_LEFT, gl.FRAMEBUFFER_ATTACHMENT_RED_SIZE),
		Green:   attachmentSize(gl.BACK_LEFT, gl.FRAMEBUFFER_ATTACHMENT_GREEN_SIZE),
		Blue:    attachmentSize(gl.BACK_LEFT, gl.FRAMEBUFFER_ATTACHMENT_BLUE_SIZE),
		Alpha:   attachmentSize(gl.BACK_LEFT, gl.FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE),
		Depth:   attachmentSize(gl.DEPTH, gl.FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE),
		Stencil: attachmentSize(gl.STENCIL, gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE),
	}
}
