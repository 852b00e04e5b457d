// Package pipeline compiles shader stages and links them into programs that
// can be activated on the current rendering context.
//
// Every function in this package talks to the graphics driver and must be
// called on the thread that owns the current context.
package pipeline

// Parameter names understood by Driver.GetShaderiv and Driver.GetProgramiv.
// The values match the OpenGL enums so a driver can pass them straight through.
const (
	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82
	InfoLogLength = 0x8B84
)

// NoError is returned by Driver.GetError when the error queue is empty.
const NoError = 0

// Driver is the set of context primitives the pipeline needs.
type Driver interface {
	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32, length int32) []byte
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, length int32) []byte
	GetUniformLocation(program uint32, name string) int32
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetError() uint32
}
