// Package pipelinetest provides a fake pipeline.Driver that emulates compile
// and link outcomes and counts every object it hands out.
package pipelinetest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/richinsley/gotriangle/pipeline"
)

// Driver emulates just enough of a GL context to exercise the pipeline.
// A shader compiles when it starts with #version and declares main. A program
// links when every fragment input has a matching vertex output.
type Driver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	errors   []uint32

	// Current is the program last bound by UseProgram.
	Current uint32
	// Calls records allocation, attach, link and bind calls in order.
	Calls []string

	DeletedShaders  int
	DeletedPrograms int
}

var _ pipeline.Driver = (*Driver)(nil)

type fakeShader struct {
	stage    pipeline.Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	detached []uint32
}

func NewDriver() *Driver {
	return &Driver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (d *Driver) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// LiveShaders counts shader objects created and not yet deleted.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

// LivePrograms counts program objects created and not yet deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

// Attached lists the shaders attached to program, in attach order.
func (d *Driver) Attached(program uint32) []uint32 { return d.programs[program].attached }

// Linked reports whether program linked successfully.
func (d *Driver) Linked(program uint32) bool { return d.programs[program].linked }

// RaiseError queues code as if the last call had failed.
func (d *Driver) RaiseError(code uint32) { d.errors = append(d.errors, code) }

func (d *Driver) CreateShader(stage uint32) uint32 {
	d.next++
	d.shaders[d.next] = &fakeShader{stage: pipeline.Stage(stage)}
	d.record("CreateShader(%d)", d.next)
	return d.next
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

var mainDecl = regexp.MustCompile(`\bvoid\s+main\s*\(`)

func (d *Driver) CompileShader(shader uint32) {
	s := d.shaders[shader]
	switch {
	case !strings.HasPrefix(s.source, "#version"):
		s.log = "0:1(1): error: missing #version directive\n\x00"
	case !mainDecl.MatchString(s.source):
		s.log = "0:2(1): error: syntax error, unexpected IDENTIFIER\n\x00"
	default:
		s.compiled = true
	}
}

func (d *Driver) GetShaderiv(shader uint32, pname uint32) int32 {
	s := d.shaders[shader]
	switch pname {
	case pipeline.CompileStatus:
		if s.compiled {
			return 1
		}
		return 0
	case pipeline.InfoLogLength:
		return int32(len(s.log))
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32, length int32) []byte {
	return []byte(d.shaders[shader].log[:length])
}

func (d *Driver) DeleteShader(shader uint32) {
	if _, ok := d.shaders[shader]; !ok {
		panic(fmt.Sprintf("DeleteShader(%d): not a live shader", shader))
	}
	delete(d.shaders, shader)
	d.DeletedShaders++
	d.record("DeleteShader(%d)", shader)
}

func (d *Driver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = &fakeProgram{}
	d.record("CreateProgram(%d)", d.next)
	return d.next
}

func (d *Driver) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
	d.record("AttachShader(%d,%d)", program, shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	p := d.programs[program]
	p.detached = append(p.detached, shader)
	d.record("DetachShader(%d,%d)", program, shader)
}

var (
	outDecl = regexp.MustCompile(`(?m)^\s*out\s+\w+\s+(\w+)\s*;`)
	inDecl  = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
)

// LinkProgram fails when a fragment input has no matching vertex output.
func (d *Driver) LinkProgram(program uint32) {
	p := d.programs[program]
	d.record("LinkProgram(%d)", program)
	outputs := make(map[string]bool)
	var inputs []string
	for _, h := range p.attached {
		s := d.shaders[h]
		switch s.stage {
		case pipeline.Vertex:
			for _, m := range outDecl.FindAllStringSubmatch(s.source, -1) {
				outputs[m[1]] = true
			}
		case pipeline.Fragment:
			for _, m := range inDecl.FindAllStringSubmatch(s.source, -1) {
				inputs = append(inputs, m[1])
			}
		}
	}
	for _, in := range inputs {
		if !outputs[in] {
			p.log = fmt.Sprintf("error: fragment shader input '%s' has no matching vertex output\n\x00", in)
			return
		}
	}
	p.linked = true
}

func (d *Driver) GetProgramiv(program uint32, pname uint32) int32 {
	p := d.programs[program]
	switch pname {
	case pipeline.LinkStatus:
		if p.linked {
			return 1
		}
		return 0
	case pipeline.InfoLogLength:
		return int32(len(p.log))
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32, length int32) []byte {
	return []byte(d.programs[program].log[:length])
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation(%d,%s)", program, name)
	if name == "u_color" {
		return 3
	}
	return -1
}

func (d *Driver) DeleteProgram(program uint32) {
	if _, ok := d.programs[program]; !ok {
		panic(fmt.Sprintf("DeleteProgram(%d): not a live program", program))
	}
	delete(d.programs, program)
	d.DeletedPrograms++
	d.record("DeleteProgram(%d)", program)
}

// UseProgram queues GL_INVALID_OPERATION for programs that are unknown or unlinked.
func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram(%d)", program)
	if program != 0 {
		if p, ok := d.programs[program]; !ok || !p.linked {
			d.errors = append(d.errors, 0x0502)
			return
		}
	}
	d.Current = program
}

func (d *Driver) GetError() uint32 {
	if len(d.errors) == 0 {
		return pipeline.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}
