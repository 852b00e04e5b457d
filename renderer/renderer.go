package renderer

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gotriangle/gldriver"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/mesh"
	"github.com/richinsley/gotriangle/pipeline"
	"github.com/richinsley/gotriangle/reload"
	"github.com/richinsley/gotriangle/shader"
	log "github.com/sirupsen/logrus"
)

// Initialize the OpenGL function pointers once per process.
var glInitOnce sync.Once

// Renderer draws a mesh with one pipeline program on every redraw.
type Renderer struct {
	context    graphics.Context
	driver     pipeline.Driver
	sources    *shader.Sources
	program    *pipeline.Program
	mesh       *mesh.Mesh
	vao        uint32
	vbo        uint32
	clearColor glm.Vec4
	watcher    *reload.Watcher
	checkErrs  bool
}

// NewRenderer makes ctx current, builds the pipeline from sources and uploads m.
func NewRenderer(ctx graphics.Context, sources *shader.Sources, m *mesh.Mesh, clearColor glm.Vec4, debug bool) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		driver:     gldriver.Driver{},
		sources:    sources,
		mesh:       m,
		clearColor: clearColor,
		checkErrs:  debug,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("Pixel format of the window's GL context: %s", gldriver.QueryPixelFormat())
	log.Printf("OpenGL version %s", gldriver.Version())

	var err error
	r.program, err = r.buildProgram()
	if err != nil {
		return nil, err
	}

	r.uploadMesh()

	width, height := r.context.GetFramebufferSize()
	r.Resize(width, height)
	return r, nil
}

func (r *Renderer) buildProgram() (*pipeline.Program, error) {
	vertexSource, fragmentSource, err := r.sources.Read()
	if err != nil {
		return nil, err
	}
	program, err := pipeline.NewProgram(r.driver, vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return program, nil
}

func (r *Renderer) uploadMesh() {
	vertices := r.mesh.Floats()

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.mesh.SizeBytes(), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// layout (location = 0) position, layout (location = 1) colour
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.Stride, gl.PtrOffset(mesh.PositionOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, mesh.Stride, gl.PtrOffset(mesh.ColorOffset))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Watch rebuilds the program whenever one of the source files changes.
func (r *Renderer) Watch() error {
	paths := r.sources.Paths()
	if len(paths) == 0 {
		return fmt.Errorf("built-in shaders cannot be watched")
	}
	w, err := reload.New(paths, r.context.Wake)
	if err != nil {
		return err
	}
	r.watcher = w
	log.Printf("Watching %v for changes", paths)
	return nil
}

// Reload rebuilds the program from the current sources. The running program
// is kept when the new one fails to build.
func (r *Renderer) Reload() error {
	program, err := r.buildProgram()
	if err != nil {
		return err
	}
	r.program.Delete()
	r.program = program
	log.Printf("Shader program rebuilt")
	return nil
}

// Resize matches the viewport to the framebuffer.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
}

// RenderFrame clears the framebuffer and draws the mesh.
func (r *Renderer) RenderFrame() {
	r.draw()
	if r.checkErrs {
		if err := pipeline.CheckError(r.driver); err != nil {
			log.Warnf("draw: %v", err)
		}
	}
}

func (r *Renderer) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.mesh.Count())
	gl.BindVertexArray(0)
}

// Check builds and activates the single-colour pair, then activates the
// program and draws once, reporting any error the context raised.
func (r *Renderer) Check() error {
	if err := shader.SmokeTest(r.driver); err != nil {
		return err
	}
	r.program.Use()
	if err := pipeline.CheckError(r.driver); err != nil {
		return fmt.Errorf("activating shader program: %w", err)
	}
	r.draw()
	if err := pipeline.CheckError(r.driver); err != nil {
		return fmt.Errorf("drawing: %w", err)
	}
	return nil
}

// Run redraws after every batch of window events until the window closes.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		if r.watcher != nil && r.watcher.Drain() {
			if err := r.Reload(); err != nil {
				log.Errorf("Keeping previous shader program: %v", err)
			}
		}
		r.RenderFrame()
		r.context.EndFrame()
		r.context.WaitEvents()
	}
}

func (r *Renderer) Shutdown() {
	if r.watcher != nil {
		r.watcher.Close()
	}
	r.program.Delete()
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
}
