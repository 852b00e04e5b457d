package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/gotriangle/options"
	log "github.com/sirupsen/logrus"
)

// Context owns the window and its OpenGL context and dispatches window events.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
	onResize     func(width, height int)
	onRefresh    func()
}

// New creates a window with a 4.5 core profile context.
func New(options *options.ShaderOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if *options.Check {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	}
	if *options.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetRefreshCallback(c.glfwRefreshCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// SetResizeCallback registers f to receive the new framebuffer size in pixels.
func (c *Context) SetResizeCallback(f func(width, height int)) {
	c.onResize = f
}

// SetRefreshCallback registers f to run when the window contents are damaged.
func (c *Context) SetRefreshCallback(f func()) {
	c.onRefresh = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Escape closes on press or release
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

func (c *Context) glfwRefreshCallback(w *glfw.Window) {
	if c.onRefresh != nil {
		c.onRefresh()
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window and its context.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) WaitEvents() {
	glfw.WaitEvents()
}

func (c *Context) Wake() {
	glfw.PostEmptyEvent()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Describe summarises the context that was actually created.
func (c *Context) Describe() string {
	profile := "compat"
	if c.window.GetAttrib(glfw.OpenGLProfile) == glfw.OpenGLCoreProfile {
		profile = "core"
	}
	return fmt.Sprintf("OpenGL %d.%d %s profile, debug=%v",
		c.window.GetAttrib(glfw.ContextVersionMajor),
		c.window.GetAttrib(glfw.ContextVersionMinor),
		profile,
		c.window.GetAttrib(glfw.OpenGLDebugContext) == glfw.True)
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
