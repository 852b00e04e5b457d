package graphics

// Context defines the interface for the window and OpenGL context the
// renderer draws into. All methods must be called on the thread that created it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer.
	EndFrame()
	// WaitEvents blocks until at least one window event arrives or Wake is called.
	WaitEvents()
	// Wake interrupts WaitEvents. It is safe to call from any goroutine.
	Wake()
	GetFramebufferSize() (int, int)
}
