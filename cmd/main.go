package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gotriangle/glfwcontext"
	"github.com/richinsley/gotriangle/mesh"
	options "github.com/richinsley/gotriangle/options"
	renderer "github.com/richinsley/gotriangle/renderer"
	"github.com/richinsley/gotriangle/shader"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func run(opts *options.ShaderOptions) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer ctx.Shutdown()

	clearColor, err := opts.Clear()
	if err != nil {
		return err
	}
	sources := shader.NewSources(*opts.VertexFile, *opts.FragmentFile, *opts.WebGL)
	r, err := renderer.NewRenderer(ctx, sources, mesh.Triangle(), clearColor, *opts.Debug)
	if err != nil {
		return err
	}
	defer r.Shutdown()
	log.Printf("Context: %s", ctx.Describe())

	if *opts.Check {
		if err := r.Check(); err != nil {
			return err
		}
		log.Printf("Shader program OK")
		return nil
	}

	if *opts.Watch {
		if err := r.Watch(); err != nil {
			return err
		}
	}

	ctx.SetResizeCallback(func(width, height int) {
		log.Debugf("Size: %d:%d", width, height)
		r.Resize(width, height)
	})
	ctx.SetRefreshCallback(func() {
		r.RenderFrame()
		ctx.EndFrame()
	})
	for _, key := range []glfw.Key{glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD} {
		key := key
		ctx.RegisterKeyCallback(key, func() {
			log.Debugf("Key %s pressed", glfw.GetKeyName(key, 0))
		})
	}
	ctx.RegisterKeyCallback(glfw.KeyR, func() {
		if err := r.Reload(); err != nil {
			log.Errorf("Keeping previous shader program: %v", err)
		}
	})

	log.Printf("Size: %d:%d", *opts.Width, *opts.Height)
	r.Run()
	return nil
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts, err := options.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if *opts.Help {
		fmt.Println("OpenGL triangle harness")
		fs.PrintDefaults()
		return
	}

	level, err := log.ParseLevel(*opts.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
