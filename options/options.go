package options

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"
	toml "github.com/pelletier/go-toml/v2"
)

type ShaderOptions struct {
	Help         *bool
	ConfigFile   *string
	Width        *int
	Height       *int
	Title        *string
	VertexFile   *string // Vertex shader source file. Empty uses the built-in triangle shader.
	FragmentFile *string // Fragment shader source file. Empty uses the built-in triangle shader.
	WebGL        *bool   // Sources are WebGL2 ESSL and must be translated before compiling.
	Watch        *bool   // Recompile and relink when the shader files change.
	Debug        *bool   // Request a debug context.
	Check        *bool   // Build and activate the pipeline in a hidden window, then exit.
	ClearColor   *string
	LogLevel     *string
}

// fileOptions mirrors ShaderOptions for the TOML config file. Absent keys stay nil.
type fileOptions struct {
	Width        *int    `toml:"width"`
	Height       *int    `toml:"height"`
	Title        *string `toml:"title"`
	VertexFile   *string `toml:"vertex"`
	FragmentFile *string `toml:"fragment"`
	WebGL        *bool   `toml:"webgl"`
	Watch        *bool   `toml:"watch"`
	Debug        *bool   `toml:"debug"`
	ClearColor   *string `toml:"clear_color"`
	LogLevel     *string `toml:"log_level"`
}

// Register defines the command line flags on fs and returns the options they fill.
func Register(fs *flag.FlagSet) *ShaderOptions {
	return &ShaderOptions{
		Help:         fs.Bool("help", false, "Show help message"),
		ConfigFile:   fs.String("config", "", "TOML file with default option values"),
		Width:        fs.Int("width", 800, "Initial window width"),
		Height:       fs.Int("height", 600, "Initial window height"),
		Title:        fs.String("title", "Hello rust gl!", "Window title"),
		VertexFile:   fs.String("vertex", "", "Vertex shader source file (.vert)"),
		FragmentFile: fs.String("fragment", "", "Fragment shader source file (.frag)"),
		WebGL:        fs.Bool("webgl", false, "Shader sources are WebGL2 and are translated before compiling"),
		Watch:        fs.Bool("watch", false, "Rebuild the pipeline when shader files change"),
		Debug:        fs.Bool("debug", true, "Request a debug OpenGL context"),
		Check:        fs.Bool("check", false, "Compile, link and activate the shaders in a hidden window, then exit"),
		ClearColor:   fs.String("clear", "0.3,0.3,0.5,1.0", "Clear colour as r,g,b,a"),
		LogLevel:     fs.String("loglevel", "info", "Log level (debug, info, warn, error)"),
	}
}

// Parse parses args, then fills every flag that was not given explicitly from
// the config file named by -config, if any.
func Parse(fs *flag.FlagSet, args []string) (*ShaderOptions, error) {
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.ConfigFile == "" {
		return opts, opts.Validate()
	}

	data, err := os.ReadFile(*opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var fo fileOptions
	if err := toml.Unmarshal(data, &fo); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", *opts.ConfigFile, err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	apply(set, "width", opts.Width, fo.Width)
	apply(set, "height", opts.Height, fo.Height)
	apply(set, "title", opts.Title, fo.Title)
	apply(set, "vertex", opts.VertexFile, fo.VertexFile)
	apply(set, "fragment", opts.FragmentFile, fo.FragmentFile)
	apply(set, "webgl", opts.WebGL, fo.WebGL)
	apply(set, "watch", opts.Watch, fo.Watch)
	apply(set, "debug", opts.Debug, fo.Debug)
	apply(set, "clear", opts.ClearColor, fo.ClearColor)
	apply(set, "loglevel", opts.LogLevel, fo.LogLevel)

	return opts, opts.Validate()
}

func apply[T any](set map[string]bool, name string, dst *T, src *T) {
	if src != nil && !set[name] {
		*dst = *src
	}
}

// Validate checks values that flag parsing alone cannot.
func (o *ShaderOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if (*o.VertexFile == "") != (*o.FragmentFile == "") {
		return fmt.Errorf("-vertex and -fragment must be given together")
	}
	if *o.Watch && *o.VertexFile == "" {
		return fmt.Errorf("-watch needs -vertex and -fragment")
	}
	if _, err := o.Clear(); err != nil {
		return err
	}
	return nil
}

// Clear parses the clear colour option.
func (o *ShaderOptions) Clear() (glm.Vec4, error) {
	var c glm.Vec4
	parts := strings.Split(*o.ClearColor, ",")
	if len(parts) != 4 {
		return c, fmt.Errorf("clear colour %q: want 4 components", *o.ClearColor)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return c, fmt.Errorf("clear colour %q: %w", *o.ClearColor, err)
		}
		c[i] = float32(v)
	}
	return c, nil
}
