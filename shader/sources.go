package shader

import (
	"fmt"

	"github.com/richinsley/gotriangle/pipeline"
	"github.com/richinsley/gotriangle/translator"
)

// Sources supplies the vertex and fragment text for the pipeline, either the
// built-in triangle shaders or a pair of files that are re-read on every call.
type Sources struct {
	VertexFile   string
	FragmentFile string
	WebGL        bool

	// translate is swapped out in tests
	translate func(source string, stage pipeline.Stage) (string, error)
}

func NewSources(vertexFile, fragmentFile string, webgl bool) *Sources {
	return &Sources{
		VertexFile:   vertexFile,
		FragmentFile: fragmentFile,
		WebGL:        webgl,
		translate:    translator.ToDesktop,
	}
}

// Paths lists the files backing the sources; it is empty for built-ins.
func (s *Sources) Paths() []string {
	if s.VertexFile == "" {
		return nil
	}
	return []string{s.VertexFile, s.FragmentFile}
}

// Read returns the vertex and fragment sources ready for compilation.
func (s *Sources) Read() (string, string, error) {
	vertex, fragment := GetVertexShader(s.WebGL), GetFragmentShader(s.WebGL)
	if s.VertexFile != "" {
		var err error
		if vertex, err = s.readFile(s.VertexFile, pipeline.Vertex); err != nil {
			return "", "", err
		}
		if fragment, err = s.readFile(s.FragmentFile, pipeline.Fragment); err != nil {
			return "", "", err
		}
	}
	if !s.WebGL {
		return vertex, fragment, nil
	}

	vertex, err := s.translate(vertex, pipeline.Vertex)
	if err != nil {
		return "", "", err
	}
	fragment, err = s.translate(fragment, pipeline.Fragment)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func (s *Sources) readFile(path string, want pipeline.Stage) (string, error) {
	src, err := Load(path)
	if err != nil {
		return "", err
	}
	if src.Stage != want {
		return "", fmt.Errorf("%s holds a %s shader, expected %s", path, src.Stage, want)
	}
	return src.Code, nil
}
