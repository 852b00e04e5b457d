package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/richinsley/gotriangle/pipeline"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const triangleVertexSourceGL = `#version 450 core
layout (location = 0) in vec3 Position;
layout (location = 1) in vec3 Color;

out VS_OUTPUT {
    vec3 Color;
} OUT;

void main()
{
    gl_Position = vec4(Position, 1.0);
    OUT.Color = Color;
}
`

const triangleFragmentSourceGL = `#version 450 core
in VS_OUTPUT {
    vec3 Color;
} IN;

out vec4 Color;

void main()
{
    Color = vec4(IN.Color, 1.0f);
}
`

// Minimal single-colour pair used as a smoke test of the compiler and linker.
const solidVertexSourceGL = "#version 450 core\nlayout (location=0) in vec3 p; void main(){gl_Position=vec4(p,1.0);}"
const solidFragmentSourceGL = "#version 450 core\nout vec4 c; void main(){c=vec4(1.0,0.0,0.0,1.0);}"

// ──────────────────────────────────── WebGL2 ────────────────────────────────────

// Sources written for WebGL2 have to go through the translator before a
// desktop core context accepts them.
const triangleVertexSourceWebGL = `#version 300 es
layout (location = 0) in vec3 Position;
layout (location = 1) in vec3 Color;
out vec3 vColor;
void main() {
    vColor = Color;
    gl_Position = vec4(Position, 1.0);
}
`

const triangleFragmentSourceWebGL = `#version 300 es
precision mediump float;
in vec3 vColor;
out vec4 fragColor;
void main() { fragColor = vec4(vColor, 1.0); }
`

// ────────────────────────────────── Public API ─────────────────────────────────

func GetVertexShader(webgl bool) string {
	if webgl {
		return triangleVertexSourceWebGL
	}
	return triangleVertexSourceGL
}

func GetFragmentShader(webgl bool) string {
	if webgl {
		return triangleFragmentSourceWebGL
	}
	return triangleFragmentSourceGL
}

// GetSolidShaders returns the single-colour vertex and fragment pair.
func GetSolidShaders() (vertex, fragment string) {
	return solidVertexSourceGL, solidFragmentSourceGL
}

// ─────────────────────────────────── Files ────────────────────────────────────

// StageFromPath infers the shader stage from a file extension.
func StageFromPath(path string) (pipeline.Stage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".vs", ".vsh":
		return pipeline.Vertex, nil
	case ".frag", ".fs", ".fsh":
		return pipeline.Fragment, nil
	}
	return 0, fmt.Errorf("%s: %w", path, pipeline.ErrUnknownStage)
}

// Source is shader text read from disk together with its stage.
type Source struct {
	Path  string
	Stage pipeline.Stage
	Code  string
}

// Load reads a shader source file. The stage comes from the file extension.
func Load(path string) (*Source, error) {
	stage, err := StageFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader source: %w", err)
	}
	return &Source{Path: path, Stage: stage, Code: string(data)}, nil
}
