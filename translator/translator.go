// Package translator rewrites WebGL2 shader sources into desktop GLSL so they
// can be compiled on a core profile context.
package translator

import (
	"context"
	"fmt"
	"sync"

	"github.com/richinsley/gotriangle/pipeline"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

func stageName(stage pipeline.Stage) (string, error) {
	switch stage {
	case pipeline.Vertex:
		return "vertex", nil
	case pipeline.Fragment:
		return "fragment", nil
	}
	return "", pipeline.ErrUnknownStage
}

// ToDesktop translates a WebGL2 (ESSL 3.00) source for stage into GLSL 4.10.
func ToDesktop(source string, stage pipeline.Stage) (string, error) {
	name, err := stageName(stage)
	if err != nil {
		return "", err
	}
	t, err := GetTranslator()
	if err != nil {
		return "", fmt.Errorf("failed to create shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, name, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", name, err)
	}
	return out.Code, nil
}
