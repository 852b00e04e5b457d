package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStage = errors.New("unknown shader stage")
	ErrEmbeddedNUL  = errors.New("shader source contains a NUL byte")
	ErrCreate       = errors.New("driver returned a null handle")
)

// CompileError carries the compiler's info log for a stage that failed to compile.
// Log holds the driver's bytes as returned.
type CompileError struct {
	Stage Stage
	Log   []byte
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, displayLog(e.Log))
}

// LinkError carries the linker's info log for a program that failed to link.
type LinkError struct {
	Log []byte
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", displayLog(e.Log))
}

// GLError lists the codes drained from the driver's error queue.
type GLError struct {
	Codes []uint32
}

func (e *GLError) Error() string {
	parts := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		parts[i] = fmt.Sprintf("0x%04X", c)
	}
	return "graphics error: " + strings.Join(parts, ", ")
}

// maxQueuedErrors bounds CheckError on drivers that never clear their queue,
// which is what a lost context does.
const maxQueuedErrors = 16

// CheckError drains the driver's error queue. It returns nil when the queue
// was empty and a *GLError otherwise.
func CheckError(drv Driver) error {
	var codes []uint32
	for len(codes) < maxQueuedErrors {
		code := drv.GetError()
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &GLError{Codes: codes}
}

func displayLog(log []byte) string {
	return string(bytes.TrimRight(log, "\x00 \t\r\n"))
}
