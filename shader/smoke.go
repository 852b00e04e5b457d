package shader

import (
	"fmt"

	"github.com/richinsley/gotriangle/pipeline"
)

// SmokeTest compiles, links and activates the single-colour pair on drv,
// then deletes it. Errors queued before the call are discarded. The caller
// must rebind its own program afterwards.
func SmokeTest(drv pipeline.Driver) error {
	pipeline.CheckError(drv)

	vertex, fragment := GetSolidShaders()
	p, err := pipeline.NewProgram(drv, vertex, fragment)
	if err != nil {
		return fmt.Errorf("smoke test program: %w", err)
	}
	defer p.Delete()

	p.Use()
	if err := pipeline.CheckError(drv); err != nil {
		return fmt.Errorf("smoke test activation: %w", err)
	}
	return nil
}
