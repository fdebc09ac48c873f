package app

import (
	"fmt"
	"io"

	"gridkit/internal/core"
)

// RunHeadless prints c.Steps generations of sim to w, paced at c.TPS.
// The first generation printed is the current state.
func RunHeadless(w io.Writer, sim core.Sim, c *Config) error {
	glyphs := []rune(c.Glyphs)
	if len(glyphs) == 0 {
		glyphs = []rune(".#")
	}
	format := func(v uint8) string {
		if int(v) >= len(glyphs) {
			return string(glyphs[len(glyphs)-1])
		}
		return string(glyphs[v])
	}

	pace := core.NewFixedStep(c.TPS)
	for i := 0; i < c.Steps; i++ {
		if i > 0 {
			pace.Wait()
			sim.Step()
		}
		if _, err := fmt.Fprintf(w, "%s generation %d\n", sim.Name(), i); err != nil {
			return err
		}
		if err := sim.Grid().FprintFunc(w, format); err != nil {
			return fmt.Errorf("print generation %d: %w", i, err)
		}
	}
	return nil
}
