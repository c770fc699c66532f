package panzoom

import (
	"fmt"
	"os"
)

// debugf prints a prefixed line to stderr when debug mode is enabled.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[panzoom] "+format+"\n", args...)
}

// debugCheckOpen panics when a closed controller is asked to animate in
// debug mode. In release mode the request is silently dropped.
func (c *Controller) debugCheckOpen(op string) {
	if c.debug && c.closed {
		panic(fmt.Sprintf("panzoom debug: %s on closed controller", op))
	}
}
