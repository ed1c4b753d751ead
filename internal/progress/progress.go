// Package progress renders training progress on a terminal line.
package progress

import (
	"fmt"
	"io"
	"strings"
)

// DefaultWidth is the number of cells in the bar.
const DefaultWidth = 50

// Bar redraws a single line per epoch:
//
//	Epoch 3/10: [===============                                   ] 30% - Loss: 0.123
//
// The line is rewritten in place with a carriage return and terminated with
// a newline after the final epoch. Bar only observes training; it never
// affects it.
type Bar struct {
	w     io.Writer
	width int
}

// New creates a Bar writing to w with DefaultWidth cells.
func New(w io.Writer) *Bar {
	return &Bar{w: w, width: DefaultWidth}
}

// WithWidth returns a copy of b using width cells.
func (b *Bar) WithWidth(width int) *Bar {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Bar{w: b.w, width: width}
}

// Report draws the bar for a finished epoch (1-based).
func (b *Bar) Report(epoch, epochs int, meanLoss float32) {
	filled := 0
	if epochs > 0 {
		filled = min(epoch*b.width/epochs, b.width)
	}
	percent := 0
	if epochs > 0 {
		percent = min(epoch*100/epochs, 100)
	}

	// Write errors are ignored: reporting is best effort.
	_, _ = fmt.Fprintf(b.w, "\rEpoch %d/%d: [%s%s] %3d%% - Loss: %.3f",
		epoch, epochs,
		strings.Repeat("=", filled), strings.Repeat(" ", b.width-filled),
		percent, meanLoss)

	if epoch >= epochs {
		_, _ = fmt.Fprintln(b.w)
	}
}
