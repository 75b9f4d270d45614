package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/use-agent/brainhint/solver"
)

// Display is the result area. Requests are not sequenced: whichever outcome
// is shown last stays on screen, even if it belongs to an older request.
type Display struct {
	mu      sync.Mutex
	out     io.Writer
	plain   bool
	current *solver.Outcome
	shown   int
}

// NewDisplay writes cards to out. With plain set, cards are unstyled.
func NewDisplay(out io.Writer, plain bool) *Display {
	return &Display{out: out, plain: plain}
}

// Loading announces that level is being fetched.
func (d *Display) Loading(level string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "Fetching solution for level %s...\n", level)
}

// Notice prints a one-line message, such as an input validation hint.
func (d *Display) Notice(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, msg)
}

// Show replaces the current outcome with o and prints it.
func (d *Display) Show(o solver.Outcome) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current = &o
	d.shown++
	if d.plain {
		fmt.Fprintln(d.out, Plain(o))
		return
	}
	fmt.Fprintln(d.out, Card(o))
}

// Current returns the outcome on screen, if any.
func (d *Display) Current() (solver.Outcome, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return solver.Outcome{}, false
	}
	return *d.current, true
}

// Shown reports how many outcomes have been displayed.
func (d *Display) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}
