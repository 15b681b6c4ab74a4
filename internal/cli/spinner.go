package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a status line while a render is in flight. It only
// draws when started on a terminal; otherwise Stop is a no-op.
type spinner struct {
	w        io.Writer
	message  string
	interval time.Duration

	stop     chan struct{}
	finished chan struct{}
	once     sync.Once
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		w:        w,
		message:  message,
		interval: spinnerInterval,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// startSpinner shows message on stderr until Stop is called or ctx ends.
// Output that is not a terminal (pipes, CI logs) gets no animation.
func startSpinner(ctx context.Context, message string) *spinner {
	s := newSpinner(os.Stderr, message)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		s.run(ctx)
	} else {
		close(s.finished)
	}
	return s
}

// run draws frames from a goroutine until stopped.
func (s *spinner) run(ctx context.Context) {
	go func() {
		defer close(s.finished)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				s.clear()
				return
			case <-s.stop:
				s.clear()
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()
}

// Stop ends the animation and erases the line. Safe to call repeatedly.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.finished
}

func (s *spinner) clear() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
