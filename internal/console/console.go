// Package console renders page elements on a terminal so the same form flow
// used in the browser drives the command line client.
package console

import (
	"io"
	"sync"
	"time"

	"github.com/AlexZinkM/pagekit/internal/ui"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Alert prints its text in red whenever it is shown
type Alert struct {
	*ui.Node

	mu    sync.Mutex
	out   io.Writer
	color *color.Color
}

// NewAlert creates a hidden alert that writes to out
func NewAlert(out io.Writer) *Alert {
	n := ui.NewNode(ui.HiddenClass)
	n.Hide()
	return &Alert{Node: n, out: out, color: color.New(color.FgRed, color.Bold)}
}

func (a *Alert) Show() {
	a.Node.Show()
	text := a.Text()
	if text == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.color.Fprintln(a.out, text)
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Icon animates a spinner while it carries the spin class.
// Nothing is drawn when out is not a terminal.
type Icon struct {
	*ui.Node

	out      io.Writer
	tty      bool
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewIcon creates an icon that draws on out
func NewIcon(out io.Writer) *Icon {
	return &Icon{
		Node:     ui.NewNode(),
		out:      out,
		tty:      IsTerminal(out),
		interval: 100 * time.Millisecond,
	}
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (i *Icon) AddClass(names ...string) {
	i.Node.AddClass(names...)
	if i.HasClass(ui.SpinClass) {
		i.start()
	}
}

func (i *Icon) RemoveClass(names ...string) {
	i.Node.RemoveClass(names...)
	if !i.HasClass(ui.SpinClass) {
		i.halt()
	}
}

// Spinning reports whether the animation is running
func (i *Icon) Spinning() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stop != nil
}

func (i *Icon) start() {
	if !i.tty {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stop != nil {
		return
	}
	i.stop = make(chan struct{})
	i.done = make(chan struct{})
	go i.spin(i.stop, i.done)
}

func (i *Icon) halt() {
	i.mu.Lock()
	stop, done := i.stop, i.done
	i.stop, i.done = nil, nil
	i.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (i *Icon) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for n := 0; ; n++ {
		io.WriteString(i.out, "\r"+spinnerFrames[n%len(spinnerFrames)]+" ")
		select {
		case <-stop:
			io.WriteString(i.out, "\r  \r")
			return
		case <-ticker.C:
		}
	}
}

var (
	_ ui.Element = (*Alert)(nil)
	_ ui.Element = (*Icon)(nil)
)
