package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// event shows a spinner next to the name of a running stage and prints the
// elapsed time once the stage stops.
type event struct {
	out  io.Writer
	msg  string
	done chan struct{}
	exit chan struct{}
}

// newEvent constructor method for instantiating a new progress event.
func newEvent(out io.Writer, msg string) *event {
	return &event{out: out, msg: msg}
}

// start dispatches the progress event.
func (e *event) start() {
	e.done = make(chan struct{})
	e.exit = make(chan struct{})
	start := time.Now()
	ticker := time.NewTicker(time.Millisecond * 100)

	w := tabwriter.NewWriter(e.out, 10, 0, 0, ' ', tabwriter.DiscardEmptyColumns)
	fmt.Fprintf(w, "\r\t%s", e.msg)
	w.Flush()

	go func() {
		defer close(e.exit)
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-ticker.C:
					w := tabwriter.NewWriter(e.out, 10, 0, 0, ' ', tabwriter.DiscardEmptyColumns)
					fmt.Fprintf(w, "\r\t%s%s %c \t%s", e.msg, "\x1b[35m", r, "\x1b[39m")
					w.Flush()
				case <-e.done:
					ticker.Stop()
					w := tabwriter.NewWriter(e.out, 20, 15, 10, '.', tabwriter.AlignRight|tabwriter.DiscardEmptyColumns)
					fmt.Fprintf(w, "\t%.2fs\t\n", time.Since(start).Seconds())
					w.Flush()
					return
				}
			}
		}
	}()
}

// stop signals the stage end and waits for the final line to be printed.
func (e *event) stop() {
	close(e.done)
	<-e.exit
}
