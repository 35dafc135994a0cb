package app

import (
	"fmt"
	"io"
	"time"

	"flatland/internal/domain"
	"flatland/internal/render"
)

// App runs surveys and prints their results.
type App struct {
	wire *Wire
	out  io.Writer
}

// New returns an App that prints results to out.
func New(wire *Wire, out io.Writer) *App {
	return &App{wire: wire, out: out}
}

// Run surveys the configured input and prints the total, or a JSON summary
// when Config.JSON is set. Metrics are flushed even when the survey fails.
func (a *App) Run() (err error) {
	start := time.Now()
	defer func() {
		a.wire.Metrics.ObserveRun(start)
		if ferr := a.wire.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	in, err := a.wire.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	res, err := a.wire.Survey.Survey(in)
	if err != nil {
		return err
	}
	return a.print(res)
}

// Fingerprint prints the digest of the configured input.
func (a *App) Fingerprint() error {
	in, err := a.wire.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	d, err := a.wire.Survey.Fingerprint(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Fingerprint: %s\n", d)
	return err
}

func (a *App) print(res domain.Result) error {
	if a.wire.Config.JSON {
		return render.JSON(a.out, res)
	}
	_, err := fmt.Fprintln(a.out, render.Total(res.Total))
	return err
}
