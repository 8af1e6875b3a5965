// Package report writes the development studio environment check.
package report

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/devstudio/devstudio-hello/internal/envinfo"
	"github.com/devstudio/devstudio-hello/internal/greeting"
)

// Options controls how the report is rendered.
type Options struct {
	// Styled enables terminal colors. The text is the same either way.
	Styled bool

	// RuntimeVersion overrides the runtime version lookup when set.
	RuntimeVersion func() string

	// Platform overrides the platform lookup when set.
	Platform func() (string, error)
}

func (o Options) runtimeVersion() string {
	if o.RuntimeVersion != nil {
		return o.RuntimeVersion()
	}
	return envinfo.RuntimeVersion()
}

func (o Options) platform() (string, error) {
	if o.Platform != nil {
		return o.Platform()
	}
	return envinfo.Platform()
}

// Write prints the banner, runtime version, platform, greeting and squares
// to w, one line each and in that order. If the platform cannot be read the
// remaining lines are not written and the error is returned.
func Write(w io.Writer, opts Options) error {
	st := newStyles(w, opts.Styled)

	writeLine := func(s string) error {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	logrus.WithField("banner", greeting.Banner).Debug("writing banner")
	if err := writeLine(st.banner.Render(greeting.Banner)); err != nil {
		return err
	}

	version := opts.runtimeVersion()
	logrus.WithField("version", version).Debug("read runtime version")
	if err := writeLine(st.label.Render("Go version:") + " " + version); err != nil {
		return err
	}

	platform, err := opts.platform()
	if err != nil {
		return fmt.Errorf("failed to read platform: %w", err)
	}
	logrus.WithField("platform", platform).Debug("read platform")
	if err := writeLine(st.label.Render("Platform:") + " " + platform); err != nil {
		return err
	}

	logrus.WithField("name", greeting.DefaultName).Debug("writing greeting")
	if err := writeLine(st.greeting.Render(greeting.Greet(greeting.DefaultName))); err != nil {
		return err
	}

	squares := greeting.Squares(greeting.SquaresUpTo)
	logrus.WithField("squares", greeting.FormatInts(squares)).Debug("computed squares")
	return writeLine(st.label.Render(fmt.Sprintf("Squares of 1-%d:", greeting.SquaresUpTo)) + " " + greeting.FormatInts(squares))
}
