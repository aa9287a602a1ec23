package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs error with its structured context.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signals error with its structured context.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check returns false if error is nil. Signals the error and returns true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	Error(t, err)
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight + err.Error() + reset + "\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)

	width := 0
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}
	for _, v := range c.vars {
		_, _ = fmt.Fprintf(&b, "    %s%s%s: %*s%v\n", bold, v.name, reset, width-len(v.name), "", v.value)
	}

	return b.String()
}
