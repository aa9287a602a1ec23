package tlog_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/sllist/internal/tlog"
)

type recorder struct {
	logs   []string
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(a ...any) {
	r.logs = append(r.logs, a[0].(string))
}

func (r *recorder) Error(a ...any) {
	r.errors = append(r.errors, a[0].(string))
}

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		var r recorder
		tlog.Log(&r, errors.New("insert rejected").Int("index", 12).Int("reached", 3))

		if len(r.logs) != 1 || len(r.errors) != 0 {
			t.Errorf("unexpected output counts: %d logs, %d errors", len(r.logs), len(r.errors))
			return
		}
		for _, want := range []string{"insert rejected", "index", "12", "reached", "3"} {
			if !strings.Contains(r.logs[0], want) {
				t.Errorf("output %q misses %q", r.logs[0], want)
			}
		}
	})

	t.Run("check", func(t *testing.T) {
		var r recorder
		if tlog.Check(&r, nil) {
			t.Error("nil error must not be reported")
		}
		if !tlog.Check(&r, errors.New("error").Bool("is-error", true)) {
			t.Error("non-nil error must be reported")
		}
		if len(r.errors) != 1 {
			t.Errorf("unexpected errors count %d, want 1", len(r.errors))
		}
	})
}
