// Package telemetry provides the structured logging facade used
// across the module, following the go-logr/logr convention the
// teacher's own dependency graph (ginkgo/akita) already relies on.
// Components log at construction time and at diagnostic call sites
// only, never on the hot path of a single Store/Recall/Query call.
package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
)

// NewLogger returns a logr.Logger named name, backed by a minimal
// sink that writes leveled, key=value lines to w.
func NewLogger(name string, w io.Writer) logr.Logger {
	return logr.New(&sink{name: name, w: w})
}

// NewRunID returns a short, sortable, URL-safe identifier used to tag
// a SequencePredictor instance or a benchmark run so concurrent runs
// can be told apart in logs.
func NewRunID() string {
	return xid.New().String()
}

type sink struct {
	name   string
	values []interface{}
	w      io.Writer
}

func (s *sink) Init(logr.RuntimeInfo) {}

// Enabled reports V(1) and below as active; the module has no
// flag-driven verbosity controls of its own (no config file, no env
// vars), so every caller that wants tracing gets it.
func (s *sink) Enabled(level int) bool { return level <= 1 }

func (s *sink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.write("INFO", nil, msg, keysAndValues)
}

func (s *sink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write("ERROR", err, msg, keysAndValues)
}

func (s *sink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	next := *s
	next.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &next
}

func (s *sink) WithName(name string) logr.LogSink {
	next := *s
	if next.name == "" {
		next.name = name
	} else {
		next.name = next.name + "." + name
	}
	return &next
}

func (s *sink) write(level string, err error, msg string, kv []interface{}) {
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format(time.RFC3339Nano))
	b.WriteString(" ")
	b.WriteString(level)
	if s.name != "" {
		b.WriteString(" [" + s.name + "]")
	}
	b.WriteString(" ")
	b.WriteString(msg)
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}
	for i := 0; i+1 < len(s.values); i += 2 {
		fmt.Fprintf(&b, " %v=%v", s.values[i], s.values[i+1])
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(s.w, b.String())
}

// Discard returns a logger that drops everything, for use in tests
// and benchmark workers that don't want log noise.
func Discard() logr.Logger {
	return logr.New(&sink{w: discardWriter{}})
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
