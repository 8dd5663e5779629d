package parse

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dhamidi/kombinator/text"
	"github.com/tliron/commonlog"
)

// TraceEnv names the environment variable that enables tracing for the
// whole process. It is read once, on first parser construction.
const TraceEnv = "KOMBINATOR_TRACE"

const traceLoggerName = "kombinator.trace"

// A Tracer observes parser invocations. It must not influence the outcome.
type Tracer interface {
	Trace(description string, input text.View)
}

type TracerFunc func(description string, input text.View)

func (f TracerFunc) Trace(description string, input text.View) {
	f(description, input)
}

// LogTracer writes every invocation as a Debug message.
type LogTracer struct {
	log commonlog.Logger
}

func NewLogTracer(log commonlog.Logger) *LogTracer {
	if log == nil {
		log = commonlog.GetLogger(traceLoggerName)
	}
	return &LogTracer{log: log}
}

func (t *LogTracer) Trace(description string, input text.View) {
	if !t.log.AllowLevel(commonlog.Debug) {
		return
	}
	t.log.Debugf("%s at %s: %s", description, input.Position(), input.Preview(24))
}

var envTracer = sync.OnceValue(func() Tracer {
	enabled, err := strconv.ParseBool(os.Getenv(TraceEnv))
	if err != nil || !enabled {
		return nil
	}
	return NewLogTracer(nil)
})

type tracerSetting struct {
	tracer Tracer
}

var tracerOverride atomic.Pointer[tracerSetting]

// SetTracer replaces the process tracer for parsers constructed afterwards.
// A nil tracer disables tracing. The returned func restores the previous
// setting.
func SetTracer(t Tracer) (restore func()) {
	prev := tracerOverride.Swap(&tracerSetting{tracer: t})
	return func() {
		tracerOverride.Store(prev)
	}
}

func currentTracer() Tracer {
	if s := tracerOverride.Load(); s != nil {
		return s.tracer
	}
	return envTracer()
}

// Trace decorates p so that t sees description and the input before p runs.
func Trace[T any](t Tracer, description string, p Parser[T]) Parser[T] {
	return func(input text.View) Result[T] {
		t.Trace(description, input)
		return p(input)
	}
}

func traced[T any](description string, p Parser[T]) Parser[T] {
	t := currentTracer()
	if t == nil {
		return p
	}
	return Trace(t, description, p)
}
