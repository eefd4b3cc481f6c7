package stderr

import (
	"fmt"
	"io"
	"sync"

	"github.com/mono83/slf"
)

const timeFormat = "15:04:05.000"

var typeNames = map[byte]string{
	slf.TypeTrace:     "TRACE",
	slf.TypeDebug:     "DEBUG",
	slf.TypeInfo:      "INFO",
	slf.TypeWarning:   "WARN",
	slf.TypeError:     "ERROR",
	slf.TypeAlert:     "ALERT",
	slf.TypeEmergency: "EMERG",
}

// New creates a receiver which writes log lines as plain text.
// It is meant to be pointed at stderr so that logs never mix with the card on stdout.
func New(out io.Writer) slf.Receiver {
	return &receiver{out: out}
}

type receiver struct {
	mu  sync.Mutex
	out io.Writer
}

func (r *receiver) Receive(p slf.Event) {
	if !p.IsLog() {
		return
	}

	name, ok := typeNames[p.Type]
	if !ok {
		name = "LOG"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "%s %-5s %s\n", p.Time.Format(timeFormat), name, slf.ReplacePlaceholders(p.Content, p.Params, false))
}
