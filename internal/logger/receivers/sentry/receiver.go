package sentry

import (
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/filters"
)

// NewReceiver forwards log messages of at least minLevel into Sentry.
// Params listed in hiddenParams are never sent.
func NewReceiver(client *raven.Client, minLevel string, hiddenParams ...string) (slf.Receiver, error) {
	level, ok := slf.ParseType(minLevel)
	if !ok {
		return nil, fmt.Errorf("unknown level %s", minLevel)
	}

	return filters.MinLogLevel(level, &receiver{
		target: client,
		filter: slf.NewBlackListParamsFilter(hiddenParams),
	}), nil
}

type receiver struct {
	target *raven.Client
	filter slf.ParamsFilter
}

func (r *receiver) Receive(p slf.Event) {
	if !p.IsLog() {
		return
	}

	pkt := raven.NewPacket(
		slf.ReplacePlaceholders(p.Content, p.Params, false),
		// Skip the watchdog frames so the trace starts in the application code
		raven.NewStacktrace(5, 5, []string{}),
	)

	for _, param := range r.filter(p.Params) {
		value := param.GetRaw()
		if e, ok := value.(error); ok && e != nil {
			value = e.Error()
		}

		pkt.Extra[param.GetKey()] = value
	}

	pkt.Level = severity(p.Type)
	pkt.Timestamp = raven.Timestamp(p.Time)

	r.target.Capture(pkt, map[string]string{})
}

func severity(wdType byte) raven.Severity {
	switch wdType {
	case slf.TypeTrace, slf.TypeDebug:
		return raven.DEBUG
	case slf.TypeInfo:
		return raven.INFO
	case slf.TypeWarning:
		return raven.WARNING
	case slf.TypeError:
		return raven.ERROR
	case slf.TypeAlert, slf.TypeEmergency:
		return raven.FATAL
	}

	return raven.ERROR
}
