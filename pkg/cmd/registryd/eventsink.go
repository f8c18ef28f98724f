package main

import (
	"fmt"
	"io"
	"time"

	"github.com/vanitychain/registry/log"
	"github.com/vanitychain/registry/registry"
)

// formatterSink is a registry.EventSink that renders each event through a
// log.LogFormatter and writes the result to out, one line per event. This
// is the user-facing event feed; the registry's own internal diagnostic
// logging (via log.Default()) is a separate, structured stream.
type formatterSink struct {
	formatter log.LogFormatter
	out       io.Writer
}

func newFormatterSink(format string, out io.Writer) *formatterSink {
	var f log.LogFormatter
	switch format {
	case "json":
		f = &log.JSONFormatter{}
	case "color":
		f = &log.ColorFormatter{}
	default:
		f = &log.TextFormatter{}
	}
	return &formatterSink{formatter: f, out: out}
}

// Emit implements registry.EventSink.
func (s *formatterSink) Emit(e registry.Event) {
	entry := log.LogEntry{Timestamp: time.Now(), Level: log.INFO}

	switch ev := e.(type) {
	case registry.NameOwned:
		entry.Message = "name owned"
		entry.Fields = map[string]interface{}{"name": ev.Name.String(), "account": ev.Account.Hex()}
		if ev.PreviousOwner != nil {
			entry.Fields["previous_owner"] = ev.PreviousOwner.Hex()
		}
	case registry.NameFreed:
		entry.Message = "name freed"
		entry.Fields = map[string]interface{}{"name": ev.Name.String()}
	case registry.RevealDiscredited:
		entry.Message = "reveal discredited"
		entry.Fields = map[string]interface{}{"name": ev.Name.String(), "account": ev.Account.Hex()}
	case registry.CommitExpired:
		entry.Message = "commit expired"
		entry.Fields = map[string]interface{}{"account": ev.Account.Hex(), "commit": ev.Commit.Hex()}
	default:
		return
	}

	fmt.Fprintln(s.out, s.formatter.Format(entry))
}
