package telemetry

import "time"

// Event is a structured observation emitted by the validation engine.
// Category groups events by pipeline area (e.g. "dates", "periods",
// "validation", "settings"); Operation names the specific step.
type Event struct {
	Level     string
	Category  string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Err       error
}

// Sink receives engine events. The engine must produce identical results
// whether the sink records, logs, or discards events.
type Sink interface {
	Emit(e Event)
}

// LogSink forwards events to the process JSON logger.
type LogSink struct{}

// Emit writes the event as a structured log line.
func (LogSink) Emit(e Event) {
	fields := make(map[string]any, len(e.Fields)+4)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields["category"] = e.Category
	fields["operation"] = e.Operation
	if e.Duration > 0 {
		fields["duration_ms"] = e.Duration.Milliseconds()
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	if e.Level == "error" {
		Error(e.Category+"."+e.Operation, fields)
		return
	}
	Info(e.Category+"."+e.Operation, fields)
}

// NopSink discards all events.
type NopSink struct{}

// Emit discards the event.
func (NopSink) Emit(Event) {}

// RecordingSink captures events for tests.
type RecordingSink struct {
	Events []Event
}

// Emit appends the event to the recording.
func (s *RecordingSink) Emit(e Event) {
	s.Events = append(s.Events, e)
}
