package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event records a reset or delay for post-mortem analysis
type Event struct {
	Type  uint8  // Event type code
	Clock uint32 // Millisecond clock at event
	Value uint32 // Pin for reset events, duration for delays
}

// Event type codes
const (
	EvtSrstAssert  = 1 // Reset line asserted
	EvtSrstRelease = 2 // Reset line released
	EvtDelayStart  = 3 // Delay entered
	EvtDelayEnd    = 4 // Delay returned
)

const (
	EventRingSize = 16 // Keep last 16 events
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether DebugPrintln output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer.
// Main context only; the tick interrupt does not record.
func RecordEvent(eventType uint8, clock, value uint32) {
	idx := eventRingHead
	eventRing[idx] = Event{
		Type:  eventType,
		Clock: clock,
		Value: value,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns the display name for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtSrstAssert:
		return "SRST_ASSERT"
	case EvtSrstRelease:
		return "SRST_RELEASE"
	case EvtDelayStart:
		return "DELAY_START"
	case EvtDelayEnd:
		return "DELAY_END"
	default:
		return "UNKNOWN"
	}
}

// DumpEvents writes the event ring to the debug writer regardless of
// whether debug output is enabled (call on shutdown/error)
func DumpEvents() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENTS] " + EventName(evt.Type) +
			" clock=" + utoa(evt.Clock) +
			" v=" + utoa(evt.Value))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEvents clears the event ring
func ClearEvents() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
