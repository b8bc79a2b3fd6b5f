package pick

// EventType defines the kind of event emitted by the picker.
type EventType int

const (
	EventColorChanged EventType = iota
	EventSliderChanged
	EventInputRejected
	EventPipetteStarted
	EventPipetteFinished
	EventConfirmed
	EventCancelled
)

// Event describes a picker interaction.
type Event struct {
	Type  EventType
	Color Color
	Value int
}

// EventHandler provides both channel and callback based event delivery.
// Callbacks are invoked in subscription order; no reentrancy guarantees are
// made, so a callback must not subscribe or emit.
type EventHandler struct {
	Events    chan Event
	callbacks []func(Event)
}

func newHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 8)}
}

// Subscribe appends a callback to the ordered subscriber list.
func (h *EventHandler) Subscribe(fn func(Event)) {
	if h == nil || fn == nil {
		return
	}
	h.callbacks = append(h.callbacks, fn)
}

// Emit delivers the event through the channel and every callback. The channel
// send never blocks; a full channel drops the event.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	for _, fn := range h.callbacks {
		fn(ev)
	}
}
