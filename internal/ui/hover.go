package ui

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mindguard/dashboard/internal/model"
)

// EventKind is a pointer event delivered to a hoverable widget
type EventKind int

const (
	PointerEnter EventKind = iota
	PointerLeave
)

// String returns a readable event name
func (k EventKind) String() string {
	switch k {
	case PointerEnter:
		return "PointerEnter"
	case PointerLeave:
		return "PointerLeave"
	default:
		return "Unknown"
	}
}

// widgetNamespace scopes the name-based widget identifiers
var widgetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://mindguard.app/widgets"))

// WidgetID returns the stable identifier for a named widget
func WidgetID(name string) uuid.UUID {
	return uuid.NewSHA1(widgetNamespace, []byte(name))
}

type dispatchKey struct {
	id   uuid.UUID
	kind EventKind
}

// HoverTable maps widget identifiers to their visual state. Pointer events are
// routed through a dispatch table keyed by (widget, event kind); the most
// recent event wins.
type HoverTable struct {
	mu        sync.Mutex
	states    map[uuid.UUID]model.IconState
	handlers  map[dispatchKey]model.IconState
	listeners map[uuid.UUID]func(model.IconState)
}

// NewHoverTable creates an empty hover table
func NewHoverTable() *HoverTable {
	return &HoverTable{
		states:    make(map[uuid.UUID]model.IconState),
		handlers:  make(map[dispatchKey]model.IconState),
		listeners: make(map[uuid.UUID]func(model.IconState)),
	}
}

// Register adds a widget in the default state. onChange, if set, is called
// after every state transition.
func (h *HoverTable) Register(id uuid.UUID, onChange func(model.IconState)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.states[id] = model.IconStateDefault
	h.handlers[dispatchKey{id, PointerEnter}] = model.IconStateHighlighted
	h.handlers[dispatchKey{id, PointerLeave}] = model.IconStateDefault
	if onChange != nil {
		h.listeners[id] = onChange
	}
}

// Dispatch applies an event to a widget. It returns false when no handler is
// registered for the pair.
func (h *HoverTable) Dispatch(id uuid.UUID, kind EventKind) bool {
	h.mu.Lock()
	next, ok := h.handlers[dispatchKey{id, kind}]
	if !ok {
		h.mu.Unlock()
		return false
	}
	prev := h.states[id]
	h.states[id] = next
	onChange := h.listeners[id]
	h.mu.Unlock()

	log.Trace().Str("widget", id.String()).Stringer("event", kind).Stringer("state", next).Msg("hover dispatch")

	if onChange != nil && prev != next {
		onChange(next)
	}
	return true
}

// State returns the current state of a widget. Unknown widgets report the
// default state.
func (h *HoverTable) State(id uuid.UUID) model.IconState {
	h.mu.Lock()
	defer h.mu.Unlock()

	if state, ok := h.states[id]; ok {
		return state
	}
	return model.IconStateDefault
}
