package server

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"PulseMap/internal/game"
)

// envelope is the wire frame in both directions: a named event plus its
// JSON payload.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEvent(e game.Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: e.EventName(), Payload: payload})
}

// Hub fans broadcasts out to every connected session. It implements
// game.Broadcaster: the world calls Broadcast under its own lock, so frames
// enter every session queue in mutation order. Each session drains its queue
// from a single writer goroutine; a session that falls sendBuffer frames
// behind is dropped rather than allowed to block the rest.
type Hub struct {
	log zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

const sendBuffer = 256

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:      log,
		sessions: make(map[string]*session),
	}
}

// Broadcast encodes the event once and enqueues it for every session.
func (h *Hub) Broadcast(e game.Event) {
	frame, err := encodeEvent(e)
	if err != nil {
		h.log.Error().Err(err).Str("event", e.EventName()).Msg("encode broadcast")
		return
	}

	h.mu.Lock()
	for _, s := range h.sessions {
		s.enqueue(frame)
	}
	h.mu.Unlock()
}

// SendTo queues an event for one session only. Used for rejections and
// request/response messages.
func (h *Hub) SendTo(sessionID string, e game.Event) {
	frame, err := encodeEvent(e)
	if err != nil {
		h.log.Error().Err(err).Str("event", e.EventName()).Msg("encode direct send")
		return
	}

	h.mu.Lock()
	s := h.sessions[sessionID]
	h.mu.Unlock()
	if s != nil {
		s.enqueue(frame)
	}
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.sessions[s.id]; ok {
		old.closeQueue()
	}
	h.sessions[s.id] = s
}

// unregister removes the session if it is still the one registered for its
// id, and reports whether it was. A session replaced by a reconnect is no
// longer registered; its teardown must not touch shared per-id state.
func (h *Hub) unregister(s *session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessions[s.id] == s {
		delete(h.sessions, s.id)
		return true
	}
	return false
}

// SessionCount reports the number of connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
