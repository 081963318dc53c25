package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"PulseMap/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// session is one websocket connection. All writes go through the send queue
// so the single writer goroutine owns the connection's write side.
type session struct {
	id   string
	conn *websocket.Conn
	log  zerolog.Logger
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// enqueue queues a frame without ever blocking the broadcaster. A full queue
// means the client has stopped draining; it gets cut off.
func (s *session) enqueue(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- frame:
	default:
		s.log.Warn().Str("session", s.id).Msg("send queue full, dropping session")
		s.closed = true
		close(s.send)
	}
}

func (s *session) closeQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// writePump drains the send queue onto the wire. It exits when the queue is
// closed, which in turn closes the connection and unblocks the read loop.
func (s *session) writePump() {
	defer s.conn.Close()
	for frame := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

func newSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "anon"
	}
	return hex.EncodeToString(b[:])
}

func (a *App) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := r.URL.Query().Get("session")
	if id == "" {
		id = newSessionID()
	}

	s := &session{
		id:   id,
		conn: conn,
		log:  a.Log,
		send: make(chan []byte, sendBuffer),
	}
	a.Hub.register(s)
	go s.writePump()

	a.Log.Info().Str("session", id).Str("remote", r.RemoteAddr).Msg("session connected")

	// Full-state replay before any live traffic.
	a.Hub.SendTo(id, a.World.Snapshot())

	a.readLoop(s)

	// A reconnect with the same id replaces this session in the hub; only
	// the still-registered one may drop the id's world-side state.
	stillRegistered := a.Hub.unregister(s)
	s.closeQueue()
	if stillRegistered {
		a.World.DropSession(id)
	}
	a.Log.Info().Str("session", id).Msg("session disconnected")
}

// readLoop dispatches inbound envelopes until the connection drops.
// Malformed frames are logged and skipped; the connection stays up.
func (a *App) readLoop(s *session) {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg envelope
		if err := json.Unmarshal(data, &msg); err != nil {
			a.Log.Debug().Err(err).Str("session", s.id).Msg("bad envelope")
			continue
		}
		a.dispatch(s, msg)
	}
}

func (a *App) dispatch(s *session, msg envelope) {
	switch msg.Type {
	case "pulse":
		var p pulsePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad pulse payload")
			return
		}
		// Country comes from the classifier, never the client; only the
		// trusted agent and geocode paths may override it.
		a.World.SubmitPulse(p.Lat, p.Lon, "client", s.id, "", nil)

	case "attack":
		var p attackPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad attack payload")
			return
		}
		_, reason := a.World.SubmitAttack(game.AttackRequest{
			FromLat:   p.FromLat,
			FromLon:   p.FromLon,
			ToLat:     p.ToLat,
			ToLon:     p.ToLon,
			Type:      game.ResolveAttackType(p.Type),
			SessionID: s.id,
			Cost:      p.Cost,
		})
		if reason != "" {
			// Rejection goes to the submitter only.
			a.Hub.SendTo(s.id, game.AttackRejected{Reason: reason})
		}

	case "destroyTarget":
		var p destroyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad destroy payload")
			return
		}
		key := p.LocationKey
		if key == "" && p.Lat != nil && p.Lon != nil {
			key = game.LocationKey(*p.Lat, *p.Lon)
		}
		a.World.DestroyTarget(key)

	case "getPeriodData":
		var p periodPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad period payload")
			return
		}
		a.Hub.SendTo(s.id, a.World.PeriodData(game.ParsePeriod(p.Period)))

	case "userScoreUpdate":
		var p scorePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad score payload")
			return
		}
		a.World.UpdateScore(p.UserID, p.Score, p.Name, p.Avatar, p.Country, p.Provider)

	case "getLeaderboard":
		a.Hub.SendTo(s.id, game.LeaderboardUpdate{Players: a.World.Leaderboard()})

	case "updateDefense":
		var p defensePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			a.Log.Debug().Err(err).Msg("bad defense payload")
			return
		}
		a.World.UpdateDefense(s.id, game.DefenseLevels{
			Shield:      p.Shield,
			Armor:       p.Armor,
			Interceptor: p.Interceptor,
		})

	case "getData":
		a.Hub.SendTo(s.id, a.World.Snapshot())

	default:
		a.Log.Debug().Str("type", msg.Type).Str("session", s.id).Msg("unknown message type")
	}
}
