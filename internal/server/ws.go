package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/euchre/engine"
	"github.com/jason-s-yu/euchre/engine/bot"
	"github.com/jason-s-yu/euchre/internal/config"
)

// ClientMessage is what the browser sends over the websocket.
type ClientMessage struct {
	Type  string     `json:"type"` // "bid", "discard", "play"
	Call  bool       `json:"call,omitempty"`
	Suit  string     `json:"suit,omitempty"`
	Loner bool       `json:"loner,omitempty"`
	Card  *EventCard `json:"card,omitempty"`
}

// Handler serves one table per websocket connection: the human takes a
// seat, three bots fill the rest. Disconnected tables stay resumable
// until sessionTTL expires.
type Handler struct {
	cfg *config.Config
	log *logrus.Logger

	mu     sync.Mutex
	tables map[string]*tableSession
}

// tableSession tracks a table plus how long it has been abandoned.
type tableSession struct {
	table      *Table
	detachedAt time.Time // zero while a client is connected
}

// NewHandler creates the websocket handler.
func NewHandler(cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{cfg: cfg, log: log, tables: make(map[string]*tableSession)}
}

// ServeHTTP upgrades the connection and runs the table until the client
// disconnects or the game ends.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.cfg.AllowedOrigins,
	})
	if err != nil {
		h.log.WithError(err).Warn("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	table := h.tableFor(r)
	send := func(ev GameEvent) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		if err := wsjson.Write(ctx, conn, ev); err != nil {
			h.log.WithError(err).Debug("event write failed")
		}
	}
	table.Attach(send, send)

	token, err := NewSessionToken(h.cfg.JWTSecret, table.ID.String())
	if err != nil {
		h.log.WithError(err).Error("session token")
		return
	}
	send(GameEvent{Type: "session", Message: token})

	if err := table.Resume(); err != nil {
		h.log.WithError(err).Error("table start failed")
		return
	}

	for {
		var msg ClientMessage
		if err := wsjson.Read(r.Context(), conn, &msg); err != nil {
			h.log.WithError(err).Debug("client disconnected")
			h.detachTable(table)
			return
		}
		if err := h.dispatch(table, msg); err != nil {
			h.log.WithError(err).Error("table advance failed")
			h.dropTable(table)
			return
		}
	}
}

// dispatch routes one client message to the table.
func (h *Handler) dispatch(table *Table, msg ClientMessage) error {
	switch msg.Type {
	case "bid":
		return table.HandleBid(msg.Call, msg.Suit, msg.Loner)
	case "discard", "play":
		if msg.Card == nil {
			return table.reject(errMissingCard)
		}
		if msg.Type == "discard" {
			return table.HandleDiscard(*msg.Card)
		}
		return table.HandlePlay(*msg.Card)
	default:
		return table.reject(errUnknownMessage(msg.Type))
	}
}

// tableFor resumes the table named by a valid session token, or creates
// a fresh one.
func (h *Handler) tableFor(r *http.Request) *Table {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.evictExpired()

	if token := r.URL.Query().Get("session"); token != "" {
		if id, err := ParseSessionToken(h.cfg.JWTSecret, token); err == nil {
			if s, ok := h.tables[id]; ok {
				s.detachedAt = time.Time{}
				return s.table
			}
		}
	}

	t := NewTable(TableConfig{
		PlayerNames: h.cfg.SeatNames,
		HumanSeat:   engine.Seat1,
		Rules:       engine.DefaultRules(),
		Tuning:      bot.DefaultTuning,
	}, h.log)
	h.tables[t.ID.String()] = &tableSession{table: t}
	return t
}

// evictExpired drops abandoned tables once their resume window closes.
// Callers hold h.mu.
func (h *Handler) evictExpired() {
	for id, s := range h.tables {
		if !s.detachedAt.IsZero() && time.Since(s.detachedAt) > sessionTTL {
			delete(h.tables, id)
		}
	}
}

// detachTable keeps a disconnected table resumable until sessionTTL
// expires. Finished games are dropped right away.
func (h *Handler) detachTable(t *Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t.GameOver() {
		delete(h.tables, t.ID.String())
		return
	}
	if s, ok := h.tables[t.ID.String()]; ok {
		s.detachedAt = time.Now()
	}
}

func (h *Handler) dropTable(t *Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.tables, t.ID.String())
}

type wireError string

func (e wireError) Error() string { return string(e) }

const errMissingCard = wireError("message is missing a card")

func errUnknownMessage(kind string) error {
	b, _ := json.Marshal(kind)
	return wireError("unknown message type " + string(b))
}
