package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/openwebrx/redsea-go/rds"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GroupMessage is what each websocket client receives: one decoded
// group, with the PI-level station fields a typical "what's playing"
// display wants. It is not a wire contract the core package defines
// (spec explicitly leaves serialization out of scope) — just this
// daemon's own client-facing shape.
type GroupMessage struct {
	PI             string  `json:"pi"`
	GroupType      string  `json:"group_type,omitempty"`
	BLER           float64 `json:"bler,omitempty"`
	ProgramService string  `json:"program_service,omitempty"`
	RadioText      string  `json:"radio_text,omitempty"`
	TrafficProgram bool    `json:"traffic_program"`
	RawHex         string  `json:"raw_hex"`
}

// Hub fans out GroupMessages to every connected websocket client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade failed: %v", err)
		return
	}

	sessionID := uuid.NewString()
	h.mu.Lock()
	h.clients[sessionID] = conn
	h.mu.Unlock()
	log.Printf("[INFO] websocket client %s connected", sessionID)

	defer func() {
		h.mu.Lock()
		delete(h.clients, sessionID)
		h.mu.Unlock()
		conn.Close()
		log.Printf("[INFO] websocket client %s disconnected", sessionID)
	}()

	// This feed is output-only; drain and discard anything the client
	// sends so control frames (ping/close) are still processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) Broadcast(g rds.Group, station *rds.Station) {
	msg := GroupMessage{
		RawHex: rds.HexString(g),
	}
	if g.HasPI() {
		msg.PI = piHex(g.PI())
	}
	if g.HasType() {
		msg.GroupType = g.Type().String()
	}
	if g.HasBLER() {
		msg.BLER = g.BLER()
	}
	if station != nil {
		msg.ProgramService = station.ProgramService.String()
		msg.RadioText = station.RadioText
		msg.TrafficProgram = station.TrafficProgram
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WARN] couldn't marshal group message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sessionID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("[WARN] write to client %s failed: %v", sessionID, err)
		}
	}
}

func piHex(pi uint16) string {
	const hexDigits = "0123456789ABCDEF"
	b := [4]byte{hexDigits[(pi>>12)&0xF], hexDigits[(pi>>8)&0xF], hexDigits[(pi>>4)&0xF], hexDigits[pi&0xF]}
	return string(b[:])
}
