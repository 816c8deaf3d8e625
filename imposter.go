// Imposter Game
//
// Players join a shared room by entering a short PIN. The first connection
// to use a PIN becomes the host. Each round, the server picks a league and a
// season, then two distinct names from that season's list: everyone in the
// room is privately told the same name, except one randomly chosen player
// who is told the other. Players then quiz each other about "their" athlete
// and try to spot who is holding the odd name out.
//
// Features:
// - Single WebSocket endpoint: /imposter/ws (the PIN travels in messages)
// - Rooms created on first join, deleted the moment the last player leaves
// - First joiner becomes host; host disconnect promotes the next player
// - Host-only start/advance, with a fresh assignment fanned out per round
// - Hard cap of 10 players per room
// - In-browser QR button to share the game page, backed by go-qrcode

package main

import (
	_ "embed"
	"log"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Messages coming from clients
type ClientMessage struct {
	Type string `json:"type"`          // "join_room", "start_game", "next_round"
	Pin  string `json:"pin,omitempty"` // room PIN
}

// JoinedMessage confirms room entry, sent to the joining connection only.
type JoinedMessage struct {
	Type   string `json:"type"` // "joined"
	Pin    string `json:"pin"`
	IsHost bool   `json:"isHost"`
}

// RoomFullMessage is sent only to a connection whose join was rejected.
type RoomFullMessage struct {
	Type string `json:"type"` // "room_full"
}

// PlayerUpdateMessage broadcasts the room's membership count.
type PlayerUpdateMessage struct {
	Type  string `json:"type"` // "player_update"
	Count int    `json:"count"`
}

// MakeHostMessage is sent only to a freshly promoted host.
type MakeHostMessage struct {
	Type string `json:"type"` // "make_host"
}

// RoundAssignmentMessage is private: each player sees only their own value.
type RoundAssignmentMessage struct {
	Type     string `json:"type"` // "round_assignment"
	Category string `json:"category"`
	SubKey   string `json:"subKey"`
	Value    string `json:"value"`
}

// EnableNextRoundMessage tells the host (only) they may advance again.
type EnableNextRoundMessage struct {
	Type string `json:"type"` // "enable_next_round"
}

type Client struct {
	conn   *websocket.Conn
	send   chan any
	connID string

	// rooms holds the PINs this connection has joined. It is only touched
	// from the connection's own read loop, so it needs no lock.
	rooms map[string]struct{}
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan any, 8),
		connID: uuid.NewString(),
		rooms:  make(map[string]struct{}),
	}
}

// Coordinator turns inbound requests into registry mutations and fans the
// resulting events out to the right connections. One coordinator serves
// every room behind a single WebSocket endpoint.
type Coordinator struct {
	registry *registry
	catalog  *Catalog

	mu      sync.RWMutex
	clients map[string]*Client

	rngMu sync.Mutex
	rng   *rand.Rand
}

func newCoordinator(cat *Catalog, rng *rand.Rand) *Coordinator {
	return &Coordinator{
		registry: newRegistry(),
		catalog:  cat,
		clients:  make(map[string]*Client),
		rng:      rng,
	}
}

func (co *Coordinator) register(c *Client) {
	co.mu.Lock()
	co.clients[c.connID] = c
	co.mu.Unlock()
}

// unregister runs the disconnect cleanup: the connection leaves every room
// it joined, promoting hosts and broadcasting counts as needed, before the
// client is forgotten and its send channel closed.
func (co *Coordinator) unregister(cfg *Config, c *Client) {
	for pin := range c.rooms {
		res, err := co.registry.leave(pin, c.connID)
		if err != nil {
			continue
		}

		if res.NewHost != "" {
			co.sendTo(res.NewHost, MakeHostMessage{Type: "make_host"})
			logf(cfg, "GAMES: Connection %s promoted to host of %q", res.NewHost, pin)
		}

		if res.Deleted {
			logf(cfg, "GAMES: Room %q deleted", pin)
			continue
		}

		co.broadcast(pin, PlayerUpdateMessage{Type: "player_update", Count: res.Members})
	}

	co.mu.Lock()
	if _, ok := co.clients[c.connID]; ok {
		delete(co.clients, c.connID)
		close(c.send)
	}
	co.mu.Unlock()
}

// handleJoin processes "join_room" messages.
func (co *Coordinator) handleJoin(cfg *Config, c *Client, pin string) {
	if pin == "" {
		return
	}

	res, err := co.registry.join(pin, c.connID)
	if err != nil {
		co.sendTo(c.connID, RoomFullMessage{Type: "room_full"})
		logf(cfg, "GAMES: Connection %s rejected from full room %q", c.connID, pin)
		return
	}

	c.rooms[pin] = struct{}{}

	co.sendTo(c.connID, JoinedMessage{Type: "joined", Pin: pin, IsHost: res.IsHost})
	co.broadcast(pin, PlayerUpdateMessage{Type: "player_update", Count: res.Members})

	logf(cfg, "GAMES: Connection %s joined %q (%d players)", c.connID, pin, res.Members)
}

// handleRound processes "start_game" and "next_round" messages. Both draw a
// fresh assignment; only the host may trigger either, and non-host requests
// are dropped without a reply.
func (co *Coordinator) handleRound(cfg *Config, c *Client, pin string) {
	if !co.registry.isHost(pin, c.connID) {
		return
	}

	members := co.registry.participants(pin)
	if len(members) == 0 {
		return
	}

	co.rngMu.Lock()
	rnd, err := generateRound(co.catalog, len(members), co.rng)
	co.rngMu.Unlock()
	if err != nil {
		// No events for this round; the host can simply try again.
		logf(cfg, "GAMES: Dropped round for %q: %v", pin, err)
		return
	}

	for i, connID := range members {
		value := rnd.SharedValue
		if i == rnd.SpecialIndex {
			value = rnd.SpecialValue
		}
		co.sendTo(connID, RoundAssignmentMessage{
			Type:     "round_assignment",
			Category: rnd.Category,
			SubKey:   rnd.SubKey,
			Value:    value,
		})
	}

	co.sendTo(c.connID, EnableNextRoundMessage{Type: "enable_next_round"})

	logf(cfg, "GAMES: Round %s/%s dealt to %d players in %q", rnd.Category, rnd.SubKey, len(members), pin)
}

// sendTo queues a message for one connection, dropping it if the client's
// buffer is full or the client is gone. Delivery is fire-and-forget.
func (co *Coordinator) sendTo(connID string, msg any) {
	co.mu.RLock()
	defer co.mu.RUnlock()

	c, ok := co.clients[connID]
	if !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
	}
}

func (co *Coordinator) broadcast(pin string, msg any) {
	for _, connID := range co.registry.participants(pin) {
		co.sendTo(connID, msg)
	}
}

func (c *Client) readPump(cfg *Config, co *Coordinator) {
	defer func() {
		co.unregister(cfg, c)
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "join_room":
			co.handleJoin(cfg, c, strings.TrimSpace(msg.Pin))
		case "start_game", "next_round":
			co.handleRound(cfg, c, msg.Pin)
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocket handler; every game room is reachable through this one endpoint.
func serveWS(cfg *Config, co *Coordinator) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := newClient(conn)
		co.register(client)

		logf(cfg, "GAMES: Connection %s opened from %s", client.connID, realIP(r))

		go client.writePump()
		client.readPump(cfg, co)
	}
}

// QR handler: generates a PNG QR code for the game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../qr; strip the trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed imposter/index.html
var imposterHTML []byte

//go:embed imposter/app.css
var imposterCSS []byte

//go:embed imposter/app.js
var imposterJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(imposterHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(imposterCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(imposterJS)
	}
}

// registerImposterGame sets up routes so that:
//   - $path          → HTML client (join form, room, assignment views)
//   - $path/ws       → shared WebSocket endpoint for all rooms
//   - $path/qr       → PNG QR code for the game URL
func registerImposterGame(cfg *Config, path string, mux *httprouter.Router) {
	co := newCoordinator(defaultCatalog, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	// Client view (HTML)
	mux.GET(cfg.prefix+path, getIndexHandler(cfg))

	// Shared assets
	mux.GET(cfg.prefix+"/assets/imposter/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/imposter/app.js", getJsHandler(cfg))

	// WebSocket
	mux.GET(cfg.prefix+path+"/ws", serveWS(cfg, co))

	// QR code
	mux.GET(cfg.prefix+path+"/qr", qrHandler)
}
