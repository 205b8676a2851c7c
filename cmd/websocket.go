package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"sponsorback/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type directMsg struct {
	userID string
	n      models.Notification
}

type unreg struct {
	userID string
	conn   *websocket.Conn
}

// NotificationHub pushes deal notifications to connected clients. All access
// to clients happens in Run.
type NotificationHub struct {
	clients    map[string]*websocket.Conn
	broadcast  chan models.Notification
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[string]*websocket.Conn),
		broadcast:  make(chan models.Notification),
		direct:     make(chan directMsg),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

type Client struct {
	ID     string
	Socket *websocket.Conn
}

// Notify queues a direct push for one user. Offline users are skipped.
func (hub *NotificationHub) Notify(userID string, n models.Notification) {
	hub.direct <- directMsg{userID: userID, n: n}
}

func (hub *NotificationHub) Run() {
	for {
		select {
		case client := <-hub.register:
			// a second socket for the same user replaces the first
			if old, ok := hub.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			hub.clients[client.ID] = client.Socket
			log.Printf("WS register user=%s", client.ID)

		case u := <-hub.unregister:
			// drop only when the registered socket is the one going away
			if cur, ok := hub.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(hub.clients, u.userID)
				log.Printf("WS unregister user=%s", u.userID)
			}

		case n := <-hub.broadcast:
			for id, conn := range hub.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("broadcast error to=%s: %v", id, err)
					_ = conn.Close()
					delete(hub.clients, id)
				}
			}

		case dm := <-hub.direct:
			if conn, ok := hub.clients[dm.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.n); err != nil {
					log.Printf("direct send error to=%s: %v", dm.userID, err)
					_ = conn.Close()
					delete(hub.clients, dm.userID)
				}
			} else {
				log.Printf("direct skip: user=%s offline", dm.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "userId": "<id>" }.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID string `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == "" {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.hub.register <- Client{ID: hello.UserID, Socket: conn}

	go pingLoop(app.hub, conn, hello.UserID)
	go drainSocket(conn, hello.UserID, app.hub)
}

func pingLoop(hub *NotificationHub, conn *websocket.Conn, uid string) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			hub.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

// drainSocket keeps the read side alive for control frames. Notifications
// only flow server to client; any data frame from the client is discarded.
func drainSocket(conn *websocket.Conn, userID string, hub *NotificationHub) {
	defer func() {
		hub.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
