package ws

// Subscriber abstracts a streaming client.
type Subscriber interface {
	Send([]byte) error
	Close()
}

// Hub fans the directory's health snapshots out to websocket subscribers.
// There is a single stream, and the most recent snapshot is replayed to new
// subscribers so they never wait a full poll interval for their first
// payload. All state is owned by the run goroutine.
type Hub struct {
	clients   map[Subscriber]struct{}
	latest    []byte
	register  chan Subscriber
	unreg     chan Subscriber
	broadcast chan []byte
}

// NewHub creates an initialized Hub.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[Subscriber]struct{}),
		register:  make(chan Subscriber),
		unreg:     make(chan Subscriber),
		broadcast: make(chan []byte),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			if h.latest != nil {
				if err := client.Send(h.latest); err != nil {
					client.Close()
					delete(h.clients, client)
				}
			}
		case client := <-h.unreg:
			if _, ok := h.clients[client]; ok {
				client.Close()
				delete(h.clients, client)
			}
		case payload := <-h.broadcast:
			h.latest = payload
			for client := range h.clients {
				if err := client.Send(payload); err != nil {
					client.Close()
					delete(h.clients, client)
				}
			}
		}
	}
}

// Register adds a client to the health stream.
func (h *Hub) Register(client Subscriber) {
	h.register <- client
}

// Unregister removes a client.
func (h *Hub) Unregister(client Subscriber) {
	h.unreg <- client
}

// Broadcast sends payload to all subscribers and retains it for replay.
func (h *Hub) Broadcast(payload []byte) {
	h.broadcast <- payload
}
