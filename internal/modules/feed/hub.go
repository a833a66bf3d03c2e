package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fitsync/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// subscriber is one connected calendar client. Writes go through the
// buffered send channel so a stalled socket never backs up into the caller.
type subscriber struct {
	id   int64
	conn *websocket.Conn
	send chan []byte
}

// Hub fans schedule events out to connected calendar clients. It implements
// the scheduling engine's EventSink; Broadcast only does non-blocking channel
// sends, the per-subscriber writePump owns the socket and its deadlines.
type Hub struct {
	mu     sync.RWMutex
	nextID int64
	subs   map[int64]*subscriber
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int64]*subscriber),
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mu.Lock()
	h.nextID++
	sub := &subscriber{
		id:   h.nextID,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.subs[sub.id] = sub
	h.mu.Unlock()

	go h.writePump(sub)
	return sub.id
}

// Unregister removes the subscriber and closes its send channel, which stops
// the writePump. Safe to call more than once for the same id.
func (h *Hub) Unregister(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, exists := h.subs[id]; exists {
		delete(h.subs, id)
		close(sub.send)
	}
}

// Broadcast queues the event for every subscriber. A subscriber whose buffer
// is full misses the event rather than delaying anyone else.
func (h *Hub) Broadcast(ev domain.ScheduleEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			// Client too slow — skip
		}
	}
}

func (h *Hub) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
		h.Unregister(sub.id)
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.send)
	}
}

func (h *Hub) NotifySessionDeleted(_ context.Context, s *domain.ClassSession) error {
	h.Broadcast(eventFrom(domain.EventSessionDeleted, s))
	return nil
}

func (h *Hub) NotifySessionFull(_ context.Context, s *domain.ClassSession) error {
	h.Broadcast(eventFrom(domain.EventSessionFull, s))
	return nil
}

func (h *Hub) NotifySessionReopened(_ context.Context, s *domain.ClassSession) error {
	h.Broadcast(eventFrom(domain.EventSessionReopened, s))
	return nil
}

func eventFrom(t domain.ScheduleEventType, s *domain.ClassSession) domain.ScheduleEvent {
	return domain.ScheduleEvent{
		Type:       t,
		SessionID:  s.ID,
		LocationID: s.LocationID,
		Booked:     s.BookedCount,
		Capacity:   s.Capacity,
		At:         time.Now(),
	}
}
