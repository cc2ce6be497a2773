package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Event tells dashboard clients that the journal changed and a refetch
// is due. Payload stays small on purpose; clients reload through the
// REST API rather than patching state from the socket.
type Event struct {
	Kind      string    `json:"kind"`
	TradeID   string    `json:"trade_id,omitempty"`
	AccountID string    `json:"account_id,omitempty"`
	At        time.Time `json:"at"`
}

const (
	EventTradeCreated   = "trade_created"
	EventTradeUpdated   = "trade_updated"
	EventTradeDeleted   = "trade_deleted"
	EventAccountChanged = "account_changed"
)

// Hub fans journal change events out to websocket subscribers. It is the
// explicit collaborator that replaces a process-wide broadcast: services
// get a *Hub injected and call Publish after each successful write.
// Fanout never blocks a publisher; a slow subscriber drops events and
// the drop counter surfaces in the periodic stats log.
type Hub struct {
	mu      sync.RWMutex
	subs    map[chan Event]struct{}
	buf     int
	dropped uint64

	logger *zap.Logger
}

func NewHub(buf int, logger *zap.Logger) *Hub {
	if buf <= 0 {
		buf = 16
	}
	return &Hub{
		subs:   map[chan Event]struct{}{},
		buf:    buf,
		logger: logger,
	}
}

// Subscribe registers a buffered event channel. The returned cancel func
// must be called when the client goes away; it closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buf)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			atomic.AddUint64(&h.dropped, 1)
		}
	}
}

func (h *Hub) Subscribers() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Dropped() uint64 {
	if h == nil {
		return 0
	}
	return atomic.LoadUint64(&h.dropped)
}
