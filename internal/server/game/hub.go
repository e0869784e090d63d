package game

import "sync"

const subscriberBuffer = 8

// hub fans snapshots out to per-game subscribers. Slow subscribers miss
// intermediate snapshots rather than block a move.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Snapshot]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[chan Snapshot]struct{})}
}

func (h *hub) subscribe(id string) (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, subscriberBuffer)
	h.mu.Lock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[chan Snapshot]struct{})
	}
	h.subs[id][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[id], ch)
			if len(h.subs[id]) == 0 {
				delete(h.subs, id)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *hub) publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[s.ID] {
		select {
		case ch <- s:
		default:
		}
	}
}
