package navigation

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"supplier_report/internal/usecase/interfaces"
)

// Listener observes every location change, including the ones produced by
// Replace. Listeners run synchronously on the caller's goroutine.
type Listener func(ctx context.Context, query url.Values)

// History is an in-memory navigation stack for one report session. Push
// appends an entry (dropping forward entries), Replace overwrites the current
// one, Back/Forward move the cursor.
type History struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners map[int]Listener
	nextID    int
}

var _ interfaces.INavigator = (*History)(nil)

func NewHistory(initial url.Values) *History {
	return &History{
		entries:   []string{initial.Encode()},
		listeners: map[int]Listener{},
	}
}

// Current returns a copy of the current location's query.
func (h *History) Current() url.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	return decode(h.entries[h.index])
}

// Len is the number of entries in the stack.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Index is the position of the current entry.
func (h *History) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

func (h *History) Push(ctx context.Context, query url.Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], query.Encode())
	h.index = len(h.entries) - 1
	h.mu.Unlock()

	h.notify(ctx, query)
	return nil
}

// Replace overwrites the current entry without growing the stack. Listeners
// are still notified.
func (h *History) Replace(ctx context.Context, query url.Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	h.entries[h.index] = query.Encode()
	h.mu.Unlock()

	h.notify(ctx, query)
	return nil
}

// Back moves to the previous entry. It reports false at the start of the stack.
func (h *History) Back(ctx context.Context) bool {
	return h.move(ctx, -1)
}

// Forward moves to the next entry. It reports false at the end of the stack.
func (h *History) Forward(ctx context.Context) bool {
	return h.move(ctx, 1)
}

func (h *History) move(ctx context.Context, delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	query := decode(h.entries[next])
	h.mu.Unlock()

	h.notify(ctx, query)
	return true
}

// Subscribe registers l and returns a function that removes it.
func (h *History) Subscribe(l Listener) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *History) notify(ctx context.Context, query url.Values) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, h.listeners[id])
	}
	h.mu.Unlock()

	for _, l := range ls {
		l(ctx, cloneValues(query))
	}
}

func decode(raw string) url.Values {
	v, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return v
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
