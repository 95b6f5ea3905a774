package chash

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/valyala/bytebufferpool"

	"github.com/theflywheel/chash/payload"
)

// noLink marks a slot whose chain ends at itself.
const noLink = -1

type slot struct {
	key  *bytebufferpool.ByteBuffer // nil when the slot is free
	val  payload.Value
	kind payload.Kind
	next int // index of the next slot in the chain, or noLink
}

// Table is a fixed-capacity binding table using coalesced chaining.
//
// A Table is not safe for concurrent use.
type Table struct {
	owner
	slots  []slot
	items  int
	cursor int // lowest free slot, or len(slots) once none is left
	logger *slog.Logger
}

// Stats is a snapshot of a table's occupancy and chain layout.
type Stats struct {
	Items        int
	Capacity     int
	Cursor       int
	Links        int // slots linked to a successor
	LongestChain int // slots on the longest chain, counted from a chain head
	LiveKeys     int
	LiveValues   int
	OwnedBytes   int // key bytes plus payload header sizes
}

// New creates an empty table with room for capacity bindings
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	slots := make([]slot, capacity)
	for i := range slots {
		slots[i].next = noLink
	}

	return &Table{
		owner:  owner{pool: o.keyPool},
		slots:  slots,
		logger: o.logger,
	}, nil
}

// Close releases every key and value owned by the table.
func (t *Table) Close() error {
	if t.slots == nil {
		return ErrClosed
	}

	for i := range t.slots {
		s := &t.slots[i]
		t.releaseKey(s.key)
		t.releaseValue(s.val)
		*s = slot{}
	}
	t.logger.Debug("table closed", "items", t.items, "capacity", len(t.slots))

	t.slots = nil
	t.items = 0
	t.cursor = 0
	return nil
}

// Add binds key to a copy of v, replacing the value of an existing binding.
func (t *Table) Add(key []byte, v payload.Value) error {
	if t.slots == nil {
		return ErrClosed
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if v == nil {
		return ErrNilValue
	}

	// Full is checked before the key search, so even an update of a bound
	// key is refused here.
	if t.items == len(t.slots) {
		t.logger.Debug("add refused", "key", string(key), "items", t.items)
		return fmt.Errorf("add %q: %w (%d items)", key, ErrTableFull, t.items)
	}

	idx := t.index(key)
	if t.slots[idx].key == nil {
		if err := t.place(idx, key, v); err != nil {
			return err
		}
		t.items++
		if idx == t.cursor {
			t.advance(idx + 1)
		}
		return nil
	}

	for {
		s := &t.slots[idx]
		if bytes.Equal(s.key.B, key) {
			// Clone before releasing: v may be the value Get returned for
			// this very binding.
			nv := t.copyValue(v)
			if nv == nil {
				return fmt.Errorf("add %q: %w (clone)", key, ErrNilValue)
			}
			t.releaseValue(s.val)
			s.val = nv
			s.kind = nv.Kind()
			return nil
		}
		if s.next == noLink {
			break
		}
		idx = s.next
	}

	if t.cursor >= len(t.slots) {
		t.logger.Debug("chain exhausted", "key", string(key), "tail", idx, "items", t.items)
		return fmt.Errorf("add %q: %w", key, ErrChainExhausted)
	}

	free := t.cursor
	if err := t.place(free, key, v); err != nil {
		return err
	}
	t.slots[idx].next = free
	t.items++
	t.logger.Debug("chain extended", "key", string(key), "from", idx, "to", free)
	t.advance(free + 1)
	return nil
}

// Get returns the value bound to key and its kind.
//
// The value is owned by the table and stays valid until the key is updated or
// the table is closed. Callers must not modify it.
func (t *Table) Get(key []byte) (payload.Value, payload.Kind, bool) {
	if t.slots == nil || len(key) == 0 {
		return nil, 0, false
	}

	for idx := t.index(key); ; {
		s := &t.slots[idx]
		if s.key == nil {
			return nil, 0, false
		}
		if bytes.Equal(s.key.B, key) {
			return s.val, s.kind, true
		}
		if s.next == noLink {
			return nil, 0, false
		}
		idx = s.next
	}
}

// Len returns the number of bindings.
func (t *Table) Len() int { return t.items }

// Cap returns the fixed capacity, or 0 once the table is closed.
func (t *Table) Cap() int { return len(t.slots) }

// Exhausted reports whether the table has no free slot left.
func (t *Table) Exhausted() bool { return t.cursor >= len(t.slots) }

// Range calls fn for every binding in slot order until fn returns false.
// The key slice is only valid for the duration of the call.
func (t *Table) Range(fn func(key []byte, v payload.Value, kind payload.Kind) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.key == nil {
			continue
		}
		if !fn(s.key.B, s.val, s.kind) {
			return
		}
	}
}

// Stats returns a snapshot of the table layout.
func (t *Table) Stats() Stats {
	st := Stats{
		Items:      t.items,
		Capacity:   len(t.slots),
		Cursor:     t.cursor,
		LiveKeys:   t.liveKeys,
		LiveValues: t.liveValues,
	}

	linked := make([]bool, len(t.slots))
	for i := range t.slots {
		s := &t.slots[i]
		if s.key == nil {
			continue
		}
		st.OwnedBytes += s.key.Len() + s.val.Size()
		if s.next != noLink {
			st.Links++
			linked[s.next] = true
		}
	}

	for i := range t.slots {
		if t.slots[i].key == nil || linked[i] {
			continue
		}
		n := 1
		for j := t.slots[i].next; j != noLink; j = t.slots[j].next {
			n++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	return st
}

func (t *Table) index(key []byte) int {
	return int(Hash(key) % uint32(len(t.slots)))
}

// place stores owned copies of key and v in the free slot idx. The slot is
// left untouched when v does not produce a clone.
func (t *Table) place(idx int, key []byte, v payload.Value) error {
	nv := t.copyValue(v)
	if nv == nil {
		return fmt.Errorf("add %q: %w (clone)", key, ErrNilValue)
	}
	s := &t.slots[idx]
	s.key = t.copyKey(key)
	s.val = nv
	s.kind = nv.Kind()
	s.next = noLink
	return nil
}

// advance moves the cursor to the first free slot at or above from. The
// cursor never moves down.
func (t *Table) advance(from int) {
	for t.cursor = from; t.cursor < len(t.slots); t.cursor++ {
		if t.slots[t.cursor].key == nil {
			return
		}
	}
	t.logger.Debug("cursor exhausted", "items", t.items, "capacity", len(t.slots))
}
