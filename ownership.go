package chash

import (
	"github.com/valyala/bytebufferpool"

	"github.com/theflywheel/chash/payload"
)

// owner hands out the table's private copies of keys and values and takes
// them back. The live counters track copies not yet released.
type owner struct {
	pool       *bytebufferpool.Pool
	liveKeys   int
	liveValues int
}

// copyKey returns a pooled buffer holding a copy of key. The caller may
// reuse key as soon as copyKey returns.
func (o *owner) copyKey(key []byte) *bytebufferpool.ByteBuffer {
	buf := o.pool.Get()
	buf.B = append(buf.B[:0], key...)
	o.liveKeys++
	return buf
}

// copyValue returns a clone of v that shares no mutable state with it, or
// nil when v.Clone breaks its contract and returns nil.
func (o *owner) copyValue(v payload.Value) payload.Value {
	c := v.Clone()
	if c == nil {
		return nil
	}
	o.liveValues++
	return c
}

func (o *owner) releaseKey(buf *bytebufferpool.ByteBuffer) {
	if buf == nil {
		return
	}
	o.pool.Put(buf)
	o.liveKeys--
}

func (o *owner) releaseValue(v payload.Value) {
	if v == nil {
		return
	}
	if r, ok := v.(payload.Releaser); ok {
		r.Release()
	}
	o.liveValues--
}
