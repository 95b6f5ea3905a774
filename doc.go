/*
Package chash provides a fixed-capacity binding table using coalesced chaining.

A Table maps byte-string keys, typically variable names in a matrix shell, to
tagged payload values (matrices or rationals). The table keeps its own copies
of every key and value it is given, so callers may reuse their arguments as
soon as a call returns.

Basic usage:

	import (
		"github.com/theflywheel/chash"
		"github.com/theflywheel/chash/rational"
	)

	// Create a table with room for 64 variables
	t, err := chash.New(64)
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	// Bind a variable
	r, _ := rational.Of(3, 4)
	if err := t.Add([]byte("x"), r); err != nil {
		log.Fatal(err)
	}

	// Look it up
	if v, kind, ok := t.Get([]byte("x")); ok {
		fmt.Println(kind, v)
	}

Features:

  - Fixed capacity chosen at creation; the table never grows
  - Jenkins one-at-a-time hashing for reproducible slot addresses
  - Coalesced chaining over a single slot array, no separate overflow area
  - Table-owned copies of keys (pooled buffers) and values (deep clones)
  - Not safe for concurrent use; callers serialize access

Implementation Details:

Each slot holds an optional key, a value, the value's kind and the index of the
next slot in its collision chain. A key is first tried at its primary slot,
Hash(key) mod capacity. When that slot is taken, the chain starting there is
searched for the key; if the key is absent, the chain's tail is linked to the
chain cursor and the binding is stored there.

The chain cursor is the lowest-index free slot. It only moves upward, skipping
slots that are already taken, and it does not care whose primary slot a free
slot is. A slot claimed by the cursor may therefore later be the primary slot
of another key; that key simply joins the existing chain. This is what makes
the chains coalesce. Because links always point at a slot that was free when
the link was made, and links are never rewritten, chains cannot form cycles.

Add reports ErrTableFull once the table holds Cap bindings, before it looks
for the key, so an update of an existing binding is refused on a full table.
Entries cannot be removed.
*/
package chash
