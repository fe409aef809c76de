package braid

import "github.com/cryptobraid/braidcrypt/internal/dedupe"

// MaxInMemoryDedupeSize (default: 100 MB) is the threshold above which
// Dedupe spills canonical forms to disk instead of holding them all in
// memory (used by `braiddemo -census`, spec.md §6's coverage/collision
// sanity-check mode).
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// DedupeBackend stores and replays a set of distinct canonical-form
// strings.
type DedupeBackend interface {
	// Upsert add/update key to backend/database
	Upsert(elem string)
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe removes duplicate canonical-form strings arriving on a channel,
// backed by either an in-memory map or a disk-backed store depending on
// the expected volume.
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drain consumes the receive channel until closed, upserting every value
// into the backend.
func (d *Dedupe) Drain() {
	for {
		val, ok := <-d.receive
		if !ok {
			break
		}
		d.backend.Upsert(val)
	}
}

// GetResults iterates over dedupe storage and returns the distinct
// canonical forms on a channel.
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(elem string) {
			send <- elem
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewDedupe returns a Dedupe that removes duplicate values from ch.
// byteLen is the caller's estimate of total data volume, used to pick the
// backend: below MaxInMemoryDedupeSize it stays in memory; above, it spills
// to the disk-backed store (note: if byteLen is misestimated, census mode
// may consume more memory than expected).
func NewDedupe(ch <-chan string, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
	} else {
		d.backend = dedupe.NewDiskBackend()
	}
	return d
}
