package braid

import (
	"bytes"
	"io"
	"sync"
)

// DedupingWriter wraps an io.Writer with transparent line-level
// deduplication, used by `braiddemo -census` to stream only the distinct
// canonical forms seen across a batch of random braids (spec.md §6).
type DedupingWriter struct {
	writer    io.Writer
	inputCh   chan string
	blacklist map[string]bool
	wg        sync.WaitGroup
	count     int
	countMu   sync.Mutex
	closed    bool
	buffer    []byte
}

// NewDedupingWriter creates a new DedupingWriter with optional blacklist/seed
// The seed parameter allows pre-populating items to skip
func NewDedupingWriter(w io.Writer, seed ...string) *DedupingWriter {
	blacklist := make(map[string]bool, len(seed))
	for _, item := range seed {
		blacklist[item] = true
	}

	inputCh := make(chan string, 100)
	dw := &DedupingWriter{
		writer:    w,
		inputCh:   inputCh,
		blacklist: blacklist,
		buffer:    make([]byte, 0),
	}

	dw.wg.Add(1)
	go dw.processDeduped(inputCh)

	return dw
}

// processDeduped handles the dedupe output and writes to underlying writer
func (dw *DedupingWriter) processDeduped(inputCh chan string) {
	defer dw.wg.Done()

	d := NewDedupe(inputCh, 1024*1024) // 1MB estimate for byte length
	d.Drain()
	outputCh := d.GetResults()

	for value := range outputCh {
		if dw.blacklist[value] {
			continue
		}
		if value == "" {
			continue
		}

		if _, err := dw.writer.Write(unsafeToBytes(value)); err != nil {
			continue
		}
		if _, err := dw.writer.Write(unsafeToBytes("\n")); err != nil {
			continue
		}

		dw.countMu.Lock()
		dw.count++
		dw.countMu.Unlock()
	}
}

// Write implements io.Writer interface
func (dw *DedupingWriter) Write(p []byte) (int, error) {
	if dw.closed {
		return 0, io.ErrClosedPipe
	}

	originalLen := len(p)

	dw.buffer = append(dw.buffer, p...)

	for {
		idx := bytes.IndexByte(dw.buffer, '\n')
		if idx == -1 {
			break
		}

		line := string(dw.buffer[:idx])
		dw.inputCh <- line
		dw.buffer = dw.buffer[idx+1:]
	}

	return originalLen, nil
}

// Close flushes any remaining data and closes the writer
func (dw *DedupingWriter) Close() error {
	if dw.closed {
		return nil
	}
	dw.closed = true

	if len(dw.buffer) > 0 {
		line := string(dw.buffer)
		dw.inputCh <- line
	}

	close(dw.inputCh)
	dw.wg.Wait()

	return nil
}

// Count returns the number of unique items written
func (dw *DedupingWriter) Count() int {
	dw.countMu.Lock()
	defer dw.countMu.Unlock()
	return dw.count
}
