package braid

import (
	"testing"
)

func collectDedupe(t *testing.T, byteLen int, values ...string) []string {
	t.Helper()
	ch := make(chan string, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)

	d := NewDedupe(ch, byteLen)
	d.Drain()

	var out []string
	for v := range d.GetResults() {
		out = append(out, v)
	}
	return out
}

func TestDedupeMapBackend(t *testing.T) {
	out := collectDedupe(t, 1024, "[0;(1 2)]", "[1;]", "[0;(1 2)]", "[2;]")
	if len(out) != 3 {
		t.Fatalf("expected 3 distinct canonical forms, got %d: %v", len(out), out)
	}
}

func TestDedupeDiskBackend(t *testing.T) {
	// Force the disk-backed path regardless of the package default by
	// passing a byteLen estimate above MaxInMemoryDedupeSize.
	out := collectDedupe(t, MaxInMemoryDedupeSize+1, "[0;(1 2)]", "[1;]", "[0;(1 2)]", "[2;]")
	if len(out) != 3 {
		t.Fatalf("expected 3 distinct canonical forms from disk backend, got %d: %v", len(out), out)
	}
}
