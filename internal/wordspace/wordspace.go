// Package wordspace exhaustively enumerates signed braid words of a fixed
// length over a fixed strand count, for the property tests spec.md §8
// describes as "for all words of length <= L" rather than a single random
// sample. The enumeration itself is a generalization of alterx's
// ClusterBomb/IndexMap n-ary cartesian-product generator (algo.go): there,
// each "slot" ranged over a named payload list; here, each slot in the word
// ranges over the fixed alphabet of signed generators {-( n-1), ..., -1, 1,
// ..., n-1}.
package wordspace

// Alphabet returns every signed generator index available on n strands, in
// the order used to index each word slot: 1, -1, 2, -2, ..., n-1, -(n-1).
func Alphabet(n int) []int {
	out := make([]int, 0, 2*(n-1))
	for i := 1; i <= n-1; i++ {
		out = append(out, i, -i)
	}
	return out
}

// Enumerate calls callback once for every signed word of exactly length
// slots over n strands, constructing each word slot by slot via recursion
// over the fixed alphabet (the same "fix one slot, recurse over the rest"
// shape as ClusterBomb, specialized to a single shared alphabet instead of
// an IndexMap of per-slot payload lists). callback receives the word as a
// fresh slice of signed generator indices, copied for each call, so it may
// retain it.
func Enumerate(n, length int, callback func(word []int)) {
	if length == 0 {
		callback(nil)
		return
	}
	alphabet := Alphabet(n)
	word := make([]int, length)
	var recurse func(slot int)
	recurse = func(slot int) {
		if slot == length {
			out := make([]int, length)
			copy(out, word)
			callback(out)
			return
		}
		for _, v := range alphabet {
			word[slot] = v
			recurse(slot + 1)
		}
	}
	recurse(0)
}

// EnumerateUpTo calls callback for every signed word of n strands whose
// length is between 0 and maxLength inclusive, shortest first.
func EnumerateUpTo(n, maxLength int, callback func(word []int)) {
	for l := 0; l <= maxLength; l++ {
		Enumerate(n, l, callback)
	}
}
