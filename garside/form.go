package garside

import (
	"strconv"
	"strings"

	"github.com/cryptobraid/braidcrypt"
	"github.com/cryptobraid/braidcrypt/permutation"
)

// Form is the Garside left normal form of a braid: a Δ exponent together
// with an ordered, left-weighted list of non-identity, non-twist
// permutation factors (spec.md §3, "Garside form"). A Form is never
// mutated after it is produced by Normalize.
type Form struct {
	Delta   int
	Factors []*permutation.Permutation
}

// Normalize reduces an arbitrary word to its Garside left normal form,
// implementing the pipeline word -> DeltaSlide -> positive word -> Segment
// -> factor list -> Weight -> Form (spec.md §2, "as_garside_form").
func Normalize(w *braid.Word) (*Form, error) {
	n := w.N
	exponent, positiveWord, err := DeltaSlide(w)
	if err != nil {
		return nil, err
	}

	segments, err := Segment(positiveWord)
	if err != nil {
		return nil, err
	}

	weighted, err := Weight(n, segments)
	if err != nil {
		return nil, err
	}

	var factors []*permutation.Permutation
	for _, factorWord := range weighted {
		perm, err := InducedPermutation(factorWord)
		if err != nil {
			return nil, err
		}
		if perm.IsTwist() {
			exponent++
			continue
		}
		if perm.IsIdentity() {
			continue
		}
		factors = append(factors, perm)
	}

	return &Form{Delta: exponent, Factors: factors}, nil
}

// String renders the stable printable representation used for equality:
// "[<p>;(<f1>), (<f2>), ..., (<fk>)]" where each <fj> is the factor
// permutation's array as comma-space-separated decimals. An empty factor
// list yields "[<p>;]".
func (f *Form) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(f.Delta))
	b.WriteByte(';')
	for i, factor := range f.Factors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		arr := factor.AsArray()
		for j, v := range arr {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether f and other are the same Garside normal form, i.e.
// whether their printable representations match (spec.md §4.7: "Two
// braids are group-equal iff their canonical printable representations
// match").
func (f *Form) Equal(other *Form) bool {
	return f.String() == other.String()
}

// Word rebuilds a word from the Garside form: Δ^p (expanded by
// multiplication) followed by each factor's canonical positive word. Used
// by the idempotence property test (spec.md §8).
func (f *Form) Word(n int) (*braid.Word, error) {
	word, err := braid.Positive(nil, n)
	if err != nil {
		return nil, err
	}
	delta := braid.HalfTwist(n)
	for i := 0; i < f.Delta; i++ {
		word, err = braid.Multiply(word, delta)
		if err != nil {
			return nil, err
		}
	}
	if f.Delta < 0 {
		deltaInv := delta.Inverse()
		for i := 0; i < -f.Delta; i++ {
			word, err = braid.Multiply(word, deltaInv)
			if err != nil {
				return nil, err
			}
		}
	}
	for _, factor := range f.Factors {
		factorWord, err := FromArray(factor.AsArray())
		if err != nil {
			return nil, err
		}
		word, err = braid.Multiply(word, factorWord)
		if err != nil {
			return nil, err
		}
	}
	return word, nil
}
