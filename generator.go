package braid

import "fmt"

// Generator is a single signed crossing in a braid word: either the
// positive generator σ_i or its inverse σ_i⁻¹, where i is the strand
// position it acts on (1 <= i <= n-1 for a word on n strands).
//
// Only Pos variants may appear in a positive word; Neg variants appear only
// in intermediate states produced while decomposing an arbitrary word (see
// DeltaSlide in package garside).
type Generator struct {
	index    int
	positive bool
}

// Pos builds the positive generator σ_i.
func Pos(i int) Generator { return Generator{index: i, positive: true} }

// Neg builds the negative generator σ_i⁻¹.
func Neg(i int) Generator { return Generator{index: i, positive: false} }

// Index returns i for σ_i or σ_i⁻¹.
func (g Generator) Index() int { return g.index }

// IsPositive reports whether g is σ_i rather than σ_i⁻¹.
func (g Generator) IsPositive() bool { return g.positive }

// Inverse returns σ_i⁻¹ for σ_i and vice versa.
func (g Generator) Inverse() Generator {
	return Generator{index: g.index, positive: !g.positive}
}

// Signed returns the generator's index as a signed integer: positive for
// σ_i, negative for σ_i⁻¹.
func (g Generator) Signed() int {
	if g.positive {
		return g.index
	}
	return -g.index
}

func (g Generator) String() string {
	if g.positive {
		return fmt.Sprintf("σ%d", g.index)
	}
	return fmt.Sprintf("σ%d⁻¹", g.index)
}
