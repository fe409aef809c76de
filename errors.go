package braid

import errorutil "github.com/projectdiscovery/utils/errors"

// Sentinel errors for the braid algebra. All of them denote programming
// errors in intended usage (malformed input, or a broken invariant) rather
// than recoverable runtime conditions. Callers compare with errors.Is.
var (
	// ErrMismatchedStrands is returned when a binary operation on braids
	// (Multiply) is attempted between braids of different n. Permutation
	// composition reports its own size mismatch error instead.
	ErrMismatchedStrands = errorutil.New("braid: mismatched strand counts")

	// ErrInvalidGenerator is returned when a signed generator index is zero
	// or has |v| >= n, or when a non-permutation slice is given to FromArray.
	ErrInvalidGenerator = errorutil.New("braid: invalid generator")

	// ErrNonPositiveWord is returned when an operation that requires a
	// positive word (starting/finishing sets, segmentation, weighting)
	// encounters a negative generator.
	ErrNonPositiveWord = errorutil.New("braid: word is not positive")

	// ErrInvariantViolation signals a broken internal invariant of the
	// Δ-slide back-rewrite step: a non-positive symbol was found where only
	// positive symbols can occur by construction. Indicates a bug.
	ErrInvariantViolation = errorutil.New("braid: invariant violation during delta-slide")

	// ErrWeightingDivergence is returned when the left-weighting engine
	// exceeds its iteration bound. Defensive; should not trigger on valid
	// input.
	ErrWeightingDivergence = errorutil.New("braid: left-weighting failed to converge")
)
