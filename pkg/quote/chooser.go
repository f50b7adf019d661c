package quote

import "math/rand/v2"

// Chooser is the randomness provider for selection: it returns a uniform
// integer in [0, n). Injectable so tests and deterministic runs can
// supply their own source.
type Chooser interface {
	Intn(n int) int
}

// randChooser is the default Chooser backed by math/rand/v2. Uniformity
// over keys is the only guarantee; the source is not cryptographic.
type randChooser struct {
	rng *rand.Rand
}

// NewChooser returns the default non-deterministic Chooser.
func NewChooser() Chooser {
	return randChooser{rng: nil}
}

// NewSeededChooser returns a deterministic Chooser for the given seed.
func NewSeededChooser(seed uint64) Chooser {
	return randChooser{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (c randChooser) Intn(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}
