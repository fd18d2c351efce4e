package draw

import (
	"fmt"
	"math/rand/v2"
)

// newRand returns a deterministic generator for a nonzero seed. A zero
// seed returns nil, which the sources treat as "use the process-wide
// generator".
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

// Unicode scalar values are [0, 0xD7FF] and [0xE000, 0x10FFFF]; the gap
// in between is the surrogate range, which is not encodable.
const (
	surrogateMin  = 0xD800
	surrogateMax  = 0xDFFF
	surrogateSpan = surrogateMax - surrogateMin + 1
	maxRune       = 0x10FFFF
)

// Runes draws uniformly from the full Unicode scalar value domain.
type Runes struct {
	rng *rand.Rand
}

// NewRunes returns a rune source. A nonzero seed makes it deterministic.
func NewRunes(seed int64) *Runes {
	return &Runes{rng: newRand(seed)}
}

// Draw returns a uniformly random Unicode scalar value.
func (r *Runes) Draw() rune {
	// Draw from the contiguous count of scalar values, then shift past
	// the surrogate gap.
	n := intN(r.rng, maxRune+1-surrogateSpan)
	if n >= surrogateMin {
		n += surrogateSpan
	}
	return rune(n)
}

var _ Source[rune] = (*Runes)(nil)

// Alphabet draws uniformly from a fixed set of runes. A finite domain
// means consecutive collisions show up in bounded time, which is what
// makes it useful as a demo element type.
type Alphabet struct {
	letters []rune
	rng     *rand.Rand
}

// NewAlphabet returns a source over the runes of letters. A nonzero seed
// makes it deterministic.
func NewAlphabet(letters string, seed int64) (*Alphabet, error) {
	if letters == "" {
		return nil, fmt.Errorf("alphabet must not be empty")
	}
	return &Alphabet{letters: []rune(letters), rng: newRand(seed)}, nil
}

func (a *Alphabet) Draw() rune {
	return a.letters[intN(a.rng, len(a.letters))]
}

var _ Source[rune] = (*Alphabet)(nil)

// Ints draws uniformly from the full int64 domain.
type Ints struct {
	rng *rand.Rand
}

// NewInts returns an int64 source. A nonzero seed makes it deterministic.
func NewInts(seed int64) *Ints {
	return &Ints{rng: newRand(seed)}
}

func (i *Ints) Draw() int64 {
	if i.rng != nil {
		return int64(i.rng.Uint64())
	}
	return int64(rand.Uint64())
}

var _ Source[int64] = (*Ints)(nil)
