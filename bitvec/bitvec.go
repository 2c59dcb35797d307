package bitvec

import (
	"iter"
	"math/bits"
)

// WordBits is the width of a single storage word.
const WordBits = 32

// BitVec is a packed boolean vector stored in 32-bit words.
//
// The logical length in bits is tracked separately from the word storage,
// so the last word may be partially used. Bits at index >= Len() are
// unspecified; Word masks them out.
type BitVec struct {
	words   []uint32
	numBits int
}

// New creates an empty bit vector.
func New() *BitVec {
	return &BitVec{}
}

// WithBits creates a bit vector holding n bits, all set to value.
func WithBits(n int, value bool) *BitVec {
	if n == 0 {
		return &BitVec{}
	}

	words := make([]uint32, (n-1)/WordBits+1)
	if value {
		for i := range words {
			words[i] = ^uint32(0)
		}
	}

	return &BitVec{words: words, numBits: n}
}

// Len returns the logical number of bits.
func (v *BitVec) Len() int {
	return v.numBits
}

// NumWords returns the number of allocated storage words.
func (v *BitVec) NumWords() int {
	return len(v.words)
}

// Get returns the bit at index i. It panics if i is out of range.
func (v *BitVec) Get(i int) bool {
	if i < 0 || i >= v.numBits {
		panic("bitvec: bit index out of range")
	}
	return v.words[i/WordBits]&(1<<(i%WordBits)) != 0
}

// Set writes the bit at index i. It panics if i is out of range.
func (v *BitVec) Set(i int, value bool) {
	if i < 0 || i >= v.numBits {
		panic("bitvec: bit index out of range")
	}

	mask := uint32(1) << (i % WordBits)
	if value {
		v.words[i/WordBits] |= mask
	} else {
		v.words[i/WordBits] &^= mask
	}
}

// SetFrom sets bit i and every bit after it, through the full allocated
// word capacity, to true. Used when a freshly grown suffix must read as
// all-true without touching each bit individually.
func (v *BitVec) SetFrom(i int) {
	if i < 0 || i >= v.numBits {
		panic("bitvec: bit index out of range")
	}

	w := i / WordBits
	v.words[w] |= ^uint32(0) << (i % WordBits)
	for j := w + 1; j < len(v.words); j++ {
		v.words[j] = ^uint32(0)
	}
}

// Add extends the vector by n bits, all set to value.
//
// Growth first tops up the unused bits remaining in the last allocated
// word and only then allocates exactly enough new words for the rest, so
// already-reserved capacity is never wasted.
func (v *BitVec) Add(n int, value bool) {
	if n == 0 {
		return
	}
	if v.numBits == 0 {
		*v = *WithBits(n, value)
		return
	}

	used := v.numBits - (len(v.words)-1)*WordBits // bits used in the last word, 1..WordBits
	freeTail := WordBits - used
	fromTail := min(n, freeTail)

	last := len(v.words) - 1
	for b := used; b < used+fromTail; b++ {
		mask := uint32(1) << b
		if value {
			v.words[last] |= mask
		} else {
			v.words[last] &^= mask
		}
	}

	if n > freeTail {
		rest := n - freeTail
		fill := uint32(0)
		if value {
			fill = ^uint32(0)
		}
		for range (rest-1)/WordBits + 1 {
			v.words = append(v.words, fill)
		}
	}

	v.numBits += n
}

// Word returns the storage word at the given index, with any bits beyond
// Len() masked to zero. Callers treat a non-zero word as "some bit in this
// group is true", so trailing garbage must never leak out.
func (v *BitVec) Word(i int) uint32 {
	if len(v.words) == 0 {
		return 0
	}

	w := v.words[i]
	if i == len(v.words)-1 {
		if r := v.numBits % WordBits; r != 0 {
			w &= (uint32(1) << r) - 1
		}
	}

	return w
}

// FindTrue returns the lowest true bit index, scanning a word at a time.
// The second result is false if no bit is true.
func (v *BitVec) FindTrue() (int, bool) {
	for i := range v.words {
		if w := v.Word(i); w != 0 {
			return i*WordBits + bits.TrailingZeros32(w), true
		}
	}
	return 0, false
}

// TrueBits returns a lazy sequence of all true bit indexes in ascending
// order. Each range over the sequence walks the current state from the
// start.
func (v *BitVec) TrueBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range v.words {
			w := v.Word(i)
			base := i * WordBits
			for w != 0 {
				b := bits.TrailingZeros32(w)
				w &= w - 1
				if !yield(base + b) {
					return
				}
			}
		}
	}
}
