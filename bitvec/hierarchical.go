package bitvec

import (
	"fmt"
	"iter"
	"math/bits"
)

// Hierarchical is a stack of BitVecs where level 0 holds the real data and
// every bit of level k+1 is the OR-reduction of a 32-bit word of level k.
//
// The aggregation answers "is any bit true" in a single word read and finds
// a true bit in O(log n) word reads instead of O(n/32). Enumeration walks
// only the subtrees that contain true bits.
//
// Invariants after every mutation:
//
//   - the topmost level occupies exactly one word;
//   - every level is exactly the minimum size needed to cover level 0;
//   - a parent bit is true iff its child word is non-zero.
type Hierarchical struct {
	levels []BitVec
}

// NewHierarchy creates an empty hierarchical bit vector with zero levels.
func NewHierarchy() *Hierarchical {
	return &Hierarchical{}
}

// WithHierarchy creates a hierarchical bit vector holding n bits, all set
// to value. Levels are built bottom-up until one fits in a single word.
func WithHierarchy(n int, value bool) *Hierarchical {
	h := &Hierarchical{}
	if n == 0 {
		return h
	}

	span := 1 // bits of level 0 covered by one bit at the current level
	for {
		need := (n-1)/span + 1
		h.levels = append(h.levels, *WithBits(need, value))
		if need <= WordBits {
			break
		}
		span *= WordBits
	}

	return h
}

// Len returns the logical number of bits at level 0.
func (h *Hierarchical) Len() int {
	if len(h.levels) == 0 {
		return 0
	}
	return h.levels[0].Len()
}

// NumLevels returns the number of levels.
func (h *Hierarchical) NumLevels() int {
	return len(h.levels)
}

// Get returns the level-0 bit at index i. It panics if i is out of range.
func (h *Hierarchical) Get(i int) bool {
	return h.levels[0].Get(i)
}

// Set writes the level-0 bit at index i and fixes every ancestor to match.
//
// Each ancestor is recomputed from the actual child word rather than OR-ed
// incrementally: clearing the last true bit in a group must flip the parent
// back to false.
func (h *Hierarchical) Set(i int, value bool) {
	h.levels[0].Set(i, value)

	parent := i / WordBits
	for level := 1; level < len(h.levels); level++ {
		child := h.levels[level-1].Word(parent)
		h.levels[level].Set(parent, child != 0)
		parent /= WordBits
	}
}

// Add extends the vector by n bits, all set to value.
//
// Existing levels grow by exactly the shortfall needed to cover the new
// total, bottom to top, stopping at the first level with enough slack. If
// the top level then spans more than one word, new OR-reduction levels are
// synthesized above it until the top fits in a single word again.
func (h *Hierarchical) Add(n int, value bool) {
	if n == 0 {
		return
	}
	if len(h.levels) == 0 {
		*h = *WithHierarchy(n, value)
		return
	}

	covered := h.levels[0].Len()
	newTotal := covered + n
	firstNew := covered

	span := 1
	for level := range h.levels {
		max := h.levels[level].Len() * span
		slack := max - covered
		if slack >= n {
			break
		}
		shortfall := n - slack
		h.levels[level].Add((shortfall-1)/span+1, value)
		span *= WordBits
	}

	if value {
		// The appended region must read as all-true at every level,
		// including the tail of each level's last word.
		idx := firstNew
		for level := range h.levels {
			h.levels[level].SetFrom(idx)
			idx /= WordBits
		}
	}

	if h.levels[len(h.levels)-1].NumWords() > 1 {
		span = 1
		for range h.levels {
			span *= WordBits
		}

		level := len(h.levels)
		for {
			need := (newTotal-1)/span + 1
			top := *WithBits(need, value)
			for p := range need {
				top.Set(p, h.levels[level-1].Word(p) != 0)
			}
			h.levels = append(h.levels, top)

			if need <= WordBits {
				break
			}
			level++
			span *= WordBits
		}
	}
}

// FindTrue returns the index of a true bit, descending one level per step
// by the lowest set bit of each word. The second result is false if no bit
// is true, answered from the single top word alone.
func (h *Hierarchical) FindTrue() (int, bool) {
	if len(h.levels) == 0 {
		return 0, false
	}

	top := h.levels[len(h.levels)-1].Word(0)
	if top == 0 {
		return 0, false
	}

	idx := bits.TrailingZeros32(top)
	for level := len(h.levels) - 2; level >= 0; level-- {
		idx = idx*WordBits + bits.TrailingZeros32(h.levels[level].Word(idx))
	}

	return idx, true
}

// TrueBits returns a lazy sequence of all true level-0 bit indexes in
// ascending order.
//
// The traversal is a depth-first walk from the top word. Set bits of an
// internal word are pushed in descending order so popping yields ascending
// order, and empty subtrees are never entered: the cost is proportional to
// the number of true bits plus the internal nodes above them, not to Len().
func (h *Hierarchical) TrueBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(h.levels) == 0 || h.levels[len(h.levels)-1].Word(0) == 0 {
			return
		}

		type frame struct {
			level int
			idx   int
		}
		stack := []frame{{level: len(h.levels) - 1, idx: 0}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			w := h.levels[f.level].Word(f.idx)
			base := f.idx * WordBits

			if f.level == 0 {
				for w != 0 {
					b := bits.TrailingZeros32(w)
					w &= w - 1
					if !yield(base + b) {
						return
					}
				}
				continue
			}

			for b := WordBits - 1; b >= 0; b-- {
				if w&(1<<uint(b)) != 0 {
					stack = append(stack, frame{level: f.level - 1, idx: base + b})
				}
			}
		}
	}
}

// checkInvariants validates the structural invariants listed on the type.
// Tests call it after mutations as a consistency oracle.
func (h *Hierarchical) checkInvariants() error {
	if len(h.levels) == 0 {
		return nil
	}

	if words := h.levels[len(h.levels)-1].NumWords(); words != 1 {
		return fmt.Errorf("bitvec: topmost level has %d words, want 1", words)
	}
	if h.levels[0].Len() == 0 {
		return fmt.Errorf("bitvec: levels are allocated but level 0 has zero bits")
	}

	n := h.levels[0].Len()
	span := 1
	for level := range h.levels {
		if covered := h.levels[level].Len() * span; covered < n {
			return fmt.Errorf("bitvec: level %d covers only %d of %d bits", level, covered, n)
		}
		if want := (n-1)/span + 1; h.levels[level].Len() != want {
			return fmt.Errorf("bitvec: level %d has %d bits, want minimal %d", level, h.levels[level].Len(), want)
		}
		span *= WordBits
	}

	for level := 1; level < len(h.levels); level++ {
		for i := range h.levels[level].Len() {
			parent := h.levels[level].Get(i)
			child := h.levels[level-1].Word(i)
			if parent != (child != 0) {
				return fmt.Errorf("bitvec: level %d bit %d is %t but child word is %#x", level, i, parent, child)
			}
		}
	}

	return nil
}
