package slip10

// HardenedKeyStart is the first hardened child index, 2^31. Every index at
// or above it is hardened; everything below is non-hardened.
const HardenedKeyStart uint32 = 1 << 31

const (
	// MinNonHardenedIndex is the smallest non-hardened index.
	MinNonHardenedIndex uint32 = 0
	// MaxNonHardenedIndex is the largest non-hardened index, 2^31 - 1.
	MaxNonHardenedIndex uint32 = HardenedKeyStart - 1
	// MinHardenedIndex is the smallest hardened index, 2^31.
	MinHardenedIndex uint32 = HardenedKeyStart
	// MaxHardenedIndex is the largest hardened index, 2^32 - 1.
	MaxHardenedIndex uint32 = 1<<32 - 1
)

// ChildIndex is either a HardenedIndex or a NonHardenedIndex.
type ChildIndex interface {
	// Index returns the raw 32-bit index, hardened bit included.
	Index() uint32
	// Hardened reports which half the index is in.
	Hardened() bool
}

// HardenedIndex is a child index in [2^31, 2^32-1]. Children at hardened
// indices can only be derived from the parent secret key.
type HardenedIndex uint32

// NonHardenedIndex is a child index in [0, 2^31-1]. Children at non-hardened
// indices can be derived from the parent public key alone.
type NonHardenedIndex uint32

// Index returns the raw index value.
func (i HardenedIndex) Index() uint32 { return uint32(i) }

// Hardened always reports true.
func (i HardenedIndex) Hardened() bool { return true }

// Index returns the raw index value.
func (i NonHardenedIndex) Index() uint32 { return uint32(i) }

// Hardened always reports false.
func (i NonHardenedIndex) Hardened() bool { return false }

// Classify maps a raw index to its half based on the high bit. It is total:
// every uint32 belongs to exactly one half.
func Classify(i uint32) ChildIndex {
	if i >= HardenedKeyStart {
		return HardenedIndex(i)
	}
	return NonHardenedIndex(i)
}

// NewHardenedIndex validates that i is in the hardened half.
func NewHardenedIndex(i uint32) (HardenedIndex, error) {
	if i < HardenedKeyStart {
		return 0, ErrIndexOutOfRange
	}
	return HardenedIndex(i), nil
}

// NewNonHardenedIndex validates that i is in the non-hardened half.
func NewNonHardenedIndex(i uint32) (NonHardenedIndex, error) {
	if i >= HardenedKeyStart {
		return 0, ErrIndexOutOfRange
	}
	return NonHardenedIndex(i), nil
}
