package extkey

import (
	"errors"

	"slipkey/internal/slip10"
	"slipkey/internal/util/memzero"
)

// ErrMaxDepthExceeded is returned when a walk goes past 255 levels, the
// deepest the one-byte depth field can express.
var ErrMaxDepthExceeded = errors.New("max derivation depth exceeded")

// Walker tracks the tree metadata (depth, parent fingerprint, child number)
// that the derivation core deliberately leaves out of its key types, so any
// node reached from a master key can be emitted in full interchange form.
type Walker struct {
	key      *slip10.ExtendedKeyPair
	depth    uint8
	parentFP [4]byte
	childNum uint32
}

// NewWalker starts at a master key: depth zero, zero parent fingerprint,
// child number zero.
func NewWalker(master *slip10.ExtendedKeyPair) *Walker {
	return &Walker{key: master}
}

// Child returns a walker positioned at the child with the given raw index.
func (w *Walker) Child(index uint32) (*Walker, error) {
	if w.depth == 0xff {
		return nil, ErrMaxDepthExceeded
	}
	parentPub := w.key.PublicKey().PublicKey.SerializeCompressed()
	return &Walker{
		key:      slip10.DeriveChildKeyPair(w.key, index),
		depth:    w.depth + 1,
		parentFP: Fingerprint(parentPub),
		childNum: index,
	}, nil
}

// Walk applies every index of the path in order.
func (w *Walker) Walk(path []slip10.ChildIndex) (*Walker, error) {
	node := w
	for _, idx := range path {
		next, err := node.Child(idx.Index())
		if err != nil {
			return nil, err
		}
		node = next
	}
	return node, nil
}

// Key returns the key pair at the walker's position.
func (w *Walker) Key() *slip10.ExtendedKeyPair { return w.key }

// Private returns the xprv-style serialization of the current node.
func (w *Walker) Private(version [4]byte) string {
	s := Serialized{
		Version:  version,
		Depth:    w.depth,
		ParentFP: w.parentFP,
		ChildNum: w.childNum,
	}
	sk := w.key.SecretKey()
	s.ChainCode = sk.ChainCode

	skBytes := sk.SecretKey.Bytes()
	s.KeyData[0] = 0x00
	copy(s.KeyData[1:], skBytes)
	memzero.Zero(skBytes)

	str := s.Encode()
	memzero.Zero(s.KeyData[:])
	return str
}

// Public returns the xpub-style serialization of the current node.
func (w *Walker) Public(version [4]byte) string {
	pub := w.key.PublicKey()
	s := Serialized{
		Version:  version,
		Depth:    w.depth,
		ParentFP: w.parentFP,
		ChildNum: w.childNum,
	}
	s.ChainCode = pub.ChainCode
	copy(s.KeyData[:], pub.PublicKey.SerializeCompressed())
	return s.Encode()
}
