package slip10

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a BIP32-style derivation path such as "m/44H/0H/1" or
// "m/0'/1". The hardened markers H, h and ' are all accepted. A bare "m"
// yields an empty path (the master key itself).
func ParsePath(path string) ([]ChildIndex, error) {
	parts := strings.Split(path, "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: path must start with m", ErrInvalidPath)
	}

	elems := parts[1:]
	out := make([]ChildIndex, 0, len(elems))
	for _, elem := range elems {
		if elem == "" {
			return nil, fmt.Errorf("%w: empty path component", ErrInvalidPath)
		}
		hardened := false
		switch elem[len(elem)-1] {
		case 'H', 'h', '\'':
			hardened = true
			elem = elem[:len(elem)-1]
		}
		v, err := strconv.ParseUint(elem, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrInvalidPath, elem)
		}
		if uint32(v) >= HardenedKeyStart {
			return nil, fmt.Errorf("%w: component %d exceeds 2^31-1", ErrInvalidPath, v)
		}
		if hardened {
			out = append(out, HardenedIndex(uint32(v)+HardenedKeyStart))
		} else {
			out = append(out, NonHardenedIndex(uint32(v)))
		}
	}
	return out, nil
}

// DerivePath walks the parent through every index of the path in order and
// returns the final key pair.
func DerivePath(parent *ExtendedKeyPair, path []ChildIndex) *ExtendedKeyPair {
	key := parent
	for _, idx := range path {
		key = DeriveChildKeyPair(key, idx.Index())
	}
	return key
}

// DerivePublicPath walks an extended public key through the path. It fails
// on the first hardened component: those need the secret key. The check is
// at runtime here, unlike the typed index API, because parsed paths carry
// both halves.
func DerivePublicPath(parent ExtendedPublicKey, path []ChildIndex) (ExtendedPublicKey, error) {
	key := parent
	for _, idx := range path {
		nh, ok := idx.(NonHardenedIndex)
		if !ok {
			return ExtendedPublicKey{}, ErrHardenedFromPublic
		}
		key = DeriveChildPublicKey(key, nh)
	}
	return key, nil
}
