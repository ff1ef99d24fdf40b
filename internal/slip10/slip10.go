package slip10

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"slipkey/internal/curve"
	"slipkey/internal/util/memzero"
)

const (
	// MinSeedLen and MaxSeedLen bound the master seed length.
	MinSeedLen = 16
	MaxSeedLen = 64

	// maxDeriveAttempts caps the rejection-sampling loops. A retry is
	// needed with probability about 2^-127 per iteration, so exhausting
	// the cap means the digest primitive is broken, not bad luck.
	maxDeriveAttempts = 1000
)

// DeriveMasterKey derives the root extended secret key from a high-entropy
// seed of 16 to 64 bytes. The same (curveType, seed) input always produces
// the same key.
func DeriveMasterKey(curveType CurveType, seed []byte) (ExtendedSecretKey, error) {
	c, seedKey := curveType.params()
	return DeriveMasterKeyWithCurve(c, seedKey, seed)
}

// DeriveMasterKeyWithCurve is the registration point for curves beyond the
// two CurveType constants: the caller supplies the arithmetic together with
// the curve's personalization string.
func DeriveMasterKeyWithCurve(c curve.Curve, seedKey string, seed []byte) (ExtendedSecretKey, error) {
	if len(seed) < MinSeedLen || len(seed) > MaxSeedLen {
		return ExtendedSecretKey{}, ErrInvalidSeedLen
	}

	digest := hmacSHA512([]byte(seedKey), seed)
	defer func() { memzero.Zero(digest) }()

	// Accept I_L as the master secret when it parses as a scalar and is
	// non-zero; otherwise feed the whole digest back through the HMAC.
	// The zero check is constant time: a near-miss digest must not be
	// distinguishable by timing.
	for attempt := 0; attempt < maxDeriveAttempts; attempt++ {
		sk, err := c.ScalarFromBytes(digest[:32])
		if err == nil {
			if !sk.IsZero() {
				var cc ChainCode
				copy(cc[:], digest[32:])
				return ExtendedSecretKey{SecretKey: sk, ChainCode: cc}, nil
			}
			sk.Zeroize()
		}
		next := hmacSHA512([]byte(seedKey), digest)
		memzero.Zero(digest)
		digest = next
	}
	panic("slip10: master key rejection sampling did not converge")
}

// DeriveChildKeyPair derives the child key pair at a raw index. The high bit
// of the index selects the hardened or non-hardened path; the operation is
// total and deterministic.
func DeriveChildKeyPair(parent *ExtendedKeyPair, index uint32) *ExtendedKeyPair {
	var shift DerivedShift
	switch idx := Classify(index).(type) {
	case HardenedIndex:
		shift = DeriveHardenedShift(parent, idx)
	case NonHardenedIndex:
		shift = DerivePublicShift(parent.publicKey, idx)
	}

	// The child public key comes from the shift computation, where it was
	// already combined with the parent point; recomputing it from the child
	// secret key would just redo the same algebra.
	childSK := parent.secretKey.SecretKey.Add(shift.Shift)
	shift.Shift.Zeroize()
	return &ExtendedKeyPair{
		secretKey: ExtendedSecretKey{
			SecretKey: childSK,
			ChainCode: shift.ChildPublicKey.ChainCode,
		},
		publicKey: shift.ChildPublicKey,
	}
}

// DeriveChildPublicKey derives a non-hardened child extended public key from
// the parent's public data alone. It is the only child operation that works
// without a secret key; hardened indices cannot be routed here because the
// parameter type only admits the non-hardened half.
func DeriveChildPublicKey(parent ExtendedPublicKey, index NonHardenedIndex) ExtendedPublicKey {
	return DerivePublicShift(parent, index).ChildPublicKey
}

// DeriveHardenedShift derives the shift for a hardened child. It consumes
// the parent secret key, which is exactly what makes hardened children
// underivable from public data.
func DeriveHardenedShift(parent *ExtendedKeyPair, index HardenedIndex) DerivedShift {
	cc := parent.ChainCode()
	skBytes := parent.secretKey.SecretKey.Bytes()
	// 0x00 || ser256(parent sk) || ser32(index)
	digest := hmacSHA512(cc[:], []byte{0x00}, skBytes, ser32(index.Index()))
	memzero.Zero(skBytes)
	return calculateShift(cc[:], &parent.publicKey, index.Index(), digest)
}

// DerivePublicShift derives the shift for a non-hardened child from the
// parent extended public key.
func DerivePublicShift(parent ExtendedPublicKey, index NonHardenedIndex) DerivedShift {
	// serP(parent pk) || ser32(index)
	digest := hmacSHA512(parent.ChainCode[:], parent.PublicKey.SerializeCompressed(), ser32(index.Index()))
	return calculateShift(parent.ChainCode[:], &parent, index.Index(), digest)
}

// calculateShift runs the rejection-sampling loop shared by both shift
// derivations: split the digest into I_L || I_R, accept I_L as the shift
// when it parses as a scalar (zero allowed, unlike master derivation) and
// the candidate child public key is not the group identity, otherwise retry
// with hmac(key, 0x01 || I_R || ser32(index)).
func calculateShift(hmacKey []byte, parentPub *ExtendedPublicKey, index uint32, digest []byte) DerivedShift {
	c := parentPub.PublicKey.Curve()
	defer func() { memzero.Zero(digest) }()

	for attempt := 0; attempt < maxDeriveAttempts; attempt++ {
		if len(digest) != sha512.Size {
			panic("slip10: digest size mismatch")
		}
		shift, err := c.ScalarFromBytes(digest[:32])
		if err == nil {
			childPK := parentPub.PublicKey.Add(c.ScalarBaseMult(shift))
			if !childPK.IsIdentity() {
				var cc ChainCode
				copy(cc[:], digest[32:])
				return DerivedShift{
					Shift:          shift,
					ChildPublicKey: ExtendedPublicKey{PublicKey: childPK, ChainCode: cc},
				}
			}
		}
		next := hmacSHA512(hmacKey, []byte{0x01}, digest[32:], ser32(index))
		memzero.Zero(digest)
		digest = next
	}
	panic("slip10: child shift rejection sampling did not converge")
}

// hmacSHA512 computes HMAC-SHA512 over the message parts in order.
func hmacSHA512(key []byte, msg ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, m := range msg {
		mac.Write(m)
	}
	return mac.Sum(nil)
}

// ser32 is the 4-byte big-endian index encoding. Hardened indices are
// encoded as-is, high bit included.
func ser32(i uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b[:]
}
