package slip10

import (
	"slipkey/internal/curve"
)

// ChainCode is the 32 bytes of auxiliary entropy carried alongside each
// extended key and used as HMAC key material when deriving its children.
type ChainCode [32]byte

// ExtendedPublicKey pairs a public key with its chain code. The public key
// is never the group identity.
type ExtendedPublicKey struct {
	PublicKey curve.Point
	ChainCode ChainCode
}

// ExtendedSecretKey pairs a secret scalar with its chain code. The scalar is
// never zero.
type ExtendedSecretKey struct {
	SecretKey curve.Scalar
	ChainCode ChainCode
}

// Public derives the matching extended public key.
func (sk *ExtendedSecretKey) Public() ExtendedPublicKey {
	return ExtendedPublicKey{
		PublicKey: sk.SecretKey.Curve().ScalarBaseMult(sk.SecretKey),
		ChainCode: sk.ChainCode,
	}
}

// Zeroize wipes the secret scalar. The key must not be used afterwards.
func (sk *ExtendedSecretKey) Zeroize() { sk.SecretKey.Zeroize() }

// ExtendedKeyPair owns an extended secret key together with its public half.
// The halves always agree: a pair can only be built through
// NewExtendedKeyPair or a derivation call, both of which compute the public
// key from the secret one, never by pairing unrelated keys.
type ExtendedKeyPair struct {
	secretKey ExtendedSecretKey
	publicKey ExtendedPublicKey
}

// NewExtendedKeyPair derives the public half of sk and returns the pair.
func NewExtendedKeyPair(sk ExtendedSecretKey) *ExtendedKeyPair {
	return &ExtendedKeyPair{secretKey: sk, publicKey: sk.Public()}
}

// SecretKey returns the secret half.
func (kp *ExtendedKeyPair) SecretKey() *ExtendedSecretKey { return &kp.secretKey }

// PublicKey returns the public half.
func (kp *ExtendedKeyPair) PublicKey() *ExtendedPublicKey { return &kp.publicKey }

// ChainCode returns the chain code shared by both halves.
func (kp *ExtendedKeyPair) ChainCode() ChainCode { return kp.publicKey.ChainCode }

// Zeroize wipes the secret half. The pair must not be used afterwards.
func (kp *ExtendedKeyPair) Zeroize() { kp.secretKey.Zeroize() }

// DerivedShift is the transient result of one shift derivation: the scalar
// delta between parent and child secret keys, together with the child
// extended public key, which falls out of computing the shift.
type DerivedShift struct {
	Shift          curve.Scalar
	ChildPublicKey ExtendedPublicKey
}

// CurveType selects the master-key HMAC personalization string. It matters
// only while deriving the master key; from then on the curve arithmetic
// carried inside the keys governs everything.
type CurveType int

const (
	// CurveTypeSecp256k1 selects the "Bitcoin seed" personalization.
	CurveTypeSecp256k1 CurveType = iota
	// CurveTypeSecp256r1 selects the "Nist256p1 seed" personalization.
	CurveTypeSecp256r1
)

// String returns the conventional curve name.
func (t CurveType) String() string {
	switch t {
	case CurveTypeSecp256k1:
		return "secp256k1"
	case CurveTypeSecp256r1:
		return "secp256r1"
	default:
		return "unknown"
	}
}

func (t CurveType) params() (curve.Curve, string) {
	switch t {
	case CurveTypeSecp256k1:
		return curve.Secp256k1(), "Bitcoin seed"
	case CurveTypeSecp256r1:
		return curve.Secp256r1(), "Nist256p1 seed"
	default:
		panic("slip10: unknown curve type")
	}
}
