package curve

import "errors"

const (
	// ScalarSize is the serialized scalar width in bytes.
	ScalarSize = 32
	// PointSize is the SEC1 compressed point width in bytes.
	PointSize = 33
)

var (
	// ErrScalarRange is returned when bytes do not encode a value in
	// [0, order).
	ErrScalarRange = errors.New("scalar out of range for curve order")
	// ErrBadPoint is returned when bytes do not encode a point on the curve.
	ErrBadPoint = errors.New("malformed curve point")
)

// Curve is the arithmetic capability set required by SLIP-10 derivation. Any
// prime-order curve with 32-byte scalars can implement it.
type Curve interface {
	// Name returns a short identifier such as "secp256k1".
	Name() string

	// ScalarFromBytes parses a 32-byte big-endian value, failing with
	// ErrScalarRange when it is not in [0, order). Zero is accepted.
	ScalarFromBytes(b []byte) (Scalar, error)

	// ScalarBaseMult returns generator * k.
	ScalarBaseMult(k Scalar) Point

	// ParsePoint parses a 33-byte SEC1 compressed point.
	ParsePoint(b []byte) (Point, error)
}

// Scalar is an element of the curve's scalar field.
type Scalar interface {
	// Curve returns the curve this scalar belongs to.
	Curve() Curve

	// Add returns s + v mod the group order, leaving both operands intact.
	Add(v Scalar) Scalar

	// IsZero reports whether the scalar is zero. The comparison runs in
	// constant time.
	IsZero() bool

	// Bytes returns the 32-byte big-endian, zero-padded encoding. The caller
	// owns the slice and should wipe it when it carries a secret.
	Bytes() []byte

	// Zeroize overwrites the backing storage. Best effort: callers must not
	// use the scalar afterwards.
	Zeroize()
}

// Point is an element of the curve group.
type Point interface {
	// Curve returns the curve this point belongs to.
	Curve() Curve

	// Add returns p + q, leaving both operands intact.
	Add(q Point) Point

	// IsIdentity reports whether p is the group identity.
	IsIdentity() bool

	// SerializeCompressed returns the 33-byte SEC1 compressed encoding.
	// The point must not be the identity.
	SerializeCompressed() []byte
}
