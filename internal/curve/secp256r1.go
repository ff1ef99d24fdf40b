package curve

import (
	"crypto/elliptic"
	"crypto/subtle"
	"fmt"
	"math/big"

	"slipkey/internal/util/memzero"
)

type secp256r1Curve struct{}

// Secp256r1 returns the NIST P-256 backend.
//
// There is no scalar/point library for P-256 the way decred's package covers
// secp256k1, so this backend sits on crypto/elliptic. The one secret-sensitive
// comparison (IsZero) goes through crypto/subtle on fixed-width encodings.
func Secp256r1() Curve { return secp256r1Curve{} }

func (secp256r1Curve) Name() string { return "secp256r1" }

func (c secp256r1Curve) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrScalarRange, ScalarSize, len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(elliptic.P256().Params().N) >= 0 {
		v.SetInt64(0)
		return nil, ErrScalarRange
	}
	return &nistScalar{v: v}, nil
}

func (c secp256r1Curve) ScalarBaseMult(k Scalar) Point {
	buf := k.(*nistScalar).bytes32()
	x, y := elliptic.P256().ScalarBaseMult(buf[:])
	memzero.Zero(buf[:])
	return &nistPoint{x: x, y: y}
}

func (c secp256r1Curve) ParsePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return nil, ErrBadPoint
	}
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
	if x == nil {
		return nil, ErrBadPoint
	}
	return &nistPoint{x: x, y: y}, nil
}

type nistScalar struct{ v *big.Int }

func (k *nistScalar) Curve() Curve { return secp256r1Curve{} }

func (k *nistScalar) Add(v Scalar) Scalar {
	sum := new(big.Int).Add(k.v, v.(*nistScalar).v)
	sum.Mod(sum, elliptic.P256().Params().N)
	return &nistScalar{v: sum}
}

func (k *nistScalar) IsZero() bool {
	buf := k.bytes32()
	var zero [ScalarSize]byte
	eq := subtle.ConstantTimeCompare(buf[:], zero[:]) == 1
	memzero.Zero(buf[:])
	return eq
}

func (k *nistScalar) Bytes() []byte {
	buf := k.bytes32()
	return buf[:]
}

// Zeroize clears the value. math/big has no wiping primitive, so whether the
// old limbs are overwritten is up to the allocator; this is best effort.
func (k *nistScalar) Zeroize() { k.v.SetInt64(0) }

func (k *nistScalar) bytes32() [ScalarSize]byte {
	var buf [ScalarSize]byte
	k.v.FillBytes(buf[:])
	return buf
}

type nistPoint struct{ x, y *big.Int }

func (p *nistPoint) Curve() Curve { return secp256r1Curve{} }

func (p *nistPoint) Add(q Point) Point {
	qq := q.(*nistPoint)
	x, y := elliptic.P256().Add(p.x, p.y, qq.x, qq.y)
	return &nistPoint{x: x, y: y}
}

func (p *nistPoint) IsIdentity() bool {
	// crypto/elliptic represents the point at infinity as (0, 0).
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

func (p *nistPoint) SerializeCompressed() []byte {
	return elliptic.MarshalCompressed(elliptic.P256(), p.x, p.y)
}
