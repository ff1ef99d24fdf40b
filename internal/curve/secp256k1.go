package curve

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type secp256k1Curve struct{}

// Secp256k1 returns the secp256k1 backend.
func Secp256k1() Curve { return secp256k1Curve{} }

func (secp256k1Curve) Name() string { return "secp256k1" }

func (c secp256k1Curve) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrScalarRange, ScalarSize, len(b))
	}
	var buf [ScalarSize]byte
	copy(buf[:], b)
	s := new(secp.ModNScalar)
	overflow := s.SetBytes(&buf) != 0
	for i := range buf {
		buf[i] = 0
	}
	if overflow {
		s.Zero()
		return nil, ErrScalarRange
	}
	return &secpScalar{s: s}, nil
}

func (c secp256k1Curve) ScalarBaseMult(k Scalar) Point {
	var p secp.JacobianPoint
	secp.ScalarBaseMultNonConst(k.(*secpScalar).s, &p)
	return &secpPoint{p: p}
}

func (c secp256k1Curve) ParsePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return nil, ErrBadPoint
	}
	pub, err := secp.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
	}
	var p secp.JacobianPoint
	pub.AsJacobian(&p)
	return &secpPoint{p: p}, nil
}

type secpScalar struct{ s *secp.ModNScalar }

func (k *secpScalar) Curve() Curve { return secp256k1Curve{} }

func (k *secpScalar) Add(v Scalar) Scalar {
	return &secpScalar{s: new(secp.ModNScalar).Add2(k.s, v.(*secpScalar).s)}
}

func (k *secpScalar) IsZero() bool { return k.s.IsZero() }

func (k *secpScalar) Bytes() []byte {
	b := k.s.Bytes()
	return b[:]
}

func (k *secpScalar) Zeroize() { k.s.Zero() }

type secpPoint struct{ p secp.JacobianPoint }

func (p *secpPoint) Curve() Curve { return secp256k1Curve{} }

func (p *secpPoint) Add(q Point) Point {
	var sum secp.JacobianPoint
	secp.AddNonConst(&p.p, &q.(*secpPoint).p, &sum)
	return &secpPoint{p: sum}
}

func (p *secpPoint) IsIdentity() bool {
	// The point at infinity in Jacobian coordinates has Z = 0 (or all-zero
	// coordinates, which ScalarBaseMultNonConst produces for k = 0).
	return (p.p.X.IsZero() && p.p.Y.IsZero()) || p.p.Z.IsZero()
}

func (p *secpPoint) SerializeCompressed() []byte {
	aff := p.p
	aff.ToAffine()
	return secp.NewPublicKey(&aff.X, &aff.Y).SerializeCompressed()
}
