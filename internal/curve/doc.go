// Package curve defines the elliptic-curve capability set that SLIP-10
// derivation needs, and implements it for the two curves SLIP-10 registers
// for this scheme.
//
// # Contents
//
//   - Curve, Scalar and Point interfaces: scalar field arithmetic and group
//     operations with fixed-width big-endian serialization
//   - Secp256k1, backed by github.com/decred/dcrd/dcrec/secp256k1/v4
//   - Secp256r1 (NIST P-256), backed by crypto/elliptic
//
// # Notes
//
// Scalars and points are immutable values: arithmetic returns fresh results
// and never writes through an operand. Scalar.IsZero runs in constant time so
// it is safe on secret values; point identity checks are ordinary branches,
// points being public data. Secret scalars should be released with Zeroize.
package curve
