// Package slip10 implements SLIP-10 hierarchical deterministic key
// derivation for curves with 32-byte prime-field scalars (secp256k1 and
// secp256r1; ed25519 needs a different seed-expansion scheme and is out of
// scope).
//
// # Overview
//
// A master key is derived from a 16-64 byte seed with HMAC-SHA512 keyed by a
// per-curve personalization string. Each child key is the parent key plus a
// scalar shift obtained from another HMAC-SHA512 invocation; hardened
// children (index >= 2^31) mix the parent secret key into the HMAC message,
// non-hardened children only the parent public key, which is what lets an
// extended public key derive its non-hardened descendants on its own.
//
// # Flows
//
//  1. DeriveMasterKey(curveType, seed) -> ExtendedSecretKey
//  2. NewExtendedKeyPair(master) -> *ExtendedKeyPair
//  3. DeriveChildKeyPair(pair, index) per path component, or
//     DeriveChildPublicKey(pub, index) for public-only non-hardened walks
//
// DeriveHardenedShift and DerivePublicShift expose the intermediate shift
// for callers composing their own flows (threshold signing and the like).
//
// # Errors
//
// ErrInvalidSeedLen and ErrIndexOutOfRange are the only recoverable errors.
// The rejection-sampling loops inside derivation succeed on the first
// iteration for all practical inputs (each retry is needed with probability
// about 2^-127) and are not surfaced; if a loop ever exhausts its bound the
// digest primitive is broken and the package panics.
package slip10
