package slip10

import "errors"

var (
	// ErrInvalidSeedLen is returned when a master seed is outside 16 to 64
	// bytes.
	ErrInvalidSeedLen = errors.New("seed length must be between 16 and 64 bytes")

	// ErrIndexOutOfRange is returned when a raw index falls in the other
	// half than the requested index type.
	ErrIndexOutOfRange = errors.New("child index out of range for requested half")

	// ErrInvalidPath is returned for malformed derivation path strings.
	ErrInvalidPath = errors.New("malformed derivation path")

	// ErrHardenedFromPublic is returned when a public-only walk hits a
	// hardened path component.
	ErrHardenedFromPublic = errors.New("cannot derive hardened child from public key")
)
