// Package extkey serializes derived keys in the BIP32 interchange format:
// Base58 over version || depth || parent fingerprint || child number ||
// chain code || key data || 4-byte double-SHA256 checksum. Only secp256k1
// has registered version bytes; other curves are displayed as raw hex by
// callers.
package extkey

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

var (
	// MainnetPrivate is the xprv version prefix.
	MainnetPrivate = [4]byte{0x04, 0x88, 0xad, 0xe4}
	// MainnetPublic is the xpub version prefix.
	MainnetPublic = [4]byte{0x04, 0x88, 0xb2, 0x1e}
)

var (
	// ErrBadChecksum is returned when a serialized key fails its checksum.
	ErrBadChecksum = errors.New("bad extended key checksum")
	// ErrBadKeyLen is returned when a serialized key has the wrong length.
	ErrBadKeyLen = errors.New("serialized extended key length is invalid")
)

const payloadLen = 78

// Serialized carries the BIP32 interchange fields for one extended key.
type Serialized struct {
	Version   [4]byte
	Depth     uint8
	ParentFP  [4]byte
	ChildNum  uint32
	ChainCode [32]byte
	KeyData   [33]byte // 0x00 || ser256(k) for private keys, serP(K) for public
}

// Encode returns the Base58 form with the trailing checksum.
func (s *Serialized) Encode() string {
	buf := make([]byte, 0, payloadLen+4)
	buf = append(buf, s.Version[:]...)
	buf = append(buf, s.Depth)
	buf = append(buf, s.ParentFP[:]...)
	var cn [4]byte
	binary.BigEndian.PutUint32(cn[:], s.ChildNum)
	buf = append(buf, cn[:]...)
	buf = append(buf, s.ChainCode[:]...)
	buf = append(buf, s.KeyData[:]...)
	sum := doubleSHA256(buf)
	buf = append(buf, sum[:4]...)
	return base58.Encode(buf)
}

// Decode parses a Base58 extended key, validating length and checksum.
func Decode(str string) (*Serialized, error) {
	raw := base58.Decode(str)
	if len(raw) != payloadLen+4 {
		return nil, ErrBadKeyLen
	}
	payload, checksum := raw[:payloadLen], raw[payloadLen:]
	sum := doubleSHA256(payload)
	if !bytes.Equal(checksum, sum[:4]) {
		return nil, ErrBadChecksum
	}

	s := &Serialized{}
	copy(s.Version[:], payload[0:4])
	s.Depth = payload[4]
	copy(s.ParentFP[:], payload[5:9])
	s.ChildNum = binary.BigEndian.Uint32(payload[9:13])
	copy(s.ChainCode[:], payload[13:45])
	copy(s.KeyData[:], payload[45:78])
	return s, nil
}

// Fingerprint returns the first four bytes of RIPEMD160(SHA256(serP)), the
// BIP32 identifier of a compressed public key.
func Fingerprint(compressedPub []byte) [4]byte {
	sha := sha256.Sum256(compressedPub)
	h := ripemd160.New()
	h.Write(sha[:])
	var fp [4]byte
	copy(fp[:], h.Sum(nil))
	return fp
}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}
