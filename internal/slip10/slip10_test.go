package slip10_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"slipkey/internal/slip10"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

func masterPair(t *testing.T, ct slip10.CurveType, seedHex string) *slip10.ExtendedKeyPair {
	t.Helper()
	master, err := slip10.DeriveMasterKey(ct, hexBytes(t, seedHex))
	if err != nil {
		t.Fatalf("DeriveMasterKey: %v", err)
	}
	return slip10.NewExtendedKeyPair(master)
}

func checkPair(t *testing.T, pair *slip10.ExtendedKeyPair, wantPrv, wantCC, wantPub string) {
	t.Helper()
	if got := pair.SecretKey().SecretKey.Bytes(); !bytes.Equal(got, hexBytes(t, wantPrv)) {
		t.Fatalf("secret key: got %x want %s", got, wantPrv)
	}
	cc := pair.ChainCode()
	if !bytes.Equal(cc[:], hexBytes(t, wantCC)) {
		t.Fatalf("chain code: got %x want %s", cc[:], wantCC)
	}
	if wantPub != "" {
		if got := pair.PublicKey().PublicKey.SerializeCompressed(); !bytes.Equal(got, hexBytes(t, wantPub)) {
			t.Fatalf("public key: got %x want %s", got, wantPub)
		}
	}
}

// Vector 1 from SLIP-0010 (identical to BIP32 test vector 1 for secp256k1),
// seed 000102030405060708090a0b0c0d0e0f.
func TestVector1Secp256k1(t *testing.T) {
	chain := []struct {
		index uint32
		prv   string
		cc    string
		pub   string
	}{
		{
			0 + slip10.HardenedKeyStart,
			"edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea",
			"47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141",
			"035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56",
		},
		{
			1,
			"3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368",
			"2a7857631386ba23dacac34180dd1983734e444fdbf774041578e9b6adb37c19",
			"03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c",
		},
		{
			2 + slip10.HardenedKeyStart,
			"cbce0d719ecf7431d88e6a89fa1483e02e35092af60c042b1df2ff59fa424dca",
			"04466b9cc8e161e966409ca52986c584f07e9dc81f735db683c3ff6ec7b1503f",
			"0357bfe1e341d01c69fe5654309956cbea516822fba8a601743a012a7896ee8dc2",
		},
		{
			2,
			"0f479245fb19a38a1954c5c7c0ebab2f9bdfd96a17563ef28a6a4b1a2a764ef4",
			"cfb71883f01676f587d023cc53a35bc7f88f724b1f8c2892ac1275ac822a3edd",
			"02e8445082a72f29b75ca48748a914df60622a609cacfce8ed0e35804560741d29",
		},
		{
			1000000000,
			"471b76e389e528d6de6d816857e012c5455051cad6660850e58372a6c3e6e7c8",
			"c783e67b921d2beb8f6b389cc646d7263b4145701dadd2161548a8b078e65e9e",
			"022a471424da5e657499d1ff51cb43c47481a03b1e77f951fe64cec9f5a48f7011",
		},
	}

	pair := masterPair(t, slip10.CurveTypeSecp256k1, "000102030405060708090a0b0c0d0e0f")
	checkPair(t, pair,
		"e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
		"873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
		"0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2")

	for _, step := range chain {
		pair = slip10.DeriveChildKeyPair(pair, step.index)
		checkPair(t, pair, step.prv, step.cc, step.pub)
	}
}

// Vector 1 from SLIP-0010 for nist256p1, same seed.
func TestVector1Secp256r1(t *testing.T) {
	pair := masterPair(t, slip10.CurveTypeSecp256r1, "000102030405060708090a0b0c0d0e0f")
	checkPair(t, pair,
		"612091aaa12e22dd2abef664f8a01a82cae99ad7441b7ef8110424915c268bc2",
		"beeb672fe4621673f722f38529c07392fecaa61015c80c34f29ce8b41b3cb6ea",
		"0266874dc6ade47b3ecd096745ca09bcd29638dd52c2c12117b11ed3e458cfa9e8")

	child := slip10.DeriveChildKeyPair(pair, 0+slip10.HardenedKeyStart)
	checkPair(t, child,
		"6939694369114c67917a182c59ddb8cafc3004e63ca5d3b84403ba8613debc0c",
		"3460cea53e6a6bb5fb391eeef3237ffd8724bf0a40e94943c98b83825342ee11",
		"")
}

func TestDeriveMasterKeyDeterministic(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")
	for _, ct := range []slip10.CurveType{slip10.CurveTypeSecp256k1, slip10.CurveTypeSecp256r1} {
		a, err := slip10.DeriveMasterKey(ct, seed)
		if err != nil {
			t.Fatalf("DeriveMasterKey(%s): %v", ct, err)
		}
		b, err := slip10.DeriveMasterKey(ct, seed)
		if err != nil {
			t.Fatalf("DeriveMasterKey(%s): %v", ct, err)
		}
		if !bytes.Equal(a.SecretKey.Bytes(), b.SecretKey.Bytes()) || a.ChainCode != b.ChainCode {
			t.Fatalf("DeriveMasterKey(%s) is not deterministic", ct)
		}
	}
}

func TestDeriveMasterKeySeedLength(t *testing.T) {
	for _, n := range []int{0, 15, 65, 128} {
		if _, err := slip10.DeriveMasterKey(slip10.CurveTypeSecp256k1, make([]byte, n)); !errors.Is(err, slip10.ErrInvalidSeedLen) {
			t.Fatalf("seed length %d: want ErrInvalidSeedLen, got %v", n, err)
		}
	}
	for _, n := range []int{16, 32, 64} {
		if _, err := slip10.DeriveMasterKey(slip10.CurveTypeSecp256k1, make([]byte, n)); err != nil {
			t.Fatalf("seed length %d: %v", n, err)
		}
	}
}

// A public-only walk over non-hardened indices must land on the same keys as
// the full secret derivation.
func TestPublicSecretConsistency(t *testing.T) {
	for _, ct := range []slip10.CurveType{slip10.CurveTypeSecp256k1, slip10.CurveTypeSecp256r1} {
		pair := masterPair(t, ct, "fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a2")
		for _, index := range []uint32{0, 1, 42, slip10.HardenedKeyStart - 1} {
			nh, err := slip10.NewNonHardenedIndex(index)
			if err != nil {
				t.Fatalf("NewNonHardenedIndex(%d): %v", index, err)
			}
			fromPublic := slip10.DeriveChildPublicKey(*pair.PublicKey(), nh)
			fromPair := slip10.DeriveChildKeyPair(pair, index)

			got := fromPublic.PublicKey.SerializeCompressed()
			want := fromPair.PublicKey().PublicKey.SerializeCompressed()
			if !bytes.Equal(got, want) {
				t.Fatalf("%s index %d: public-only derivation diverged: %x vs %x", ct, index, got, want)
			}
			if fromPublic.ChainCode != fromPair.ChainCode() {
				t.Fatalf("%s index %d: chain codes diverged", ct, index)
			}
		}
	}
}

// The secret half of a derived pair must always match its public half.
func TestKeyPairHalvesAgree(t *testing.T) {
	pair := masterPair(t, slip10.CurveTypeSecp256k1, "000102030405060708090a0b0c0d0e0f")
	for _, index := range []uint32{0, 7 + slip10.HardenedKeyStart, 1, slip10.MaxHardenedIndex} {
		pair = slip10.DeriveChildKeyPair(pair, index)
		recomputed := pair.SecretKey().Public()
		got := pair.PublicKey().PublicKey.SerializeCompressed()
		want := recomputed.PublicKey.SerializeCompressed()
		if !bytes.Equal(got, want) {
			t.Fatalf("index %d: public half does not match secret half", index)
		}
	}
}

func TestDerivedShiftRelatesParentAndChild(t *testing.T) {
	pair := masterPair(t, slip10.CurveTypeSecp256k1, "000102030405060708090a0b0c0d0e0f")
	idx, err := slip10.NewNonHardenedIndex(3)
	if err != nil {
		t.Fatalf("NewNonHardenedIndex: %v", err)
	}
	shift := slip10.DerivePublicShift(*pair.PublicKey(), idx)
	child := slip10.DeriveChildKeyPair(pair, 3)

	// child sk = parent sk + shift (mod order)
	sum := pair.SecretKey().SecretKey.Add(shift.Shift)
	if !bytes.Equal(sum.Bytes(), child.SecretKey().SecretKey.Bytes()) {
		t.Fatal("shift does not connect parent and child secret keys")
	}
	got := shift.ChildPublicKey.PublicKey.SerializeCompressed()
	want := child.PublicKey().PublicKey.SerializeCompressed()
	if !bytes.Equal(got, want) {
		t.Fatal("shift child public key does not match derived child")
	}
}

func TestNonZeroInvariants(t *testing.T) {
	for _, ct := range []slip10.CurveType{slip10.CurveTypeSecp256k1, slip10.CurveTypeSecp256r1} {
		pair := masterPair(t, ct, "000102030405060708090a0b0c0d0e0f")
		if pair.SecretKey().SecretKey.IsZero() {
			t.Fatalf("%s: master secret is zero", ct)
		}
		for _, index := range []uint32{0, 1 + slip10.HardenedKeyStart, 2} {
			pair = slip10.DeriveChildKeyPair(pair, index)
			if pair.SecretKey().SecretKey.IsZero() {
				t.Fatalf("%s index %d: child secret is zero", ct, index)
			}
			if pair.PublicKey().PublicKey.IsIdentity() {
				t.Fatalf("%s index %d: child public key is the identity", ct, index)
			}
		}
	}
}
