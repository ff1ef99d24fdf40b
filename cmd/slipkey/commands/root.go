package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"slipkey/internal/slip10"
)

var curveName string

// Execute runs the slipkey CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "slipkey",
		Short: "SLIP-10 hierarchical deterministic key tool",
	}

	root.PersistentFlags().StringVar(&curveName, "curve", "secp256k1", "curve: secp256k1 or secp256r1")

	root.AddCommand(seedCmd(), masterCmd(), deriveCmd(), pubkeyCmd())
	return root.Execute()
}

func curveType() (slip10.CurveType, error) {
	switch curveName {
	case "secp256k1":
		return slip10.CurveTypeSecp256k1, nil
	case "secp256r1":
		return slip10.CurveTypeSecp256r1, nil
	default:
		return 0, fmt.Errorf("unknown curve %q", curveName)
	}
}

func decodeSeed(seedHex string) ([]byte, error) {
	if seedHex == "" {
		return nil, fmt.Errorf("seed required (--seed)")
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("seed is not valid hex: %w", err)
	}
	return seed, nil
}
