package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipkey/internal/slip10"
)

func pubkeyCmd() *cobra.Command {
	var (
		seedHex string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive a child public key from public data only",
		Long: `Derive the master key, keep only its public half, and walk a
non-hardened path with public-only derivation. Hardened components are
rejected: they require the secret key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := curveType()
			if err != nil {
				return err
			}
			seed, err := decodeSeed(seedHex)
			if err != nil {
				return err
			}
			indices, err := slip10.ParsePath(path)
			if err != nil {
				return err
			}

			master, err := slip10.DeriveMasterKey(ct, seed)
			if err != nil {
				return err
			}
			pair := slip10.NewExtendedKeyPair(master)
			defer pair.Zeroize()

			child, err := slip10.DerivePublicPath(*pair.PublicKey(), indices)
			if err != nil {
				return err
			}

			fmt.Printf("Path:       %s\n", path)
			fmt.Printf("Public key: %x\n", child.PublicKey.SerializeCompressed())
			fmt.Printf("Chain code: %x\n", child.ChainCode[:])
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "master seed as hex (16-64 bytes)")
	cmd.Flags().StringVar(&path, "path", "m", "non-hardened derivation path, e.g. m/0/1")
	return cmd
}
