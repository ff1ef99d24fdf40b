package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipkey/internal/extkey"
	"slipkey/internal/slip10"
)

func deriveCmd() *cobra.Command {
	var (
		seedHex string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the key pair at a path",
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
			node, err := extkey.NewWalker(slip10.NewExtendedKeyPair(master)).Walk(indices)
			if err != nil {
				return err
			}
			defer node.Key().Zeroize()

			fmt.Printf("Path:       %s\n", path)
			printKeyPair(node.Key())
			if ct == slip10.CurveTypeSecp256k1 {
				fmt.Printf("xprv:       %s\n", node.Private(extkey.MainnetPrivate))
				fmt.Printf("xpub:       %s\n", node.Public(extkey.MainnetPublic))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "master seed as hex (16-64 bytes)")
	cmd.Flags().StringVar(&path, "path", "m", "derivation path, e.g. m/44H/0H/1")
	return cmd
}
