package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"slipkey/internal/extkey"
	"slipkey/internal/slip10"
)

func masterCmd() *cobra.Command {
	var seedHex string

	cmd := &cobra.Command{
		Use:   "master",
		Short: "Derive the master key from a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := curveType()
			if err != nil {
				return err
			}
			seed, err := decodeSeed(seedHex)
			if err != nil {
				return err
			}

			master, err := slip10.DeriveMasterKey(ct, seed)
			if err != nil {
				return err
			}
			pair := slip10.NewExtendedKeyPair(master)
			defer pair.Zeroize()

			printKeyPair(pair)
			if ct == slip10.CurveTypeSecp256k1 {
				w := extkey.NewWalker(pair)
				fmt.Printf("xprv:       %s\n", w.Private(extkey.MainnetPrivate))
				fmt.Printf("xpub:       %s\n", w.Public(extkey.MainnetPublic))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "master seed as hex (16-64 bytes)")
	return cmd
}

func printKeyPair(pair *slip10.ExtendedKeyPair) {
	cc := pair.ChainCode()
	fmt.Printf("Secret key: %x\n", pair.SecretKey().SecretKey.Bytes())
	fmt.Printf("Public key: %x\n", pair.PublicKey().PublicKey.SerializeCompressed())
	fmt.Printf("Chain code: %x\n", cc[:])
}
