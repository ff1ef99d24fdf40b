package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

func seedCmd() *cobra.Command {
	var (
		bits       int
		mnemonic   string
		passphrase string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a master seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mnemonic != "" {
				if !bip39.IsMnemonicValid(mnemonic) {
					return fmt.Errorf("invalid mnemonic")
				}
				fmt.Printf("Seed: %x\n", bip39.NewSeed(mnemonic, passphrase))
				return nil
			}

			if bits < 128 || bits > 256 || bits%32 != 0 {
				return fmt.Errorf("entropy bits must be 128-256 and a multiple of 32")
			}
			entropy, err := bip39.NewEntropy(bits)
			if err != nil {
				return err
			}
			m, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			fmt.Printf("Mnemonic: %s\nSeed: %x\n", m, bip39.NewSeed(m, passphrase))
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 256, "entropy bits for a fresh mnemonic")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "derive the seed from an existing BIP39 mnemonic")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "optional BIP39 passphrase")
	return cmd
}
