// Package commands defines the slipkey CLI.
//
// Commands
//
//   - seed     Generate a master seed (random or from a BIP39 mnemonic)
//   - master   Derive the master key from a seed
//   - derive   Derive the key pair at a path such as m/44H/0H/1
//   - pubkey   Derive a child public key from public data only
//
// # Implementation
//
// Seeds are passed as hex on the command line and nothing is ever written to
// disk; the tool is a thin front end over internal/slip10. The persistent
// --curve flag selects secp256k1 (default) or secp256r1.
package commands
