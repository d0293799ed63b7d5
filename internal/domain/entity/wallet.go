package entity

import (
	"fmt"
	"time"
)

// Wallet is a tracked address on one chain family.
type Wallet struct {
	ID        string      `json:"id"`
	Address   string      `json:"address"`
	Chain     ChainFamily `json:"chain"`
	EVMChain  EVMChain    `json:"evmChain,omitempty"`
	Label     string      `json:"label,omitempty"`
	Color     string      `json:"color,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	Active    bool        `json:"active"`
}

// Validate checks the wallet's address against its declared chain family.
func (w Wallet) Validate() error {
	switch w.Chain {
	case ChainFamilyEVM:
		if !w.EVMChain.IsValid() {
			return fmt.Errorf("unsupported EVM network %q", w.EVMChain)
		}
		if !IsValidEVMAddress(w.Address) {
			return fmt.Errorf("invalid EVM address %q", w.Address)
		}
	case ChainFamilySolana:
		if !IsValidSolanaAddress(w.Address) {
			return fmt.Errorf("invalid Solana address %q", w.Address)
		}
	default:
		return fmt.Errorf("unsupported chain family %q", w.Chain)
	}
	return nil
}
