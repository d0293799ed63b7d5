package fetcher

import (
	"fmt"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/domain/entity"
)

// Factory is the closed dispatch over the two chain families. Both fetchers
// are constructed once at startup; there is no open registration.
type Factory struct {
	evm    port.NFTFetcher
	solana port.NFTFetcher
}

// NewFactory creates a Factory over the two fetcher implementations.
func NewFactory(evm, solana port.NFTFetcher) *Factory {
	return &Factory{evm: evm, solana: solana}
}

// ForChain returns the fetcher serving the given chain family.
func (f *Factory) ForChain(chain entity.ChainFamily) (port.NFTFetcher, error) {
	switch chain {
	case entity.ChainFamilyEVM:
		return f.evm, nil
	case entity.ChainFamilySolana:
		return f.solana, nil
	}
	return nil, fmt.Errorf("no fetcher for chain family %q", chain)
}

// ForWallet returns the fetcher serving the wallet's chain family.
func (f *Factory) ForWallet(wallet entity.Wallet) (port.NFTFetcher, error) {
	return f.ForChain(wallet.Chain)
}
