package entity

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainFamily identifies which provider family a wallet or asset belongs to.
type ChainFamily string

const (
	// ChainFamilyEVM covers all EVM-compatible networks served by the EVM indexing provider.
	ChainFamilyEVM ChainFamily = "evm"
	// ChainFamilySolana covers Solana assets served by the DAS indexing provider.
	ChainFamilySolana ChainFamily = "solana"
)

// EVMChain is the enumerated set of supported EVM networks.
type EVMChain string

const (
	EVMChainEthereum EVMChain = "ethereum"
	EVMChainBase     EVMChain = "base"
	EVMChainOptimism EVMChain = "optimism"
	EVMChainArbitrum EVMChain = "arbitrum"
	EVMChainPolygon  EVMChain = "polygon"
	EVMChainZora     EVMChain = "zora"
)

// AllEVMChains lists every supported EVM network identifier.
var AllEVMChains = []EVMChain{
	EVMChainEthereum,
	EVMChainBase,
	EVMChainOptimism,
	EVMChainArbitrum,
	EVMChainPolygon,
	EVMChainZora,
}

// IsValid reports whether c is one of the supported EVM networks.
func (c EVMChain) IsValid() bool {
	for _, known := range AllEVMChains {
		if c == known {
			return true
		}
	}
	return false
}

// NativeCurrency returns the symbol floor prices are denominated in on this network.
func (c EVMChain) NativeCurrency() string {
	if c == EVMChainPolygon {
		return "MATIC"
	}
	return "ETH"
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidEVMAddress reports whether addr is a well-formed 0x-prefixed EVM address.
func IsValidEVMAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// IsValidSolanaAddress reports whether addr looks like a base58-encoded Solana public key.
func IsValidSolanaAddress(addr string) bool {
	if len(addr) < 32 || len(addr) > 44 {
		return false
	}
	for _, r := range addr {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}
