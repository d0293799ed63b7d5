// Package normalize maps provider-specific asset records into the unified
// NFT record and owns the composite-id scheme shared by both chain families.
package normalize

import (
	"fmt"
	"strings"

	"nft_tracker/internal/domain/entity"
)

// ParsedID is the decoded form of a composite NFT id. For Solana ids the
// asset id is carried in TokenID and ContractAddress is empty.
type ParsedID struct {
	Chain           entity.ChainFamily
	EVMChain        entity.EVMChain
	ContractAddress string
	TokenID         string
}

// EVMID builds the composite id for an EVM asset. The contract address is
// lowercased so the same token always maps to the same key.
func EVMID(chain entity.EVMChain, contractAddress, tokenID string) string {
	return fmt.Sprintf("evm:%s:%s:%s", chain, strings.ToLower(contractAddress), tokenID)
}

// SolanaID builds the composite id for a Solana asset.
func SolanaID(assetID string) string {
	return fmt.Sprintf("solana:%s", assetID)
}

// String re-encodes the parsed id; it is the inverse of ParseID.
func (p ParsedID) String() string {
	if p.Chain == entity.ChainFamilySolana {
		return SolanaID(p.TokenID)
	}
	return EVMID(p.EVMChain, p.ContractAddress, p.TokenID)
}

// ParseID decodes a composite id. The second return value is false when the
// prefix or segment count matches neither recognized scheme; malformed ids
// never panic or error.
func ParseID(id string) (ParsedID, bool) {
	parts := strings.Split(id, ":")
	switch parts[0] {
	case "evm":
		if len(parts) != 4 {
			return ParsedID{}, false
		}
		return ParsedID{
			Chain:           entity.ChainFamilyEVM,
			EVMChain:        entity.EVMChain(parts[1]),
			ContractAddress: strings.ToLower(parts[2]),
			TokenID:         parts[3],
		}, true
	case "solana":
		if len(parts) != 2 {
			return ParsedID{}, false
		}
		return ParsedID{
			Chain:   entity.ChainFamilySolana,
			TokenID: parts[1],
		}, true
	}
	return ParsedID{}, false
}
