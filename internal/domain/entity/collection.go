package entity

import (
	"fmt"
	"strings"
)

// Collection is the derived per-contract aggregate maintained by the store.
// NFTCount always equals the number of stored NFTs referencing the same key.
type Collection struct {
	Key             string      `json:"key"`
	Name            string      `json:"name"`
	Chain           ChainFamily `json:"chain"`
	EVMChain        EVMChain    `json:"evmChain,omitempty"`
	ContractAddress string      `json:"contractAddress"`
	NFTCount        int         `json:"nftCount"`
	FloorPrice      *FloorPrice `json:"floorPrice,omitempty"`
	ImageURL        string      `json:"imageUrl,omitempty"`
	Description     string      `json:"description,omitempty"`
}

// CollectionKey builds the aggregate key for a contract on a given chain.
func CollectionKey(chain ChainFamily, evmChain EVMChain, contractAddress string) string {
	if chain == ChainFamilyEVM {
		return fmt.Sprintf("evm:%s:%s", evmChain, strings.ToLower(contractAddress))
	}
	return fmt.Sprintf("solana:%s", contractAddress)
}
