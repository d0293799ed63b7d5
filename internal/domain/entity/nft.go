package entity

import "time"

// Attribute is a single trait/value pair from an asset's metadata.
type Attribute struct {
	TraitType string `json:"traitType"`
	Value     any    `json:"value"`
}

// FloorPrice is the lowest listed price for a collection in its native currency.
type FloorPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CollectionInfo is the collection summary embedded in each NFT record.
type CollectionInfo struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	FloorPrice  *FloorPrice `json:"floorPrice,omitempty"`
}

// NFTMetadata carries the enrichment block attached to each unified record.
type NFTMetadata struct {
	Attributes       []Attribute `json:"attributes,omitempty"`
	IsFarcasterMint  bool        `json:"isFarcasterMint"`
	FarcasterChannel string      `json:"farcasterChannel,omitempty"`
	MintedAt         *time.Time  `json:"mintedAt,omitempty"`
	Creator          string      `json:"creator,omitempty"`
	RoyaltyPct       float64     `json:"royaltyPct,omitempty"`
}

// NFT is the unified asset record both providers normalize into.
// ID is the composite identity (chain family, optional EVM network,
// contract address, token id) and is unique within the store.
type NFT struct {
	ID              string         `json:"id"`
	WalletID        string         `json:"walletId"`
	Chain           ChainFamily    `json:"chain"`
	EVMChain        EVMChain       `json:"evmChain,omitempty"`
	ContractAddress string         `json:"contractAddress"`
	TokenID         string         `json:"tokenId"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	ImageURL        string         `json:"imageUrl"`
	ThumbnailURL    string         `json:"thumbnailUrl,omitempty"`
	ExternalURL     string         `json:"externalUrl,omitempty"`
	Collection      CollectionInfo `json:"collection"`
	Metadata        NFTMetadata    `json:"metadata"`
	LastFetchedAt   time.Time      `json:"lastFetchedAt"`
}
