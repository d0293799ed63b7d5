package entity

// Wire types for the EVM NFT indexing provider (Alchemy NFT API shape).
// Field sets are trimmed to what the normalizer consumes.

// AlchemyOwnedNFTsResponse is one page of the owned-NFTs listing.
type AlchemyOwnedNFTsResponse struct {
	OwnedNFTs  []AlchemyNFT `json:"ownedNfts"`
	PageKey    string       `json:"pageKey,omitempty"`
	TotalCount int          `json:"totalCount"`
	Error      string       `json:"error,omitempty"`
}

// AlchemyNFT is a single owned asset record.
type AlchemyNFT struct {
	Contract         AlchemyContract         `json:"contract"`
	TokenID          string                  `json:"tokenId"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Media            []AlchemyMedia          `json:"media"`
	Metadata         AlchemyTokenMetadata    `json:"metadata"`
	ContractMetadata AlchemyContractMetadata `json:"contractMetadata"`
	TimeLastUpdated  string                  `json:"timeLastUpdated,omitempty"`
}

// AlchemyContract identifies the asset's contract.
type AlchemyContract struct {
	Address string `json:"address"`
}

// AlchemyMedia is one media variant for an asset.
type AlchemyMedia struct {
	Gateway   string `json:"gateway,omitempty"`
	Raw       string `json:"raw,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Format    string `json:"format,omitempty"`
}

// AlchemyTokenMetadata is the token-level metadata JSON the provider mirrors.
type AlchemyTokenMetadata struct {
	Name        string             `json:"name,omitempty"`
	Image       string             `json:"image,omitempty"`
	ExternalURL string             `json:"external_url,omitempty"`
	Attributes  []AlchemyAttribute `json:"attributes,omitempty"`
}

// AlchemyAttribute is a trait/value pair in token metadata.
type AlchemyAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// AlchemyContractMetadata is the collection-level block.
type AlchemyContractMetadata struct {
	Name    string                  `json:"name,omitempty"`
	OpenSea *AlchemyOpenSeaMetadata `json:"openSea,omitempty"`
}

// AlchemyOpenSeaMetadata carries marketplace data including the floor price.
type AlchemyOpenSeaMetadata struct {
	CollectionName string  `json:"collectionName,omitempty"`
	FloorPrice     float64 `json:"floorPrice,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Description    string  `json:"description,omitempty"`
	ExternalURL    string  `json:"externalUrl,omitempty"`
}
