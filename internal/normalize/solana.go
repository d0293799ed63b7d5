package normalize

import (
	"fmt"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"
)

// FromHelius maps one DAS asset into the unified NFT record. The collection
// address comes from the first grouping entry keyed "collection", falling
// back to the asset's own id when no grouping is present.
func FromHelius(asset provider.HeliusAsset, walletID string, fetchedAt time.Time) domain.NFT {
	name := asset.Content.Metadata.Name
	if name == "" {
		name = fmt.Sprintf("#%s", asset.ID)
	}

	collectionAddress := asset.ID
	for _, g := range asset.Grouping {
		if g.GroupKey == "collection" {
			collectionAddress = g.GroupValue
			break
		}
	}

	image := asset.Content.Links.Image
	thumbnail := ""
	for _, f := range asset.Content.Files {
		if image == "" && f.URI != "" {
			image = f.URI
		}
		if thumbnail == "" && f.CdnURI != "" {
			thumbnail = f.CdnURI
		}
	}

	attrs := make([]domain.Attribute, 0, len(asset.Content.Metadata.Attributes))
	for _, a := range asset.Content.Metadata.Attributes {
		attrs = append(attrs, domain.Attribute{TraitType: a.TraitType, Value: a.Value})
	}

	meta := domain.NFTMetadata{Attributes: attrs}
	if asset.Royalty != nil {
		meta.RoyaltyPct = asset.Royalty.Percent
	}
	if len(asset.Creators) > 0 {
		meta.Creator = asset.Creators[0].Address
	}

	return domain.NFT{
		ID:              SolanaID(asset.ID),
		WalletID:        walletID,
		Chain:           domain.ChainFamilySolana,
		ContractAddress: collectionAddress,
		TokenID:         asset.ID,
		Name:            name,
		Description:     asset.Content.Metadata.Description,
		ImageURL:        NormalizeImageURL(image),
		ThumbnailURL:    NormalizeImageURL(thumbnail),
		ExternalURL:     asset.Content.Links.ExternalURL,
		Collection: domain.CollectionInfo{
			Name:    collectionName(asset),
			Address: collectionAddress,
		},
		Metadata:      meta,
		LastFetchedAt: fetchedAt,
	}
}

// collectionName prefers the on-chain symbol as the collection label; DAS
// asset listings don't resolve the collection's own metadata.
func collectionName(asset provider.HeliusAsset) string {
	if asset.Content.Metadata.Symbol != "" {
		return asset.Content.Metadata.Symbol
	}
	return asset.Content.Metadata.Name
}
