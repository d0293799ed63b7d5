package normalize

import (
	"fmt"
	"strings"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"
)

// FromAlchemy maps one EVM provider record into the unified NFT record.
// Pure: no I/O, every malformed input still yields a best-effort record.
func FromAlchemy(rec provider.AlchemyNFT, walletID string, chain domain.EVMChain, fetchedAt time.Time) domain.NFT {
	contract := strings.ToLower(rec.Contract.Address)

	name := rec.Title
	if name == "" {
		name = rec.Metadata.Name
	}
	if name == "" {
		name = fmt.Sprintf("#%s", rec.TokenID)
	}

	image, thumbnail := pickEVMImage(rec)

	collection := domain.CollectionInfo{
		Name:    rec.ContractMetadata.Name,
		Address: contract,
	}
	if os := rec.ContractMetadata.OpenSea; os != nil {
		if collection.Name == "" {
			collection.Name = os.CollectionName
		}
		collection.Description = os.Description
		collection.ImageURL = NormalizeImageURL(os.ImageURL)
		if os.FloorPrice > 0 {
			collection.FloorPrice = &domain.FloorPrice{
				Amount:   os.FloorPrice,
				Currency: chain.NativeCurrency(),
			}
		}
	}

	attrs := make([]domain.Attribute, 0, len(rec.Metadata.Attributes))
	for _, a := range rec.Metadata.Attributes {
		attrs = append(attrs, domain.Attribute{TraitType: a.TraitType, Value: a.Value})
	}

	return domain.NFT{
		ID:              EVMID(chain, contract, rec.TokenID),
		WalletID:        walletID,
		Chain:           domain.ChainFamilyEVM,
		EVMChain:        chain,
		ContractAddress: contract,
		TokenID:         rec.TokenID,
		Name:            name,
		Description:     rec.Description,
		ImageURL:        image,
		ThumbnailURL:    thumbnail,
		ExternalURL:     rec.Metadata.ExternalURL,
		Collection:      collection,
		Metadata: domain.NFTMetadata{
			Attributes: attrs,
			// Farcaster detection is a separate enrichment pass.
			IsFarcasterMint: false,
		},
		LastFetchedAt: fetchedAt,
	}
}

// pickEVMImage selects the primary image from the ordered preference list
// (gateway URL, raw URL, embedded metadata image, else empty) and the
// thumbnail from the first media entry that carries one.
func pickEVMImage(rec provider.AlchemyNFT) (image, thumbnail string) {
	for _, m := range rec.Media {
		if image == "" && m.Gateway != "" {
			image = m.Gateway
		}
		if thumbnail == "" && m.Thumbnail != "" {
			thumbnail = m.Thumbnail
		}
	}
	if image == "" {
		for _, m := range rec.Media {
			if m.Raw != "" {
				image = m.Raw
				break
			}
		}
	}
	if image == "" {
		image = rec.Metadata.Image
	}
	return NormalizeImageURL(image), NormalizeImageURL(thumbnail)
}
