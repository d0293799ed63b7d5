package normalize

import (
	"testing"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHelius(t *testing.T) {
	fetchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("maps a full asset", func(t *testing.T) {
		asset := provider.HeliusAsset{
			ID: "asset-1",
			Content: provider.HeliusContent{
				Metadata: provider.HeliusMetadata{
					Name:        "Mad Lad #7",
					Symbol:      "MADLADS",
					Description: "A mad lad.",
					Attributes: []provider.HeliusAttribute{
						{TraitType: "Hat", Value: "Cap"},
					},
				},
				Files: []provider.HeliusFile{
					{URI: "ipfs://file-image", CdnURI: "https://cdn.example/small.png"},
				},
				Links: provider.HeliusLinks{
					Image:       "https://img.example/full.png",
					ExternalURL: "https://madlads.com",
				},
			},
			Grouping: []provider.HeliusGrouping{
				{GroupKey: "collection", GroupValue: "coll-address"},
			},
			Royalty:  &provider.HeliusRoyalty{Percent: 0.05},
			Creators: []provider.HeliusCreator{{Address: "creator-1"}, {Address: "creator-2"}},
		}

		nft := FromHelius(asset, "w1", fetchedAt)

		assert.Equal(t, "solana:asset-1", nft.ID)
		assert.Equal(t, domain.ChainFamilySolana, nft.Chain)
		assert.Equal(t, "coll-address", nft.ContractAddress)
		assert.Equal(t, "coll-address", nft.Collection.Address)
		assert.Equal(t, "MADLADS", nft.Collection.Name)
		assert.Equal(t, "Mad Lad #7", nft.Name)
		assert.Equal(t, "https://img.example/full.png", nft.ImageURL)
		assert.Equal(t, "https://cdn.example/small.png", nft.ThumbnailURL)
		assert.Equal(t, "https://madlads.com", nft.ExternalURL)
		assert.Equal(t, 0.05, nft.Metadata.RoyaltyPct)
		assert.Equal(t, "creator-1", nft.Metadata.Creator)
		require.Len(t, nft.Metadata.Attributes, 1)
		assert.Equal(t, "Hat", nft.Metadata.Attributes[0].TraitType)
	})

	t.Run("asset id is the collection fallback without grouping", func(t *testing.T) {
		asset := provider.HeliusAsset{ID: "lonely-asset"}
		nft := FromHelius(asset, "w1", fetchedAt)
		assert.Equal(t, "lonely-asset", nft.Collection.Address)
		assert.Equal(t, "#lonely-asset", nft.Name)
	})

	t.Run("first file uri used when links image is empty", func(t *testing.T) {
		asset := provider.HeliusAsset{
			ID: "a",
			Content: provider.HeliusContent{
				Files: []provider.HeliusFile{
					{URI: "ipfs://from-file"},
					{URI: "ipfs://second"},
				},
			},
		}
		nft := FromHelius(asset, "w1", fetchedAt)
		assert.Equal(t, "https://ipfs.io/ipfs/from-file", nft.ImageURL)
	})

	t.Run("collection name falls back to metadata name without symbol", func(t *testing.T) {
		asset := provider.HeliusAsset{
			ID: "a",
			Content: provider.HeliusContent{
				Metadata: provider.HeliusMetadata{Name: "Named Only"},
			},
		}
		nft := FromHelius(asset, "w1", fetchedAt)
		assert.Equal(t, "Named Only", nft.Collection.Name)
	})
}
