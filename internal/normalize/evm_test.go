package normalize

import (
	"testing"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAlchemy(t *testing.T) {
	fetchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("falls back to metadata image when media is empty", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xABC"},
			TokenID:  "7",
			Media:    []provider.AlchemyMedia{},
			Metadata: provider.AlchemyTokenMetadata{Image: "ipfs://abc"},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)

		assert.Equal(t, "evm:ethereum:0xabc:7", nft.ID)
		assert.Equal(t, "https://ipfs.io/ipfs/abc", nft.ImageURL)
		assert.Equal(t, "0xabc", nft.ContractAddress)
		assert.Equal(t, "w1", nft.WalletID)
		assert.Equal(t, domain.ChainFamilyEVM, nft.Chain)
		assert.Equal(t, fetchedAt, nft.LastFetchedAt)
	})

	t.Run("prefers gateway media over raw and metadata image", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "1",
			Media: []provider.AlchemyMedia{
				{Raw: "ipfs://raw-only"},
				{Gateway: "https://cdn.example/img.png", Thumbnail: "https://cdn.example/thumb.png"},
			},
			Metadata: provider.AlchemyTokenMetadata{Image: "ipfs://fallback"},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainBase, fetchedAt)

		assert.Equal(t, "https://cdn.example/img.png", nft.ImageURL)
		assert.Equal(t, "https://cdn.example/thumb.png", nft.ThumbnailURL)
	})

	t.Run("raw media wins over metadata image", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "1",
			Media:    []provider.AlchemyMedia{{Raw: "ar://raw-entry"}},
			Metadata: provider.AlchemyTokenMetadata{Image: "ipfs://fallback"},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainBase, fetchedAt)
		assert.Equal(t, "https://arweave.net/raw-entry", nft.ImageURL)
	})

	t.Run("name fallback chain", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "42",
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)
		assert.Equal(t, "#42", nft.Name)

		rec.Metadata.Name = "Meta Name"
		nft = FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)
		assert.Equal(t, "Meta Name", nft.Name)

		rec.Title = "Title Wins"
		nft = FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)
		assert.Equal(t, "Title Wins", nft.Name)
	})

	t.Run("floor price carries the network's native currency", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "1",
			ContractMetadata: provider.AlchemyContractMetadata{
				Name: "Cool Cats",
				OpenSea: &provider.AlchemyOpenSeaMetadata{
					FloorPrice: 1.25,
				},
			},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainPolygon, fetchedAt)
		require.NotNil(t, nft.Collection.FloorPrice)
		assert.Equal(t, 1.25, nft.Collection.FloorPrice.Amount)
		assert.Equal(t, "MATIC", nft.Collection.FloorPrice.Currency)
		assert.Equal(t, "Cool Cats", nft.Collection.Name)
	})

	t.Run("zero floor price is treated as absent", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "1",
			ContractMetadata: provider.AlchemyContractMetadata{
				OpenSea: &provider.AlchemyOpenSeaMetadata{CollectionName: "Free Mints"},
			},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)
		assert.Nil(t, nft.Collection.FloorPrice)
		assert.Equal(t, "Free Mints", nft.Collection.Name)
	})

	t.Run("attributes are carried over", func(t *testing.T) {
		rec := provider.AlchemyNFT{
			Contract: provider.AlchemyContract{Address: "0xabc"},
			TokenID:  "1",
			Metadata: provider.AlchemyTokenMetadata{
				Attributes: []provider.AlchemyAttribute{
					{TraitType: "Background", Value: "Blue"},
					{TraitType: "Level", Value: float64(3)},
				},
			},
		}

		nft := FromAlchemy(rec, "w1", domain.EVMChainEthereum, fetchedAt)
		require.Len(t, nft.Metadata.Attributes, 2)
		assert.Equal(t, "Background", nft.Metadata.Attributes[0].TraitType)
		assert.Equal(t, "Blue", nft.Metadata.Attributes[0].Value)
		assert.False(t, nft.Metadata.IsFarcasterMint)
	})
}
