package grid

import (
	"testing"
	"time"

	"nft_tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evmNFT(id, contract, collection string, floor float64) entity.NFT {
	nft := entity.NFT{
		ID:              id,
		Chain:           entity.ChainFamilyEVM,
		EVMChain:        entity.EVMChainEthereum,
		ContractAddress: contract,
		Collection: entity.CollectionInfo{
			Name:    collection,
			Address: contract,
		},
	}
	if floor > 0 {
		nft.Collection.FloorPrice = &entity.FloorPrice{Amount: floor, Currency: "ETH"}
	}
	return nft
}

func TestArrangeByCollection(t *testing.T) {
	nfts := []entity.NFT{
		evmNFT("z1", "0xzzz", "Zebras", 0),
		evmNFT("a1", "0xaaa", "Apes", 0),
		evmNFT("z2", "0xzzz", "Zebras", 0),
		evmNFT("a2", "0xaaa", "Apes", 0),
	}

	entries := Arrange(nfts, entity.SortModeCollection)

	t.Run("headers ordered alphabetically by collection name", func(t *testing.T) {
		var headers []DisplayEntry
		for _, e := range entries {
			if e.Kind == KindHeader {
				headers = append(headers, e)
			}
		}
		require.Len(t, headers, 2)
		assert.Equal(t, "Apes", headers[0].Title)
		assert.Equal(t, "Zebras", headers[1].Title)
	})

	t.Run("header counts sum to the item total", func(t *testing.T) {
		sum := 0
		items := 0
		for _, e := range entries {
			switch e.Kind {
			case KindHeader:
				sum += e.Count
			case KindItem:
				items++
			}
		}
		assert.Equal(t, len(nfts), sum)
		assert.Equal(t, len(nfts), items)
	})

	t.Run("members keep original relative order under their header", func(t *testing.T) {
		require.Len(t, entries, 6)
		assert.Equal(t, KindHeader, entries[0].Kind)
		assert.Equal(t, "a1", entries[1].NFT.ID)
		assert.Equal(t, "a2", entries[2].NFT.ID)
		assert.Equal(t, KindHeader, entries[3].Kind)
		assert.Equal(t, "z1", entries[4].NFT.ID)
		assert.Equal(t, "z2", entries[5].NFT.ID)
	})
}

func TestArrangeByFarcaster(t *testing.T) {
	mintNFT := entity.NFT{ID: "m1", Metadata: entity.NFTMetadata{IsFarcasterMint: true}}
	plain := entity.NFT{ID: "p1"}

	t.Run("mints section comes first", func(t *testing.T) {
		entries := Arrange([]entity.NFT{plain, mintNFT}, entity.SortModeFarcaster)
		require.Len(t, entries, 4)
		assert.Equal(t, "Farcaster Mints", entries[0].Title)
		assert.Equal(t, 1, entries[0].Count)
		assert.Equal(t, "m1", entries[1].NFT.ID)
		assert.Equal(t, "Other NFTs", entries[2].Title)
		assert.Equal(t, "p1", entries[3].NFT.ID)
	})

	t.Run("empty sections are omitted", func(t *testing.T) {
		entries := Arrange([]entity.NFT{plain}, entity.SortModeFarcaster)
		require.Len(t, entries, 2)
		assert.Equal(t, "Other NFTs", entries[0].Title)
	})
}

func TestArrangeByValue(t *testing.T) {
	nfts := []entity.NFT{
		evmNFT("cheap", "0x1", "A", 0.1),
		evmNFT("none", "0x2", "B", 0),
		evmNFT("rich", "0x3", "C", 5),
	}

	entries := Arrange(nfts, entity.SortModeValue)
	require.Len(t, entries, 3)

	t.Run("floor prices are non-increasing with missing treated as zero", func(t *testing.T) {
		prev := floorAmount(entries[0].NFT)
		for _, e := range entries[1:] {
			cur := floorAmount(e.NFT)
			assert.LessOrEqual(t, cur, prev)
			prev = cur
		}
		assert.Equal(t, "rich", entries[0].NFT.ID)
		assert.Equal(t, "none", entries[2].NFT.ID)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		assert.Equal(t, "cheap", nfts[0].ID)
	})
}

func TestArrangeByRecent(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	old := entity.NFT{ID: "old", LastFetchedAt: base}
	fresh := entity.NFT{ID: "fresh", LastFetchedAt: base.Add(time.Hour)}

	entries := Arrange([]entity.NFT{old, fresh}, entity.SortModeRecent)
	require.Len(t, entries, 2)
	assert.Equal(t, "fresh", entries[0].NFT.ID)
	assert.Equal(t, "old", entries[1].NFT.ID)
}

func TestArrangeUnknownModeFallsBackToRecent(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	nfts := []entity.NFT{
		{ID: "old", LastFetchedAt: base},
		{ID: "fresh", LastFetchedAt: base.Add(time.Hour)},
	}
	entries := Arrange(nfts, entity.SortMode("bogus"))
	require.Len(t, entries, 2)
	assert.Equal(t, "fresh", entries[0].NFT.ID)
}
