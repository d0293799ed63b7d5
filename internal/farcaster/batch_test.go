package farcaster

import (
	"testing"

	"nft_tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mint(id, channel string) entity.NFT {
	return entity.NFT{
		ID: id,
		Metadata: entity.NFTMetadata{
			IsFarcasterMint:  true,
			FarcasterChannel: channel,
		},
	}
}

func TestEnrichAll(t *testing.T) {
	input := []entity.NFT{
		{ID: "a", Description: "farcaster mint from /art"},
		{ID: "b", Description: "just a token"},
	}
	enriched := EnrichAll(input)
	require.Len(t, enriched, 2)
	assert.True(t, enriched[0].Metadata.IsFarcasterMint)
	assert.Equal(t, "art", enriched[0].Metadata.FarcasterChannel)
	assert.False(t, enriched[1].Metadata.IsFarcasterMint)

	// Input slice untouched.
	assert.False(t, input[0].Metadata.IsFarcasterMint)
}

func TestGroupByChannel(t *testing.T) {
	nfts := []entity.NFT{
		mint("a", "art"),
		mint("b", "art"),
		mint("c", ""),
		{ID: "d"}, // not a mint
	}

	groups := GroupByChannel(nfts)
	require.Len(t, groups, 2)
	assert.Len(t, groups["art"], 2)
	require.Len(t, groups[UnknownChannelLabel], 1)
	assert.Equal(t, "c", groups[UnknownChannelLabel][0].ID)
}

func TestListChannels(t *testing.T) {
	nfts := []entity.NFT{
		mint("a", "memes"),
		mint("b", "art"),
		mint("c", "art"),
		mint("d", ""),
	}
	assert.Equal(t, []string{"art", "memes"}, ListChannels(nfts))

	assert.Empty(t, ListChannels(nil))
}
