package farcaster

import (
	"sort"

	"nft_tracker/internal/domain/entity"
)

// UnknownChannelLabel buckets Farcaster mints whose channel could not be
// extracted.
const UnknownChannelLabel = "Unknown Channel"

// EnrichAll maps Enrich over every element independently.
func EnrichAll(nfts []entity.NFT) []entity.NFT {
	enriched := make([]entity.NFT, len(nfts))
	for i, nft := range nfts {
		enriched[i] = Enrich(nft)
	}
	return enriched
}

// GroupByChannel partitions the subset already flagged as Farcaster mints by
// channel name. Records with no extracted channel land under
// UnknownChannelLabel; non-mints are ignored.
func GroupByChannel(nfts []entity.NFT) map[string][]entity.NFT {
	groups := make(map[string][]entity.NFT)
	for _, nft := range nfts {
		if !nft.Metadata.IsFarcasterMint {
			continue
		}
		channel := nft.Metadata.FarcasterChannel
		if channel == "" {
			channel = UnknownChannelLabel
		}
		groups[channel] = append(groups[channel], nft)
	}
	return groups
}

// ListChannels returns the distinct non-empty channel names across the given
// records in ascending lexicographic order.
func ListChannels(nfts []entity.NFT) []string {
	seen := make(map[string]struct{})
	for _, nft := range nfts {
		if ch := nft.Metadata.FarcasterChannel; ch != "" {
			seen[ch] = struct{}{}
		}
	}
	channels := make([]string, 0, len(seen))
	for ch := range seen {
		channels = append(channels, ch)
	}
	sort.Strings(channels)
	return channels
}
