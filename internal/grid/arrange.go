// Package grid turns a flat NFT collection into the ordered, optionally
// sectioned sequence the display layer renders.
package grid

import (
	"sort"

	"nft_tracker/internal/domain/entity"
)

// EntryKind tags a DisplayEntry so the renderer dispatches explicitly
// instead of sniffing field presence.
type EntryKind int

const (
	KindHeader EntryKind = iota
	KindItem
)

// DisplayEntry is one element of the arranged sequence: either a section
// header or an item. Exactly the fields for its kind are set.
type DisplayEntry struct {
	Kind   EntryKind
	Title  string     // KindHeader only
	Count  int        // KindHeader only
	NFT    entity.NFT // KindItem only
}

// Section labels for the farcaster sort mode.
const (
	farcasterSectionTitle = "Farcaster Mints"
	otherSectionTitle     = "Other NFTs"
)

// Arrange produces a new sequence for the given sort mode; the input slice
// is never mutated. Unknown modes fall back to recent, the default.
func Arrange(nfts []entity.NFT, mode entity.SortMode) []DisplayEntry {
	switch mode {
	case entity.SortModeCollection:
		return arrangeByCollection(nfts)
	case entity.SortModeFarcaster:
		return arrangeByFarcaster(nfts)
	case entity.SortModeValue:
		return arrangeByValue(nfts)
	default:
		return arrangeByRecent(nfts)
	}
}

// arrangeByCollection groups by contract address, orders groups
// alphabetically by collection name, and emits one header per group
// followed by its members in original relative order.
func arrangeByCollection(nfts []entity.NFT) []DisplayEntry {
	type group struct {
		name    string
		members []entity.NFT
	}
	byContract := make(map[string]*group)
	var order []string
	for _, nft := range nfts {
		key := entity.CollectionKey(nft.Chain, nft.EVMChain, nft.Collection.Address)
		g, ok := byContract[key]
		if !ok {
			g = &group{name: nft.Collection.Name}
			byContract[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, nft)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byContract[order[i]].name < byContract[order[j]].name
	})

	entries := make([]DisplayEntry, 0, len(nfts)+len(order))
	for _, key := range order {
		g := byContract[key]
		entries = append(entries, DisplayEntry{Kind: KindHeader, Title: g.name, Count: len(g.members)})
		for _, nft := range g.members {
			entries = append(entries, DisplayEntry{Kind: KindItem, NFT: nft})
		}
	}
	return entries
}

// arrangeByFarcaster partitions into Farcaster-flagged vs not, emitting each
// section only when non-empty.
func arrangeByFarcaster(nfts []entity.NFT) []DisplayEntry {
	var mints, others []entity.NFT
	for _, nft := range nfts {
		if nft.Metadata.IsFarcasterMint {
			mints = append(mints, nft)
		} else {
			others = append(others, nft)
		}
	}

	entries := make([]DisplayEntry, 0, len(nfts)+2)
	if len(mints) > 0 {
		entries = append(entries, DisplayEntry{Kind: KindHeader, Title: farcasterSectionTitle, Count: len(mints)})
		for _, nft := range mints {
			entries = append(entries, DisplayEntry{Kind: KindItem, NFT: nft})
		}
	}
	if len(others) > 0 {
		entries = append(entries, DisplayEntry{Kind: KindHeader, Title: otherSectionTitle, Count: len(others)})
		for _, nft := range others {
			entries = append(entries, DisplayEntry{Kind: KindItem, NFT: nft})
		}
	}
	return entries
}

// arrangeByValue is a flat list sorted by floor price descending; a missing
// floor price sorts as zero.
func arrangeByValue(nfts []entity.NFT) []DisplayEntry {
	sorted := append([]entity.NFT(nil), nfts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return floorAmount(sorted[i]) > floorAmount(sorted[j])
	})
	return flatEntries(sorted)
}

// arrangeByRecent is a flat list sorted by last-fetched timestamp descending.
func arrangeByRecent(nfts []entity.NFT) []DisplayEntry {
	sorted := append([]entity.NFT(nil), nfts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastFetchedAt.After(sorted[j].LastFetchedAt)
	})
	return flatEntries(sorted)
}

func flatEntries(nfts []entity.NFT) []DisplayEntry {
	entries := make([]DisplayEntry, 0, len(nfts))
	for _, nft := range nfts {
		entries = append(entries, DisplayEntry{Kind: KindItem, NFT: nft})
	}
	return entries
}

func floorAmount(nft entity.NFT) float64 {
	if nft.Collection.FloorPrice == nil {
		return 0
	}
	return nft.Collection.FloorPrice.Amount
}
