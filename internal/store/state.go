// Package store owns all mutable application state. Mutations are expressed
// as pure transition functions (old state + command -> new state); the Store
// type wraps them behind a lock and handles the persisted subset.
package store

import (
	"maps"
	"sort"
	"time"

	"nft_tracker/internal/domain/entity"
)

// State is the whole application state. Values are treated as immutable:
// every transition returns a new State with the affected maps re-cloned, so
// snapshots handed to readers stay stable.
type State struct {
	Wallets        map[string]entity.Wallet
	ActiveWalletID string
	NFTs           map[string]entity.NFT
	Collections    map[string]entity.Collection
	Groups         map[string]entity.CustomGroup
	Settings       entity.Settings
	ViewMode       entity.ViewMode
	SortMode       entity.SortMode
}

// NewState returns the empty initial state with default settings.
func NewState() State {
	settings := entity.DefaultSettings()
	return State{
		Wallets:     map[string]entity.Wallet{},
		NFTs:        map[string]entity.NFT{},
		Collections: map[string]entity.Collection{},
		Groups:      map[string]entity.CustomGroup{},
		Settings:    settings,
		ViewMode:    settings.DefaultViewMode,
		SortMode:    settings.DefaultSortMode,
	}
}

// WalletPatch is the mutable subset of a wallet.
type WalletPatch struct {
	Label *string
	Color *string
}

// NFTPatch is the partial-update command for a stored NFT.
type NFTPatch struct {
	Name             *string
	Description      *string
	ImageURL         *string
	ThumbnailURL     *string
	ExternalURL      *string
	IsFarcasterMint  *bool
	FarcasterChannel *string
}

// AddWallet inserts a wallet; the first wallet added becomes active.
func AddWallet(s State, w entity.Wallet) State {
	s.Wallets = maps.Clone(s.Wallets)
	s.Wallets[w.ID] = w
	if s.ActiveWalletID == "" {
		s.ActiveWalletID = w.ID
	}
	return s
}

// UpdateWallet applies the patch to an existing wallet; absent ids are a no-op.
func UpdateWallet(s State, id string, patch WalletPatch) State {
	w, ok := s.Wallets[id]
	if !ok {
		return s
	}
	if patch.Label != nil {
		w.Label = *patch.Label
	}
	if patch.Color != nil {
		w.Color = *patch.Color
	}
	s.Wallets = maps.Clone(s.Wallets)
	s.Wallets[id] = w
	return s
}

// RemoveWallet deletes the wallet and cascades to its NFTs. When the removed
// wallet was active, the first remaining wallet (oldest by creation time)
// becomes active, or the active id is unset.
func RemoveWallet(s State, id string) State {
	if _, ok := s.Wallets[id]; !ok {
		return s
	}
	s.Wallets = maps.Clone(s.Wallets)
	delete(s.Wallets, id)
	s = RemoveByWallet(s, id)
	if s.ActiveWalletID == id {
		s.ActiveWalletID = firstWalletID(s.Wallets)
	}
	return s
}

// SetActiveWallet marks a wallet as active; unknown ids are a no-op.
func SetActiveWallet(s State, id string) State {
	if _, ok := s.Wallets[id]; !ok {
		return s
	}
	s.ActiveWalletID = id
	return s
}

// SetNFTs replaces, as one logical step, every stored NFT belonging to the
// wallet with the supplied list, then recomputes the collection aggregate.
func SetNFTs(s State, walletID string, nfts []entity.NFT) State {
	next := maps.Clone(s.NFTs)
	for id, nft := range next {
		if nft.WalletID == walletID {
			delete(next, id)
		}
	}
	for _, nft := range nfts {
		nft.WalletID = walletID
		next[nft.ID] = nft
	}
	s.NFTs = next
	s.Collections = recomputeCollections(next)
	return s
}

// UpdateNFT merges the patch into an existing record; absent ids are a no-op.
func UpdateNFT(s State, id string, patch NFTPatch) State {
	nft, ok := s.NFTs[id]
	if !ok {
		return s
	}
	if patch.Name != nil {
		nft.Name = *patch.Name
	}
	if patch.Description != nil {
		nft.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		nft.ImageURL = *patch.ImageURL
	}
	if patch.ThumbnailURL != nil {
		nft.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.ExternalURL != nil {
		nft.ExternalURL = *patch.ExternalURL
	}
	if patch.IsFarcasterMint != nil {
		nft.Metadata.IsFarcasterMint = *patch.IsFarcasterMint
	}
	if patch.FarcasterChannel != nil {
		nft.Metadata.FarcasterChannel = *patch.FarcasterChannel
	}
	s.NFTs = maps.Clone(s.NFTs)
	s.NFTs[id] = nft
	return s
}

// RemoveByWallet deletes every NFT owned by the wallet and recomputes the
// collection aggregate.
func RemoveByWallet(s State, walletID string) State {
	next := maps.Clone(s.NFTs)
	for id, nft := range next {
		if nft.WalletID == walletID {
			delete(next, id)
		}
	}
	s.NFTs = next
	s.Collections = recomputeCollections(next)
	return s
}

// CreateGroup inserts a user-defined group.
func CreateGroup(s State, g entity.CustomGroup) State {
	s.Groups = maps.Clone(s.Groups)
	s.Groups[g.ID] = g
	return s
}

// UpdateGroup replaces a group's name/description/color; absent ids are a no-op.
func UpdateGroup(s State, id, name, description, color string, now time.Time) State {
	g, ok := s.Groups[id]
	if !ok {
		return s
	}
	g.Name = name
	g.Description = description
	g.Color = color
	g.UpdatedAt = now
	s.Groups = maps.Clone(s.Groups)
	s.Groups[id] = g
	return s
}

// DeleteGroup removes a group; absent ids are a no-op.
func DeleteGroup(s State, id string) State {
	if _, ok := s.Groups[id]; !ok {
		return s
	}
	s.Groups = maps.Clone(s.Groups)
	delete(s.Groups, id)
	return s
}

// AddToGroup unions the given NFT ids into the group's membership.
// Duplicates are suppressed; referenced ids are not validated against the
// store. The group's updated timestamp always refreshes.
func AddToGroup(s State, groupID string, nftIDs []string, now time.Time) State {
	g, ok := s.Groups[groupID]
	if !ok {
		return s
	}
	members := append([]string(nil), g.NFTIDs...)
	for _, id := range nftIDs {
		if !contains(members, id) {
			members = append(members, id)
		}
	}
	g.NFTIDs = members
	g.UpdatedAt = now
	s.Groups = maps.Clone(s.Groups)
	s.Groups[groupID] = g
	return s
}

// RemoveFromGroup takes the set difference of the group's membership and the
// given ids. The group's updated timestamp always refreshes.
func RemoveFromGroup(s State, groupID string, nftIDs []string, now time.Time) State {
	g, ok := s.Groups[groupID]
	if !ok {
		return s
	}
	drop := make(map[string]struct{}, len(nftIDs))
	for _, id := range nftIDs {
		drop[id] = struct{}{}
	}
	members := make([]string, 0, len(g.NFTIDs))
	for _, id := range g.NFTIDs {
		if _, gone := drop[id]; !gone {
			members = append(members, id)
		}
	}
	g.NFTIDs = members
	g.UpdatedAt = now
	s.Groups = maps.Clone(s.Groups)
	s.Groups[groupID] = g
	return s
}

// UpdateSettings replaces the settings singleton.
func UpdateSettings(s State, settings entity.Settings) State {
	s.Settings = settings
	return s
}

// SetViewMode updates the current view mode.
func SetViewMode(s State, mode entity.ViewMode) State {
	s.ViewMode = mode
	return s
}

// SetSortMode updates the current sort mode; invalid modes are a no-op.
func SetSortMode(s State, mode entity.SortMode) State {
	if !mode.IsValid() {
		return s
	}
	s.SortMode = mode
	return s
}

// recomputeCollections rebuilds the per-contract aggregate from scratch, so
// counts always match the stored records regardless of mutation history.
func recomputeCollections(nfts map[string]entity.NFT) map[string]entity.Collection {
	collections := make(map[string]entity.Collection)
	for _, nft := range nfts {
		key := entity.CollectionKey(nft.Chain, nft.EVMChain, nft.Collection.Address)
		col, ok := collections[key]
		if !ok {
			col = entity.Collection{
				Key:             key,
				Name:            nft.Collection.Name,
				Chain:           nft.Chain,
				EVMChain:        nft.EVMChain,
				ContractAddress: nft.Collection.Address,
				Description:     nft.Collection.Description,
				ImageURL:        nft.Collection.ImageURL,
			}
		}
		if col.Name == "" {
			col.Name = nft.Collection.Name
		}
		if nft.Collection.FloorPrice != nil {
			fp := *nft.Collection.FloorPrice
			col.FloorPrice = &fp
		}
		col.NFTCount++
		collections[key] = col
	}
	return collections
}

func firstWalletID(wallets map[string]entity.Wallet) string {
	ids := make([]string, 0, len(wallets))
	for id := range wallets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		wi, wj := wallets[ids[i]], wallets[ids[j]]
		if !wi.CreatedAt.Equal(wj.CreatedAt) {
			return wi.CreatedAt.Before(wj.CreatedAt)
		}
		return ids[i] < ids[j]
	})
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
