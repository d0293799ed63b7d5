package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is the single process-wide state container. It is constructed once
// at startup and passed explicitly to everything that needs it; all
// mutations go through the pure transition functions in state.go under one
// lock. The persisted subset is written through on every mutation that
// touches it.
type Store struct {
	mu        sync.Mutex
	state     State
	persister port.StatePersister
	logger    *zap.Logger
}

// New creates a Store with empty initial state. persister may be nil for
// purely in-memory use (tests, the one-shot runner).
func New(persister port.StatePersister, logger *zap.Logger) *Store {
	return &Store{
		state:     NewState(),
		persister: persister,
		logger:    logger.Named("Store"),
	}
}

// Load restores the persisted subset into the current state. A missing or
// empty blob leaves the defaults in place.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	blob, err := s.persister.LoadBlob(ctx, stateBlobKey)
	if err != nil {
		return fmt.Errorf("failed to load persisted state: %w", err)
	}
	if len(blob) == 0 {
		s.logger.Info("No persisted state found, starting fresh")
		return nil
	}

	var persisted persistedState
	if err := json.Unmarshal(blob, &persisted); err != nil {
		return fmt.Errorf("failed to decode persisted state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := NewState()
	for _, w := range persisted.Wallets {
		next.Wallets[w.ID] = w
	}
	for _, g := range persisted.Groups {
		next.Groups[g.ID] = g
	}
	next.ActiveWalletID = persisted.ActiveWalletID
	next.Settings = persisted.Settings
	if persisted.ViewMode != "" {
		next.ViewMode = persisted.ViewMode
	}
	if persisted.SortMode != "" {
		next.SortMode = persisted.SortMode
	}
	s.state = next
	s.logger.Info("Persisted state restored",
		zap.Int("walletCount", len(persisted.Wallets)),
		zap.Int("groupCount", len(persisted.Groups)))
	return nil
}

// Snapshot returns the current state. Transition functions never mutate
// maps in place, so the returned maps are safe to read without holding the
// store lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Wallets returns all wallets ordered by creation time.
func (s *Store) Wallets() []entity.Wallet {
	state := s.Snapshot()
	wallets := make([]entity.Wallet, 0, len(state.Wallets))
	for _, w := range state.Wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool {
		if !wallets[i].CreatedAt.Equal(wallets[j].CreatedAt) {
			return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
		}
		return wallets[i].ID < wallets[j].ID
	})
	return wallets
}

// Wallet looks up one wallet by id.
func (s *Store) Wallet(id string) (entity.Wallet, bool) {
	state := s.Snapshot()
	w, ok := state.Wallets[id]
	return w, ok
}

// NFTs returns every stored NFT in unspecified order.
func (s *Store) NFTs() []entity.NFT {
	state := s.Snapshot()
	nfts := make([]entity.NFT, 0, len(state.NFTs))
	for _, nft := range state.NFTs {
		nfts = append(nfts, nft)
	}
	return nfts
}

// NFT looks up one record by composite id.
func (s *Store) NFT(id string) (entity.NFT, bool) {
	state := s.Snapshot()
	nft, ok := state.NFTs[id]
	return nft, ok
}

// Collections returns the current aggregates ordered by name.
func (s *Store) Collections() []entity.Collection {
	state := s.Snapshot()
	collections := make([]entity.Collection, 0, len(state.Collections))
	for _, c := range state.Collections {
		collections = append(collections, c)
	}
	sort.Slice(collections, func(i, j int) bool {
		if collections[i].Name != collections[j].Name {
			return collections[i].Name < collections[j].Name
		}
		return collections[i].Key < collections[j].Key
	})
	return collections
}

// Groups returns all custom groups ordered by creation time.
func (s *Store) Groups() []entity.CustomGroup {
	state := s.Snapshot()
	groups := make([]entity.CustomGroup, 0, len(state.Groups))
	for _, g := range state.Groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].CreatedAt.Equal(groups[j].CreatedAt) {
			return groups[i].CreatedAt.Before(groups[j].CreatedAt)
		}
		return groups[i].ID < groups[j].ID
	})
	return groups
}

// Group looks up one group by id.
func (s *Store) Group(id string) (entity.CustomGroup, bool) {
	state := s.Snapshot()
	g, ok := state.Groups[id]
	return g, ok
}

// Settings returns the settings singleton.
func (s *Store) Settings() entity.Settings {
	return s.Snapshot().Settings
}

// AddWallet inserts a wallet and persists.
func (s *Store) AddWallet(ctx context.Context, w entity.Wallet) error {
	return s.apply(ctx, true, func(state State) State {
		return AddWallet(state, w)
	})
}

// UpdateWallet patches a wallet's label/color and persists.
func (s *Store) UpdateWallet(ctx context.Context, id string, patch WalletPatch) error {
	return s.apply(ctx, true, func(state State) State {
		return UpdateWallet(state, id, patch)
	})
}

// RemoveWallet deletes a wallet, cascades to its NFTs, and persists.
func (s *Store) RemoveWallet(ctx context.Context, id string) error {
	return s.apply(ctx, true, func(state State) State {
		return RemoveWallet(state, id)
	})
}

// SetActiveWallet marks a wallet active and persists.
func (s *Store) SetActiveWallet(ctx context.Context, id string) error {
	return s.apply(ctx, true, func(state State) State {
		return SetActiveWallet(state, id)
	})
}

// SetNFTs atomically replaces a wallet's NFTs. Cache-only data; nothing is
// persisted.
func (s *Store) SetNFTs(walletID string, nfts []entity.NFT) {
	_ = s.apply(context.Background(), false, func(state State) State {
		return SetNFTs(state, walletID, nfts)
	})
}

// UpdateNFT merges a partial update into a stored record.
func (s *Store) UpdateNFT(id string, patch NFTPatch) {
	_ = s.apply(context.Background(), false, func(state State) State {
		return UpdateNFT(state, id, patch)
	})
}

// RemoveByWallet deletes every NFT owned by the wallet.
func (s *Store) RemoveByWallet(walletID string) {
	_ = s.apply(context.Background(), false, func(state State) State {
		return RemoveByWallet(state, walletID)
	})
}

// CreateGroup inserts a group and persists.
func (s *Store) CreateGroup(ctx context.Context, g entity.CustomGroup) error {
	return s.apply(ctx, true, func(state State) State {
		return CreateGroup(state, g)
	})
}

// UpdateGroup edits a group and persists.
func (s *Store) UpdateGroup(ctx context.Context, id, name, description, color string) error {
	return s.apply(ctx, true, func(state State) State {
		return UpdateGroup(state, id, name, description, color, time.Now().UTC())
	})
}

// DeleteGroup removes a group and persists.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	return s.apply(ctx, true, func(state State) State {
		return DeleteGroup(state, id)
	})
}

// AddToGroup unions ids into a group's membership and persists.
func (s *Store) AddToGroup(ctx context.Context, groupID string, nftIDs []string) error {
	return s.apply(ctx, true, func(state State) State {
		return AddToGroup(state, groupID, nftIDs, time.Now().UTC())
	})
}

// RemoveFromGroup subtracts ids from a group's membership and persists.
func (s *Store) RemoveFromGroup(ctx context.Context, groupID string, nftIDs []string) error {
	return s.apply(ctx, true, func(state State) State {
		return RemoveFromGroup(state, groupID, nftIDs, time.Now().UTC())
	})
}

// UpdateSettings replaces the settings singleton and persists.
func (s *Store) UpdateSettings(ctx context.Context, settings entity.Settings) error {
	return s.apply(ctx, true, func(state State) State {
		return UpdateSettings(state, settings)
	})
}

// SetViewMode updates the view mode and persists.
func (s *Store) SetViewMode(ctx context.Context, mode entity.ViewMode) error {
	return s.apply(ctx, true, func(state State) State {
		return SetViewMode(state, mode)
	})
}

// SetSortMode updates the sort mode and persists.
func (s *Store) SetSortMode(ctx context.Context, mode entity.SortMode) error {
	return s.apply(ctx, true, func(state State) State {
		return SetSortMode(state, mode)
	})
}

// apply runs one transition under the lock and optionally writes the
// persisted subset through.
func (s *Store) apply(ctx context.Context, persist bool, transition func(State) State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = transition(s.state)
	metrics.StoredNFTs.Set(float64(len(s.state.NFTs)))

	if !persist || s.persister == nil {
		return nil
	}
	blob, err := json.Marshal(persistedSubset(s.state))
	if err != nil {
		return fmt.Errorf("failed to encode persisted state: %w", err)
	}
	if err := s.persister.SaveBlob(ctx, stateBlobKey, blob); err != nil {
		s.logger.Error("Failed to persist state", zap.Error(err))
		return err
	}
	return nil
}

// persistedSubset extracts the named subset of state that survives restarts.
func persistedSubset(state State) persistedState {
	wallets := make([]entity.Wallet, 0, len(state.Wallets))
	for _, w := range state.Wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })

	groups := make([]entity.CustomGroup, 0, len(state.Groups))
	for _, g := range state.Groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

	return persistedState{
		Version:        persistedStateVersion,
		Wallets:        wallets,
		ActiveWalletID: state.ActiveWalletID,
		Groups:         groups,
		Settings:       state.Settings,
		ViewMode:       state.ViewMode,
		SortMode:       state.SortMode,
	}
}
