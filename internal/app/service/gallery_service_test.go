package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/config"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/fetcher"
	"nft_tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	mu      sync.Mutex
	results map[string][]entity.NFT
	errors  map[string]error
	calls   int
}

func (f *fakeFetcher) FetchForWallet(_ context.Context, wallet entity.Wallet) ([]entity.NFT, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.errors[wallet.ID]; ok {
		return nil, err
	}
	return f.results[wallet.ID], nil
}

func (f *fakeFetcher) FetchPage(_ context.Context, wallet entity.Wallet, _ string) (port.Page, error) {
	return port.Page{Items: f.results[wallet.ID]}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testConfig() *config.Config {
	return &config.Config{
		Gallery: config.GalleryConfig{MaxConcurrentRefreshes: 2},
		Cache:   config.CacheConfig{CleanupIntervalMinutes: 10},
	}
}

func newTestService(fake *fakeFetcher, cfg *config.Config) (port.GalleryService, *store.Store) {
	st := store.New(nil, zap.NewNop())
	factory := fetcher.NewFactory(fake, fake)
	return NewGalleryService(st, factory, cfg, zap.NewNop()), st
}

func evmWallet(id string) entity.Wallet {
	return entity.Wallet{
		ID:       id,
		Address:  "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		Chain:    entity.ChainFamilyEVM,
		EVMChain: entity.EVMChainEthereum,
	}
}

func storedNFT(id, walletID, description string) entity.NFT {
	return entity.NFT{
		ID:          id,
		WalletID:    walletID,
		Chain:       entity.ChainFamilyEVM,
		EVMChain:    entity.EVMChainEthereum,
		Description: description,
		Collection:  entity.CollectionInfo{Address: "0xaaa", Name: "Test"},
	}
}

func TestAddWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("generates an id and registers the wallet", func(t *testing.T) {
		svc, st := newTestService(&fakeFetcher{}, testConfig())
		w := evmWallet("")
		added, err := svc.AddWallet(ctx, w)
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.False(t, added.CreatedAt.IsZero())
		assert.True(t, added.Active)

		_, ok := st.Wallet(added.ID)
		assert.True(t, ok)
	})

	t.Run("rejects invalid wallets", func(t *testing.T) {
		svc, st := newTestService(&fakeFetcher{}, testConfig())
		w := evmWallet("")
		w.Address = "not-an-address"
		_, err := svc.AddWallet(ctx, w)
		require.Error(t, err)
		assert.Empty(t, st.Wallets())
	})

	t.Run("refresh-on-add populates the store", func(t *testing.T) {
		cfg := testConfig()
		cfg.Gallery.RefreshOnAdd = true
		fake := &fakeFetcher{results: map[string][]entity.NFT{
			"w1": {storedNFT("n1", "w1", "")},
		}}
		svc, st := newTestService(fake, cfg)

		_, err := svc.AddWallet(ctx, evmWallet("w1"))
		require.NoError(t, err)
		assert.Len(t, st.NFTs(), 1)
	})

	t.Run("wallet stays registered when the initial refresh fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Gallery.RefreshOnAdd = true
		fake := &fakeFetcher{errors: map[string]error{"w1": fmt.Errorf("provider down")}}
		svc, st := newTestService(fake, cfg)

		added, err := svc.AddWallet(ctx, evmWallet("w1"))
		require.NoError(t, err)
		_, ok := st.Wallet(added.ID)
		assert.True(t, ok)
		assert.Empty(t, st.NFTs())
	})
}

func TestRefreshWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches, enriches, and stores", func(t *testing.T) {
		fake := &fakeFetcher{results: map[string][]entity.NFT{
			"w1": {storedNFT("n1", "w1", "farcaster mint from /art")},
		}}
		svc, st := newTestService(fake, testConfig())
		require.NoError(t, st.AddWallet(ctx, evmWallet("w1")))

		count, err := svc.RefreshWallet(ctx, "w1", true)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, ok := st.NFT("n1")
		require.True(t, ok)
		assert.True(t, got.Metadata.IsFarcasterMint)
		assert.Equal(t, "art", got.Metadata.FarcasterChannel)
	})

	t.Run("unknown wallet id errors", func(t *testing.T) {
		svc, _ := newTestService(&fakeFetcher{}, testConfig())
		_, err := svc.RefreshWallet(ctx, "missing", true)
		assert.Error(t, err)
	})

	t.Run("fresh wallets are skipped unless forced", func(t *testing.T) {
		fake := &fakeFetcher{results: map[string][]entity.NFT{
			"w1": {storedNFT("n1", "w1", "")},
		}}
		svc, st := newTestService(fake, testConfig())
		require.NoError(t, st.AddWallet(ctx, evmWallet("w1")))

		_, err := svc.RefreshWallet(ctx, "w1", false)
		require.NoError(t, err)
		require.Equal(t, 1, fake.callCount())

		count, err := svc.RefreshWallet(ctx, "w1", false)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, fake.callCount())

		_, err = svc.RefreshWallet(ctx, "w1", true)
		require.NoError(t, err)
		assert.Equal(t, 2, fake.callCount())
	})

	t.Run("fetch errors leave the store untouched", func(t *testing.T) {
		fake := &fakeFetcher{
			results: map[string][]entity.NFT{"w1": {storedNFT("n1", "w1", "")}},
		}
		svc, st := newTestService(fake, testConfig())
		require.NoError(t, st.AddWallet(ctx, evmWallet("w1")))
		_, err := svc.RefreshWallet(ctx, "w1", true)
		require.NoError(t, err)

		fake.mu.Lock()
		fake.errors = map[string]error{"w1": fmt.Errorf("provider down")}
		fake.mu.Unlock()

		_, err = svc.RefreshWallet(ctx, "w1", true)
		require.Error(t, err)
		assert.Len(t, st.NFTs(), 1)
	})
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("per-wallet failures do not abort the batch", func(t *testing.T) {
		fake := &fakeFetcher{
			results: map[string][]entity.NFT{
				"w1": {storedNFT("n1", "w1", "")},
			},
			errors: map[string]error{"w2": fmt.Errorf("provider down")},
		}
		svc, st := newTestService(fake, testConfig())
		w1 := evmWallet("w1")
		w1.CreatedAt = time.Now().UTC()
		w2 := evmWallet("w2")
		w2.CreatedAt = w1.CreatedAt.Add(time.Minute)
		require.NoError(t, st.AddWallet(ctx, w1))
		require.NoError(t, st.AddWallet(ctx, w2))

		results := svc.RefreshAll(ctx, true)
		require.Len(t, results, 2)

		byID := make(map[string]port.RefreshResult)
		for _, r := range results {
			byID[r.WalletID] = r
		}
		assert.Empty(t, byID["w1"].Error)
		assert.Equal(t, 1, byID["w1"].NFTCount)
		assert.NotEmpty(t, byID["w2"].Error)
		assert.Len(t, st.NFTs(), 1)
	})

	t.Run("empty store yields no results", func(t *testing.T) {
		svc, _ := newTestService(&fakeFetcher{}, testConfig())
		assert.Empty(t, svc.RefreshAll(ctx, true))
	})
}

func TestChannels(t *testing.T) {
	ctx := context.Background()
	fake := &fakeFetcher{results: map[string][]entity.NFT{
		"w1": {
			storedNFT("n1", "w1", "farcaster mint from /art"),
			storedNFT("n2", "w1", "farcaster mint from /memes"),
			storedNFT("n3", "w1", "nothing special"),
		},
	}}
	svc, st := newTestService(fake, testConfig())
	require.NoError(t, st.AddWallet(ctx, evmWallet("w1")))
	_, err := svc.RefreshWallet(ctx, "w1", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"art", "memes"}, svc.Channels())
}
