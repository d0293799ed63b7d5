package fetcher

import (
	"context"
	"fmt"
	"testing"

	"nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAlchemyClient struct {
	pages map[string]*provider.AlchemyOwnedNFTsResponse
	calls []string
	err   error
}

func (f *fakeAlchemyClient) GetNFTsForOwner(_ context.Context, _ entity.EVMChain, _ string, pageKey string, _ int) (*provider.AlchemyOwnedNFTsResponse, error) {
	f.calls = append(f.calls, pageKey)
	if f.err != nil {
		return nil, f.err
	}
	page, ok := f.pages[pageKey]
	if !ok {
		return nil, fmt.Errorf("unexpected page key %q", pageKey)
	}
	return page, nil
}

type fakeHeliusClient struct {
	pages map[int]*provider.HeliusAssetList
	calls []int
	err   error
}

func (f *fakeHeliusClient) GetAssetsByOwner(_ context.Context, _ string, page, _ int) (*provider.HeliusAssetList, error) {
	f.calls = append(f.calls, page)
	if f.err != nil {
		return nil, f.err
	}
	list, ok := f.pages[page]
	if !ok {
		return nil, fmt.Errorf("unexpected page %d", page)
	}
	return list, nil
}

func (f *fakeHeliusClient) GetAsset(context.Context, string) (*provider.HeliusAsset, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeHeliusClient) GetAssetBatch(context.Context, []string) ([]provider.HeliusAsset, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeHeliusClient) GetAssetsByGroup(context.Context, string, string, int, int) (*provider.HeliusAssetList, error) {
	return nil, fmt.Errorf("not implemented")
}

func evmWallet() entity.Wallet {
	return entity.Wallet{
		ID:       "w1",
		Address:  "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		Chain:    entity.ChainFamilyEVM,
		EVMChain: entity.EVMChainEthereum,
	}
}

func solanaWallet() entity.Wallet {
	return entity.Wallet{
		ID:      "w2",
		Address: "86xCnPeV69n6t3DnyGvkKobf9FdN2H9oiVDdaMpo2MMY",
		Chain:   entity.ChainFamilySolana,
	}
}

func alchemyRecord(contract, tokenID string) provider.AlchemyNFT {
	return provider.AlchemyNFT{
		Contract: provider.AlchemyContract{Address: contract},
		TokenID:  tokenID,
	}
}

func TestEVMFetcher(t *testing.T) {
	ctx := context.Background()

	t.Run("follows the page key cursor to exhaustion", func(t *testing.T) {
		fake := &fakeAlchemyClient{pages: map[string]*provider.AlchemyOwnedNFTsResponse{
			"": {
				OwnedNFTs: []provider.AlchemyNFT{alchemyRecord("0xaaa", "1")},
				PageKey:   "next-1",
			},
			"next-1": {
				OwnedNFTs: []provider.AlchemyNFT{alchemyRecord("0xaaa", "2")},
				PageKey:   "next-2",
			},
			"next-2": {
				OwnedNFTs: []provider.AlchemyNFT{alchemyRecord("0xbbb", "3")},
			},
		}}
		f := NewEVMFetcher(fake, 100, 0, 0, zap.NewNop())

		nfts, err := f.FetchForWallet(ctx, evmWallet())
		require.NoError(t, err)
		require.Len(t, nfts, 3)
		assert.Equal(t, []string{"", "next-1", "next-2"}, fake.calls)
		assert.Equal(t, "evm:ethereum:0xaaa:1", nfts[0].ID)
		assert.Equal(t, "w1", nfts[0].WalletID)
	})

	t.Run("a page error aborts the whole fetch", func(t *testing.T) {
		fake := &fakeAlchemyClient{err: fmt.Errorf("boom")}
		f := NewEVMFetcher(fake, 100, 0, 0, zap.NewNop())

		nfts, err := f.FetchForWallet(ctx, evmWallet())
		require.Error(t, err)
		assert.Nil(t, nfts)
	})

	t.Run("rejects wallets from the other chain family", func(t *testing.T) {
		f := NewEVMFetcher(&fakeAlchemyClient{}, 100, 0, 0, zap.NewNop())
		_, err := f.FetchPage(ctx, solanaWallet(), "")
		assert.Error(t, err)
	})
}

func TestSolanaFetcher(t *testing.T) {
	ctx := context.Background()
	pageSize := 2

	asset := func(id string) provider.HeliusAsset {
		return provider.HeliusAsset{ID: id}
	}

	t.Run("pages until a short page arrives", func(t *testing.T) {
		fake := &fakeHeliusClient{pages: map[int]*provider.HeliusAssetList{
			1: {Items: []provider.HeliusAsset{asset("a"), asset("b")}},
			2: {Items: []provider.HeliusAsset{asset("c")}},
		}}
		f := NewSolanaFetcher(fake, pageSize, 0, 0, zap.NewNop())

		nfts, err := f.FetchForWallet(ctx, solanaWallet())
		require.NoError(t, err)
		require.Len(t, nfts, 3)
		assert.Equal(t, []int{1, 2}, fake.calls)
		assert.Equal(t, "solana:a", nfts[0].ID)
	})

	t.Run("an exactly-full final page costs one extra empty call", func(t *testing.T) {
		fake := &fakeHeliusClient{pages: map[int]*provider.HeliusAssetList{
			1: {Items: []provider.HeliusAsset{asset("a"), asset("b")}},
			2: {Items: nil},
		}}
		f := NewSolanaFetcher(fake, pageSize, 0, 0, zap.NewNop())

		nfts, err := f.FetchForWallet(ctx, solanaWallet())
		require.NoError(t, err)
		assert.Len(t, nfts, 2)
		assert.Equal(t, []int{1, 2}, fake.calls)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		f := NewSolanaFetcher(&fakeHeliusClient{}, pageSize, 0, 0, zap.NewNop())
		_, err := f.FetchPage(ctx, solanaWallet(), "not-a-number")
		assert.Error(t, err)
		_, err = f.FetchPage(ctx, solanaWallet(), "0")
		assert.Error(t, err)
	})

	t.Run("rejects wallets from the other chain family", func(t *testing.T) {
		f := NewSolanaFetcher(&fakeHeliusClient{}, pageSize, 0, 0, zap.NewNop())
		_, err := f.FetchPage(ctx, evmWallet(), "")
		assert.Error(t, err)
	})
}

func TestFactory(t *testing.T) {
	evm := NewEVMFetcher(&fakeAlchemyClient{}, 100, 0, 0, zap.NewNop())
	solana := NewSolanaFetcher(&fakeHeliusClient{}, 100, 0, 0, zap.NewNop())
	factory := NewFactory(evm, solana)

	t.Run("dispatches by chain family", func(t *testing.T) {
		got, err := factory.ForChain(entity.ChainFamilyEVM)
		require.NoError(t, err)
		assert.Same(t, evm, got)

		got, err = factory.ForWallet(solanaWallet())
		require.NoError(t, err)
		assert.Same(t, solana, got)
	})

	t.Run("unknown families are rejected", func(t *testing.T) {
		_, err := factory.ForChain(entity.ChainFamily("bitcoin"))
		assert.Error(t, err)
	})
}
