package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/config"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/farcaster"
	"nft_tracker/internal/fetcher"
	"nft_tracker/internal/pkg/metrics"
	"nft_tracker/internal/store"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// galleryServiceImpl implements the GalleryService interface.
type galleryServiceImpl struct {
	store        *store.Store
	fetchers     *fetcher.Factory
	cfg          *config.Config
	refreshCache *gocache.Cache
	logger       *zap.Logger
}

// NewGalleryService creates a new instance of GalleryService.
func NewGalleryService(
	st *store.Store,
	fetchers *fetcher.Factory,
	cfg *config.Config,
	logger *zap.Logger,
) port.GalleryService {
	cleanup := time.Duration(cfg.Cache.CleanupIntervalMinutes) * time.Minute
	return &galleryServiceImpl{
		store:        st,
		fetchers:     fetchers,
		cfg:          cfg,
		refreshCache: gocache.New(gocache.NoExpiration, cleanup),
		logger:       logger.Named("GalleryService"),
	}
}

// AddWallet validates and registers a wallet, refreshing it immediately when
// configured to.
func (s *galleryServiceImpl) AddWallet(ctx context.Context, wallet entity.Wallet) (entity.Wallet, error) {
	if wallet.ID == "" {
		wallet.ID = uuid.NewString()
	}
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = time.Now().UTC()
	}
	wallet.Active = true

	if err := wallet.Validate(); err != nil {
		return entity.Wallet{}, fmt.Errorf("invalid wallet: %w", err)
	}
	if err := s.store.AddWallet(ctx, wallet); err != nil {
		return entity.Wallet{}, err
	}
	s.logger.Info("Wallet added",
		zap.String("walletId", wallet.ID),
		zap.String("address", wallet.Address),
		zap.String("chain", string(wallet.Chain)))

	if s.cfg.Gallery.RefreshOnAdd {
		if _, err := s.RefreshWallet(ctx, wallet.ID, true); err != nil {
			// The wallet is registered either way; the refresh can be retried.
			s.logger.Warn("Initial refresh failed", zap.String("walletId", wallet.ID), zap.Error(err))
		}
	}
	return wallet, nil
}

// RefreshWallet fetches, enriches, and stores one wallet's NFTs. A refresh
// inside the configured interval is skipped unless force is set.
func (s *galleryServiceImpl) RefreshWallet(ctx context.Context, walletID string, force bool) (int, error) {
	wallet, ok := s.store.Wallet(walletID)
	if !ok {
		return 0, fmt.Errorf("unknown wallet id %q", walletID)
	}

	if !force {
		if _, fresh := s.refreshCache.Get(walletID); fresh {
			s.logger.Debug("Skipping refresh, wallet is fresh", zap.String("walletId", walletID))
			return s.walletNFTCount(walletID), nil
		}
	}

	f, err := s.fetchers.ForWallet(wallet)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	nfts, err := f.FetchForWallet(ctx, wallet)
	if err != nil {
		s.logger.Error("Wallet refresh failed",
			zap.String("walletId", walletID),
			zap.String("address", wallet.Address),
			zap.Error(err))
		return 0, err
	}

	enriched := farcaster.EnrichAll(nfts)
	s.store.SetNFTs(walletID, enriched)
	metrics.WalletRefreshDuration.WithLabelValues(string(wallet.Chain)).Observe(time.Since(start).Seconds())

	ttl := time.Duration(s.store.Settings().RefreshIntervalMinutes) * time.Minute
	s.refreshCache.Set(walletID, time.Now(), ttl)

	s.logger.Info("Wallet refreshed",
		zap.String("walletId", walletID),
		zap.String("address", wallet.Address),
		zap.Int("nftCount", len(enriched)),
		zap.Duration("took", time.Since(start)))
	return len(enriched), nil
}

// RefreshAll refreshes every tracked wallet concurrently, bounded by
// configuration. Per-wallet failures land in the result list; successful
// wallets are stored regardless.
func (s *galleryServiceImpl) RefreshAll(ctx context.Context, force bool) []port.RefreshResult {
	wallets := s.store.Wallets()
	results := make([]port.RefreshResult, 0, len(wallets))

	var mu sync.Mutex
	eg, childCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Gallery.MaxConcurrentRefreshes)

	for _, wallet := range wallets {
		w := wallet
		eg.Go(func() error {
			count, err := s.RefreshWallet(childCtx, w.ID, force)
			result := port.RefreshResult{WalletID: w.ID, Address: w.Address, NFTCount: count}
			if err != nil {
				result.Error = err.Error()
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			// Other wallets keep refreshing even if this one failed.
			return nil
		})
	}
	_ = eg.Wait()

	s.logger.Info("Refresh batch complete", zap.Int("walletCount", len(results)))
	return results
}

// Channels lists the distinct Farcaster channels across stored NFTs.
func (s *galleryServiceImpl) Channels() []string {
	return farcaster.ListChannels(s.store.NFTs())
}

func (s *galleryServiceImpl) walletNFTCount(walletID string) int {
	count := 0
	for _, nft := range s.store.NFTs() {
		if nft.WalletID == walletID {
			count++
		}
	}
	return count
}
