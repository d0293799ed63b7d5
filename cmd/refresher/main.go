// Command refresher is a one-shot runner: it loads the seed wallet file,
// fetches every wallet's NFTs, and prints a summary plus the arranged
// gallery to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"nft_tracker/internal/app/service"
	"nft_tracker/internal/client"
	"nft_tracker/internal/config"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/fetcher"
	"nft_tracker/internal/grid"
	"nft_tracker/internal/infrastructure/walletloader"
	"nft_tracker/internal/pkg/logger"
	"nft_tracker/internal/pkg/metrics"
	"nft_tracker/internal/pkg/utils"
	"nft_tracker/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		zapLogger.Fatal("Failed to load configuration", zap.String("path", cfgPath), zap.Error(err))
	}

	logger.InitSlog(cfg.Logging.Level)
	metrics.MustRegisterMetrics()

	loader := walletloader.NewWalletFileLoader(cfg.Wallets.SeedFile, logger.NewSlogAdapter())
	wallets, err := loader.GetWallets()
	if err != nil {
		zapLogger.Fatal("Failed to load seed wallets", zap.Error(err))
	}
	if len(wallets) == 0 {
		zapLogger.Fatal("No wallets in seed file", zap.String("path", cfg.Wallets.SeedFile))
	}

	alchemyKey := utils.GetEnv("ALCHEMY_API_KEY", cfg.Alchemy.APIKey)
	heliusKey := utils.GetEnv("HELIUS_API_KEY", cfg.Helius.APIKey)

	alchemyTimeout := time.Duration(cfg.Alchemy.RequestTimeoutMillis) * time.Millisecond
	heliusTimeout := time.Duration(cfg.Helius.RequestTimeoutMillis) * time.Millisecond
	alchemyClient := client.NewAlchemyClient(cfg.Alchemy.BaseURL, alchemyKey, alchemyTimeout, zapLogger)
	heliusClient := client.NewHeliusClient(cfg.Helius.RPCURL, heliusKey, heliusTimeout, zapLogger)

	fetchers := fetcher.NewFactory(
		fetcher.NewEVMFetcher(alchemyClient, cfg.Alchemy.PageSize, cfg.Alchemy.RateLimit, cfg.Alchemy.BurstLimit, zapLogger),
		fetcher.NewSolanaFetcher(heliusClient, cfg.Helius.PageSize, cfg.Helius.RateLimit, cfg.Helius.BurstLimit, zapLogger),
	)

	// One-shot run: in-memory store only, nothing persisted.
	appStore := store.New(nil, zapLogger)
	ctx := context.Background()
	for _, w := range wallets {
		if err := appStore.AddWallet(ctx, w); err != nil {
			zapLogger.Fatal("Failed to register wallet", zap.String("address", w.Address), zap.Error(err))
		}
	}

	gallerySvc := service.NewGalleryService(appStore, fetchers, cfg, zapLogger)
	results := gallerySvc.RefreshAll(ctx, true)

	fmt.Println("--- Refresh summary ---")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%-46s ERROR: %s\n", r.Address, r.Error)
			continue
		}
		fmt.Printf("%-46s %d NFTs\n", r.Address, r.NFTCount)
	}

	entries := grid.Arrange(appStore.NFTs(), entity.SortModeCollection)
	fmt.Println("--- Gallery ---")
	for _, e := range entries {
		switch e.Kind {
		case grid.KindHeader:
			fmt.Printf("\n%s (%d)\n", e.Title, e.Count)
		case grid.KindItem:
			marker := " "
			if e.NFT.Metadata.IsFarcasterMint {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, e.NFT.Name)
		}
	}

	if channels := gallerySvc.Channels(); len(channels) > 0 {
		fmt.Println("\n--- Farcaster channels ---")
		for _, ch := range channels {
			fmt.Printf("  /%s\n", ch)
		}
	}
}
