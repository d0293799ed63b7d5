package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletFileLoader reads seed wallets from a text file. Each non-comment
// line is `evm:<network>:<address>` or `solana:<address>`; invalid lines are
// logged and skipped.
type WalletFileLoader struct {
	filePath string
	logger   port.Logger
}

// NewWalletFileLoader creates a new WalletFileLoader.
func NewWalletFileLoader(filePath string, logger port.Logger) *WalletFileLoader {
	return &WalletFileLoader{filePath: filePath, logger: logger}
}

// GetWallets reads wallet definitions from the configured file path.
func (l *WalletFileLoader) GetWallets() ([]entity.Wallet, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	var wallets []entity.Wallet
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wallet, err := parseWalletLine(line)
		if err != nil {
			if l.logger != nil {
				l.logger.Warn("Skipping invalid wallet line",
					"file", l.filePath, "line_number", lineNum, "error", err.Error())
			}
			continue
		}
		wallets = append(wallets, wallet)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	if l.logger != nil {
		l.logger.Info("Wallets loaded successfully from file", "count", len(wallets), "path", l.filePath)
	}
	return wallets, nil
}

func parseWalletLine(line string) (entity.Wallet, error) {
	parts := strings.Split(line, ":")
	wallet := entity.Wallet{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}
	switch {
	case len(parts) == 3 && parts[0] == "evm":
		wallet.Chain = entity.ChainFamilyEVM
		wallet.EVMChain = entity.EVMChain(parts[1])
		wallet.Address = parts[2]
	case len(parts) == 2 && parts[0] == "solana":
		wallet.Chain = entity.ChainFamilySolana
		wallet.Address = parts[1]
	default:
		return entity.Wallet{}, fmt.Errorf("unrecognized wallet line format %q", line)
	}
	if err := wallet.Validate(); err != nil {
		return entity.Wallet{}, err
	}
	return wallet, nil
}
