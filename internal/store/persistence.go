package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nft_tracker/internal/domain/entity"

	_ "github.com/mattn/go-sqlite3"
)

// stateBlobKey names the single persisted blob.
const stateBlobKey = "app_state"

// persistedStateVersion is embedded in the blob so a future format change
// has something to key a migration on.
const persistedStateVersion = 1

// persistedState is the named subset of State that survives restarts. NFT
// and collection data is a rebuildable cache and is deliberately absent.
type persistedState struct {
	Version        int                  `json:"version"`
	Wallets        []entity.Wallet      `json:"wallets"`
	ActiveWalletID string               `json:"activeWalletId,omitempty"`
	Groups         []entity.CustomGroup `json:"groups"`
	Settings       entity.Settings      `json:"settings"`
	ViewMode       entity.ViewMode      `json:"viewMode,omitempty"`
	SortMode       entity.SortMode      `json:"sortMode,omitempty"`
}

// SQLitePersister implements port.StatePersister over a local SQLite file
// with a single key/value table.
type SQLitePersister struct {
	db *sql.DB
}

// NewSQLitePersister opens (creating if needed) the database at path and
// ensures the blob table exists.
func NewSQLitePersister(path string) (*SQLitePersister, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS app_blobs (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob table: %w", err)
	}

	return &SQLitePersister{db: db}, nil
}

// SaveBlob writes the blob under key, replacing any previous value.
func (p *SQLitePersister) SaveBlob(ctx context.Context, key string, blob []byte) error {
	_, err := p.db.ExecContext(ctx,
		"INSERT INTO app_blobs (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at",
		key, blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}

// LoadBlob reads the blob stored under key; a missing key returns (nil, nil).
func (p *SQLitePersister) LoadBlob(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := p.db.QueryRowContext(ctx, "SELECT value FROM app_blobs WHERE key = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}
	return blob, nil
}

// Close releases the database handle.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}
