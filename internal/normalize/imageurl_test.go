package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ipfs scheme", "ipfs://QmAbc123", "https://ipfs.io/ipfs/QmAbc123"},
		{"arweave scheme", "ar://tx123", "https://arweave.net/tx123"},
		{"https passes through", "https://example.com/a.png", "https://example.com/a.png"},
		{"empty passes through", "", ""},
		{"already rewritten ipfs", "https://ipfs.io/ipfs/QmAbc123", "https://ipfs.io/ipfs/QmAbc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImageURL(tt.in))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		once := NormalizeImageURL("ipfs://QmAbc123")
		assert.Equal(t, once, NormalizeImageURL(once))
	})
}

func TestResizedImageURL(t *testing.T) {
	t.Run("routes through the resize proxy", func(t *testing.T) {
		got := ResizedImageURL("https://example.com/a.png", 400)
		assert.Equal(t, "https://wsrv.nl/?url=https%3A%2F%2Fexample.com%2Fa.png&w=400", got)
	})

	t.Run("normalizes before proxying", func(t *testing.T) {
		got := ResizedImageURL("ipfs://QmAbc123", 200)
		assert.Equal(t, "https://wsrv.nl/?url=https%3A%2F%2Fipfs.io%2Fipfs%2FQmAbc123&w=200", got)
	})

	t.Run("empty url stays empty", func(t *testing.T) {
		assert.Empty(t, ResizedImageURL("", 400))
	})

	t.Run("non-positive width returns normalized url untouched", func(t *testing.T) {
		assert.Equal(t, "https://ipfs.io/ipfs/QmAbc123", ResizedImageURL("ipfs://QmAbc123", 0))
		assert.Equal(t, "https://example.com/a.png", ResizedImageURL("https://example.com/a.png", -1))
	})
}
