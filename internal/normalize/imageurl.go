package normalize

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	ipfsGateway    = "https://ipfs.io/ipfs/"
	arweaveGateway = "https://arweave.net/"
	resizeProxy    = "https://wsrv.nl/"
)

// NormalizeImageURL rewrites non-HTTP schemes to public gateway equivalents:
// ipfs://<hash> and ar://<hash>. Anything else, including the empty string,
// passes through unchanged, which makes the rewrite idempotent.
func NormalizeImageURL(raw string) string {
	switch {
	case strings.HasPrefix(raw, "ipfs://"):
		return ipfsGateway + strings.TrimPrefix(raw, "ipfs://")
	case strings.HasPrefix(raw, "ar://"):
		return arweaveGateway + strings.TrimPrefix(raw, "ar://")
	}
	return raw
}

// ResizedImageURL routes the (normalized) image URL through the resizing
// proxy at the given target width. Empty URLs and non-positive widths return
// the normalized URL untouched.
func ResizedImageURL(raw string, width int) string {
	normalized := NormalizeImageURL(raw)
	if normalized == "" || width <= 0 {
		return normalized
	}
	return fmt.Sprintf("%s?url=%s&w=%d", resizeProxy, url.QueryEscape(normalized), width)
}
