package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// alchemySubdomains maps supported EVM networks to the provider's per-chain hosts.
var alchemySubdomains = map[domain.EVMChain]string{
	domain.EVMChainEthereum: "eth-mainnet",
	domain.EVMChainBase:     "base-mainnet",
	domain.EVMChainOptimism: "opt-mainnet",
	domain.EVMChainArbitrum: "arb-mainnet",
	domain.EVMChainPolygon:  "polygon-mainnet",
	domain.EVMChainZora:     "zora-mainnet",
}

// AlchemyClient defines the interface for the EVM NFT indexing API.
type AlchemyClient interface {
	GetNFTsForOwner(ctx context.Context, chain domain.EVMChain, owner, pageKey string, pageSize int) (*provider.AlchemyOwnedNFTsResponse, error)
}

// alchemyClientImpl is the implementation of AlchemyClient.
type alchemyClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAlchemyClient creates a new instance of alchemyClientImpl. baseURL may
// contain a "{chain}" placeholder that is replaced with the per-network
// subdomain; an empty baseURL uses the hosted provider's default hosts.
func NewAlchemyClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) AlchemyClient {
	if baseURL == "" {
		baseURL = "https://{chain}.g.alchemy.com/nft/v2"
	}
	return &alchemyClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger.Named("AlchemyClient"),
	}
}

// GetNFTsForOwner fetches one page of the owner's NFTs on the given network.
// An empty pageKey requests the first page.
func (c *alchemyClientImpl) GetNFTsForOwner(ctx context.Context, chain domain.EVMChain, owner, pageKey string, pageSize int) (*provider.AlchemyOwnedNFTsResponse, error) {
	subdomain, ok := alchemySubdomains[chain]
	if !ok {
		return nil, fmt.Errorf("unsupported EVM network %q", chain)
	}

	base := strings.Replace(c.baseURL, "{chain}", subdomain, 1)
	requestURL := fmt.Sprintf("%s/%s/getNFTs?owner=%s&withMetadata=true&pageSize=%d",
		base, c.apiKey, url.QueryEscape(owner), pageSize)
	if pageKey != "" {
		requestURL += "&pageKey=" + url.QueryEscape(pageKey)
	}

	c.logger.Debug("Requesting owned NFTs from Alchemy",
		zap.String("chain", string(chain)),
		zap.String("owner", owner),
		zap.Bool("hasPageKey", pageKey != ""))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.do(ctx, req, resp); err != nil {
		c.logger.Error("Failed to execute request to Alchemy", zap.String("chain", string(chain)), zap.Error(err))
		return nil, fmt.Errorf("failed to execute Alchemy request for %s: %w", owner, err)
	}

	rawBody := resp.Body()

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Alchemy API request failed",
			zap.String("chain", string(chain)),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, domain.NewFetchError("alchemy", resp.StatusCode(), string(rawBody))
	}

	var page provider.AlchemyOwnedNFTsResponse
	if err := json.Unmarshal(rawBody, &page); err != nil {
		c.logger.Error("Failed to unmarshal Alchemy response",
			zap.String("chain", string(chain)),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal Alchemy response: %w", err)
	}

	// A 200 can still carry an application error payload.
	if page.Error != "" {
		c.logger.Error("Alchemy returned an error payload", zap.String("message", page.Error))
		return nil, domain.NewFetchError("alchemy", resp.StatusCode(), page.Error)
	}

	c.logger.Debug("Successfully fetched Alchemy page",
		zap.String("chain", string(chain)),
		zap.Int("nftCount", len(page.OwnedNFTs)),
		zap.Bool("hasMore", page.PageKey != ""))
	return &page, nil
}

func (c *alchemyClientImpl) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.client.DoDeadline(req, resp, deadline)
	}
	return c.client.DoTimeout(req, resp, c.timeout)
}
