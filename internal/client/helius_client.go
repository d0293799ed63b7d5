package client

import (
	"context"
	"fmt"
	"time"

	domain "nft_tracker/internal/domain/entity"
	provider "nft_tracker/internal/entity"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// HeliusClient defines the interface for the Solana DAS JSON-RPC API.
type HeliusClient interface {
	GetAssetsByOwner(ctx context.Context, owner string, page, limit int) (*provider.HeliusAssetList, error)
	GetAsset(ctx context.Context, assetID string) (*provider.HeliusAsset, error)
	GetAssetBatch(ctx context.Context, assetIDs []string) ([]provider.HeliusAsset, error)
	GetAssetsByGroup(ctx context.Context, groupKey, groupValue string, page, limit int) (*provider.HeliusAssetList, error)
}

// heliusClientImpl is the implementation of HeliusClient.
type heliusClientImpl struct {
	client  *fasthttp.Client
	rpcURL  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewHeliusClient creates a new instance of heliusClientImpl. The API key is
// appended as a query parameter when set, matching the hosted endpoint's
// auth scheme.
func NewHeliusClient(rpcURL, apiKey string, timeout time.Duration, logger *zap.Logger) HeliusClient {
	if rpcURL == "" {
		rpcURL = "https://mainnet.helius-rpc.com"
	}
	if apiKey != "" {
		rpcURL = rpcURL + "?api-key=" + apiKey
	}
	return &heliusClientImpl{
		client:  &fasthttp.Client{},
		rpcURL:  rpcURL,
		timeout: timeout,
		logger:  logger.Named("HeliusClient"),
	}
}

// GetAssetsByOwner fetches one page of assets owned by the address. Pages
// are 1-based per the DAS convention.
func (c *heliusClientImpl) GetAssetsByOwner(ctx context.Context, owner string, page, limit int) (*provider.HeliusAssetList, error) {
	params := map[string]any{
		"ownerAddress": owner,
		"page":         page,
		"limit":        limit,
	}
	var list provider.HeliusAssetList
	if err := c.call(ctx, "getAssetsByOwner", params, &list); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched DAS asset page",
		zap.String("owner", owner),
		zap.Int("page", page),
		zap.Int("itemCount", len(list.Items)))
	return &list, nil
}

// GetAsset fetches a single asset by id.
func (c *heliusClientImpl) GetAsset(ctx context.Context, assetID string) (*provider.HeliusAsset, error) {
	var asset provider.HeliusAsset
	if err := c.call(ctx, "getAsset", map[string]any{"id": assetID}, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetAssetBatch fetches up to the provider's batch limit of assets in one call.
func (c *heliusClientImpl) GetAssetBatch(ctx context.Context, assetIDs []string) ([]provider.HeliusAsset, error) {
	if len(assetIDs) == 0 {
		return nil, fmt.Errorf("assetIDs cannot be empty")
	}
	var assets []provider.HeliusAsset
	if err := c.call(ctx, "getAssetBatch", map[string]any{"ids": assetIDs}, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// GetAssetsByGroup fetches one page of a group's assets, e.g. every asset in
// a collection.
func (c *heliusClientImpl) GetAssetsByGroup(ctx context.Context, groupKey, groupValue string, page, limit int) (*provider.HeliusAssetList, error) {
	params := map[string]any{
		"groupKey":   groupKey,
		"groupValue": groupValue,
		"page":       page,
		"limit":      limit,
	}
	var list provider.HeliusAssetList
	if err := c.call(ctx, "getAssetsByGroup", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// call performs one JSON-RPC round trip and decodes the result into out.
// Provider errors embedded in a 200 response surface as FetchError.
func (c *heliusClientImpl) call(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(provider.RPCRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.rpcURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.do(ctx, req, resp); err != nil {
		c.logger.Error("Failed to execute DAS request", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("failed to execute DAS request %s: %w", method, err)
	}

	rawBody := resp.Body()

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("DAS API request failed",
			zap.String("method", method),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return domain.NewFetchError("helius", resp.StatusCode(), string(rawBody))
	}

	var envelope provider.RPCResponse
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		c.logger.Error("Failed to unmarshal DAS response",
			zap.String("method", method),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return fmt.Errorf("failed to unmarshal DAS response for %s: %w", method, err)
	}

	if envelope.Error != nil {
		c.logger.Error("DAS returned an error payload",
			zap.String("method", method),
			zap.Int("code", envelope.Error.Code),
			zap.String("message", envelope.Error.Message))
		return domain.NewFetchError("helius", resp.StatusCode(), envelope.Error.Message)
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s result: %w", method, err)
	}
	return nil
}

func (c *heliusClientImpl) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.client.DoDeadline(req, resp, deadline)
	}
	return c.client.DoTimeout(req, resp, c.timeout)
}
