package entity

import jsoniter "github.com/json-iterator/go"

// Wire types for the Solana DAS indexing provider (Helius shape).

// RPCRequest is the JSON-RPC 2.0 request envelope.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// RPCError is the error payload a well-formed JSON-RPC response may carry.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCResponse is the JSON-RPC 2.0 response envelope. Result is decoded by
// the caller once the absence of Error has been checked.
type RPCResponse struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      string              `json:"id"`
	Result  jsoniter.RawMessage `json:"result,omitempty"`
	Error   *RPCError           `json:"error,omitempty"`
}

// HeliusAssetList is the paged result of getAssetsByOwner / getAssetsByGroup.
type HeliusAssetList struct {
	Total int           `json:"total"`
	Limit int           `json:"limit"`
	Page  int           `json:"page"`
	Items []HeliusAsset `json:"items"`
}

// HeliusAsset is a single DAS asset record.
type HeliusAsset struct {
	ID       string           `json:"id"`
	Content  HeliusContent    `json:"content"`
	Grouping []HeliusGrouping `json:"grouping,omitempty"`
	Royalty  *HeliusRoyalty   `json:"royalty,omitempty"`
	Creators []HeliusCreator  `json:"creators,omitempty"`
}

// HeliusContent carries the asset's resolved metadata and media links.
type HeliusContent struct {
	JSONURI  string         `json:"json_uri,omitempty"`
	Metadata HeliusMetadata `json:"metadata"`
	Files    []HeliusFile   `json:"files,omitempty"`
	Links    HeliusLinks    `json:"links"`
}

// HeliusMetadata is the token metadata block.
type HeliusMetadata struct {
	Name        string            `json:"name,omitempty"`
	Symbol      string            `json:"symbol,omitempty"`
	Description string            `json:"description,omitempty"`
	Attributes  []HeliusAttribute `json:"attributes,omitempty"`
}

// HeliusAttribute is a trait/value pair.
type HeliusAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// HeliusFile is one media file attached to the asset.
type HeliusFile struct {
	URI    string `json:"uri,omitempty"`
	CdnURI string `json:"cdn_uri,omitempty"`
	Mime   string `json:"mime,omitempty"`
}

// HeliusLinks are the top-level media links.
type HeliusLinks struct {
	Image       string `json:"image,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// HeliusGrouping associates the asset with a group, e.g. its collection.
type HeliusGrouping struct {
	GroupKey   string `json:"group_key"`
	GroupValue string `json:"group_value"`
}

// HeliusRoyalty is the royalty block.
type HeliusRoyalty struct {
	Percent     float64 `json:"percent"`
	BasisPoints int     `json:"basis_points"`
}

// HeliusCreator is one entry of the creator list.
type HeliusCreator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"`
	Verified bool   `json:"verified"`
}
