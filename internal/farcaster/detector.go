package farcaster

import (
	"fmt"
	"net/url"
	"strings"

	"nft_tracker/internal/domain/entity"
)

// IsFarcasterMint classifies a unified record. The checks short-circuit in
// order; the first positive wins:
//  1. contract address in the known-contract allow-list
//  2. description contains a keyword
//  3. any attribute trait-type or value contains a keyword
//  4. external URL host is a Farcaster-adjacent domain
//  5. collection name or description contains a keyword
func IsFarcasterMint(nft entity.NFT) bool {
	if _, ok := knownMintContracts[strings.ToLower(nft.ContractAddress)]; ok {
		return true
	}
	if containsKeyword(nft.Description) {
		return true
	}
	for _, attr := range nft.Metadata.Attributes {
		if containsKeyword(attr.TraitType) || containsKeyword(stringifyValue(attr.Value)) {
			return true
		}
	}
	if matchesFarcasterHost(nft.ExternalURL) {
		return true
	}
	if containsKeyword(nft.Collection.Name) || containsKeyword(nft.Collection.Description) {
		return true
	}
	return false
}

// ExtractChannel returns the channel name for a record, or "" when none of
// the candidate texts yields a match. Texts are tried in fixed order:
// description, external URL, channel-ish attributes, collection name,
// collection description. The first non-empty capture wins and is
// lower-cased.
func ExtractChannel(nft entity.NFT) string {
	texts := []string{nft.Description, nft.ExternalURL}
	for _, attr := range nft.Metadata.Attributes {
		trait := strings.ToLower(attr.TraitType)
		if strings.Contains(trait, "channel") || strings.Contains(trait, "farcaster") {
			texts = append(texts, stringifyValue(attr.Value))
		}
	}
	texts = append(texts, nft.Collection.Name, nft.Collection.Description)

	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, pattern := range channelPatterns {
			m := pattern.FindStringSubmatch(text)
			if len(m) > 1 && m[1] != "" {
				return strings.ToLower(m[1])
			}
		}
	}
	return ""
}

// Enrich returns a copy of the record with the Farcaster metadata fields
// set. The input is never mutated.
func Enrich(nft entity.NFT) entity.NFT {
	enriched := nft
	enriched.Metadata.IsFarcasterMint = IsFarcasterMint(nft)
	if enriched.Metadata.IsFarcasterMint {
		enriched.Metadata.FarcasterChannel = ExtractChannel(nft)
	}
	return enriched
}

func containsKeyword(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range mintKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func matchesFarcasterHost(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Host)
	for _, domain := range farcasterDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
