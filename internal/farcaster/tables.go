// Package farcaster classifies unified NFT records as Farcaster mints and
// extracts channel names. Everything here is pure and deterministic given
// the static lookup tables below.
package farcaster

import "regexp"

// knownMintContracts is the hardcoded allow-list of contracts whose tokens
// are always Farcaster mints. Addresses are stored lowercased; lookups
// lowercase the candidate first.
var knownMintContracts = map[string]struct{}{
	// Zora-hosted Farcaster channel mint contracts on Base.
	"0x0bc2a24ce568dad89691116d5b34deb6c203f342": {},
	"0x7d256d82b32d8003d1ca1a1526ed211e6e0da9e2": {},
	"0x4f86113fc3e9783cf3ec9a552cbb566716a57628": {},
	"0x5b97886e4e1fc9f08229449cfa8a2fb5bc3b0adf": {},
	"0xca21d4228cdcc68d4e23807e5e370c07577dd152": {},
}

// mintKeywords are matched case-insensitively as substrings against
// descriptions, attributes, and collection text.
var mintKeywords = []string{
	"farcaster",
	"warpcast",
	"fc mint",
	"farcaster mint",
	"channel mint",
	"/channel",
	"caster",
}

// farcasterDomains are the external-URL hosts treated as Farcaster-adjacent.
var farcasterDomains = []string{
	"warpcast.com",
	"farcaster.xyz",
	"far.quest",
}

// channelPatterns are tried in order against each candidate text; the first
// pattern producing a non-empty capture wins for that text.
var channelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)warpcast\.com/~/channel/([a-z0-9][a-z0-9-]*)`),
	regexp.MustCompile(`(?i)/channel/([a-z0-9][a-z0-9-]*)`),
	regexp.MustCompile(`(?i)channel[:\s]+/?([a-z0-9][a-z0-9-]*)`),
	regexp.MustCompile(`(?i)(?:^|\s)/([a-z0-9][a-z0-9-]*)`),
}
