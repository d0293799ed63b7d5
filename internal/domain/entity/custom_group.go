package entity

import "time"

// CustomGroup is a user-defined named set of NFT ids. Membership has set
// semantics; referenced ids are not validated against the store.
type CustomGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	NFTIDs      []string  `json:"nftIds"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Contains reports whether the group already holds the given NFT id.
func (g CustomGroup) Contains(nftID string) bool {
	for _, id := range g.NFTIDs {
		if id == nftID {
			return true
		}
	}
	return false
}
