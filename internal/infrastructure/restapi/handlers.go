package restapi

import (
	"net/http"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/grid"
	"nft_tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newGroup builds a CustomGroup from a create request.
func newGroup(req groupRequest) entity.CustomGroup {
	now := time.Now().UTC()
	return entity.CustomGroup{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		NFTIDs:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GalleryHandler serves the HTTP surface over the store and gallery service.
type GalleryHandler struct {
	service port.GalleryService
	store   *store.Store
	logger  *zap.Logger
}

// NewGalleryHandler creates a new GalleryHandler instance.
func NewGalleryHandler(service port.GalleryService, st *store.Store, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		store:   st,
		logger:  logger.Named("GalleryHandler"),
	}
}

type addWalletRequest struct {
	Address  string `json:"address" binding:"required"`
	Chain    string `json:"chain" binding:"required"`
	EVMChain string `json:"evmChain,omitempty"`
	Label    string `json:"label,omitempty"`
	Color    string `json:"color,omitempty"`
}

type patchWalletRequest struct {
	Label *string `json:"label,omitempty"`
	Color *string `json:"color,omitempty"`
}

type patchNFTRequest struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	ThumbnailURL     *string `json:"thumbnailUrl,omitempty"`
	ExternalURL      *string `json:"externalUrl,omitempty"`
	IsFarcasterMint  *bool   `json:"isFarcasterMint,omitempty"`
	FarcasterChannel *string `json:"farcasterChannel,omitempty"`
}

type groupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type groupMembersRequest struct {
	NFTIDs []string `json:"nftIds" binding:"required"`
}

type preferencesRequest struct {
	ViewMode string `json:"viewMode,omitempty"`
	SortMode string `json:"sortMode,omitempty"`
}

// displayEntry is the wire form of a grid entry, dispatched by type tag.
type displayEntry struct {
	Type  string      `json:"type"`
	Title string      `json:"title,omitempty"`
	Count int         `json:"count,omitempty"`
	NFT   *entity.NFT `json:"nft,omitempty"`
}

// GetWalletsHandler lists tracked wallets.
func (h *GalleryHandler) GetWalletsHandler(c *gin.Context) {
	state := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"wallets":        h.store.Wallets(),
		"activeWalletId": state.ActiveWalletID,
	})
}

// AddWalletHandler registers a wallet.
func (h *GalleryHandler) AddWalletHandler(c *gin.Context) {
	var req addWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.service.AddWallet(c.Request.Context(), entity.Wallet{
		Address:  req.Address,
		Chain:    entity.ChainFamily(req.Chain),
		EVMChain: entity.EVMChain(req.EVMChain),
		Label:    req.Label,
		Color:    req.Color,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wallet)
}

// PatchWalletHandler updates a wallet's label/color.
func (h *GalleryHandler) PatchWalletHandler(c *gin.Context) {
	var req patchWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.store.Wallet(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	if err := h.store.UpdateWallet(c.Request.Context(), id, store.WalletPatch{Label: req.Label, Color: req.Color}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wallet, _ := h.store.Wallet(id)
	c.JSON(http.StatusOK, wallet)
}

// DeleteWalletHandler removes a wallet; its NFTs cascade away with it.
func (h *GalleryHandler) DeleteWalletHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Wallet(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	if err := h.store.RemoveWallet(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivateWalletHandler marks a wallet as the active one.
func (h *GalleryHandler) ActivateWalletHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Wallet(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	if err := h.store.SetActiveWallet(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshWalletHandler re-fetches one wallet's NFTs.
func (h *GalleryHandler) RefreshWalletHandler(c *gin.Context) {
	force := c.Query("force") == "true"
	count, err := h.service.RefreshWallet(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nftCount": count})
}

// RefreshAllHandler refreshes every tracked wallet.
func (h *GalleryHandler) RefreshAllHandler(c *gin.Context) {
	force := c.Query("force") == "true"
	results := h.service.RefreshAll(c.Request.Context(), force)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetNFTsHandler returns the arranged display sequence for the requested
// sort mode, defaulting to the store's current mode.
func (h *GalleryHandler) GetNFTsHandler(c *gin.Context) {
	state := h.store.Snapshot()

	mode := state.SortMode
	if q := c.Query("sort"); q != "" {
		requested := entity.SortMode(q)
		if !requested.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort mode"})
			return
		}
		mode = requested
	}

	nfts := h.store.NFTs()
	if walletID := c.Query("wallet"); walletID != "" {
		filtered := nfts[:0:0]
		for _, nft := range nfts {
			if nft.WalletID == walletID {
				filtered = append(filtered, nft)
			}
		}
		nfts = filtered
	}

	entries := grid.Arrange(nfts, mode)
	wire := make([]displayEntry, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case grid.KindHeader:
			wire = append(wire, displayEntry{Type: "header", Title: e.Title, Count: e.Count})
		case grid.KindItem:
			nft := e.NFT
			wire = append(wire, displayEntry{Type: "item", NFT: &nft})
		}
	}
	c.JSON(http.StatusOK, gin.H{"sort": mode, "entries": wire})
}

// GetNFTHandler returns one record by composite id.
func (h *GalleryHandler) GetNFTHandler(c *gin.Context) {
	nft, ok := h.store.NFT(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "nft not found"})
		return
	}
	c.JSON(http.StatusOK, nft)
}

// PatchNFTHandler merges a partial update into a record. Unknown ids are a
// no-op in the store; the handler surfaces them as 404 for the caller.
func (h *GalleryHandler) PatchNFTHandler(c *gin.Context) {
	var req patchNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.store.NFT(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "nft not found"})
		return
	}
	h.store.UpdateNFT(id, store.NFTPatch{
		Name:             req.Name,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		ThumbnailURL:     req.ThumbnailURL,
		ExternalURL:      req.ExternalURL,
		IsFarcasterMint:  req.IsFarcasterMint,
		FarcasterChannel: req.FarcasterChannel,
	})
	nft, _ := h.store.NFT(id)
	c.JSON(http.StatusOK, nft)
}

// GetCollectionsHandler lists the derived collection aggregates.
func (h *GalleryHandler) GetCollectionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": h.store.Collections()})
}

// GetChannelsHandler lists distinct Farcaster channels.
func (h *GalleryHandler) GetChannelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"channels": h.service.Channels()})
}

// GetGroupsHandler lists custom groups.
func (h *GalleryHandler) GetGroupsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.store.Groups()})
}

// CreateGroupHandler creates a custom group.
func (h *GalleryHandler) CreateGroupHandler(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group := newGroup(req)
	if err := h.store.CreateGroup(c.Request.Context(), group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

// PatchGroupHandler edits a group's name/description/color.
func (h *GalleryHandler) PatchGroupHandler(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.store.Group(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err := h.store.UpdateGroup(c.Request.Context(), id, req.Name, req.Description, req.Color); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	group, _ := h.store.Group(id)
	c.JSON(http.StatusOK, group)
}

// DeleteGroupHandler removes a group.
func (h *GalleryHandler) DeleteGroupHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Group(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err := h.store.DeleteGroup(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddGroupMembersHandler unions NFT ids into a group.
func (h *GalleryHandler) AddGroupMembersHandler(c *gin.Context) {
	var req groupMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.store.Group(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err := h.store.AddToGroup(c.Request.Context(), id, req.NFTIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	group, _ := h.store.Group(id)
	c.JSON(http.StatusOK, group)
}

// RemoveGroupMembersHandler subtracts NFT ids from a group.
func (h *GalleryHandler) RemoveGroupMembersHandler(c *gin.Context) {
	var req groupMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.store.Group(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err := h.store.RemoveFromGroup(c.Request.Context(), id, req.NFTIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	group, _ := h.store.Group(id)
	c.JSON(http.StatusOK, group)
}

// GetSettingsHandler returns the settings singleton.
func (h *GalleryHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Settings())
}

// PutSettingsHandler replaces the settings singleton.
func (h *GalleryHandler) PutSettingsHandler(c *gin.Context) {
	var settings entity.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdateSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutPreferencesHandler updates the current view/sort mode.
func (h *GalleryHandler) PutPreferencesHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	if req.ViewMode != "" {
		if err := h.store.SetViewMode(ctx, entity.ViewMode(req.ViewMode)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if req.SortMode != "" {
		mode := entity.SortMode(req.SortMode)
		if !mode.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort mode"})
			return
		}
		if err := h.store.SetSortMode(ctx, mode); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	state := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"viewMode": state.ViewMode, "sortMode": state.SortMode})
}
