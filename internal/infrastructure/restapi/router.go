package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the gallery handlers onto the router under /api/v1.
func RegisterRoutes(router *gin.Engine, handler *GalleryHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/wallets", handler.GetWalletsHandler)
		v1.POST("/wallets", handler.AddWalletHandler)
		v1.PATCH("/wallets/:id", handler.PatchWalletHandler)
		v1.DELETE("/wallets/:id", handler.DeleteWalletHandler)
		v1.PUT("/wallets/:id/activate", handler.ActivateWalletHandler)
		v1.POST("/wallets/:id/refresh", handler.RefreshWalletHandler)
		v1.POST("/refresh", handler.RefreshAllHandler)

		v1.GET("/nfts", handler.GetNFTsHandler)
		v1.GET("/nfts/:id", handler.GetNFTHandler)
		v1.PATCH("/nfts/:id", handler.PatchNFTHandler)

		v1.GET("/collections", handler.GetCollectionsHandler)
		v1.GET("/channels", handler.GetChannelsHandler)

		v1.GET("/groups", handler.GetGroupsHandler)
		v1.POST("/groups", handler.CreateGroupHandler)
		v1.PATCH("/groups/:id", handler.PatchGroupHandler)
		v1.DELETE("/groups/:id", handler.DeleteGroupHandler)
		v1.POST("/groups/:id/nfts", handler.AddGroupMembersHandler)
		v1.DELETE("/groups/:id/nfts", handler.RemoveGroupMembersHandler)

		v1.GET("/settings", handler.GetSettingsHandler)
		v1.PUT("/settings", handler.PutSettingsHandler)
		v1.PUT("/preferences", handler.PutPreferencesHandler)
	}
}
