package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "video-field/interfaces/http"
	"video-field/interfaces/middleware"
)

func InitiateRouter(
	authHandler httpHandler.IAuthHandler,
	videoFieldHandler httpHandler.IVideoFieldHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://localhost:4200", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// OAuth flow stays public; the provider redirects the browser here
	router.GET("/auth/youtube", authHandler.GetAuthURL)
	router.GET("/auth/youtube/callback", authHandler.HandleCallback)

	router.POST("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth())

	api.GET("/youtube/oauth/status", authHandler.Status)
	api.POST("/youtube/oauth/logout", authHandler.Logout)

	youtube := api.Group("/youtube")
	{
		youtube.POST("/upload-session", videoFieldHandler.RequestUploadSession)
		youtube.POST("/videos/confirm", videoFieldHandler.ConfirmUploadedVideo)
		youtube.GET("/playlists", videoFieldHandler.ListPlaylists)
		youtube.GET("/playlists/:playlistId/videos", videoFieldHandler.ListPlaylistVideos)
	}

	// Hooks called by the CMS record lifecycle
	records := api.Group("/records")
	{
		records.POST("/hooks/saved", videoFieldHandler.RecordSaved)
		records.POST("/hooks/deleted", videoFieldHandler.RecordDeleted)
		records.POST("/hooks/validate", videoFieldHandler.ValidateReference)
	}

	return router
}
