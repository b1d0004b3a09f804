package router

import (
	"time"

	"connected/config"
	"connected/internal/handler"
	"connected/internal/middleware"
	"connected/internal/service"
	"connected/internal/ws"
	"connected/pkg/media"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(cfg *config.Config, app *service.App, viewHub *ws.ViewHub, cloud media.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Gesture endpoints get their own bucket: a drag streams pointer moves at
	// tens per second, which would exhaust the general API budget in seconds.
	apiLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(300, 60*time.Second))
	gestureLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(6000, 60*time.Second))

	chatHub := ws.NewChatHub()

	eventHandler := handler.NewEventHandler(app)
	filterHandler := handler.NewFilterHandler(app)
	mapHandler := handler.NewMapHandler(app)
	viewHandler := handler.NewViewHandler(app)
	uploadHandler := handler.NewUploadHandler(cloud)

	api := r.Group("/api/v1", apiLimit)
	{
		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.GET("/events/:id", eventHandler.Detail)

		api.GET("/filter", filterHandler.Get)
		api.POST("/filter/center", filterHandler.SetCenter)
		api.POST("/filter/radius", filterHandler.ApplyRadius)

		api.GET("/views/:view", viewHandler.Get)

		api.POST("/upload/event-image", uploadHandler.UploadEventImage)
	}

	gestures := r.Group("/api/v1/map", gestureLimit)
	{
		gestures.POST("/pointer", mapHandler.Pointer)
		gestures.POST("/zoom", mapHandler.Zoom)
		gestures.POST("/reset", mapHandler.Reset)
	}

	r.GET("/ws/views", ws.UpgradeViewWS(viewHub, viewHandler.InitialSnapshots))
	r.GET("/ws/chat", handler.UpgradeChatWS(chatHub))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
